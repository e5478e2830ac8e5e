package configs

import "time"

// Webhook configures delivery of notifications to agent systems. With an
// empty URL notifications are only logged.
type Webhook struct {
	URL        string        `env:"URL"`
	Secret     string        `env:"SECRET"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"5s"`
	MaxRetries uint64        `env:"MAX_RETRIES" envDefault:"3"`
}
