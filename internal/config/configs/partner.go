package configs

import "time"

// Partner configures the outbound partner transport. BaseURL, JWTSecret and
// the retry settings apply to the HTTP transport; the Simulated fields to
// the development stand-in.
type Partner struct {
	BaseURL    string        `env:"BASE_URL" envDefault:"http://localhost:9090"`
	JWTSecret  string        `env:"JWT_SECRET"`
	JWTIssuer  string        `env:"JWT_ISSUER" envDefault:"creative-sync"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"10s"`
	MaxRetries uint64        `env:"MAX_RETRIES" envDefault:"3"`

	SimulatedDelay       time.Duration `env:"SIMULATED_DELAY" envDefault:"100ms"`
	SimulatedFailureRate float64       `env:"SIMULATED_FAILURE_RATE" envDefault:"0.1"`
}
