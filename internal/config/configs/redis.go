package configs

// Redis configures the optional shared dedup store. Leaving URL empty
// falls back to an in-process store, which only guards one replica.
type Redis struct {
	URL       string `env:"URL"`
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"creative-sync:notification:"`
}

// Enabled reports whether a Redis URL was configured.
func (c Redis) Enabled() bool { return c.URL != "" }
