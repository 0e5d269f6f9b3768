package configs

import "time"

// Redis configures the targeting rule cache. An empty Addr disables it.
type Redis struct {
	Addr     string        `env:"ADDRESS"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	RuleTTL  time.Duration `env:"RULE_TTL" envDefault:"1m"`
}

// Enabled reports whether a Redis address was configured.
func (c Redis) Enabled() bool {
	return c.Addr != ""
}
