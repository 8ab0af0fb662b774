package config

import "time"

// DBConfig contains PostgreSQL database configuration.
//
// When Host is empty the application runs without a database: the internal
// listing source serves embedded demo data and job mutations are rejected.
type DBConfig struct {
	Host     string `env:"HOST"                    envDefault:""`
	Port     int    `env:"PORT"                    envDefault:"5432"`
	User     string `env:"USER"                    envDefault:"jobboard"`
	Password string `env:"PASSWORD"                envDefault:"jobboard"`
	Name     string `env:"NAME"                    envDefault:"jobboard"`
	SSLMode  string `env:"SSL_MODE"                envDefault:"disable"` // Use 'disable' for local dev, 'require' for production
	// RunMigrationsOnStart controls whether the application automatically applies migrations during startup.
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

// Configured returns true when a database host is set.
func (d DBConfig) Configured() bool {
	return d.Host != ""
}

// RedisConfig contains Redis configuration.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}

// CacheConfig contains listing cache configuration.
type CacheConfig struct {
	// ListingTTL bounds the staleness of the aggregated listing snapshot.
	// The original platform cached aggregated feeds for 15 minutes.
	ListingTTL time.Duration `env:"CACHE_LISTING_TTL" envDefault:"15m"`

	// RefreshInterval is how often the background refresher re-primes the
	// snapshot. Zero disables background refresh (TTL-only freshness).
	RefreshInterval time.Duration `env:"CACHE_REFRESH_INTERVAL" envDefault:"10m"`
}

// Sanitize applies guardrails to cache configuration values.
func (c *CacheConfig) Sanitize() {
	if c.ListingTTL <= 0 {
		c.ListingTTL = 15 * time.Minute
	}
	if c.RefreshInterval < 0 {
		c.RefreshInterval = 0
	}
}
