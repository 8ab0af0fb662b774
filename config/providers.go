package config

import "time"

// AdzunaConfig contains credentials and options for the Adzuna job feed.
// The feed is disabled unless both AppID and AppKey are set.
type AdzunaConfig struct {
	Enabled bool   `env:"ENABLED"  envDefault:"true"`
	AppID   string `env:"APP_ID"`
	AppKey  string `env:"APP_KEY"`
	Country string `env:"COUNTRY"  envDefault:"us"`
	BaseURL string `env:"BASE_URL" envDefault:"https://api.adzuna.com"`
}

// Active returns true when the feed is enabled and credentialed.
func (a AdzunaConfig) Active() bool {
	return a.Enabled && a.AppID != "" && a.AppKey != ""
}

// RemotiveConfig contains options for the Remotive job feed (no key required).
type RemotiveConfig struct {
	Enabled bool   `env:"ENABLED"  envDefault:"true"`
	BaseURL string `env:"BASE_URL" envDefault:"https://remotive.com/api/remote-jobs"`
}

// ArbeitnowConfig contains options for the Arbeitnow job feed (no key required).
type ArbeitnowConfig struct {
	Enabled bool   `env:"ENABLED"  envDefault:"true"`
	BaseURL string `env:"BASE_URL" envDefault:"https://www.arbeitnow.com/api/job-board-api"`
}

// USAJobsConfig contains credentials for the USAJobs feed.
// Disabled unless both the API key and contact email are set.
type USAJobsConfig struct {
	Enabled bool   `env:"ENABLED"  envDefault:"true"`
	APIKey  string `env:"API_KEY"`
	Email   string `env:"EMAIL"`
	BaseURL string `env:"BASE_URL" envDefault:"https://data.usajobs.gov/api/search"`
}

// Active returns true when the feed is enabled and credentialed.
func (u USAJobsConfig) Active() bool {
	return u.Enabled && u.APIKey != "" && u.Email != ""
}

// CustomFeedConfig describes an optional generic JSON feed whose fields are
// extracted with JMESPath expressions. This lets operators wire in one extra
// provider without a code change.
type CustomFeedConfig struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	Name    string `env:"NAME"    envDefault:"custom"`
	URL     string `env:"URL"`

	// JMESPath expressions evaluated against the feed response body.
	// ItemsPath selects the listing array; the remaining paths are evaluated
	// per item. Missing paths fall back to normalizer defaults.
	ItemsPath    string `env:"ITEMS_PATH"    envDefault:"jobs"`
	IDPath       string `env:"ID_PATH"       envDefault:"id"`
	TitlePath    string `env:"TITLE_PATH"    envDefault:"title"`
	CompanyPath  string `env:"COMPANY_PATH"  envDefault:"company"`
	LocationPath string `env:"LOCATION_PATH" envDefault:"location"`
	TypePath     string `env:"TYPE_PATH"     envDefault:"type"`
	SalaryPath   string `env:"SALARY_PATH"   envDefault:"salary"`
	IndustryPath string `env:"INDUSTRY_PATH" envDefault:"industry"`
	DescPath     string `env:"DESC_PATH"     envDefault:"description"`
	URLPath      string `env:"URL_PATH"      envDefault:"url"`
	PostedPath   string `env:"POSTED_PATH"   envDefault:"posted_at"`
}

// Active returns true when the feed is enabled and has a URL.
func (c CustomFeedConfig) Active() bool {
	return c.Enabled && c.URL != ""
}

// Expressions returns every configured JMESPath expression for up-front
// validation.
func (c CustomFeedConfig) Expressions() []string {
	return []string{
		c.ItemsPath, c.IDPath, c.TitlePath, c.CompanyPath, c.LocationPath,
		c.TypePath, c.SalaryPath, c.IndustryPath, c.DescPath, c.URLPath,
		c.PostedPath,
	}
}

// ProvidersConfig groups all job feed provider configuration.
type ProvidersConfig struct {
	Adzuna    AdzunaConfig     `envPrefix:"ADZUNA_"`
	Remotive  RemotiveConfig   `envPrefix:"REMOTIVE_"`
	Arbeitnow ArbeitnowConfig  `envPrefix:"ARBEITNOW_"`
	USAJobs   USAJobsConfig    `envPrefix:"USAJOBS_"`
	Custom    CustomFeedConfig `envPrefix:"CUSTOM_FEED_"`

	// FetchTimeout bounds each connector call so one slow provider cannot
	// stall an aggregation pass.
	FetchTimeout time.Duration `env:"PROVIDER_FETCH_TIMEOUT" envDefault:"10s"`

	// FetchLimit is the number of listings requested from each provider
	// per aggregation pass.
	FetchLimit int `env:"PROVIDER_FETCH_LIMIT" envDefault:"100"`
}

// Sanitize applies guardrails to provider configuration values.
func (p *ProvidersConfig) Sanitize() {
	if p.FetchTimeout <= 0 {
		p.FetchTimeout = 10 * time.Second
	}
	if p.FetchLimit < 1 {
		p.FetchLimit = 100
	}
}
