package config

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// BaseURL is the externally visible base URL of the application
	// (e.g., "https://jobs.example.com"). Internal listings carry no apply
	// URL of their own; candidates apply through this deployment.
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`

	// CookieDomain is the domain for session cookies.
	// Leave empty to use the request domain.
	CookieDomain string `env:"APP_COOKIE_DOMAIN" envDefault:""`

	// MaxPageSize caps the number of listings returned per page.
	MaxPageSize int `env:"HTTP_MAX_PAGE_SIZE" envDefault:"100"`

	// DefaultPageSize is used when the caller omits the limit parameter.
	DefaultPageSize int `env:"HTTP_DEFAULT_PAGE_SIZE" envDefault:"50"`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	if h.MaxPageSize < 1 {
		h.MaxPageSize = 100
	}
	if h.DefaultPageSize < 1 {
		h.DefaultPageSize = 50
	}
	if h.DefaultPageSize > h.MaxPageSize {
		h.DefaultPageSize = h.MaxPageSize
	}
}
