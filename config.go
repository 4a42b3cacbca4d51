package pmclient

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Environment selects which base URL the gateway is built against. The
// selection happens once at Build, never per request.
type Environment string

const (
	// EnvDevelopment targets the local backend (or a same-origin proxy in
	// front of it).
	EnvDevelopment Environment = "development"
	// EnvProduction targets the deployed backend origin.
	EnvProduction Environment = "production"
)

// Config carries everything the gateway needs at construction time.
type Config struct {
	// Environment picks ProdBaseURL or DevBaseURL. Defaults to development.
	Environment Environment

	// DevBaseURL is the development backend origin. Defaults to
	// http://localhost:8000.
	DevBaseURL string

	// ProdBaseURL is the deployed backend origin. Defaults to the Render
	// deployment the original front-end shipped with.
	ProdBaseURL string

	// DevOrigins are absolute origins that may leak into caller-constructed
	// URLs or redirect Locations from stale call sites; the gateway rewrites
	// them onto the configured base URL. Defaults to the local backend
	// origins.
	DevOrigins []string

	// UserAgent is sent on every request.
	UserAgent string

	// Timeout bounds each HTTP call. Zero keeps the transport default, which
	// means a hung backend hangs the call.
	Timeout time.Duration
}

const (
	defaultDevBaseURL  = "http://localhost:8000"
	defaultProdBaseURL = "https://project-managment-mj1a.onrender.com"
	defaultUserAgent   = "pmclient/1.0"
)

func defaultConfig() Config {
	return Config{
		Environment: EnvDevelopment,
		DevBaseURL:  defaultDevBaseURL,
		ProdBaseURL: defaultProdBaseURL,
		DevOrigins: []string{
			"http://localhost:8000",
			"http://127.0.0.1:8000",
		},
		UserAgent: defaultUserAgent,
	}
}

// Validate rejects configurations the gateway cannot be built from.
func (c Config) Validate() error {
	switch c.Environment {
	case EnvDevelopment, EnvProduction, "":
	default:
		return fmt.Errorf("unknown environment %q", c.Environment)
	}

	base := c.BaseURL()
	if strings.TrimSpace(base) == "" {
		return errors.New("base URL is empty")
	}
	u, err := url.Parse(base)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", base, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base URL %q must be http or https", base)
	}
	if u.Host == "" {
		return fmt.Errorf("base URL %q has no host", base)
	}

	if c.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}

	for _, origin := range c.DevOrigins {
		if _, err := url.Parse(origin); err != nil {
			return fmt.Errorf("invalid dev origin %q: %w", origin, err)
		}
	}
	return nil
}

// BaseURL resolves the backend origin for the configured environment.
func (c Config) BaseURL() string {
	if c.Environment == EnvProduction {
		return strings.TrimRight(c.ProdBaseURL, "/")
	}
	return strings.TrimRight(c.DevBaseURL, "/")
}
