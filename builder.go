package pmclient

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Nikhilraj155/project-managment/session"
)

// Builder assembles a [Client]. Configure, then call Build once; the resulting
// Client is immutable.
type Builder struct {
	config     Config
	httpClient *http.Client
	creds      session.Credentials
	logger     zerolog.Logger

	built bool
}

// New returns a Builder loaded with the default configuration.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
		logger: zerolog.Nop(),
	}
}

// WithConfig replaces the configuration. Zero-valued fields fall back to their
// defaults at Build.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithHTTPClient supplies the underlying HTTP client. Build installs a
// redirect-stopping policy on a copy; the caller's client is not mutated.
func (b *Builder) WithHTTPClient(hc *http.Client) *Builder {
	b.httpClient = hc
	return b
}

// WithCredentials supplies the persisted credential backend. Defaults to a
// file under $HOME/.pmcli.
func (b *Builder) WithCredentials(creds session.Credentials) *Builder {
	b.creds = creds
	return b
}

// WithLogger supplies the logger shared by the gateway and the session store.
func (b *Builder) WithLogger(logger zerolog.Logger) *Builder {
	b.logger = logger
	return b
}

// Build validates the configuration and assembles the Client. The base URL is
// resolved here, once; it never changes per request.
func (b *Builder) Build() (*Client, error) {
	if b.built {
		return nil, errors.New("builder already consumed")
	}

	cfg := b.config
	defaults := defaultConfig()
	if cfg.Environment == "" {
		cfg.Environment = defaults.Environment
	}
	if cfg.DevBaseURL == "" {
		cfg.DevBaseURL = defaults.DevBaseURL
	}
	if cfg.ProdBaseURL == "" {
		cfg.ProdBaseURL = defaults.ProdBaseURL
	}
	if cfg.DevOrigins == nil {
		cfg.DevOrigins = defaults.DevOrigins
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaults.UserAgent
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	creds := b.creds
	if creds == nil {
		path, err := session.DefaultCredentialPath()
		if err != nil {
			return nil, err
		}
		creds = session.NewFileCredentials(path)
	}

	// The gateway owns redirect handling: the transport must surface 3xx
	// responses instead of following them (and silently dropping the bearer).
	var hc http.Client
	if b.httpClient != nil {
		hc = *b.httpClient
	}
	hc.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	if cfg.Timeout > 0 {
		hc.Timeout = cfg.Timeout
	}

	logger := b.logger.With().Str("component", "gateway").Logger()

	b.built = true
	return &Client{
		config:   cfg,
		base:     cfg.BaseURL(),
		http:     &hc,
		creds:    creds,
		sessions: session.NewStore(creds, b.logger),
		logger:   logger,
		metrics:  newMetrics(),
	}, nil
}
