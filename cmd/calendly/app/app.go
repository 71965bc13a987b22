// Package app provides the application context and dependency
// management for the calendly CLI. It centralizes configuration,
// logging, and the vendor API clients behind one struct that commands
// receive through the context interface.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	cmdcontext "github.com/RyoK3N/Calendly-API/cmd/calendly/context"
	"github.com/RyoK3N/Calendly-API/internal/config"
	"github.com/RyoK3N/Calendly-API/internal/sources/calendly"
	"github.com/RyoK3N/Calendly-API/internal/sources/monday"
	"github.com/RyoK3N/Calendly-API/internal/transport"
	"github.com/RyoK3N/Calendly-API/pkg/errors"
)

// App holds the calendly application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Vendor clients (lazy-initialized, cached)
	mu       sync.Mutex
	calendly *calendly.Client
	monday   *monday.Client
}

// Ensure App implements the command context interface at compile time.
var _ cmdcontext.Context = (*App)(nil)

// New creates a new App with the given version information. The app
// loads configuration from the environment and builds its logger;
// vendor clients are created lazily on first use.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	cfg, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = cfg

	logger := NewLogger(cfg)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string { return a.version }

// Commit returns the git commit hash.
func (a *App) Commit() string { return a.commit }

// Date returns the build date.
func (a *App) Date() string { return a.date }

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string { return a.builtBy }

// Config returns the application configuration.
func (a *App) Config() *Config { return a.config }

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger { return a.logger }

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string { return a.config.Format }

// Calendly returns the Calendly client. Without options the cached
// instance is returned, created on first use; with options a fresh
// instance is built and not cached.
func (a *App) Calendly(opts ...calendly.Option) (*calendly.Client, error) {
	key, err := config.CalendlyAPIKey()
	if err != nil {
		return nil, err
	}

	if len(opts) > 0 {
		return calendly.New(key, append(a.calendlyOptions(), opts...)...)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.calendly != nil {
		return a.calendly, nil
	}

	client, err := calendly.New(key, a.calendlyOptions()...)
	if err != nil {
		return nil, err
	}
	a.calendly = client
	return client, nil
}

// Monday returns the Monday.com client under the same caching rules as
// Calendly.
func (a *App) Monday(opts ...monday.Option) (*monday.Client, error) {
	key, err := config.MondayAPIKey()
	if err != nil {
		return nil, err
	}

	if len(opts) > 0 {
		return monday.New(key, append(a.mondayOptions(), opts...)...)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.monday != nil {
		return a.monday, nil
	}

	client, err := monday.New(key, a.mondayOptions()...)
	if err != nil {
		return nil, err
	}
	a.monday = client
	return client, nil
}

func (a *App) calendlyOptions() []calendly.Option {
	return []calendly.Option{
		calendly.WithTransportOptions(transport.WithTimeout(a.config.HTTPTimeout)),
	}
}

func (a *App) mondayOptions() []monday.Option {
	return []monday.Option{
		monday.WithTransportOptions(transport.WithTimeout(a.config.HTTPTimeout)),
	}
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(cfg *Config) Option {
	return func(a *App) error {
		a.config = cfg
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
