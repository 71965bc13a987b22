// Package context provides the application context interface for
// calendly commands.
//
// The Context interface is the contract between the application layer
// and command implementations, enabling dependency injection and
// testability. Commands accept this interface rather than the concrete
// App type, so tests can substitute a MockContext.
//
// Usage in Commands:
//
//	import (
//	    "github.com/spf13/cobra"
//	    appctx "github.com/RyoK3N/Calendly-API/cmd/calendly/context"
//	)
//
//	func NewCommand(appCtx appctx.Context) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            client, err := appCtx.Calendly()
//	            if err != nil {
//	                return err
//	            }
//	            // ... use client with cmd.Context()
//	            return nil
//	        },
//	    }
//	}
package context

import (
	"github.com/rs/zerolog"

	"github.com/RyoK3N/Calendly-API/internal/sources/calendly"
	"github.com/RyoK3N/Calendly-API/internal/sources/monday"
)

// Context provides the application dependencies that commands need.
// The App struct from cmd/calendly/app implements this interface.
//
// Thread Safety: all methods must be safe for concurrent access.
type Context interface {
	// Calendly returns a Calendly API client. Without options the
	// default cached instance is returned (lazy-initialized); with
	// options a fresh instance is built for this call.
	Calendly(opts ...calendly.Option) (*calendly.Client, error)

	// Monday returns a Monday.com API client, cached or custom under
	// the same rules as Calendly.
	Monday(opts ...monday.Option) (*monday.Client, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json,
	// yaml).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
