package cmd

import (
	"runtime"

	"github.com/spf13/cobra"

	appctx "github.com/RyoK3N/Calendly-API/cmd/calendly/context"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(appCtx appctx.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(c *cobra.Command, _ []string) {
			c.Printf("calendly %s\n", appCtx.Version())
			c.Printf("  commit:     %s\n", appCtx.Commit())
			c.Printf("  built:      %s\n", appCtx.Date())
			c.Printf("  built by:   %s\n", appCtx.BuiltBy())
			c.Printf("  go version: %s\n", runtime.Version())
			c.Printf("  platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
