package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/RyoK3N/Calendly-API/cmd/calendly/cmd"
)

// Execute runs the calendly CLI with the given arguments. This is the
// main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all
// subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "calendly",
		Short:   "Calendly and Monday.com data extraction CLI",
		Version: a.version,
		Long: `Calendly extracts scheduling and sales pipeline data from the
Calendly and Monday.com APIs into flat CSV exports, and reconciles the
two by invitee email.

API tokens are read from CALENDLY_API_KEY and MONDAY_API_KEY, either
from the environment or a .env file in the working directory.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "extract",
		Title: "Extraction Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "inspect",
		Title: "Inspection Commands:",
	})

	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.calendly.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().BoolVar(&a.config.NoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVarP(&a.config.Format, "format", "o", "", "output format: table, json, yaml")
	rootCmd.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("calendly {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand runs before any command. It folds parsed flag values
// back into the config and rebuilds the logger accordingly.
func (a *App) setupCommand(c *cobra.Command, _ []string) error {
	verbose := mustGetBool(c, "verbose")
	quiet := mustGetBool(c, "quiet")
	noColor := mustGetBool(c, "no-color")
	format := mustGetString(c, "format")
	logLevel := mustGetString(c, "log-level")

	a.config.UpdateFromFlags(verbose, quiet, noColor, format, logLevel)

	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// registerCommands wires all subcommands to the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Extraction commands
	rootCmd.AddCommand(cmd.NewInviteesCommand(a))
	rootCmd.AddCommand(cmd.NewMondayCommand(a))
	rootCmd.AddCommand(cmd.NewMatchCommand(a))

	// Inspection commands
	rootCmd.AddCommand(cmd.NewOrgCommand(a))
	rootCmd.AddCommand(cmd.NewEventTypesCommand(a))

	// Utility commands
	rootCmd.AddCommand(cmd.NewVersionCommand(a))
}

// ExitOnError prints an error to stderr and exits with status 1. It is
// meant for top-level error handling in main.go.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag does
// not exist. Only for flags defined in this package.
func mustGetBool(c *cobra.Command, name string) bool {
	val, err := c.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag
// does not exist. Only for flags defined in this package.
func mustGetString(c *cobra.Command, name string) string {
	val, err := c.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
