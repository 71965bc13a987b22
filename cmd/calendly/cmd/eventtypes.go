package cmd

import (
	"strconv"

	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	appctx "github.com/RyoK3N/Calendly-API/cmd/calendly/context"
	"github.com/RyoK3N/Calendly-API/internal/cmd/output"
	"github.com/RyoK3N/Calendly-API/pkg/tabular"
)

// NewEventTypesCommand creates the event-types command.
func NewEventTypesCommand(appCtx appctx.Context) *cobra.Command {
	return &cobra.Command{
		Use:     "event-types",
		GroupID: "inspect",
		Short:   "List the organization's event types",
		Long: `Event-types lists every event type of the current organization with
its slug and duration. Slugs are what the invitees command resolves.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			client, err := appCtx.Calendly()
			if err != nil {
				return err
			}
			ctx := c.Context()

			me, err := client.CurrentUser(ctx)
			if err != nil {
				return err
			}
			eventTypes, err := client.EventTypes(ctx, me.CurrentOrganization)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(eventTypes))
			for _, et := range eventTypes {
				rows = append(rows, []string{
					et.Name,
					et.Slug,
					strconv.Itoa(et.Duration),
					tabular.LastPathSegment(et.URI),
				})
			}

			formatter := output.NewFormatter(output.DetectFormat(appCtx.OutputFormat()))
			return formatter.Format(c.OutOrStdout(), output.Data{
				Headers:   []string{"Name", "Slug", "Minutes", "UUID"},
				Rows:      rows,
				Alignment: []tw.Align{tw.AlignLeft, tw.AlignLeft, tw.AlignRight, tw.AlignLeft},
			})
		},
	}
}
