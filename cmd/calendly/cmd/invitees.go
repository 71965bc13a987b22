package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/agentstation/utc"
	"github.com/spf13/cobra"

	appctx "github.com/RyoK3N/Calendly-API/cmd/calendly/context"
	"github.com/RyoK3N/Calendly-API/internal/sources/calendly"
	"github.com/RyoK3N/Calendly-API/pkg/constants"
	"github.com/RyoK3N/Calendly-API/pkg/tabular"
)

// NewInviteesCommand creates the invitees command.
func NewInviteesCommand(appCtx appctx.Context) *cobra.Command {
	var (
		slug      string
		uuid      string
		days      int
		outputDir string
	)

	c := &cobra.Command{
		Use:     "invitees [event-type]",
		GroupID: "extract",
		Short:   "Download invitees for one event type",
		Long: `Invitees resolves an event type by slug, UUID, or full URI, collects
its scheduled events (active and canceled) over the lookback window,
and exports every invitee to a CSV file.

The positional argument takes precedence over --uuid, which takes
precedence over --slug.`,
		Example: `  calendly invitees                                    # default slug
  calendly invitees discovery-call                     # by slug
  calendly invitees --uuid 0c91f3b3-89bc-4a7a-b4e6-00b0f27b2c10
  calendly invitees --days 90 --output-dir ./exports`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ident := slug
			if uuid != "" {
				ident = uuid
			}
			if len(args) > 0 {
				ident = args[0]
			}

			client, err := appCtx.Calendly()
			if err != nil {
				return err
			}
			ctx := c.Context()
			logger := appCtx.Logger()

			me, err := client.CurrentUser(ctx)
			if err != nil {
				return err
			}

			eventType, err := client.EventType(ctx, me.CurrentOrganization, ident)
			if err != nil {
				return err
			}
			logger.Info().
				Str("event_type", eventType.Name).
				Str("slug", eventType.Slug).
				Msg("Resolved event type")

			since := utc.Now().AddDate(0, 0, -days)
			events, err := client.ScheduledEvents(ctx, me.CurrentOrganization, since)
			if err != nil {
				return err
			}
			matched := calendly.EventsForType(events, eventType.URI)
			logger.Info().
				Int("events", len(matched)).
				Int("days", days).
				Msg("Collected scheduled events")

			ds := tabular.New(calendly.InviteeFieldMap.Columns()...)
			for _, ev := range matched {
				invitees, err := client.Invitees(ctx, ev.UUID())
				if err != nil {
					return err
				}
				for _, iv := range invitees {
					ds.Append(tabular.Flatten(calendly.InviteeRecord(ev, iv), calendly.InviteeFieldMap))
				}
			}

			path := filepath.Join(outputDir, fmt.Sprintf("invitees_%s.csv", exportName(eventType)))
			if err := ds.SaveCSV(path); err != nil {
				return err
			}
			logger.Info().
				Str("path", path).
				Int("rows", ds.Len()).
				Msg("Saved invitee export")

			return preview(c, appCtx, ds)
		},
	}

	c.Flags().StringVar(&slug, "slug", constants.DefaultEventTypeSlug, "event type slug to resolve")
	c.Flags().StringVar(&uuid, "uuid", "", "event type UUID or URI (overrides --slug)")
	c.Flags().IntVar(&days, "days", constants.DefaultLookbackDays, "lookback window in days for scheduled events")
	c.Flags().StringVar(&outputDir, "output-dir", constants.DefaultDownloadDir, "directory for the CSV export")

	return c
}

// exportName derives the filename stem for an event type export.
func exportName(eventType *calendly.EventType) string {
	if eventType.Slug != "" {
		return eventType.Slug
	}
	return tabular.LastPathSegment(eventType.URI)
}
