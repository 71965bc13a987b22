package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/agentstation/utc"
	"github.com/spf13/cobra"

	appctx "github.com/RyoK3N/Calendly-API/cmd/calendly/context"
	"github.com/RyoK3N/Calendly-API/pkg/constants"
	"github.com/RyoK3N/Calendly-API/pkg/reconcile"
	"github.com/RyoK3N/Calendly-API/pkg/tabular"
)

// NewMatchCommand creates the match command.
func NewMatchCommand(appCtx appctx.Context) *cobra.Command {
	var (
		mondayPath    string
		calendlyPaths []string
		startDate     string
		endDate       string
		calendlyCol   string
		mondayCol     string
		outputDir     string
	)

	c := &cobra.Command{
		Use:     "match",
		GroupID: "extract",
		Short:   "Reconcile Calendly invitees with the Monday.com board by email",
		Long: `Match inner-joins previously exported CSV files on invitee email.

The Calendly side is the concatenation of one or more invitee exports;
the Monday side is one board export. Both sides may be restricted to a
date window (inclusive on both ends) before the join. Email comparison
is exact, so case or whitespace differences between the two systems do
not match.`,
		Example: `  calendly match --monday Monday_Data_20250625_024626.csv \
    --calendly invitees_discovery-call.csv \
    --calendly invitees_discovery-call-emea.csv \
    --start 2025-06-01 --end 2025-06-25`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			right, err := tabular.LoadCSV(mondayPath)
			if err != nil {
				return err
			}

			sides := make([]*tabular.Dataset, 0, len(calendlyPaths))
			for _, path := range calendlyPaths {
				ds, err := tabular.LoadCSV(path)
				if err != nil {
					return err
				}
				sides = append(sides, ds)
			}
			left := tabular.Concat(sides...)

			opts := []reconcile.Option{
				reconcile.WithJoinKeys("invitee_email", "Email"),
			}
			if startDate != "" || endDate != "" {
				window, err := parseWindow(startDate, endDate)
				if err != nil {
					return err
				}
				opts = append(opts,
					reconcile.WithLeftFilter(tabular.DateRange{Column: calendlyCol, Start: window.start, End: window.end}),
					reconcile.WithRightFilter(tabular.DateRange{Column: mondayCol, Start: window.start, End: window.end}),
				)
			}

			result, err := reconcile.New(opts...).Reconcile(left, right)
			if err != nil {
				return err
			}
			appCtx.Logger().Info().Msg(result.Summary())

			name := fmt.Sprintf("df_matched_emails_%s.csv", utc.Now().Format(constants.TimestampFormat))
			path := filepath.Join(outputDir, name)
			if err := result.Matched.SaveCSV(path); err != nil {
				return err
			}
			appCtx.Logger().Info().
				Str("path", path).
				Int("rows", result.Matched.Len()).
				Msg("Saved reconciliation export")

			return preview(c, appCtx, result.Matched)
		},
	}

	c.Flags().StringVar(&mondayPath, "monday", "", "Monday.com board export CSV")
	c.Flags().StringArrayVar(&calendlyPaths, "calendly", nil, "Calendly invitee export CSV (repeatable)")
	c.Flags().StringVar(&startDate, "start", "", "window start date, e.g. 2025-06-01")
	c.Flags().StringVar(&endDate, "end", "", "window end date, e.g. 2025-06-25")
	c.Flags().StringVar(&calendlyCol, "calendly-date-column", "event_start", "Calendly column the window applies to")
	c.Flags().StringVar(&mondayCol, "monday-date-column", "Date Created", "Monday column the window applies to")
	c.Flags().StringVar(&outputDir, "output-dir", constants.DefaultMatchDir, "directory for the CSV export")

	_ = c.MarkFlagRequired("monday")
	_ = c.MarkFlagRequired("calendly")

	return c
}

type window struct {
	start time.Time
	end   time.Time
}

// parseWindow parses the optional window bounds; a blank bound stays
// open.
func parseWindow(start, end string) (window, error) {
	var w window
	var err error
	if start != "" {
		if w.start, err = tabular.ParseDate(start); err != nil {
			return w, err
		}
	}
	if end != "" {
		if w.end, err = tabular.ParseDate(end); err != nil {
			return w, err
		}
	}
	return w, nil
}
