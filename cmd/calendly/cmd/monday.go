package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/agentstation/utc"
	"github.com/spf13/cobra"

	appctx "github.com/RyoK3N/Calendly-API/cmd/calendly/context"
	"github.com/RyoK3N/Calendly-API/internal/sources/monday"
	"github.com/RyoK3N/Calendly-API/pkg/constants"
)

// NewMondayCommand creates the monday command.
func NewMondayCommand(appCtx appctx.Context) *cobra.Command {
	var (
		boardID     string
		limit       int
		mappingPath string
		outputDir   string
	)

	c := &cobra.Command{
		Use:     "monday",
		GroupID: "extract",
		Short:   "Download the sales pipeline board from Monday.com",
		Long: `Monday fetches every mapped group of the sales pipeline board and
flattens the items into one timestamped CSV export. Each row is tagged
with the pipeline stage of its group.

The board layout (group and column mapping) defaults to the sales
pipeline board; pass --mapping to supply a YAML file for a different
board.`,
		Example: `  calendly monday
  calendly monday --board 1234567890 --mapping board.yaml
  calendly monday --limit 100 --output-dir ./exports`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			mapping := monday.DefaultMapping()
			if mappingPath != "" {
				var err error
				mapping, err = monday.LoadMapping(mappingPath)
				if err != nil {
					return err
				}
			}

			client, err := appCtx.Monday(monday.WithItemsLimit(limit))
			if err != nil {
				return err
			}

			ds, err := monday.Collect(c.Context(), client, boardID, mapping)
			if err != nil {
				return err
			}

			name := fmt.Sprintf("Monday_Data_%s.csv", utc.Now().Format(constants.TimestampFormat))
			path := filepath.Join(outputDir, name)
			if err := ds.SaveCSV(path); err != nil {
				return err
			}
			appCtx.Logger().Info().
				Str("path", path).
				Int("rows", ds.Len()).
				Str("board", boardID).
				Msg("Saved board export")

			return preview(c, appCtx, ds)
		},
	}

	c.Flags().StringVar(&boardID, "board", constants.DefaultMondayBoardID, "board ID to fetch")
	c.Flags().IntVar(&limit, "limit", constants.MondayItemsLimit, "items per page")
	c.Flags().StringVar(&mappingPath, "mapping", "", "YAML file overriding the board group and column mapping")
	c.Flags().StringVar(&outputDir, "output-dir", constants.DefaultMondayDir, "directory for the CSV export")

	return c
}
