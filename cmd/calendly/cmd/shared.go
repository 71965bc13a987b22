// Package cmd implements the calendly CLI commands. Commands receive
// their dependencies through the context.Context interface so they can
// be tested against a MockContext.
package cmd

import (
	"github.com/spf13/cobra"

	appctx "github.com/RyoK3N/Calendly-API/cmd/calendly/context"
	"github.com/RyoK3N/Calendly-API/internal/cmd/output"
	"github.com/RyoK3N/Calendly-API/pkg/tabular"
)

// previewRows bounds the post-extraction preview.
const previewRows = 5

// preview renders the first few rows of a dataset in the configured
// output format. Empty datasets render nothing.
func preview(c *cobra.Command, appCtx appctx.Context, ds *tabular.Dataset) error {
	if ds.Len() == 0 {
		return nil
	}
	formatter := output.NewFormatter(output.DetectFormat(appCtx.OutputFormat()))
	return formatter.Format(c.OutOrStdout(), output.Data{
		Headers: output.Titled(ds.Columns),
		Rows:    ds.Head(previewRows),
	})
}
