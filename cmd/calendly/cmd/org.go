package cmd

import (
	"github.com/spf13/cobra"

	appctx "github.com/RyoK3N/Calendly-API/cmd/calendly/context"
	"github.com/RyoK3N/Calendly-API/internal/cmd/output"
	"github.com/RyoK3N/Calendly-API/internal/sources/calendly"
	"github.com/RyoK3N/Calendly-API/pkg/tabular"
)

// NewOrgCommand creates the org command.
func NewOrgCommand(appCtx appctx.Context) *cobra.Command {
	return &cobra.Command{
		Use:     "org",
		GroupID: "inspect",
		Short:   "Show the current organization and its members",
		Long: `Org prints an overview of the organization the API token belongs to:
name, URI, plan, and timezone, followed by a member list with roles.`,
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
			org, err := client.Organization(ctx, me.CurrentOrganization)
			if err != nil {
				return err
			}
			members, err := client.Memberships(ctx, org.URI)
			if err != nil {
				return err
			}

			formatter := output.NewFormatter(output.DetectFormat(appCtx.OutputFormat()))
			details := output.Data{
				Headers: []string{"Property", "Value"},
				Rows: [][]string{
					{"Name", org.Name},
					{"URI", org.URI},
					{"Plan", org.SubscriptionType},
					{"Timezone", org.Timezone},
				},
			}
			if err := formatter.Format(c.OutOrStdout(), details); err != nil {
				return err
			}

			ds := tabular.New(calendly.MemberFieldMap.Columns()...)
			for _, m := range members {
				ds.Append(tabular.Flatten(calendly.MemberRecord(m), calendly.MemberFieldMap))
			}
			return formatter.Format(c.OutOrStdout(), output.Data{
				Headers: output.Titled(ds.Columns),
				Rows:    ds.Head(ds.Len()),
			})
		},
	}
}
