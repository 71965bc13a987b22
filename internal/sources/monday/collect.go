package monday

import (
	"context"

	"github.com/RyoK3N/Calendly-API/pkg/logging"
	"github.com/RyoK3N/Calendly-API/pkg/tabular"
)

// Collect sweeps every group of the mapping in order and flattens the
// items into one dataset tagged with the group's stage. Groups missing
// from the board are logged and skipped rather than failing the sweep.
func Collect(ctx context.Context, client *Client, boardID string, mapping *Mapping) (*tabular.Dataset, error) {
	groups, err := client.Groups(ctx, boardID)
	if err != nil {
		return nil, err
	}

	known := make(map[string]Group, len(groups))
	for _, g := range groups {
		known[g.ID] = g
	}

	out := tabular.New(mapping.ExportColumns()...)
	for _, gm := range mapping.Groups {
		group, ok := known[gm.ID]
		if !ok {
			logging.Warn().
				Str("group", gm.ID).
				Str("board", boardID).
				Msg("Mapped group not found on board, skipping")
			continue
		}

		logging.Info().
			Str("group", group.Title).
			Str("stage", gm.Stage).
			Msg("Fetching board group")

		items, err := client.GroupItems(ctx, boardID, gm.ID)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			out.Append(mapping.ItemRecord(item, gm.Stage))
		}
	}
	return out, nil
}
