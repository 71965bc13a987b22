package monday

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/RyoK3N/Calendly-API/pkg/errors"
	"github.com/RyoK3N/Calendly-API/pkg/tabular"
)

// ColumnMapping renames one board column ID to an export column title.
type ColumnMapping struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

// GroupMapping binds one board group to the pipeline stage its items
// are tagged with in the export.
type GroupMapping struct {
	ID    string `json:"id" yaml:"id"`
	Stage string `json:"stage" yaml:"stage"`
}

// Mapping describes how a board's groups and columns translate into the
// flat export schema. Order is significant: columns are emitted in the
// order listed and groups are fetched in the order listed.
type Mapping struct {
	Columns []ColumnMapping `json:"columns" yaml:"columns"`
	Groups  []GroupMapping  `json:"groups" yaml:"groups"`
}

// DefaultMapping returns the mapping for the sales pipeline board.
func DefaultMapping() *Mapping {
	return &Mapping{
		Columns: []ColumnMapping{
			{ID: "name", Title: "Name"},
			{ID: "auto_number__1", Title: "Auto number"},
			{ID: "person", Title: "Owner"},
			{ID: "last_updated__1", Title: "Last updated"},
			{ID: "link__1", Title: "Linkedin"},
			{ID: "phone__1", Title: "Phone"},
			{ID: "email__1", Title: "Email"},
			{ID: "text7__1", Title: "Company"},
			{ID: "date4", Title: "Sales Call Date"},
			{ID: "status9__1", Title: "Follow Up Tracker"},
			{ID: "notes__1", Title: "Notes"},
			{ID: "interested_in__1", Title: "Interested In"},
			{ID: "status4__1", Title: "Plan Type"},
			{ID: "numbers__1", Title: "Deal Value"},
			{ID: "status6__1", Title: "Email Template #1"},
			{ID: "dup__of_email_template__1", Title: "Email Template #2"},
			{ID: "status__1", Title: "Deal Status"},
			{ID: "status2__1", Title: "Send Panda Doc?"},
			{ID: "utm_source__1", Title: "UTM Source"},
			{ID: "date__1", Title: "Deal Status Date"},
			{ID: "utm_campaign__1", Title: "UTM Campaign"},
			{ID: "utm_medium__1", Title: "UTM Medium"},
			{ID: "utm_content__1", Title: "UTM Content"},
			{ID: "link3__1", Title: "UTM LINK"},
			{ID: "lead_source8__1", Title: "Lead Source"},
			{ID: "color__1", Title: "Channel FOR FUNNEL METRICS"},
			{ID: "subitems__1", Title: "Subitems"},
			{ID: "date5__1", Title: "Date Created"},
		},
		Groups: []GroupMapping{
			{ID: "topics", Stage: "scheduled"},
			{ID: "new_group34578__1", Stage: "unqualified"},
			{ID: "new_group27351__1", Stage: "won"},
			{ID: "new_group54376__1", Stage: "cancelled"},
			{ID: "new_group64021__1", Stage: "noshow"},
			{ID: "new_group65903__1", Stage: "proposal"},
			{ID: "new_group62617__1", Stage: "lost"},
		},
	}
}

// LoadMapping reads a mapping from a YAML file, for boards whose layout
// differs from the default.
func LoadMapping(path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	var m Mapping
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	if len(m.Groups) == 0 {
		return nil, errors.NewValidationError("groups", "", "mapping must list at least one group")
	}
	return &m, nil
}

// ExportColumns returns the column order of the flat export: the item
// identity columns, the mapped board columns, then the stage tag.
func (m *Mapping) ExportColumns() []string {
	cols := make([]string, 0, len(m.Columns)+3)
	cols = append(cols, "Item ID", "Item Name")
	for _, c := range m.Columns {
		cols = append(cols, c.Title)
	}
	return append(cols, "Group")
}

// ItemRecord flattens one board item into a row under the mapping's
// column titles. Columns absent from the item render as empty cells.
func (m *Mapping) ItemRecord(item Item, stage string) tabular.Row {
	values := make(map[string]string, len(item.ColumnValues))
	for _, cv := range item.ColumnValues {
		values[cv.ID] = cv.Text
	}

	row := tabular.Row{
		"Item ID":   item.ID,
		"Item Name": item.Name,
		"Group":     stage,
	}
	for _, c := range m.Columns {
		row[c.Title] = values[c.ID]
	}
	return row
}
