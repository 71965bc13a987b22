package monday

import "encoding/json"

// Group is a named partition of a board, one per pipeline stage.
type Group struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Item is one board row, with its column values as id/text pairs.
type Item struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	ColumnValues []ColumnValue `json:"column_values"`
}

// ColumnValue is the rendered text of one board cell.
type ColumnValue struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// itemsPage is one unit of cursor-paginated item retrieval. An empty
// cursor terminates pagination.
type itemsPage struct {
	Cursor string `json:"cursor"`
	Items  []Item `json:"items"`
}

// graphqlResponse is the GraphQL-over-HTTP envelope. Errors arrive with
// a 200 status, so they are checked explicitly after decoding.
type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

type graphqlError struct {
	Message string `json:"message"`
}
