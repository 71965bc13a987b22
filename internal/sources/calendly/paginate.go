package calendly

import (
	"context"
	"net/url"

	"github.com/RyoK3N/Calendly-API/internal/transport"
)

// page is one unit of a paginated collection response. An absent
// next_page cursor terminates pagination.
type page[T any] struct {
	Collection []T        `json:"collection"`
	Pagination pagination `json:"pagination"`
}

type pagination struct {
	NextPage string `json:"next_page"`
}

// paginate walks a collection endpoint until the cursor runs out,
// returning every page's records concatenated in arrival order. The
// query parameters apply to the first call only; each cursor is a fully
// qualified address that already encodes them.
func paginate[T any](ctx context.Context, t *transport.Client, rawurl string, params url.Values) ([]T, error) {
	var out []T
	next := rawurl
	for next != "" {
		resp, err := t.Get(ctx, next, params)
		if err != nil {
			return nil, err
		}
		var pg page[T]
		if err := transport.DecodeResponse(resp, &pg); err != nil {
			return nil, err
		}
		out = append(out, pg.Collection...)
		next = pg.Pagination.NextPage
		params = nil
	}
	return out, nil
}
