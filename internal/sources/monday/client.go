// Package monday provides the client for the Monday.com GraphQL API:
// board group listing and cursor-paginated item retrieval.
package monday

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/RyoK3N/Calendly-API/internal/transport"
	"github.com/RyoK3N/Calendly-API/pkg/constants"
	"github.com/RyoK3N/Calendly-API/pkg/errors"
	"github.com/RyoK3N/Calendly-API/pkg/logging"
)

// Client calls the Monday.com API on behalf of one API token.
type Client struct {
	url           string
	transport     *transport.Client
	transportOpts []transport.Option
	limit         int
}

// Option configures a Client.
type Option func(*Client)

// WithURL overrides the GraphQL endpoint, useful in tests.
func WithURL(u string) Option {
	return func(c *Client) {
		c.url = u
	}
}

// WithItemsLimit sets the per-page item count.
func WithItemsLimit(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.limit = n
		}
	}
}

// WithTransportOptions forwards options to the underlying transport.
func WithTransportOptions(opts ...transport.Option) Option {
	return func(c *Client) {
		c.transportOpts = opts
	}
}

// New creates a Monday client. The token is required; its absence is a
// configuration failure reported before any network call.
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, errors.NewConfigError("monday", "MONDAY_API_KEY must be set in your environment", errors.ErrAPIKeyRequired)
	}
	c := &Client{
		url:   constants.MondayAPIURL,
		limit: constants.MondayItemsLimit,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		// Monday expects the raw token in the Authorization header.
		c.transport = transport.New(&transport.HeaderAuth{}, token, c.transportOpts...)
	}
	return c, nil
}

// Groups lists the groups of a board.
func (c *Client) Groups(ctx context.Context, boardID string) ([]Group, error) {
	query := fmt.Sprintf(`query { boards(ids: [%s]) { groups { id title } } }`, boardID)

	var payload struct {
		Boards []struct {
			Groups []Group `json:"groups"`
		} `json:"boards"`
	}
	if err := c.query(ctx, query, &payload); err != nil {
		return nil, errors.WrapResource("fetch", "board groups", boardID, err)
	}
	if len(payload.Boards) == 0 {
		return nil, errors.NewNotFoundError("board", boardID)
	}
	return payload.Boards[0].Groups, nil
}

// GroupItems retrieves every item of one board group, following the
// items_page cursor until it runs out. Pages arrive in board order and
// are concatenated as they arrive.
func (c *Client) GroupItems(ctx context.Context, boardID, groupID string) ([]Item, error) {
	page, err := c.firstItemsPage(ctx, boardID, groupID)
	if err != nil {
		return nil, err
	}

	items := page.Items
	for page.Cursor != "" {
		page, err = c.nextItemsPage(ctx, page.Cursor)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}

	logging.Debug().Str("group", groupID).Int("items", len(items)).Msg("Collected board items")
	return items, nil
}

func (c *Client) firstItemsPage(ctx context.Context, boardID, groupID string) (*itemsPage, error) {
	query := fmt.Sprintf(`query {
		boards(ids: [%s]) {
			groups(ids: [%q]) {
				items_page(limit: %d) {
					cursor
					items { id name column_values { id text } }
				}
			}
		}
	}`, boardID, groupID, c.limit)

	var payload struct {
		Boards []struct {
			Groups []struct {
				ItemsPage itemsPage `json:"items_page"`
			} `json:"groups"`
		} `json:"boards"`
	}
	if err := c.query(ctx, query, &payload); err != nil {
		return nil, errors.WrapResource("fetch", "board items", groupID, err)
	}
	if len(payload.Boards) == 0 || len(payload.Boards[0].Groups) == 0 {
		return nil, errors.NewNotFoundError("board group", groupID)
	}
	return &payload.Boards[0].Groups[0].ItemsPage, nil
}

func (c *Client) nextItemsPage(ctx context.Context, cursor string) (*itemsPage, error) {
	query := fmt.Sprintf(`query {
		next_items_page(limit: %d, cursor: %q) {
			cursor
			items { id name column_values { id text } }
		}
	}`, c.limit, cursor)

	var payload struct {
		NextItemsPage itemsPage `json:"next_items_page"`
	}
	if err := c.query(ctx, query, &payload); err != nil {
		return nil, errors.WrapResource("fetch", "board items page", "", err)
	}
	return &payload.NextItemsPage, nil
}

// query posts one GraphQL document and decodes the data payload.
// GraphQL errors arrive with a 200 status and are escalated to
// APIErrors; they are API-contract failures, never retried.
func (c *Client) query(ctx context.Context, query string, out any) error {
	resp, err := c.transport.Post(ctx, c.url, map[string]string{"query": query})
	if err != nil {
		return err
	}

	var envelope graphqlResponse
	if err := transport.DecodeResponse(resp, &envelope); err != nil {
		return err
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, len(envelope.Errors))
		for i, e := range envelope.Errors {
			messages[i] = e.Message
		}
		return &errors.APIError{
			Source:   "monday",
			Endpoint: c.url,
			Message:  strings.Join(messages, "; "),
		}
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return errors.WrapParse("json", "monday response", err)
	}
	return nil
}
