// Package calendly provides the client for the Calendly REST API: user
// and organization lookup, event-type resolution, time-windowed event
// collection, and invitee retrieval.
package calendly

import (
	"context"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/RyoK3N/Calendly-API/internal/transport"
	"github.com/RyoK3N/Calendly-API/pkg/constants"
	"github.com/RyoK3N/Calendly-API/pkg/errors"
	"github.com/RyoK3N/Calendly-API/pkg/logging"
)

// uuidPattern matches a bare Calendly identifier: 36 characters of hex
// digits and hyphens.
var uuidPattern = regexp.MustCompile(`^[0-9a-f-]{36}$`)

// eventStatuses are the status partitions collected for scheduled
// events. An event cannot appear under two statuses at once.
var eventStatuses = []string{"active", "canceled"}

// Client calls the Calendly API on behalf of one personal access token.
type Client struct {
	base          string
	transport     *transport.Client
	transportOpts []transport.Option
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base address, useful in tests.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.base = base
	}
}

// WithTransportOptions forwards options to the underlying transport.
func WithTransportOptions(opts ...transport.Option) Option {
	return func(c *Client) {
		c.transportOpts = opts
	}
}

// New creates a Calendly client. The token is required; its absence is a
// configuration failure reported before any network call.
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, errors.NewConfigError("calendly", "CALENDLY_API_KEY must be set in your environment", errors.ErrAPIKeyRequired)
	}
	c := &Client{base: constants.CalendlyBaseURL}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = transport.New(&transport.BearerAuth{}, token, c.transportOpts...)
	}
	return c, nil
}

// endpoint joins a path onto the API base address.
func (c *Client) endpoint(parts ...string) string {
	joined, err := url.JoinPath(c.base, parts...)
	if err != nil {
		// The base URL is validated at construction; parts are literals.
		return c.base + strings.Join(parts, "/")
	}
	return joined
}

// CurrentUser returns the profile and organization behind the token.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	resp, err := c.transport.Get(ctx, c.endpoint("users", "me"), nil)
	if err != nil {
		return nil, err
	}
	var envelope resource[User]
	if err := transport.DecodeResponse(resp, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Resource, nil
}

// Organization fetches org details by reference URI.
func (c *Client) Organization(ctx context.Context, orgURI string) (*Organization, error) {
	resp, err := c.transport.Get(ctx, orgURI, nil)
	if err != nil {
		return nil, err
	}
	var envelope resource[Organization]
	if err := transport.DecodeResponse(resp, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Resource, nil
}

// EventTypes lists every event type scoped to the organization.
func (c *Client) EventTypes(ctx context.Context, orgURI string) ([]EventType, error) {
	params := url.Values{}
	params.Set("organization", orgURI)
	params.Set("count", strconv.Itoa(constants.CalendlyPageSize))
	return paginate[EventType](ctx, c.transport, c.endpoint("event_types"), params)
}

// EventType locates an event type by full reference URI, bare
// identifier, or slug, in that priority order:
//
//  1. a URI is fetched directly, trusting the caller's scope;
//  2. a 36-character hex identifier is fetched via a constructed address;
//  3. anything else is a slug, matched case-sensitively against the
//     organization's event types.
//
// An unmatched slug resolves to ErrNotFound, never a fuzzy match.
func (c *Client) EventType(ctx context.Context, orgURI, ident string) (*EventType, error) {
	switch {
	case strings.HasPrefix(ident, "https://"):
		return c.eventTypeByURI(ctx, ident)
	case uuidPattern.MatchString(ident):
		return c.eventTypeByURI(ctx, c.endpoint("event_types", ident))
	default:
		return c.eventTypeBySlug(ctx, orgURI, ident)
	}
}

func (c *Client) eventTypeByURI(ctx context.Context, uri string) (*EventType, error) {
	resp, err := c.transport.Get(ctx, uri, nil)
	if err != nil {
		return nil, err
	}
	var envelope resource[EventType]
	if err := transport.DecodeResponse(resp, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Resource, nil
}

func (c *Client) eventTypeBySlug(ctx context.Context, orgURI, slug string) (*EventType, error) {
	eventTypes, err := c.EventTypes(ctx, orgURI)
	if err != nil {
		return nil, err
	}
	for _, et := range eventTypes {
		if et.Slug == slug {
			return &et, nil
		}
	}
	return nil, errors.NewNotFoundError("event type", slug)
}

// ScheduledEvents collects the organization's events with a start time
// in [since, now), one paginated sweep per status partition. Results are
// concatenated without deduplication.
func (c *Client) ScheduledEvents(ctx context.Context, orgURI string, since time.Time) ([]Event, error) {
	var events []Event
	for _, status := range eventStatuses {
		params := url.Values{}
		params.Set("organization", orgURI)
		params.Set("status", status)
		params.Set("min_start_time", since.UTC().Format(time.RFC3339))
		params.Set("count", strconv.Itoa(constants.CalendlyPageSize))

		batch, err := paginate[Event](ctx, c.transport, c.endpoint("scheduled_events"), params)
		if err != nil {
			return nil, errors.WrapResource("fetch", "scheduled events", status, err)
		}
		logging.Debug().Str("status", status).Int("events", len(batch)).Msg("Collected scheduled events")
		events = append(events, batch...)
	}
	return events, nil
}

// Invitees lists every participant booked onto the given event.
func (c *Client) Invitees(ctx context.Context, eventUUID string) ([]Invitee, error) {
	params := url.Values{}
	params.Set("count", strconv.Itoa(constants.CalendlyPageSize))
	return paginate[Invitee](ctx, c.transport, c.endpoint("scheduled_events", eventUUID, "invitees"), params)
}

// Memberships lists the organization's members, with each user profile
// embedded in the membership record.
func (c *Client) Memberships(ctx context.Context, orgURI string) ([]Membership, error) {
	params := url.Values{}
	params.Set("organization", orgURI)
	params.Set("include", "user")
	params.Set("count", strconv.Itoa(constants.CalendlyPageSize))
	return paginate[Membership](ctx, c.transport, c.endpoint("organization_memberships"), params)
}

// EventsForType filters events down to those whose parent type reference
// equals eventTypeURI exactly.
func EventsForType(events []Event, eventTypeURI string) []Event {
	var out []Event
	for _, ev := range events {
		if ev.EventType == eventTypeURI {
			out = append(out, ev)
		}
	}
	return out
}
