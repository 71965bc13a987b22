package calendly

import (
	"github.com/agentstation/utc"

	"github.com/RyoK3N/Calendly-API/pkg/tabular"
)

// User is the profile behind the personal access token.
type User struct {
	URI                 string `json:"uri"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	CurrentOrganization string `json:"current_organization"`
}

// Organization describes the org a token is scoped to.
type Organization struct {
	URI              string `json:"uri"`
	Name             string `json:"name"`
	SubscriptionType string `json:"subscription_type"`
	Timezone         string `json:"timezone"`
}

// EventType is a bookable meeting template within an organization.
type EventType struct {
	URI      string `json:"uri"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Duration int    `json:"duration"`
}

// Event is one scheduled occurrence of an event type. EventType holds
// the parent type's reference URI; filtering by type is exact equality
// on that field.
type Event struct {
	URI       string   `json:"uri"`
	Name      string   `json:"name"`
	Status    string   `json:"status"`
	StartTime utc.Time `json:"start_time"`
	EventType string   `json:"event_type"`
}

// UUID returns the event's stable identifier, the last path segment of
// its reference URI.
func (e Event) UUID() string {
	return tabular.LastPathSegment(e.URI)
}

// Invitee is a participant booked onto a scheduled event.
type Invitee struct {
	URI       string   `json:"uri"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Status    string   `json:"status"`
	CreatedAt utc.Time `json:"created_at"`
}

// Membership ties a user to an organization with a role. User may be nil
// for deleted or inaccessible accounts.
type Membership struct {
	URI          string `json:"uri"`
	Role         string `json:"role"`
	Organization string `json:"organization"`
	User         *User  `json:"user"`
}

// resource is the single-entity response envelope.
type resource[T any] struct {
	Resource T `json:"resource"`
}
