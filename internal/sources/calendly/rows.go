package calendly

import (
	"github.com/RyoK3N/Calendly-API/pkg/tabular"
)

// InviteeFieldMap projects an invitee record, with its event context,
// onto the export columns. Reference URIs are reduced to their trailing
// identifiers.
var InviteeFieldMap = tabular.FieldMap{
	{Source: "event", Column: "event_uuid", Ref: true},
	{Source: "event_start", Column: "event_start"},
	{Source: "status", Column: "status"},
	{Source: "uri", Column: "invitee_uuid", Ref: true},
	{Source: "name", Column: "invitee_name"},
	{Source: "email", Column: "invitee_email"},
}

// InviteeRecord merges an invitee with its parent event into one source
// record for flattening.
func InviteeRecord(ev Event, iv Invitee) map[string]any {
	return map[string]any{
		"event":       ev.URI,
		"event_start": ev.StartTime,
		"status":      iv.Status,
		"uri":         iv.URI,
		"name":        iv.Name,
		"email":       iv.Email,
	}
}

// MemberFieldMap projects an organization membership onto snapshot
// columns.
var MemberFieldMap = tabular.FieldMap{
	{Source: "name", Column: "name"},
	{Source: "email", Column: "email"},
	{Source: "role", Column: "role"},
}

// MemberRecord produces the source record for one membership. Deleted or
// inaccessible accounts yield blank name and email cells.
func MemberRecord(m Membership) map[string]any {
	rec := map[string]any{"role": m.Role}
	if m.User != nil {
		rec["name"] = m.User.Name
		rec["email"] = m.User.Email
	}
	return rec
}
