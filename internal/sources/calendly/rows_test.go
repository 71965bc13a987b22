package calendly

import (
	"testing"
	"time"

	"github.com/agentstation/utc"
	"github.com/stretchr/testify/assert"

	"github.com/RyoK3N/Calendly-API/pkg/tabular"
)

func TestInviteeRecordFlattens(t *testing.T) {
	ev := Event{
		URI:       "https://api.calendly.com/scheduled_events/EV1",
		StartTime: utc.Time{Time: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)},
		EventType: "https://api.calendly.com/event_types/ET1",
	}
	iv := Invitee{
		URI:    "https://api.calendly.com/scheduled_events/EV1/invitees/INV1",
		Name:   "Ada Lovelace",
		Email:  "ada@example.com",
		Status: "active",
	}

	row := tabular.Flatten(InviteeRecord(ev, iv), InviteeFieldMap)

	assert.Equal(t, "EV1", row["event_uuid"])
	assert.Equal(t, "2025-03-01T10:00:00Z", row["event_start"])
	assert.Equal(t, "INV1", row["invitee_uuid"])
	assert.Equal(t, "Ada Lovelace", row["invitee_name"])
	assert.Equal(t, "ada@example.com", row["invitee_email"])
	assert.Equal(t, "active", row["status"])
}

func TestInviteeFieldMapColumnOrder(t *testing.T) {
	want := []string{"event_uuid", "event_start", "status", "invitee_uuid", "invitee_name", "invitee_email"}
	assert.Equal(t, want, InviteeFieldMap.Columns())
}

func TestMemberRecordNilUser(t *testing.T) {
	row := tabular.Flatten(MemberRecord(Membership{Role: "admin"}), MemberFieldMap)
	assert.Equal(t, "admin", row["role"])
	assert.Equal(t, "", row["name"], "deleted accounts leave blank cells")
	assert.Equal(t, "", row["email"])
}
