package tabular

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetAppendAndHead(t *testing.T) {
	d := New("invitee_email", "status")
	d.Append(Row{"invitee_email": "a@x.com", "status": "active"})
	d.Append(Row{"invitee_email": "b@x.com"})

	assert.Equal(t, 2, d.Len())
	assert.True(t, d.HasColumn("status"))
	assert.False(t, d.HasColumn("missing"))

	head := d.Head(5)
	require.Len(t, head, 2)
	assert.Equal(t, []string{"a@x.com", "active"}, head[0])
	assert.Equal(t, []string{"b@x.com", ""}, head[1], "missing cells render empty")

	assert.Len(t, d.Head(1), 1)
}

func TestConcatUnionsRows(t *testing.T) {
	a := New("invitee_email", "event_start")
	a.Append(Row{"invitee_email": "a@x.com", "event_start": "2025-06-02T10:00:00Z"})

	b := New("invitee_email", "event_start")
	b.Append(Row{"invitee_email": "b@x.com", "event_start": "2025-06-03T10:00:00Z"})
	b.Append(Row{"invitee_email": "c@x.com", "event_start": "2025-06-04T10:00:00Z"})

	combined := Concat(a, b)
	assert.Equal(t, 3, combined.Len())
	assert.Equal(t, a.Columns, combined.Columns)
	// Inputs stay untouched.
	assert.Equal(t, 1, a.Len())
}

func TestConcatEmpty(t *testing.T) {
	assert.Equal(t, 0, Concat().Len())
}

func TestWriteCSVRoundTrip(t *testing.T) {
	d := New("event_uuid", "invitee_email")
	d.Append(Row{"event_uuid": "EV1", "invitee_email": "a@x.com"})
	d.Append(Row{"event_uuid": "EV2", "invitee_email": ""})

	var buf bytes.Buffer
	require.NoError(t, d.WriteCSV(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "event_uuid,invitee_email", lines[0])

	parsed, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, d.Columns, parsed.Columns)
	require.Equal(t, 2, parsed.Len())
	assert.Equal(t, "a@x.com", parsed.Rows[0]["invitee_email"])
	assert.Equal(t, "", parsed.Rows[1]["invitee_email"])
}

func TestWriteCSVEmptyDatasetWritesHeaderOnly(t *testing.T) {
	d := New("invitee_email", "status")

	var buf bytes.Buffer
	require.NoError(t, d.WriteCSV(&buf))
	assert.Equal(t, "invitee_email,status\n", buf.String())
}

func TestSaveAndLoadCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "downloads", "invitees_test-slug.csv")

	d := New("invitee_email")
	d.Append(Row{"invitee_email": "a@x.com"})
	require.NoError(t, d.SaveCSV(path), "parent directories are created on demand")

	loaded, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Len())
	assert.Equal(t, "a@x.com", loaded.Rows[0]["invitee_email"])
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
