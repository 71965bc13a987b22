package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appctx "github.com/RyoK3N/Calendly-API/cmd/calendly/context"
)

func TestVersionCommand(t *testing.T) {
	mock := &appctx.MockContext{
		VersionFunc: func() string { return "1.2.3" },
		CommitFunc:  func() string { return "abc123" },
	}

	var buf bytes.Buffer
	c := NewVersionCommand(mock)
	c.SetOut(&buf)
	require.NoError(t, c.Execute())

	out := buf.String()
	assert.Contains(t, out, "calendly 1.2.3")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, "go version")
}
