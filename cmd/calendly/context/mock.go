package context

import (
	"github.com/rs/zerolog"

	"github.com/RyoK3N/Calendly-API/internal/sources/calendly"
	"github.com/RyoK3N/Calendly-API/internal/sources/monday"
)

// MockContext is a test double for Context. Each method delegates to
// the corresponding function field; a nil field yields a default.
type MockContext struct {
	CalendlyFunc     func(opts ...calendly.Option) (*calendly.Client, error)
	MondayFunc       func(opts ...monday.Option) (*monday.Client, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Calendly returns a client using the mock function or nil.
func (m *MockContext) Calendly(opts ...calendly.Option) (*calendly.Client, error) {
	if m.CalendlyFunc != nil {
		return m.CalendlyFunc(opts...)
	}
	return nil, nil
}

// Monday returns a client using the mock function or nil.
func (m *MockContext) Monday(opts ...monday.Option) (*monday.Client, error) {
	if m.MondayFunc != nil {
		return m.MondayFunc(opts...)
	}
	return nil, nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *MockContext) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the mock output format or "table".
func (m *MockContext) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns the mock version or "dev".
func (m *MockContext) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns the mock commit or "unknown".
func (m *MockContext) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns the mock build date or "unknown".
func (m *MockContext) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns the mock builder or "test".
func (m *MockContext) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure MockContext implements Context at compile time.
var _ Context = (*MockContext)(nil)
