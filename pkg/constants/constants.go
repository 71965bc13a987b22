// Package constants provides shared constants used throughout the codebase.
// This includes API endpoints, timeouts, retry limits, pagination sizes, and
// default output locations that should be consistent across the application.
package constants

import "time"

// API endpoints.
const (
	// CalendlyBaseURL is the base address of the Calendly REST API.
	// Endpoint paths are resolved relative to it.
	CalendlyBaseURL = "https://api.calendly.com/"

	// MondayAPIURL is the Monday.com GraphQL endpoint.
	MondayAPIURL = "https://api.monday.com/v2"
)

// Timeout and retry constants define how network calls behave.
const (
	// DefaultHTTPTimeout is the per-request timeout for API calls.
	DefaultHTTPTimeout = 120 * time.Second

	// MinHTTPTimeout is the smallest per-request timeout accepted
	// from configuration.
	MinHTTPTimeout = 30 * time.Second

	// MaxRetries is the number of attempts made for a single request
	// before a timeout is escalated to the caller.
	MaxRetries = 3
)

// Pagination constants.
const (
	// CalendlyPageSize is the per-page count requested from Calendly
	// collection endpoints.
	CalendlyPageSize = 100

	// MondayItemsLimit is the per-page item count requested from
	// Monday.com boards.
	MondayItemsLimit = 500
)

// Defaults applied when flags are omitted.
const (
	// DefaultLookbackDays bounds the scheduled-event window when no
	// --days flag is given.
	DefaultLookbackDays = 365

	// DefaultEventTypeSlug is the event type used when no identifier
	// is supplied at all.
	DefaultEventTypeSlug = "cleverly-introduction-cold-email-international"

	// DefaultMondayBoardID is the board downloaded when --board is omitted.
	DefaultMondayBoardID = "6942829967"
)

// Output locations.
const (
	// DefaultDownloadDir receives Calendly invitee exports.
	DefaultDownloadDir = "data/downloads"

	// DefaultMondayDir receives Monday board exports.
	DefaultMondayDir = "data/downloads_monday"

	// DefaultMatchDir receives reconciliation outputs.
	DefaultMatchDir = "data/transformations"
)

// File system constants.
const (
	// FilePermissions is the default permission for created files.
	FilePermissions = 0o644

	// DirPermissions is the default permission for created directories.
	DirPermissions = 0o755
)

// TimestampFormat is the layout used for timestamped output filenames.
const TimestampFormat = "20060102_150405"
