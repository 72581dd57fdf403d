// Package errors provides centralized error definitions for the backoffice
// analytics service.
//
// Naming conventions:
//   - Exported errors (Err*): Use for errors that callers need to check with errors.Is
//   - All sentinel errors should be defined as variables, not inline errors.New calls
//   - Use fmt.Errorf with %w to wrap sentinel errors with context
package errors

import "errors"

// Scope resolution errors. Both are fatal to the whole request and are
// raised during the pre-check phase, before any aggregation runs.
var (
	// ErrInexistentWebsite indicates the requested website ID does not resolve.
	ErrInexistentWebsite = errors.New("website does not exist")

	// ErrNoArticlesToSell indicates the website resolved but has zero sellable articles.
	ErrNoArticlesToSell = errors.New("website has no articles to sell")
)

// Request parsing errors.
var (
	// ErrInvalidID indicates a malformed identifier in the request path.
	ErrInvalidID = errors.New("invalid id")

	// ErrInvalidPeriod indicates an unparseable or inverted date range.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrInvalidTimezone indicates an unknown IANA timezone identifier.
	ErrInvalidTimezone = errors.New("invalid timezone")
)

// Is is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
