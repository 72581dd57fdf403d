package backoffice

import (
	"fmt"
	"net/http"
	"time"

	"github.com/araddon/dateparse"

	"github.com/rigorous-io/swit-backoffice/internal/core/domain"
	apperrors "github.com/rigorous-io/swit-backoffice/internal/core/errors"
)

// Query parameter names shared with the dashboard frontend.
const (
	paramTimezone  = "timezone"
	paramStartDate = "start_date"
	paramEndDate   = "end_date"
)

// parseTimezone reads the timezone query parameter and validates it against
// the IANA database. Falls back to the configured default when absent.
func parseTimezone(r *http.Request, fallback string) (*time.Location, error) {
	name := r.URL.Query().Get(paramTimezone)
	if name == "" {
		name = fallback
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidTimezone, name)
	}

	return loc, nil
}

// parsePeriod reads the start_date and end_date query parameters, parsed
// leniently in the request's timezone. Absent bounds default to the last
// defaultDays days ending now.
func parsePeriod(r *http.Request, loc *time.Location, defaultDays int) (domain.Period, error) {
	now := time.Now().In(loc)

	period := domain.Period{
		StartDate: now.AddDate(0, 0, -defaultDays),
		EndDate:   now,
	}

	if raw := r.URL.Query().Get(paramStartDate); raw != "" {
		start, err := dateparse.ParseIn(raw, loc)
		if err != nil {
			return domain.Period{}, fmt.Errorf("%w: start_date %q", apperrors.ErrInvalidPeriod, raw)
		}

		period.StartDate = start
	}

	if raw := r.URL.Query().Get(paramEndDate); raw != "" {
		end, err := dateparse.ParseIn(raw, loc)
		if err != nil {
			return domain.Period{}, fmt.Errorf("%w: end_date %q", apperrors.ErrInvalidPeriod, raw)
		}

		// A date-only bound means the whole day is included.
		if end.Hour() == 0 && end.Minute() == 0 && end.Second() == 0 && end.Nanosecond() == 0 {
			end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}

		period.EndDate = end
	}

	if period.StartDate.After(period.EndDate) {
		return domain.Period{}, fmt.Errorf("%w: start_date after end_date", apperrors.ErrInvalidPeriod)
	}

	return period, nil
}
