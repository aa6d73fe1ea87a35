package shared

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

const DateLayout = "2006-01-02"

// MonthYear resolves optional month/year query values. When either is
// missing the current month is used.
func MonthYear(month, year int, now time.Time) (time.Month, int, error) {
	if month == 0 || year == 0 {
		return now.Month(), now.Year(), nil
	}
	if month < 1 || month > 12 {
		return 0, 0, huma.NewError(http.StatusBadRequest, "month must be between 1 and 12")
	}
	return time.Month(month), year, nil
}

// FormatDate renders a calendar date, or "" for nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}
