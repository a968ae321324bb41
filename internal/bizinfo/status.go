package bizinfo

import (
	"strings"
	"time"

	"github.com/jiwonnow/jiwonnow/internal/models"
)

// ClassifyStatus derives the application-window status from optional start
// and end instants and a reference now. Missing dates never close a window:
// no start means "not upcoming", no end means "never closed".
func ClassifyStatus(start, end *time.Time, now time.Time) models.ProjectStatus {
	if start != nil && now.Before(*start) {
		return models.StatusUpcoming
	}
	if end != nil && now.After(*end) {
		return models.StatusClosed
	}
	return models.StatusOpen
}

// SplitPeriod splits a combined application-period string such as
// "2026-01-15 ~ 2026-02-28" into trimmed start and end parts. A string
// without the separator is treated as start-only.
func SplitPeriod(period string) (start, end string) {
	parts := strings.SplitN(period, "~", 2)
	start = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		end = strings.TrimSpace(parts[1])
	}
	return start, end
}

var dateFormats = []string{
	"2006-01-02",
	"2006.01.02",
	"2006/01/02",
	"20060102",
}

// ParseDate parses the loose date formats the API has been seen to emit.
// Unparseable input reports ok=false and is treated as an absent date, not
// an error.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// endOfDay pushes a date-only deadline to the last instant of that day, so
// an announcement stays open through its published closing date.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

// parseWindow turns the raw start/end strings into classifier inputs.
func parseWindow(startStr, endStr string) (start, end *time.Time) {
	if t, ok := ParseDate(startStr); ok {
		start = &t
	}
	if t, ok := ParseDate(endStr); ok {
		e := endOfDay(t)
		end = &e
	}
	return start, end
}
