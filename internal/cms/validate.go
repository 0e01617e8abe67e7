package cms

import (
	"fmt"
	"time"
)

// Validate checks the article and stores every failed rule in Errors.
// It reports whether the article is valid.
func (a *Article) Validate() bool {
	a.Errors = nil

	if a.Title == "" {
		a.Errors = append(a.Errors, ErrTitleRequired)
	}

	if a.Content == "" {
		a.Errors = append(a.Errors, ErrContentRequired)
	}

	if a.PublishedAt != "" {
		if _, err := ParsePublishedAt(a.PublishedAt); err != nil {
			a.Errors = append(a.Errors, ErrInvalidPublishedAt)
		}
	}

	return len(a.Errors) == 0
}

// ParsePublishedAt parses a publication date in PublishedAtLayout as UTC.
// Out of range components like day 32 or hour 25 are rejected, and so is a
// fractional seconds suffix, which time.Parse accepts after a seconds field.
func ParsePublishedAt(value string) (time.Time, error) {
	t, err := time.ParseInLocation(PublishedAtLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	if t.Format(PublishedAtLayout) != value {
		return time.Time{}, fmt.Errorf("publication date %q does not match layout %q", value, PublishedAtLayout)
	}

	return t, nil
}

// FormatPublishedAt formats t in PublishedAtLayout, nil gives an empty string.
func FormatPublishedAt(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(PublishedAtLayout)
}
