package validation

import "time"

// ParseDate accepts RFC3339 or YYYY-MM-DD.
func ParseDate(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}

// parseDateField coerces a raw date string, recording an issue instead of
// failing. The required flag lets optional dates pass through empty.
func parseDateField(issues []Issue, field, raw string, required bool, out *time.Time) []Issue {
	if raw == "" {
		if required {
			// The required tag on the raw string already reported this.
			return issues
		}
		return issues
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return append(issues, Issue{Field: field, Reason: "must be a valid date in YYYY-MM-DD format"})
	}
	*out = parsed
	return issues
}

// yearsSince returns whole years elapsed between t and now.
func yearsSince(t, now time.Time) int {
	years := now.Year() - t.Year()
	anniversary := t.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}
