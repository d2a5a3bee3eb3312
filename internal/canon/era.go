package canon

import (
	"regexp"
	"strconv"
)

var yearPattern = regexp.MustCompile(`\b(19[5-9]\d|20[0-2]\d)\b`)

// ExtractYear pulls a plausible release year (1950-2029) out of the title
// or channel text. Returns 0 when no year is present.
func ExtractYear(title, channel string) int {
	m := yearPattern.FindString(title + " " + channel)
	if m == "" {
		return 0
	}
	year, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return year
}

// DetectEra buckets a release year into a musical era. Year 0 means the
// release year is unknown.
func DetectEra(year int) string {
	switch {
	case year == 0:
		return "unknown"
	case year < 1960:
		return "pre-independence"
	case year < 1980:
		return "independence"
	case year < 1995:
		return "golden-age"
	case year < 2005:
		return "transition"
	case year < 2015:
		return "digital-dawn"
	case year < 2020:
		return "streaming-era"
	default:
		return "global-explosion"
	}
}
