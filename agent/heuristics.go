package agent

import (
	"regexp"
	"strings"
)

// TimezoneRequest is one zone the user asked about.
type TimezoneRequest struct {
	// Label is the display name (a city, or "your timezone" for the
	// fallback request).
	Label string
	// ZoneID is the IANA zone identifier, e.g. "Asia/Tokyo".
	ZoneID string
}

// cityZones maps lowercase city names to IANA zone ids. The slice order is a
// behavioral contract: FindTimezones scans it top to bottom, so results come
// back in this order regardless of where the cities appear in the text.
var cityZones = []struct {
	City string
	Zone string
}{
	{"johannesburg", "Africa/Johannesburg"},
	{"cape town", "Africa/Johannesburg"},
	{"durban", "Africa/Johannesburg"},
	{"london", "Europe/London"},
	{"paris", "Europe/Paris"},
	{"berlin", "Europe/Berlin"},
	{"new york", "America/New_York"},
	{"san francisco", "America/Los_Angeles"},
	{"los angeles", "America/Los_Angeles"},
	{"tokyo", "Asia/Tokyo"},
	{"singapore", "Asia/Singapore"},
	{"sydney", "Australia/Sydney"},
}

// exprPattern matches maximal runs of arithmetic-looking characters.
var exprPattern = regexp.MustCompile(`[-+*/().\d\s]{3,}`)

// exprCutset is trimmed off a matched candidate before it is returned.
const exprCutset = " .,:;!?"

var planKeywords = []string{"plan", "steps", "checklist", "todo", "to-do"}

// FindTimezones extracts zone requests from free text. The text must mention
// "time" or "date" for anything to match; with that keyword present but no
// known city, a single fallback request for defaultZone is returned.
func FindTimezones(text, defaultZone string) []TimezoneRequest {
	lower := strings.ToLower(text)
	if !strings.Contains(lower, "time") && !strings.Contains(lower, "date") {
		return nil
	}

	var hits []TimezoneRequest
	for _, entry := range cityZones {
		if strings.Contains(lower, entry.City) {
			hits = append(hits, TimezoneRequest{Label: entry.City, ZoneID: entry.Zone})
		}
	}
	if len(hits) == 0 {
		hits = append(hits, TimezoneRequest{Label: "your timezone", ZoneID: defaultZone})
	}
	return hits
}

// FindExpression scans text for something that looks like arithmetic: the
// first maximal run of digits, operators, parens, dots and whitespace that
// contains at least one digit and one of + - * /. First match wins.
func FindExpression(text string) (string, bool) {
	for _, match := range exprPattern.FindAllString(text, -1) {
		candidate := strings.TrimSpace(match)
		if len(candidate) == 0 {
			continue
		}
		if strings.ContainsAny(candidate, "0123456789") && strings.ContainsAny(candidate, "+-*/") {
			return strings.Trim(candidate, exprCutset), true
		}
	}
	return "", false
}

// WantsPlan reports whether the text asks for a plan.
func WantsPlan(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range planKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
