package extraction

import (
	"regexp"
	"strings"
	"time"
)

// datePatterns is the ordered list of date shapes recognised in free text.
// The first pattern that matches wins; if its text does not parse as a valid
// calendar date the whole lookup fails rather than falling through.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{2}[-/]\d{2}[-/]\d{4}\b`), // DD-MM-YYYY or DD/MM/YYYY
	regexp.MustCompile(`\b\d{2}[-/]\d{2}[-/]\d{2}\b`), // DD-MM-YY or DD/MM/YY
	regexp.MustCompile(`\b\d{4}[-/]\d{2}[-/]\d{2}\b`), // YYYY-MM-DD
	regexp.MustCompile(`(?i)\b\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{2,4}\b`),
}

// dateLayouts to try when parsing a located date string. Day-first layouts
// come first so ambiguous numeric dates like 03-04-2024 resolve to 3 April;
// month-first layouts are a fallback for values the day-first read rejects
// (e.g. 04/13/2024).
var dateLayouts = []string{
	"02-01-2006",
	"02/01/2006",
	"2-1-2006",
	"2/1/2006",
	"02-01-06",
	"02/01/06",
	"2006-01-02",
	"2006/01/02",
	"2 Jan 2006",
	"2 January 2006",
	"2 Jan 06",
	"01-02-2006",
	"01/02/2006",
	"1/2/2006",
}

// FindDate scans text for the first date-shaped substring and returns it in
// canonical ISO form. The boolean reports whether a valid date was found.
func FindDate(text string) (string, bool) {
	for _, re := range datePatterns {
		if m := re.FindString(text); m != "" {
			return ParseDate(m)
		}
	}
	return "", false
}

// ParseDate canonicalises a raw date value (typically a table cell) to
// YYYY-MM-DD. Deterministic: the same input always yields the same output,
// which the identity hash depends on.
func ParseDate(raw string) (string, bool) {
	s := normalizeMonthCase(strings.TrimSpace(raw))
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

// stripDatePatterns removes every recognised date substring from a line.
func stripDatePatterns(line string) string {
	for _, re := range datePatterns {
		line = re.ReplaceAllString(line, "")
	}
	return line
}

// normalizeMonthCase uppercases the first letter of alphabetic tokens so
// values like "03 apr 2024" satisfy Go's month-name layouts.
func normalizeMonthCase(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		if f == "" || f[0] < 'a' || f[0] > 'z' {
			continue
		}
		fields[i] = strings.ToUpper(f[:1]) + strings.ToLower(f[1:])
	}
	return strings.Join(fields, " ")
}
