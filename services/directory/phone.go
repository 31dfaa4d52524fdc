package directory

import (
	"regexp"
	"strings"
)

var (
	phoneJunk     = regexp.MustCompile(`[\s\-()]`)
	polishPhone   = regexp.MustCompile(`^\+48\d{9}$`)
	phoneGrouping = regexp.MustCompile(`^\+48(\d{3})(\d{3})(\d{3})$`)
)

// FormatPhoneNumber canonicalizes a raw phone value to +48XXXXXXXXX form.
// Stored numbers are unnormalized free text; this is display-side only.
func FormatPhoneNumber(phone string) string {
	if phone == "" {
		return ""
	}
	cleaned := phoneJunk.ReplaceAllString(phone, "")
	switch {
	case strings.HasPrefix(cleaned, "+"):
		return cleaned
	case strings.HasPrefix(cleaned, "48"):
		return "+" + cleaned
	case strings.HasPrefix(cleaned, "0"):
		cleaned = cleaned[1:]
	}
	return "+48" + cleaned
}

// IsValidPolishPhone reports whether the value canonicalizes to a valid
// nine-digit Polish number.
func IsValidPolishPhone(phone string) bool {
	return polishPhone.MatchString(FormatPhoneNumber(phone))
}

// FormatPhoneDisplay renders the canonical number with spaced grouping,
// e.g. "+48 123 456 789".
func FormatPhoneDisplay(phone string) string {
	formatted := FormatPhoneNumber(phone)
	m := phoneGrouping.FindStringSubmatch(formatted)
	if m == nil {
		return formatted
	}
	return "+48 " + m[1] + " " + m[2] + " " + m[3]
}
