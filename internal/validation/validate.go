package validation

import (
	"regexp"
	"strings"
)

// emailPart matches a run with no "@" and no whitespace. RE2's \s is ASCII
// only, so vertical tab, Unicode space separators, line/paragraph separators
// and the BOM are listed explicitly.
const emailPart = `[^\s\x0B\p{Zs}\x{FEFF}\x{2028}\x{2029}@]+`

var (
	emailPattern = regexp.MustCompile(`^` + emailPart + `@` + emailPart + `\.` + emailPart + `$`)

	// An optional leading "+", two to four digit groups (each optionally in
	// parentheses and followed by "-", "." or a space), then the trailing digits.
	phonePattern = regexp.MustCompile(`^\+?(?:\(?[0-9]{1,4}\)?[-\s.]?){2,4}[0-9]{1,9}$`)

	// Case-sensitive: upper-case hosts are rejected.
	urlPattern = regexp.MustCompile(`^(https?://)?[\da-z.-]+\.[a-z.]{2,6}[/\w .-]*/?$`)
)

// IsEmpty reports whether value is empty after trimming whitespace.
func IsEmpty(value string) bool {
	return strings.TrimSpace(value) == ""
}

// IsValidEmail reports whether value has the local@domain.tld shape with no
// whitespace. Deliverability and full RFC 5322 grammar are not checked.
func IsValidEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// IsValidPhone reports whether value looks like a phone number once all
// whitespace is removed. Accepts common local and international layouts such
// as "+1-234-567-8900", "(123) 456-7890" and "1234567890".
func IsValidPhone(value string) bool {
	return phonePattern.MatchString(strings.Join(strings.Fields(value), ""))
}

// IsValidURL reports whether value is an acceptable profile link. The field
// is optional, so the empty string is valid. Bare domains such as
// "linkedin.com/in/x" are accepted.
func IsValidURL(value string) bool {
	if value == "" {
		return true
	}
	return urlPattern.MatchString(value)
}
