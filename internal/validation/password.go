package validation

import "regexp"

var specialCharRegex = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)

// HasSpecialChar reports whether s contains at least one character from the
// special set the password policy accepts.
func HasSpecialChar(s string) bool {
	return specialCharRegex.MatchString(s)
}
