package style

import "strings"

// ParseColor accepts a bare "rrggbb" or prefixed "#rrggbb" 6-hex-digit RGB
// value and returns it normalized with a leading '#'. It returns false for
// anything that is not exactly 6 hex digits once the optional prefix is
// stripped.
func ParseColor(s string) (string, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return "", false
	}
	for _, r := range s {
		if !isHexDigit(r) {
			return "", false
		}
	}
	return "#" + strings.ToLower(s), true
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
