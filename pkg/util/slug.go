package util

import (
	"strings"
	"unicode"
)

// ToSnake turns a display label into a lower_snake identifier:
// "Link Clicks (Total)" becomes "link_clicks_total".
func ToSnake(label string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range label {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		pendingSep = true
	}
	return b.String()
}
