package util

import (
	"errors"
	"regexp"
)

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// IsHexColor accepts #rgb and #rrggbb.
func IsHexColor(color string) error {
	if !hexColorRe.MatchString(color) {
		return errors.New("invalid color")
	}
	return nil
}
