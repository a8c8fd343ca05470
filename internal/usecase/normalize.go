package usecase

import (
	"strconv"
	"strings"
)

// NormalizeDigits strips every character that is not an ASCII digit.
// The result is either "" (unset) or a digit string, possibly "0".
func NormalizeDigits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseCount evaluates normalized text. "" evaluates to zero, as does a digit
// string too large for int64.
func ParseCount(text string) int64 {
	if text == "" {
		return 0
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
