package note

import (
	"fmt"

	"github.com/rivo/uniseg"
)

// Text fields are edited at rune offsets. Rune offsets keep action replay
// deterministic regardless of byte widths; grapheme counts are only used
// where a user-facing "character" count is wanted.

// RuneLen returns the number of runes in s.
func RuneLen(s string) int {
	count := 0
	for range s {
		count++
	}
	return count
}

// GraphemeLen returns the number of user-perceived characters in s.
func GraphemeLen(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// InsertText returns s with text inserted at rune offset 'at'.
func InsertText(s string, at int, text string) (string, error) {
	runes := []rune(s)
	if at < 0 || at > len(runes) {
		return s, fmt.Errorf("insert offset %d out of range [0,%d]", at, len(runes))
	}
	out := make([]rune, 0, len(runes)+len(text))
	out = append(out, runes[:at]...)
	out = append(out, []rune(text)...)
	out = append(out, runes[at:]...)
	return string(out), nil
}

// DeleteText returns s with count runes removed at rune offset 'at',
// along with the removed text.
func DeleteText(s string, at, count int) (string, string, error) {
	runes := []rune(s)
	if at < 0 || count < 0 || at+count > len(runes) {
		return s, "", fmt.Errorf("delete span [%d,%d) out of range [0,%d]", at, at+count, len(runes))
	}
	removed := string(runes[at : at+count])
	out := make([]rune, 0, len(runes)-count)
	out = append(out, runes[:at]...)
	out = append(out, runes[at+count:]...)
	return string(out), removed, nil
}

// SliceText returns the rune span [start,end) of s.
func SliceText(s string, start, end int) (string, error) {
	runes := []rune(s)
	if start < 0 || end < start || end > len(runes) {
		return "", fmt.Errorf("span [%d,%d) out of range [0,%d]", start, end, len(runes))
	}
	return string(runes[start:end]), nil
}
