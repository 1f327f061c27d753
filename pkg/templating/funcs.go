package templating

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// add returns a + b.
func add(a, b int) int {
	return a + b
}

// sub returns a - b.
func sub(a, b int) int {
	return a - b
}

// inc returns i + 1.
func inc(i int) int {
	return i + 1
}

// runeLen returns the number of characters in s, not bytes.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// title upper-cases the first character of s and leaves the rest alone.
func title(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToTitle(r)) + s[size:]
}

// reverse returns s with its characters in reverse order.
func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// padRight pads s with spaces to at least width characters.
func padRight(width int, s string) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// repeat returns s repeated n times. Negative n yields "".
func repeat(n int, s string) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}
