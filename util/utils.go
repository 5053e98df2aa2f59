package util

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	RgxEmail = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")
)

// Poem text bounds, counted in code points rather than bytes.
const (
	MinPoemLength = 1
	MaxPoemLength = 256
)

func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

func IsEmail(value string) bool {
	if len(value) > 254 {
		return false
	}

	return RgxEmail.MatchString(value)
}

// ValidPoemText reports whether the text lies within the allowed bounds.
func ValidPoemText(text string) bool {
	n := utf8.RuneCountInString(text)
	return n >= MinPoemLength && n <= MaxPoemLength
}
