// Package validation holds the field-level rules shared by the post and
// comment endpoints. Lengths are counted in runes, not bytes, because titles
// and contents are predominantly CJK text.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MinTitleLen          = 5
	MinPostContentLen    = 20
	MinCommentContentLen = 5
	MinNameLen           = 2
)

var markupTagRegex = regexp.MustCompile(`<[^>]*>`)

// StripMarkup removes inline markup tags so length rules measure the visible
// text only.
func StripMarkup(s string) string {
	return markupTagRegex.ReplaceAllString(s, "")
}

// ValidTitle reports whether the trimmed title meets the minimum length.
func ValidTitle(title string) bool {
	return runeLen(title) >= MinTitleLen
}

// ValidPostContent strips markup before measuring.
func ValidPostContent(content string) bool {
	return runeLen(StripMarkup(content)) >= MinPostContentLen
}

// ValidCommentContent measures the raw comment text, no stripping.
func ValidCommentContent(content string) bool {
	return runeLen(content) >= MinCommentContentLen
}

// ValidName reports whether an author or commenter display name is long enough.
func ValidName(name string) bool {
	return runeLen(name) >= MinNameLen
}

func runeLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}
