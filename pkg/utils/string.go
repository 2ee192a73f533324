// Package utils provides common utility functions.
package utils

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StringHelper provides string utility functions.
type StringHelper struct{}

// NewStringHelper creates a new string helper.
func NewStringHelper() *StringHelper {
	return &StringHelper{}
}

// TrimWhitespace removes leading and trailing whitespace.
func (s *StringHelper) TrimWhitespace(str string) string {
	return strings.TrimSpace(str)
}

// NormalizeWhitespace replaces multiple whitespace with single space.
func (s *StringHelper) NormalizeWhitespace(str string) string {
	return strings.Join(strings.Fields(str), " ")
}

// TruncateString truncates string to maxLength runes.
func (s *StringHelper) TruncateString(str string, maxLength int) string {
	runes := []rune(str)
	if len(runes) <= maxLength {
		return str
	}

	return string(runes[:maxLength]) + "..."
}

// StripMarkup returns the visible text of an HTML fragment with whitespace normalized.
// Plain text without tags or entities is returned as is.
func (s *StringHelper) StripMarkup(str string) string {
	if !strings.ContainsAny(str, "<&") {
		return str
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(str))
	if err != nil {
		return str
	}

	// Scripts and styles carry no readable text.
	doc.Find("script, style").Remove()

	return s.NormalizeWhitespace(doc.Text())
}
