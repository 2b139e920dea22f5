package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Captions, comments and bios are plain text. StrictPolicy strips every
// tag so stored content is inert even if a template ever emits it raw.
var textPolicy = bluemonday.StrictPolicy()

// SanitizeText strips markup from user-supplied text and trims
// surrounding whitespace.
func SanitizeText(s string) string {
	return strings.TrimSpace(textPolicy.Sanitize(s))
}
