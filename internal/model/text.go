package model

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// WordsPerMinute is the reading speed used by CalculateReadTime.
const WordsPerMinute = 200

var (
	nonSlugChars = regexp.MustCompile(`[^\w\s\p{Z}-]`)
	whitespace   = regexp.MustCompile(`[\s\p{Z}]+`)
	hyphens      = regexp.MustCompile(`-+`)

	// stripTags drops markup but keeps the text of every element, script and
	// style included. Its output only feeds the word count and is never served.
	stripTags = newTagStripper()
)

func newTagStripper() *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	p.AllowUnsafe(true)
	p.AddSpaceWhenStrippingTag(true)
	p.AllowElementsContent(
		"script", "style", "title", "noscript", "nostyle",
		"iframe", "frame", "frameset", "noframes", "noembed", "object",
	)
	return p
}

// GenerateSlug derives a URL slug from a post title.
func GenerateSlug(title string) string {
	s := strings.ToLower(title)
	s = nonSlugChars.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// GenerateID returns a new post identifier.
// UUIDv7 carries a millisecond timestamp prefix followed by random bits.
func GenerateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// CalculateReadTime estimates how long content takes to read, e.g. "3 min read".
func CalculateReadTime(content string) string {
	words := len(strings.Fields(stripTags.Sanitize(content)))
	minutes := (words + WordsPerMinute - 1) / WordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
