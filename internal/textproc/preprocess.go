package textproc

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
)

// Clean trims, lowercases and collapses internal whitespace. Empty input
// stays empty; Clean never fails.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// RemoveLinks strips markdown links (keeping their text) and bare URLs.
func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// StripMarkup renders markdown and drops the resulting tags and links,
// leaving plain prose. CRM notes and email bodies often arrive as markdown.
func StripMarkup(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := tagPattern.ReplaceAllString(string(output), " ")
	plain = strings.Join(strings.Fields(plain), " ")

	return RemoveLinks(plain)
}

// Chunk splits text on word boundaries into pieces of at most maxLength
// characters. A single word longer than maxLength becomes its own chunk
// rather than being split.
func Chunk(text string, maxLength int) []string {
	words := strings.Fields(text)

	var chunks []string
	var current []string
	length := 0

	for _, word := range words {
		if length+len(word)+1 > maxLength {
			if len(current) > 0 {
				chunks = append(chunks, strings.Join(current, " "))
				current = []string{word}
				length = len(word)
			} else {
				chunks = append(chunks, word)
			}
		} else {
			current = append(current, word)
			length += len(word) + 1
		}
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}

	return chunks
}
