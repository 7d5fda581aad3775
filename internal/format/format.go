// Package format turns a model's free-text answer into display blocks.
//
// Classification is line-based and heuristic: list items are detected by a
// leading "* " or "- " marker, headings by a trailing colon or by short
// all-caps lines, and everything else non-blank is a paragraph. Format is a
// pure function of its input.
package format

import (
	"strings"
	"unicode/utf8"
)

// Kind tags the variant held by a Block.
type Kind int

const (
	KindParagraph Kind = iota
	KindHeading
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindHeading:
		return "heading"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Block is one display unit. Heading and paragraph blocks use Text; list
// blocks use Items.
type Block struct {
	Kind  Kind     `json:"type"`
	Text  Inline   `json:"text,omitempty"`
	Items []Inline `json:"items,omitempty"`
}

// Heading lines are shorter than this when detected by the all-caps rule.
const maxCapsHeadingLen = 50

// Format classifies each line of text and returns the resulting blocks.
// Empty input yields no blocks.
func Format(text string) []Block {
	var blocks []Block
	var run []Inline

	flush := func() {
		if len(run) > 0 {
			blocks = append(blocks, Block{Kind: KindList, Items: run})
			run = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if isListItem(trimmed) {
			run = append(run, Emphasize(stripMarker(trimmed)))
			continue
		}

		flush()

		if trimmed == "" {
			continue
		}

		kind := KindParagraph
		if IsHeading(trimmed) {
			kind = KindHeading
		}
		blocks = append(blocks, Block{Kind: kind, Text: Emphasize(trimmed)})
	}

	flush()
	return blocks
}

func isListItem(trimmed string) bool {
	return strings.HasPrefix(trimmed, "* ") || strings.HasPrefix(trimmed, "- ")
}

// stripMarker drops the bullet character and the whitespace after it.
func stripMarker(trimmed string) string {
	return strings.TrimLeft(trimmed[1:], " \t")
}

// IsHeading applies the heading rules to an already trimmed, non-list line:
// it ends with ':' and does not mention "http", or it is short, has an
// uppercase letter and no lowercase letter. The "http" exclusion only guards
// the colon rule, so a short all-caps line such as "HTTP://EXAMPLE" is still
// a heading.
func IsHeading(trimmed string) bool {
	if strings.HasSuffix(trimmed, ":") && !strings.Contains(trimmed, "http") {
		return true
	}
	return utf8.RuneCountInString(trimmed) < maxCapsHeadingLen &&
		strings.ContainsAny(trimmed, upper) &&
		!strings.ContainsAny(trimmed, lower)
}

const (
	upper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lower = "abcdefghijklmnopqrstuvwxyz"
)
