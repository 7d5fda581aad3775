package format

import (
	"regexp"
	"strings"
)

// Span is a run of text, optionally emphasized.
type Span struct {
	Text     string `json:"text"`
	Emphasis bool   `json:"emphasis,omitempty"`
}

// Inline is the content of a heading, paragraph or list item.
type Inline []Span

// boldPattern is non-greedy so "**a** and **b**" yields two spans. Callers
// pass a single line, so a match never spans lines.
var boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

// Emphasize converts **span** markers in line into emphasis spans. An
// unmatched "**" is kept as literal text.
func Emphasize(line string) Inline {
	var out Inline
	last := 0
	for _, m := range boldPattern.FindAllStringSubmatchIndex(line, -1) {
		out = out.appendText(line[last:m[0]], false)
		out = out.appendText(line[m[2]:m[3]], true)
		last = m[1]
	}
	return out.appendText(line[last:], false)
}

func (in Inline) appendText(text string, emphasis bool) Inline {
	if text == "" {
		return in
	}
	if n := len(in); n > 0 && !emphasis && !in[n-1].Emphasis {
		in[n-1].Text += text
		return in
	}
	return append(in, Span{Text: text, Emphasis: emphasis})
}

// Plain returns the text without emphasis markup.
func (in Inline) Plain() string {
	var b strings.Builder
	for _, s := range in {
		b.WriteString(s.Text)
	}
	return b.String()
}

// PlainText flattens blocks back into readable text, one block per line and
// one line per list item.
func PlainText(blocks []Block) string {
	var lines []string
	for _, b := range blocks {
		switch b.Kind {
		case KindList:
			for _, item := range b.Items {
				lines = append(lines, item.Plain())
			}
		default:
			lines = append(lines, b.Text.Plain())
		}
	}
	return strings.Join(lines, "\n")
}
