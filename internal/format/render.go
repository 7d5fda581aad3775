package format

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the styles used to draw blocks in a terminal.
type Theme struct {
	Heading   lipgloss.Style
	Paragraph lipgloss.Style
	Bullet    lipgloss.Style
	Emphasis  lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Heading:   lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true),
		Paragraph: lipgloss.NewStyle().Foreground(lipgloss.Color("#F9FAFB")),
		Bullet:    lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
		Emphasis:  lipgloss.NewStyle().Bold(true),
	}
}

// Render draws blocks wrapped to width. Headings get a blank line above
// them, lists are indented with a bullet per item.
func Render(blocks []Block, width int, th Theme) string {
	if width <= 0 {
		width = 70
	}

	var b strings.Builder
	for i, blk := range blocks {
		switch blk.Kind {
		case KindHeading:
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(th.Heading.Width(width).Render(renderInline(blk.Text, th.Heading, th.Emphasis)))
		case KindParagraph:
			b.WriteString(th.Paragraph.Width(width).Render(renderInline(blk.Text, th.Paragraph, th.Emphasis)))
		case KindList:
			items := make([]string, len(blk.Items))
			for j, item := range blk.Items {
				body := th.Paragraph.Width(width - 4).Render(renderInline(item, th.Paragraph, th.Emphasis))
				items[j] = lipgloss.JoinHorizontal(lipgloss.Top, th.Bullet.Render("  • "), body)
			}
			b.WriteString(strings.Join(items, "\n"))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderInline(in Inline, base, emphasis lipgloss.Style) string {
	var b strings.Builder
	for _, s := range in {
		if s.Emphasis {
			b.WriteString(base.Inherit(emphasis).Render(s.Text))
		} else {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

// Markdown writes blocks back as lightweight markdown, for plain output and
// piping into files.
func Markdown(blocks []Block) string {
	var b strings.Builder
	for i, blk := range blocks {
		switch blk.Kind {
		case KindHeading:
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "### %s\n", markdownInline(blk.Text))
		case KindParagraph:
			fmt.Fprintf(&b, "%s\n", markdownInline(blk.Text))
		case KindList:
			for _, item := range blk.Items {
				fmt.Fprintf(&b, "- %s\n", markdownInline(item))
			}
		}
	}
	return b.String()
}

func markdownInline(in Inline) string {
	var b strings.Builder
	for _, s := range in {
		if s.Emphasis {
			b.WriteString("**" + s.Text + "**")
		} else {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}
