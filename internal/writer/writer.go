// Package writer exports a finished answer as a markdown document, either to
// a file or to the system clipboard.
package writer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"

	"github.com/Raviisinghh-stack/Fico-implementation/internal/dispatch"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/format"
)

// ErrClipboardUnavailable is returned by Copy when no clipboard utility exists.
var ErrClipboardUnavailable = errors.New("clipboard is not available on this system")

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9-]`)
	hyphens      = regexp.MustCompile(`-+`)
)

// Export is one answer ready to be written out.
type Export struct {
	// Title is the query or the FSD document name.
	Title   string
	Intent  dispatch.Intent
	Answer  *dispatch.Answer
	Created time.Time
}

// Markdown renders e with a front matter header, the formatted answer and
// its numbered sources.
func Markdown(e Export) string {
	var b strings.Builder

	title := strings.TrimSpace(e.Title)
	if title == "" {
		title = "SAP FICO solution"
	}

	fmt.Fprintf(&b, "---\ntitle: %q\nintent: %s\ncreated: %s\n---\n\n",
		title, e.Intent, e.Created.Format(time.RFC3339))
	fmt.Fprintf(&b, "# %s\n\n", oneLine(title))

	if e.Answer == nil {
		return b.String()
	}
	b.WriteString(format.Markdown(format.Format(e.Answer.Text)))

	if len(e.Answer.Sources) > 0 {
		b.WriteString("\n## Sources\n\n")
		for i, src := range e.Answer.Sources {
			fmt.Fprintf(&b, "%d. [%s](%s)\n", i+1, src.Title, src.URI)
		}
	}
	return b.String()
}

// Save writes e into dir as <slug>-<timestamp>-<id>.md and returns the path.
// An empty dir means the working directory.
func Save(dir string, e Export) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	name := Slug(e.Title)
	if name == "" {
		name = "solution"
	}
	name = fmt.Sprintf("%s-%s-%s.md", name, e.Created.Format("20060102-150405"), uuid.NewString()[:8])

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(Markdown(e)), 0644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

// Copy puts the markdown rendering of e on the clipboard.
func Copy(e Export) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	return clipboard.WriteAll(Markdown(e))
}

// Slug turns a title into a short file name.
func Slug(title string) string {
	name := strings.ToLower(strings.TrimSpace(title))
	name = strings.Join(strings.Fields(name), "-")
	name = strings.ReplaceAll(name, "_", "-")
	name = invalidChars.ReplaceAllString(name, "")
	name = hyphens.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")

	if len(name) > 48 {
		name = strings.TrimRight(name[:48], "-")
	}
	return name
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
