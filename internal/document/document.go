package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

// ErrUnsupportedType is returned for files other than .txt, .md and .csv.
var ErrUnsupportedType = errors.New("unsupported document type")

// SupportedExtensions lists the accepted file types.
var SupportedExtensions = []string{".txt", ".md", ".csv"}

// Document represents a loaded requirement document
type Document struct {
	Content  string
	Preview  string
	Metadata Metadata
}

// Metadata contains document metadata
type Metadata struct {
	Name          string    `json:"name"`
	SourcePath    string    `json:"source_path"`
	SourceFormat  string    `json:"source_format"`
	FileSizeBytes int64     `json:"file_size_bytes"`
	WordCount     int       `json:"word_count"`
	LoadedAt      time.Time `json:"loaded_at"`
}

// FileSizeHuman returns human-readable file size
func (m Metadata) FileSizeHuman() string {
	bytes := m.FileSizeBytes
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}
	if bytes < 1024*1024 {
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	}
	return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
}

// Supported reports whether path has an accepted extension.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range SupportedExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Load reads the whole file as text.
func Load(path string) (*Document, error) {
	path = expandHome(strings.TrimSpace(path))
	if path == "" {
		return nil, errors.New("no file selected")
	}
	if !Supported(path) {
		return nil, fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedType,
			filepath.Ext(path), strings.Join(SupportedExtensions, ", "))
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read the selected file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read the selected file: %w", err)
	}

	doc, err := Parse(filepath.Base(absPath), data)
	if err != nil {
		return nil, err
	}
	doc.Metadata.SourcePath = absPath
	return doc, nil
}

// Parse builds a document from uploaded content. name is only used for its
// extension and for display.
func Parse(name string, data []byte) (*Document, error) {
	if !Supported(name) {
		return nil, fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedType,
			filepath.Ext(name), strings.Join(SupportedExtensions, ", "))
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("failed to read the selected file: %s is not UTF-8 text", name)
	}

	content := strings.TrimPrefix(string(data), "\uFEFF")

	return &Document{
		Content: content,
		Preview: preview(content, 6, 300),
		Metadata: Metadata{
			Name:          name,
			SourceFormat:  strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), "."),
			FileSizeBytes: int64(len(data)),
			WordCount:     len(strings.Fields(content)),
			LoadedAt:      time.Now(),
		},
	}, nil
}

// preview returns the first maxLines non-blank lines, capped at maxChars.
func preview(content string, maxLines, maxChars int) string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r ")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == maxLines {
			break
		}
	}
	p := strings.Join(lines, "\n")
	if utf8.RuneCountInString(p) > maxChars {
		p = string([]rune(p)[:maxChars-3]) + "..."
	}
	return p
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
