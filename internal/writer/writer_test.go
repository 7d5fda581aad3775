package writer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raviisinghh-stack/Fico-implementation/internal/dispatch"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/llm"
)

var created = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func companyCode() Export {
	return Export{
		Title:  "How to configure a new Company Code",
		Intent: dispatch.IntentSteps,
		Answer: &dispatch.Answer{
			Text:    "OVERVIEW\nCreate it with **OX02**.\n- Assign with OX15",
			Sources: []llm.Source{{URI: "https://help.sap.com/ox02", Title: "Define Company Code"}},
		},
		Created: created,
	}
}

func TestMarkdown(t *testing.T) {
	want := `---
title: "How to configure a new Company Code"
intent: steps
created: 2026-03-14T09:30:00Z
---

# How to configure a new Company Code

### OVERVIEW
Create it with **OX02**.
- Assign with OX15

## Sources

1. [Define Company Code](https://help.sap.com/ox02)
`
	assert.Equal(t, want, Markdown(companyCode()))
}

func TestMarkdownWithoutSources(t *testing.T) {
	e := Export{
		Intent:  dispatch.IntentConcept,
		Answer:  &dispatch.Answer{Text: "Plain answer."},
		Created: created,
	}
	md := Markdown(e)

	assert.Contains(t, md, "# SAP FICO solution\n")
	assert.Contains(t, md, "intent: concept\n")
	assert.NotContains(t, md, "## Sources")
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")

	path, err := Save(dir, companyCode())
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.Regexp(t, `^how-to-configure-a-new-company-code-20260314-093000-[0-9a-f]{8}\.md$`, filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Markdown(companyCode()), string(data))
}

func TestSaveUntitled(t *testing.T) {
	dir := t.TempDir()
	path, err := Save(dir, Export{Title: "???", Answer: &dispatch.Answer{Text: "x"}, Created: created})
	require.NoError(t, err)
	assert.Regexp(t, `^solution-20260314-093000-[0-9a-f]{8}\.md$`, filepath.Base(path))
}

func TestSaveSameSecondKeepsBoth(t *testing.T) {
	dir := t.TempDir()
	first := companyCode()
	second := companyCode()
	second.Answer = &dispatch.Answer{Text: "A different answer."}

	p1, err := Save(dir, first)
	require.NoError(t, err)
	p2, err := Save(dir, second)
	require.NoError(t, err)
	require.NotEqual(t, p1, p2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	data, err := os.ReadFile(p1)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Create it with **OX02**.")
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"How to configure a new Company Code", "how-to-configure-a-new-company-code"},
		{"  GR/IR clearing (MR11)  ", "grir-clearing-mr11"},
		{"fsd_asset_accounting.md", "fsd-asset-accountingmd"},
		{"---", ""},
		{"a very long title that keeps going well past the limit of characters", "a-very-long-title-that-keeps-going-well-past-the"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.in))
		})
	}
}
