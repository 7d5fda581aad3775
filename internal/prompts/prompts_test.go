package prompts

import (
	"strings"
	"testing"
)

func TestPromptsEmbedded(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"step guidance", StepGuidance(), "step-by-step"},
		{"explainer", Explainer(), "definition"},
		{"fsd analysis", FSDAnalysis(), "GAP ANALYSIS:"},
		{"topic validation", TopicValidation(), "YES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got == "" {
				t.Fatal("prompt is empty")
			}
			if tt.got != strings.TrimSpace(tt.got) {
				t.Error("prompt is not trimmed")
			}
			if !strings.Contains(tt.got, tt.want) {
				t.Errorf("prompt missing %q", tt.want)
			}
		})
	}
}

func TestBuildFSDContent(t *testing.T) {
	got := BuildFSDContent("Post intercompany invoices automatically.")
	want := "Analyze the following FSD requirements and provide a technical solution plan:\n\nPost intercompany invoices automatically."
	if got != want {
		t.Errorf("BuildFSDContent() = %q, want %q", got, want)
	}
}
