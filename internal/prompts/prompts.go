package prompts

import (
	_ "embed"
	"strings"
)

//go:embed step_guidance.md
var stepGuidance string

//go:embed explainer.md
var explainer string

//go:embed fsd_analysis.md
var fsdAnalysis string

//go:embed topic_validation.md
var topicValidation string

// FSDInstruction prefixes the requirement text sent for FSD analysis.
const FSDInstruction = "Analyze the following FSD requirements and provide a technical solution plan:"

// StepGuidance is the system instruction for configuration walk-throughs.
func StepGuidance() string { return strings.TrimSpace(stepGuidance) }

// Explainer is the system instruction for concept explanations.
func Explainer() string { return strings.TrimSpace(explainer) }

// FSDAnalysis is the system instruction for requirement-document analysis.
func FSDAnalysis() string { return strings.TrimSpace(fsdAnalysis) }

// TopicValidation is the system instruction for the YES/NO topic check.
func TopicValidation() string { return strings.TrimSpace(topicValidation) }

// BuildFSDContent wraps the user's requirement text for analysis.
func BuildFSDContent(requirements string) string {
	return FSDInstruction + "\n\n" + requirements
}
