package dispatch

import (
	"fmt"
	"strings"

	"github.com/Raviisinghh-stack/Fico-implementation/internal/prompts"
)

// Intent selects one of the three prompt variants.
type Intent int

const (
	IntentSteps Intent = iota
	IntentConcept
	IntentFSD
)

func (i Intent) String() string {
	switch i {
	case IntentSteps:
		return "steps"
	case IntentConcept:
		return "concept"
	case IntentFSD:
		return "fsd"
	default:
		return "unknown"
	}
}

// ParseIntent accepts the names used by the CLI and the HTTP API.
func ParseIntent(s string) (Intent, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "steps", "step", "ask", "":
		return IntentSteps, nil
	case "concept", "explain":
		return IntentConcept, nil
	case "fsd", "analyze", "analysis":
		return IntentFSD, nil
	default:
		return 0, fmt.Errorf("unknown intent %q", s)
	}
}

// Tier is the model class used for a request.
type Tier int

const (
	TierFull Tier = iota
	TierLite
)

func (t Tier) String() string {
	if t == TierLite {
		return "lite"
	}
	return "full"
}

// Request is built per call and never stored.
type Request struct {
	Intent            Intent
	Content           string
	SystemInstruction string
	UseRetrieval      bool
	Model             Tier
}

// NewRequest fills in the instruction, retrieval flag and model tier for
// intent. FSD content is wrapped with the analysis instruction.
func NewRequest(intent Intent, query string) Request {
	switch intent {
	case IntentConcept:
		return Request{
			Intent:            intent,
			Content:           query,
			SystemInstruction: prompts.Explainer(),
			UseRetrieval:      false,
			Model:             TierLite,
		}
	case IntentFSD:
		return Request{
			Intent:            intent,
			Content:           prompts.BuildFSDContent(query),
			SystemInstruction: prompts.FSDAnalysis(),
			UseRetrieval:      true,
			Model:             TierFull,
		}
	default:
		return Request{
			Intent:            IntentSteps,
			Content:           query,
			SystemInstruction: prompts.StepGuidance(),
			UseRetrieval:      true,
			Model:             TierFull,
		}
	}
}
