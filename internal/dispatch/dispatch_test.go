package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raviisinghh-stack/Fico-implementation/internal/llm"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/llm/llmtest"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/prompts"
)

var testModels = Models{Full: "full-model", Lite: "lite-model"}

func TestNewRequest(t *testing.T) {
	tests := []struct {
		intent      Intent
		query       string
		content     string
		instruction string
		retrieval   bool
		tier        Tier
	}{
		{IntentSteps, "How to configure a new Company Code", "How to configure a new Company Code", prompts.StepGuidance(), true, TierFull},
		{IntentConcept, "explain Cost Element", "explain Cost Element", prompts.Explainer(), false, TierLite},
		{IntentFSD, "Auto-post accruals", prompts.FSDInstruction + "\n\nAuto-post accruals", prompts.FSDAnalysis(), true, TierFull},
	}

	for _, tt := range tests {
		t.Run(tt.intent.String(), func(t *testing.T) {
			req := NewRequest(tt.intent, tt.query)
			assert.Equal(t, tt.intent, req.Intent)
			assert.Equal(t, tt.content, req.Content)
			assert.Equal(t, tt.instruction, req.SystemInstruction)
			assert.Equal(t, tt.retrieval, req.UseRetrieval)
			assert.Equal(t, tt.tier, req.Model)
		})
	}
}

func TestParseIntent(t *testing.T) {
	for in, want := range map[string]Intent{
		"steps": IntentSteps, "": IntentSteps, "Explain": IntentConcept,
		"concept": IntentConcept, "fsd": IntentFSD, "ANALYZE": IntentFSD,
	} {
		got, err := ParseIntent(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseIntent("poetry")
	assert.Error(t, err)
}

func TestDispatchStepsWithSources(t *testing.T) {
	fake := &llmtest.Fake{Respond: func(req *llm.Request) (*llm.Response, error) {
		return llmtest.Grounded("Step 1: OX02",
			llm.Source{URI: "https://help.sap.com/a", Title: "A"},
			llm.Source{URI: "", Title: "dropped"},
			llm.Source{URI: "https://help.sap.com/b", Title: "B"},
		), nil
	}}
	d := New(fake, testModels, nil)

	answer, err := d.Dispatch(context.Background(), NewRequest(IntentSteps, "company code"))
	require.NoError(t, err)

	assert.Equal(t, "Step 1: OX02", answer.Text)
	assert.Equal(t, []llm.Source{
		{URI: "https://help.sap.com/a", Title: "A"},
		{URI: "https://help.sap.com/b", Title: "B"},
	}, answer.Sources)

	reqs := fake.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "full-model", reqs[0].Model)
	assert.True(t, reqs[0].Search)
	assert.Equal(t, prompts.StepGuidance(), reqs[0].SystemInstruction)
	assert.Nil(t, reqs[0].Temperature)
}

func TestDispatchConceptUsesLiteWithoutRetrieval(t *testing.T) {
	fake := &llmtest.Fake{Respond: func(*llm.Request) (*llm.Response, error) {
		return llmtest.Text("A cost element is..."), nil
	}}
	answer, err := New(fake, testModels, nil).Dispatch(context.Background(), NewRequest(IntentConcept, "Cost Element"))
	require.NoError(t, err)

	assert.Empty(t, answer.Sources)
	assert.NotNil(t, answer.Sources)

	req := fake.Requests()[0]
	assert.Equal(t, "lite-model", req.Model)
	assert.False(t, req.Search)
}

func TestDispatchTextIsVerbatim(t *testing.T) {
	raw := "  **Heading**:\n- item \n\n"
	fake := &llmtest.Fake{Respond: func(*llm.Request) (*llm.Response, error) {
		return llmtest.Text(raw), nil
	}}
	answer, err := New(fake, testModels, nil).Dispatch(context.Background(), NewRequest(IntentSteps, "q"))
	require.NoError(t, err)
	assert.Equal(t, raw, answer.Text)
}

func TestDispatchMissingKeyDoesNoIO(t *testing.T) {
	answer, err := New(nil, testModels, nil).Dispatch(context.Background(), NewRequest(IntentSteps, "q"))
	assert.Nil(t, answer)
	assert.ErrorIs(t, err, llm.ErrMissingAPIKey)
}

func TestDispatchFailureReturnsNoAnswer(t *testing.T) {
	boom := errors.New("503 service unavailable")
	fake := &llmtest.Fake{Respond: func(*llm.Request) (*llm.Response, error) {
		return nil, boom
	}}

	answer, err := New(fake, testModels, nil).Dispatch(context.Background(), NewRequest(IntentFSD, "req"))
	assert.Nil(t, answer)
	assert.ErrorIs(t, err, ErrDispatch)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "503 service unavailable")
}
