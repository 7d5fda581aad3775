package session

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raviisinghh-stack/Fico-implementation/internal/assistant"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/audio"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/dispatch"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/llm"
)

func answer(text string) *dispatch.Answer {
	return &dispatch.Answer{Text: text, Sources: []llm.Source{{URI: "https://help.sap.com", Title: "SAP Help"}}}
}

func artifact(t *testing.T) *audio.Artifact {
	t.Helper()
	a, err := audio.NewFileArtifact(t.TempDir(), audio.EncodeWAV(make([]byte, 8), audio.SpeechFormat))
	require.NoError(t, err)
	return a
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// solution returns a machine already showing an answer.
func solution(t *testing.T) *Machine {
	t.Helper()
	m := New()
	tk, err := m.BeginAnswer()
	require.NoError(t, err)
	require.True(t, m.CompleteAnswer(tk, answer("Step 1")))
	return m
}

func TestInitialState(t *testing.T) {
	m := New()
	assert.Equal(t, ViewMain, m.View())
	assert.False(t, m.AnswerLoading())
	assert.False(t, m.SpeechLoading())
	assert.False(t, m.CanSpeak())
	assert.Nil(t, m.Err())
}

func TestAnswerSuccess(t *testing.T) {
	m := New()
	m.SetError(assistant.ErrEmptyQuery)

	tk, err := m.BeginAnswer()
	require.NoError(t, err)
	assert.True(t, m.AnswerLoading())
	assert.Nil(t, m.Err(), "new submission clears the error")
	assert.Equal(t, ViewMain, m.View(), "loading does not change the view")

	_, err = m.BeginAnswer()
	assert.ErrorIs(t, err, ErrBusy)

	require.True(t, m.CompleteAnswer(tk, answer("Step 1")))
	assert.Equal(t, ViewSolution, m.View())
	assert.Equal(t, "Step 1", m.Text())
	assert.Len(t, m.Sources(), 1)
	assert.False(t, m.AnswerLoading())
	assert.True(t, m.CanSpeak())
}

func TestAnswerFailureStaysOnMain(t *testing.T) {
	m := New()
	tk, _ := m.BeginAnswer()

	boom := errors.New("boom")
	require.True(t, m.FailAnswer(tk, boom))
	assert.Equal(t, ViewMain, m.View())
	assert.Equal(t, boom, m.Err())
	assert.False(t, m.AnswerLoading())
}

func TestStaleAnswerIsDiscarded(t *testing.T) {
	m := New()
	tk, _ := m.BeginAnswer()
	m.Back()

	assert.False(t, m.CompleteAnswer(tk, answer("late")))
	assert.Equal(t, ViewMain, m.View())
	assert.Empty(t, m.Text())

	assert.False(t, m.FailAnswer(tk, errors.New("late")))
	assert.Nil(t, m.Err())
}

func TestSpeechLifecycle(t *testing.T) {
	m := solution(t)

	tk, err := m.BeginSpeech()
	require.NoError(t, err)
	assert.True(t, m.SpeechLoading())
	assert.False(t, m.CanSpeak())

	_, err = m.BeginSpeech()
	assert.ErrorIs(t, err, ErrBusy)

	first := artifact(t)
	require.True(t, m.CompleteSpeech(tk, first))
	assert.Same(t, first, m.Artifact())

	tk, err = m.BeginSpeech()
	require.NoError(t, err)
	assert.Nil(t, m.Artifact())
	assert.False(t, exists(first.Path), "superseded artifact is released")

	second := artifact(t)
	require.True(t, m.CompleteSpeech(tk, second))

	m.Back()
	assert.Equal(t, ViewMain, m.View())
	assert.Empty(t, m.Text())
	assert.Nil(t, m.Sources())
	assert.Nil(t, m.Artifact())
	assert.False(t, exists(second.Path), "artifact released on back")
}

func TestSpeechRequiresText(t *testing.T) {
	m := New()
	_, err := m.BeginSpeech()
	assert.ErrorIs(t, err, assistant.ErrNoText)
	assert.ErrorIs(t, m.Err(), assistant.ErrNoText)
	assert.False(t, m.SpeechLoading())

	m = New()
	tk, _ := m.BeginAnswer()
	m.CompleteAnswer(tk, answer("   "))
	_, err = m.BeginSpeech()
	assert.ErrorIs(t, err, assistant.ErrNoText)
}

func TestStaleSpeechIsReleased(t *testing.T) {
	m := solution(t)
	tk, _ := m.BeginSpeech()
	m.Back()

	late := artifact(t)
	assert.False(t, m.CompleteSpeech(tk, late))
	assert.Nil(t, m.Artifact())
	assert.False(t, exists(late.Path))

	assert.False(t, m.FailSpeech(tk, errors.New("late")))
	assert.Nil(t, m.Err())
}

func TestSpeechFailureKeepsSolution(t *testing.T) {
	m := solution(t)
	tk, _ := m.BeginSpeech()

	require.True(t, m.FailSpeech(tk, audio.ErrNoAudioData))
	assert.Equal(t, ViewSolution, m.View())
	assert.ErrorIs(t, m.Err(), audio.ErrNoAudioData)
	assert.True(t, m.CanSpeak(), "user may retry")
}

func TestNewAnswerReleasesArtifact(t *testing.T) {
	m := solution(t)
	tk, _ := m.BeginSpeech()
	a := artifact(t)
	m.CompleteSpeech(tk, a)

	atk, _ := m.BeginAnswer()
	require.True(t, m.CompleteAnswer(atk, answer("Step 2")))
	assert.Nil(t, m.Artifact())
	assert.False(t, exists(a.Path))
}

func TestTicketsAreUnique(t *testing.T) {
	m := New()
	seen := map[Ticket]bool{}
	for i := 0; i < 5; i++ {
		tk, err := m.BeginAnswer()
		require.NoError(t, err)
		assert.NotZero(t, tk)
		assert.False(t, seen[tk])
		seen[tk] = true
		m.FailAnswer(tk, errors.New("x"))
	}
}
