package gate

import (
	"context"
	"errors"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raviisinghh-stack/Fico-implementation/internal/llm"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/llm/llmtest"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/prompts"
)

func TestAccepts(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"YES", true},
		{"Yes", true},
		{"YES ", true},
		{"yes\n", true},
		{"  yEs\t", true},
		{"NO", false},
		{"Yes, because it mentions FI.", false},
		{"YES.", false},
		{"YESNO", false},
		{"", false},
		{"Y E S", false},
	}
	for _, tt := range tests {
		if got := Accepts(tt.answer); got != tt.want {
			t.Errorf("Accepts(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

func TestIsOnTopicRequest(t *testing.T) {
	fake := &llmtest.Fake{Respond: func(*llm.Request) (*llm.Response, error) {
		return llmtest.Text("Yes\n"), nil
	}}
	g := New(fake, Options{Model: "lite"})

	ok, err := g.IsOnTopic(context.Background(), "How to configure a new Company Code")
	require.NoError(t, err)
	assert.True(t, ok)

	reqs := fake.Requests()
	require.Len(t, reqs, 1)
	req := reqs[0]
	assert.Equal(t, "lite", req.Model)
	assert.Equal(t, "How to configure a new Company Code", req.Content)
	assert.Equal(t, prompts.TopicValidation(), req.SystemInstruction)
	require.NotNil(t, req.Temperature)
	assert.Equal(t, float32(0), *req.Temperature)
	assert.False(t, req.Search)
}

func TestIsOnTopicRejectsVerboseAnswer(t *testing.T) {
	fake := &llmtest.Fake{Respond: func(*llm.Request) (*llm.Response, error) {
		return llmtest.Text("Yes, because cost centers are CO objects."), nil
	}}
	ok, err := New(fake, Options{}).IsOnTopic(context.Background(), "cost center")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsOnTopicPropagatesTransportError(t *testing.T) {
	boom := errors.New("connection reset")
	fake := &llmtest.Fake{Respond: func(*llm.Request) (*llm.Response, error) {
		return nil, boom
	}}
	ok, err := New(fake, Options{}).IsOnTopic(context.Background(), "OX02")
	assert.False(t, ok)
	assert.ErrorIs(t, err, boom)
}

func TestIsOnTopicWithoutClient(t *testing.T) {
	_, err := New(nil, Options{}).IsOnTopic(context.Background(), "OX02")
	assert.ErrorIs(t, err, llm.ErrMissingAPIKey)
}

func TestVerdictCache(t *testing.T) {
	answers := []string{"NO", "YES"}
	calls := 0
	fake := &llmtest.Fake{Respond: func(*llm.Request) (*llm.Response, error) {
		a := answers[calls%len(answers)]
		calls++
		return llmtest.Text(a), nil
	}}
	g := New(fake, Options{Model: "lite", CacheTTL: time.Minute})

	for i := 0; i < 3; i++ {
		ok, err := g.IsOnTopic(context.Background(), "  what is a pizza  ")
		require.NoError(t, err)
		assert.False(t, ok)
	}
	assert.Equal(t, 1, fake.Calls("lite"), "repeated queries hit the cache")

	ok, err := g.IsOnTopic(context.Background(), "what is OKB9")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, fake.Calls("lite"))
}

func TestErrorsAreNotCached(t *testing.T) {
	fail := true
	fake := &llmtest.Fake{Respond: func(*llm.Request) (*llm.Response, error) {
		if fail {
			return nil, errors.New("timeout")
		}
		return llmtest.Text("YES"), nil
	}}
	g := New(fake, Options{CacheTTL: time.Minute})

	_, err := g.IsOnTopic(context.Background(), "FS00")
	require.Error(t, err)

	fail = false
	ok, err := g.IsOnTopic(context.Background(), "FS00")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"YES", 40, "YES"},
		{"Übersicht", 9, "Übersicht"},
		{"Überprüfung der Buchungsperioden", 5, "Überp..."},
		{"日本語の回答です", 3, "日本語..."},
	}
	for _, tt := range tests {
		got := truncate(tt.in, tt.n)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncate(%q, %d) split a rune: %q", tt.in, tt.n, got)
		}
	}
}
