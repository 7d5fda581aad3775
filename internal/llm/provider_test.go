package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseSources(t *testing.T) {
	tests := []struct {
		name string
		resp *Response
		want []Source
	}{
		{
			name: "nil response",
			resp: nil,
			want: []Source{},
		},
		{
			name: "no grounding metadata",
			resp: &Response{Candidates: []Candidate{{Parts: []Part{{Text: "hi"}}}}},
			want: []Source{},
		},
		{
			name: "filters incomplete chunks and keeps order",
			resp: &Response{Candidates: []Candidate{{
				Grounding: &GroundingMetadata{Chunks: []GroundingChunk{
					{Web: &WebSource{URI: "https://b.example", Title: "B"}},
					{Web: &WebSource{URI: "", Title: "no uri"}},
					{Web: nil},
					{Web: &WebSource{URI: "https://no-title.example"}},
					{Web: &WebSource{URI: "https://a.example", Title: "A"}},
				}},
			}}},
			want: []Source{
				{URI: "https://b.example", Title: "B"},
				{URI: "https://a.example", Title: "A"},
			},
		},
		{
			name: "only first candidate is read",
			resp: &Response{Candidates: []Candidate{
				{},
				{Grounding: &GroundingMetadata{Chunks: []GroundingChunk{{Web: &WebSource{URI: "u", Title: "t"}}}}},
			}},
			want: []Source{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.resp.Sources()
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResponseInlineAudio(t *testing.T) {
	withAudio := &Response{Candidates: []Candidate{{Parts: []Part{
		{InlineData: &InlineData{MIMEType: "audio/L16;rate=24000", Data: []byte{1, 2}}},
	}}}}
	data, ok := withAudio.InlineAudio()
	assert.True(t, ok)
	assert.Equal(t, []byte{1, 2}, data.Data)

	for name, resp := range map[string]*Response{
		"nil":         nil,
		"no parts":    {Candidates: []Candidate{{}}},
		"text part":   {Candidates: []Candidate{{Parts: []Part{{Text: "x"}}}}},
		"empty bytes": {Candidates: []Candidate{{Parts: []Part{{InlineData: &InlineData{}}}}}},
	} {
		t.Run(name, func(t *testing.T) {
			_, ok := resp.InlineAudio()
			assert.False(t, ok)
		})
	}
}
