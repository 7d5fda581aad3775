package assistant

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Raviisinghh-stack/Fico-implementation/internal/audio"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/dispatch"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/document"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/llm"
)

var (
	ErrEmptyQuery    = errors.New("query is empty")
	ErrEmptyDocument = errors.New("no FSD requirements provided")
	ErrNoText        = errors.New("no response text to read aloud")

	// ErrOffTopic is returned when the topic gate rejects the input.
	ErrOffTopic = errors.New("input is not about SAP FICO")
	// ErrOffTopicDocument is the FSD variant; errors.Is matches ErrOffTopic too.
	ErrOffTopicDocument = fmt.Errorf("%w: document", ErrOffTopic)

	ErrGate   = errors.New("topic validation failed")
	ErrSpeech = errors.New("speech synthesis failed")
)

// Kind groups errors by how the caller should react.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindConfiguration
	KindOffTopic
	KindTransport
	KindNoAudio
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConfiguration:
		return "configuration"
	case KindOffTopic:
		return "off_topic"
	case KindTransport:
		return "transport"
	case KindNoAudio:
		return "no_audio"
	default:
		return "unknown"
	}
}

// Classify maps err onto the error taxonomy.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrEmptyQuery), errors.Is(err, ErrEmptyDocument),
		errors.Is(err, ErrNoText), errors.Is(err, document.ErrUnsupportedType):
		return KindValidation
	case errors.Is(err, llm.ErrMissingAPIKey):
		return KindConfiguration
	case errors.Is(err, ErrOffTopic):
		return KindOffTopic
	case errors.Is(err, audio.ErrNoAudioData):
		return KindNoAudio
	case errors.Is(err, ErrGate), errors.Is(err, dispatch.ErrDispatch), errors.Is(err, ErrSpeech):
		return KindTransport
	default:
		return KindUnknown
	}
}

// Message returns the text shown to the user for err.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyQuery):
		return "Please enter a query to proceed."
	case errors.Is(err, ErrEmptyDocument):
		return "Please provide FSD requirements by pasting text or uploading a document."
	case errors.Is(err, ErrNoText):
		return "There is no response text to read aloud."
	case errors.Is(err, document.ErrUnsupportedType):
		return "Unsupported file type. Please select a .txt, .md or .csv document."
	case errors.Is(err, llm.ErrMissingAPIKey):
		return "Error: The Gemini API Key is missing. This app requires a valid API key to function."
	case errors.Is(err, ErrOffTopicDocument):
		return "Error: The provided document or text does not appear to be related to SAP FICO requirements. Please provide a relevant FSD."
	case errors.Is(err, ErrOffTopic):
		return "Error: This query does not appear to be related to SAP FICO. Please ask a question about SAP Finance and Controlling."
	case errors.Is(err, ErrGate):
		return "An error occurred during topic validation: " + detail(err, ErrGate)
	case errors.Is(err, audio.ErrNoAudioData):
		return "Could not generate audio: " + audio.ErrNoAudioData.Error()
	case errors.Is(err, ErrSpeech):
		return "Could not generate audio: " + detail(err, ErrSpeech)
	case errors.Is(err, dispatch.ErrDispatch):
		return "An error occurred: " + detail(err, dispatch.ErrDispatch)
	default:
		return "An error occurred: " + err.Error()
	}
}

// detail strips the sentinel prefix so only the underlying cause is shown.
func detail(err, sentinel error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, sentinel.Error()+": "); ok {
		return rest
	}
	return msg
}
