package config

const (
	DefaultFullModel   = "gemini-2.5-flash"
	DefaultLiteModel   = "gemini-2.5-flash-lite"
	DefaultSpeechModel = "gemini-2.5-flash-preview-tts"
	DefaultVoice       = "Charon"
)

type ModelInfo struct {
	ID          string
	Name        string
	Description string
	Speech      bool
}

var Models = []ModelInfo{
	{
		ID:          DefaultFullModel,
		Name:        "Gemini 2.5 Flash",
		Description: "Step guidance and FSD analysis, search grounding",
	},
	{
		ID:          DefaultLiteModel,
		Name:        "Gemini 2.5 Flash-Lite",
		Description: "Concept explanations and topic checks",
	},
	{
		ID:          DefaultSpeechModel,
		Name:        "Gemini 2.5 Flash TTS",
		Description: "Read-aloud audio",
		Speech:      true,
	},
}

func GetModel(id string) *ModelInfo {
	for _, m := range Models {
		if m.ID == id {
			return &m
		}
	}
	return nil
}

// DisplayName returns a friendly model name, falling back to the raw id.
func DisplayName(id string) string {
	if m := GetModel(id); m != nil {
		return m.Name
	}
	return id
}
