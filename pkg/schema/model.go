package schema

import "encoding/json"

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Provider identifies the upstream engine which backs a catalog model
type Provider string

// Model describes one entry in the service model catalog
type Model struct {
	Id          string   `json:"id" writer:",width:28"`
	Provider    Provider `json:"provider" writer:",width:12"`
	Available   bool     `json:"available"`
	Languages   []string `json:"languages,omitempty" writer:",width:24,wrap"` // nil when unknown
	Diarize     bool     `json:"diarize,omitempty"`
	Srt         bool     `json:"srt,omitempty"`
	Vtt         bool     `json:"vtt,omitempty"`
	Punctuate   bool     `json:"punctuate,omitempty"`
	Stream      bool     `json:"stream,omitempty"`
	Vocabulary  bool     `json:"vocabulary,omitempty"`
	CostPerHour float64  `json:"cost_per_hour,omitempty" writer:",right"`
}

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ProviderOpenAI     Provider = "openai"
	ProviderElevenLabs Provider = "elevenlabs"
	ProviderDeepgram   Provider = "deepgram"
	ProviderWhisperCpp Provider = "whispercpp"
)

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Model) String() string {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
