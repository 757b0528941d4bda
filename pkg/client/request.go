package client

import (
	"encoding/json"
	"net/url"
	"strconv"

	// Packages
	"github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// TranscriptionRequest holds the parameters of one transcription call.
// Pointer fields distinguish "not set" from an explicit value: a nil field
// is omitted from the wire entirely and the server applies its own
// default, which is not the same as sending an explicit false.
type TranscriptionRequest struct {
	Model       string   `json:"model"`
	Language    *string  `json:"language,omitempty"`
	Format      *string  `json:"format,omitempty"` // json, verbose_json, text, srt, vtt
	Ruleset     *string  `json:"ruleset,omitempty"`
	Punctuate   *bool    `json:"punctuate,omitempty"`
	Diarize     *bool    `json:"diarize,omitempty"`
	Speakers    *uint64  `json:"speakers,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"` // 0.0 -> 1.0
	Prompt      *string  `json:"prompt,omitempty"`
	Vocabulary  []string `json:"vocab,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r TranscriptionRequest) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Values returns the query parameters for the request. Unset fields do
// not appear at all, and an empty vocabulary contributes no keys.
func (r TranscriptionRequest) Values() url.Values {
	query := url.Values{}
	query.Set("model", r.Model)
	if r.Language != nil {
		query.Set("language", types.PtrString(r.Language))
	}
	if r.Format != nil {
		query.Set("format", types.PtrString(r.Format))
	}
	if r.Ruleset != nil {
		query.Set("ruleset", types.PtrString(r.Ruleset))
	}
	if r.Punctuate != nil {
		query.Set("punctuate", strconv.FormatBool(types.PtrBool(r.Punctuate)))
	}
	if r.Diarize != nil {
		query.Set("diarize", strconv.FormatBool(types.PtrBool(r.Diarize)))
	}
	if r.Speakers != nil {
		query.Set("speakers", strconv.FormatUint(*r.Speakers, 10))
	}
	if r.Temperature != nil {
		query.Set("temperature", strconv.FormatFloat(types.PtrFloat64(r.Temperature), 'f', -1, 64))
	}
	if r.Prompt != nil {
		query.Set("prompt", types.PtrString(r.Prompt))
	}
	for _, term := range r.Vocabulary {
		query.Add("vocab", term)
	}
	return query
}
