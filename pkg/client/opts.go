package client

import (
	"slices"

	// Packages
	"github.com/djthorpe/go-errors"
	"github.com/google/uuid"
	"github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt modifies a transcription request before it is sent
type Opt func(*TranscriptionRequest) error

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// DefaultModel is used when no model is named
const DefaultModel = "whisper-1"

const (
	FormatJson        = "json"
	FormatVerboseJson = "verbose_json"
	FormatText        = "text"
	FormatSrt         = "srt"
	FormatVtt         = "vtt"
)

var (
	Formats = []string{
		FormatJson, FormatVerboseJson, FormatText, FormatSrt, FormatVtt,
	}
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Set language for transcription
func OptLanguage(v string) Opt {
	return func(o *TranscriptionRequest) error {
		if v == "" {
			return errors.ErrBadParameter.With("language is empty")
		}
		o.Language = types.StringPtr(v)
		return nil
	}
}

// Set format for the transcript (json, verbose_json, text, srt, vtt)
func OptFormat(v string) Opt {
	return func(o *TranscriptionRequest) error {
		if !slices.Contains(Formats, v) {
			return errors.ErrBadParameter.Withf("format %q not supported", v)
		}
		o.Format = types.StringPtr(v)
		return nil
	}
}

// Apply a post-processing ruleset by its identifier
func OptRuleset(v string) Opt {
	return func(o *TranscriptionRequest) error {
		if _, err := uuid.Parse(v); err != nil {
			return errors.ErrBadParameter.Withf("ruleset %q is not a valid identifier", v)
		}
		o.Ruleset = types.StringPtr(v)
		return nil
	}
}

// Force punctuation on or off. Omitting the option leaves the choice to
// the server.
func OptPunctuate(v bool) Opt {
	return func(o *TranscriptionRequest) error {
		o.Punctuate = types.BoolPtr(v)
		return nil
	}
}

// Identify speakers in the audio and return their speech separately.
// Omitting the option leaves the choice to the server.
func OptDiarize(v bool) Opt {
	return func(o *TranscriptionRequest) error {
		o.Diarize = types.BoolPtr(v)
		return nil
	}
}

// The number of speakers expected in the audio
func OptSpeakers(v uint64) Opt {
	return func(o *TranscriptionRequest) error {
		if v == 0 {
			return errors.ErrBadParameter.With("speakers must be at least 1")
		}
		speakers := v
		o.Speakers = &speakers
		return nil
	}
}

// The sampling temperature, between 0 and 1
func OptTemperature(v float64) Opt {
	return func(o *TranscriptionRequest) error {
		if v < 0 || v > 1 {
			return errors.ErrBadParameter.Withf("temperature %v out of range", v)
		}
		o.Temperature = types.Float64Ptr(v)
		return nil
	}
}

// Text to guide the model's style or continue a previous audio segment
func OptPrompt(v string) Opt {
	return func(o *TranscriptionRequest) error {
		o.Prompt = types.StringPtr(v)
		return nil
	}
}

// Append custom vocabulary terms, in order
func OptVocabulary(terms ...string) Opt {
	return func(o *TranscriptionRequest) error {
		for _, term := range terms {
			if term == "" {
				return errors.ErrBadParameter.With("empty vocabulary term")
			}
			o.Vocabulary = append(o.Vocabulary, term)
		}
		return nil
	}
}
