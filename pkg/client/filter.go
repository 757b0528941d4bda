package client

import (
	// Packages
	"github.com/dictate-dev/dictate/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ModelFilter selects catalog entries. Each set field adds one predicate
// and all active predicates must hold. Unavailable models are always
// dropped, whether or not any predicate is set.
type ModelFilter struct {
	Provider   schema.Provider
	Language   string
	Diarize    bool
	Srt        bool
	Vtt        bool
	Punctuate  bool
	Stream     bool
	Vocabulary bool
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Apply returns the models which pass every active predicate, preserving
// their original order.
func (f ModelFilter) Apply(models []schema.Model) []schema.Model {
	result := make([]schema.Model, 0, len(models))
	for _, model := range models {
		if f.matches(model) {
			result = append(result, model)
		}
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (f ModelFilter) matches(model schema.Model) bool {
	if !model.Available {
		return false
	}
	if f.Provider != "" && model.Provider != f.Provider {
		return false
	}
	if f.Language != "" && !MatchesLanguage(model.Languages, f.Language) {
		return false
	}
	if f.Diarize && !model.Diarize {
		return false
	}
	if f.Srt && !model.Srt {
		return false
	}
	if f.Vtt && !model.Vtt {
		return false
	}
	if f.Punctuate && !model.Punctuate {
		return false
	}
	if f.Stream && !model.Stream {
		return false
	}
	if f.Vocabulary && !model.Vocabulary {
		return false
	}
	return true
}
