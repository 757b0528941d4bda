package main

import (
	"os"

	// Packages
	errors "github.com/djthorpe/go-errors"
	client "github.com/dictate-dev/dictate/pkg/client"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type TranscribeCmd struct {
	Path        string   `arg:"" help:"Path to audio or video file"`
	Model       string   `flag:"" help:"Model to use" default:"${DEFAULT_MODEL}"`
	Language    string   `flag:"" help:"Language of the speech"`
	Format      string   `flag:"" help:"Transcript format (json, verbose_json, text, srt, vtt)"`
	Ruleset     string   `flag:"" help:"Post-processing ruleset identifier"`
	Punctuate   bool     `flag:"" help:"Force punctuation on" xor:"punctuate"`
	NoPunctuate bool     `flag:"" help:"Force punctuation off" xor:"punctuate"`
	Diarize     bool     `flag:"" help:"Force speaker diarization on" xor:"diarize"`
	NoDiarize   bool     `flag:"" help:"Force speaker diarization off" xor:"diarize"`
	Speakers    *uint64  `flag:"" help:"Expected number of speakers"`
	Temperature *float64 `flag:"" help:"Sampling temperature, between 0 and 1"`
	Prompt      *string  `flag:"" help:"Prompt to guide the model's style or continue a previous audio segment"`
	Vocab       []string `flag:"" help:"Custom vocabulary term (repeatable)"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *TranscribeCmd) Run(app *Globals) error {
	// Create a client for the service
	remote, err := app.Client()
	if err != nil {
		return err
	}

	// Open the audio file before any network traffic
	f, err := os.Open(cmd.Path)
	if err != nil {
		return errors.ErrNotFound.Withf("%q", cmd.Path)
	}
	defer f.Close()

	// Create an array of parameters for the transcription. A flag which
	// is not set contributes no parameter, so the server applies its own
	// defaults.
	params := []client.Opt{}
	if cmd.Language != "" {
		params = append(params, client.OptLanguage(cmd.Language))
	}
	if cmd.Format != "" {
		params = append(params, client.OptFormat(cmd.Format))
	}
	if cmd.Ruleset != "" {
		params = append(params, client.OptRuleset(cmd.Ruleset))
	}
	if cmd.Punctuate {
		params = append(params, client.OptPunctuate(true))
	} else if cmd.NoPunctuate {
		params = append(params, client.OptPunctuate(false))
	}
	if cmd.Diarize {
		params = append(params, client.OptDiarize(true))
	} else if cmd.NoDiarize {
		params = append(params, client.OptDiarize(false))
	}
	if cmd.Speakers != nil {
		params = append(params, client.OptSpeakers(*cmd.Speakers))
	}
	if cmd.Temperature != nil {
		params = append(params, client.OptTemperature(*cmd.Temperature))
	}
	if cmd.Prompt != nil {
		params = append(params, client.OptPrompt(*cmd.Prompt))
	}
	if len(cmd.Vocab) > 0 {
		params = append(params, client.OptVocabulary(cmd.Vocab...))
	}

	// Perform the transcription
	transcript, err := remote.Transcribe(app.ctx, cmd.Model, f, params...)
	if err != nil {
		return err
	}

	// Write the transcript to stdout
	return transcript.Write(os.Stdout)
}
