package main

import (
	"encoding/json"
	"fmt"
	"os"

	// Packages
	tablewriter "github.com/djthorpe/go-tablewriter"
	client "github.com/dictate-dev/dictate/pkg/client"
	schema "github.com/dictate-dev/dictate/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ModelsCmd struct {
	Provider  string `flag:"" help:"Keep models from this provider"`
	Language  string `flag:"" help:"Keep models supporting this language"`
	Diarize   bool   `flag:"" help:"Keep models with speaker diarization"`
	Srt       bool   `flag:"" help:"Keep models with SRT output"`
	Vtt       bool   `flag:"" help:"Keep models with VTT output"`
	Punctuate bool   `flag:"" help:"Keep models with punctuation"`
	Stream    bool   `flag:"" help:"Keep models with streaming"`
	Vocab     bool   `flag:"" help:"Keep models with custom vocabulary"`
	Output    string `flag:"" help:"Output format" default:"json" enum:"json,table"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ModelsCmd) Run(app *Globals) error {
	// Create a client for the service
	remote, err := app.Client()
	if err != nil {
		return err
	}

	// Fetch the catalog
	models, err := remote.ListModels(app.ctx)
	if err != nil {
		return err
	}

	// Apply the filters
	models = client.ModelFilter{
		Provider:   schema.Provider(cmd.Provider),
		Language:   cmd.Language,
		Diarize:    cmd.Diarize,
		Srt:        cmd.Srt,
		Vtt:        cmd.Vtt,
		Punctuate:  cmd.Punctuate,
		Stream:     cmd.Stream,
		Vocabulary: cmd.Vocab,
	}.Apply(models)

	// Write the models to stdout
	if cmd.Output == "table" {
		return app.writer.Write(models, tablewriter.OptHeader())
	}
	data, err := json.MarshalIndent(models, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}
