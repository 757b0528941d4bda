package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	tablewriter "github.com/djthorpe/go-tablewriter"
	client "github.com/dictate-dev/dictate/pkg/client"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	Url     string        `name:"url" help:"URL of the transcription service (can be set from DICTATE_URL env)" default:"${DICTATE_URL}"`
	Key     string        `name:"key" help:"API key (can be set from DICTATE_API_KEY env)" default:"${DICTATE_API_KEY}"`
	Timeout time.Duration `name:"timeout" help:"Request timeout" default:"5m"`
	Debug   bool          `name:"debug" help:"Enable debug output"`

	// Writer and context
	writer *tablewriter.Writer
	ctx    context.Context
}

type CLI struct {
	Globals

	Transcribe TranscribeCmd `cmd:"transcribe" help:"Transcribe an audio or video file"`
	Models     ModelsCmd     `cmd:"models" help:"List transcription models"`
	Ping       PingCmd       `cmd:"ping" help:"Ping the transcription service"`
	Version    VersionCmd    `cmd:"version" help:"Print version information"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		name = filepath.Base(name)
	}

	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(name),
		kong.Description("speech transcription service client"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"DICTATE_URL":     envOrDefault("DICTATE_URL", client.DefaultEndpoint),
			"DICTATE_API_KEY": envOrDefault("DICTATE_API_KEY", ""),
			"DEFAULT_MODEL":   client.DefaultModel,
		},
	)

	// Create a tablewriter object with text output
	cli.Globals.writer = tablewriter.New(os.Stdout, tablewriter.OptOutputText())

	// Create a context
	var cancel context.CancelFunc
	cli.Globals.ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Run the command. Errors are written as a single line on stderr and
	// the process exits non-zero.
	if err := cmd.Run(&cli.Globals); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// Client creates a service client from the global options
func (g *Globals) Client() (*client.Client, error) {
	opts := []client.ClientOpt{
		client.OptTimeout(g.Timeout),
	}
	if g.Url != "" {
		opts = append(opts, client.OptEndpoint(g.Url))
	}
	if g.Key != "" {
		opts = append(opts, client.OptAPIKey(g.Key))
	}
	if g.Debug {
		opts = append(opts, client.OptTrace(os.Stderr, true))
	}
	return client.New(opts...)
}

func envOrDefault(name, def string) string {
	if value := os.Getenv(name); value != "" {
		return value
	} else {
		return def
	}
}
