package client_test

import (
	"testing"

	// Packages
	"github.com/dictate-dev/dictate/pkg/client"
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Request_001(t *testing.T) {
	// A bare request carries only the model parameter
	assert := assert.New(t)
	query := client.TranscriptionRequest{Model: "whisper-1"}.Values()
	assert.Equal("whisper-1", query.Get("model"))
	assert.Equal("model=whisper-1", query.Encode())
	for _, key := range []string{"language", "format", "ruleset", "punctuate", "diarize", "speakers", "temperature", "prompt", "vocab"} {
		_, ok := query[key]
		assert.False(ok, "unexpected key %q", key)
	}
}

func Test_Request_002(t *testing.T) {
	// An explicit false is sent on the wire, distinguishable from unset
	assert := assert.New(t)

	var req client.TranscriptionRequest
	req.Model = "whisper-1"
	assert.NoError(client.OptPunctuate(false)(&req))
	assert.NoError(client.OptDiarize(true)(&req))

	query := req.Values()
	assert.Equal("false", query.Get("punctuate"))
	assert.Equal("true", query.Get("diarize"))
}

func Test_Request_003(t *testing.T) {
	// Vocabulary terms are repeated in order; an empty list contributes
	// no keys
	assert := assert.New(t)

	var req client.TranscriptionRequest
	req.Model = "whisper-1"
	assert.NoError(client.OptVocabulary("alpha", "beta")(&req))
	assert.NoError(client.OptVocabulary("gamma")(&req))

	query := req.Values()
	assert.Equal([]string{"alpha", "beta", "gamma"}, query["vocab"])

	empty := client.TranscriptionRequest{Model: "whisper-1"}.Values()
	_, ok := empty["vocab"]
	assert.False(ok)
}

func Test_Request_004(t *testing.T) {
	// Options are validated at construction time
	assert := assert.New(t)
	var req client.TranscriptionRequest

	assert.Error(client.OptTemperature(-0.1)(&req))
	assert.Error(client.OptTemperature(1.1)(&req))
	assert.NoError(client.OptTemperature(0)(&req))
	assert.NoError(client.OptTemperature(1)(&req))

	assert.Error(client.OptFormat("xml")(&req))
	assert.NoError(client.OptFormat(client.FormatVerboseJson)(&req))

	assert.Error(client.OptRuleset("not-a-uuid")(&req))
	assert.NoError(client.OptRuleset("0c7e9c4e-8d1c-4f3a-9f59-9907f38a42a0")(&req))

	assert.Error(client.OptSpeakers(0)(&req))
	assert.NoError(client.OptSpeakers(2)(&req))

	assert.Error(client.OptLanguage("")(&req))
	assert.Error(client.OptVocabulary("")(&req))
}

func Test_Request_005(t *testing.T) {
	// All parameters serialize with their expected values
	assert := assert.New(t)

	var req client.TranscriptionRequest
	req.Model = "scribe_v1"
	for _, opt := range []client.Opt{
		client.OptLanguage("tr"),
		client.OptFormat(client.FormatSrt),
		client.OptRuleset("0c7e9c4e-8d1c-4f3a-9f59-9907f38a42a0"),
		client.OptPunctuate(true),
		client.OptDiarize(false),
		client.OptSpeakers(3),
		client.OptTemperature(0.7),
		client.OptPrompt("a meeting recording"),
		client.OptVocabulary("Kubernetes"),
	} {
		assert.NoError(opt(&req))
	}

	query := req.Values()
	assert.Equal("scribe_v1", query.Get("model"))
	assert.Equal("tr", query.Get("language"))
	assert.Equal("srt", query.Get("format"))
	assert.Equal("0c7e9c4e-8d1c-4f3a-9f59-9907f38a42a0", query.Get("ruleset"))
	assert.Equal("true", query.Get("punctuate"))
	assert.Equal("false", query.Get("diarize"))
	assert.Equal("3", query.Get("speakers"))
	assert.Equal("0.7", query.Get("temperature"))
	assert.Equal("a meeting recording", query.Get("prompt"))
	assert.Equal([]string{"Kubernetes"}, query["vocab"])
}
