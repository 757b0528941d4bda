package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	"github.com/dictate-dev/dictate/pkg/client"
	"github.com/dictate-dev/dictate/pkg/schema"
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Models_001(t *testing.T) {
	assert := assert.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodGet, r.Method)
		assert.Equal("Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"models": [
			{"id": "whisper-1", "provider": "openai", "available": true, "languages": ["en", "tr-TR"], "diarize": false, "punctuate": true, "cost_per_hour": 0.36},
			{"id": "scribe_v1", "provider": "elevenlabs", "available": false, "diarize": true}
		]}`))
	}))
	defer server.Close()

	models, err := NewClient(t, server).ListModels(context.Background())
	if !assert.NoError(err) {
		assert.FailNow("failed to list models")
	}
	assert.Len(models, 2)
	assert.Equal("whisper-1", models[0].Id)
	assert.Equal(schema.ProviderOpenAI, models[0].Provider)
	assert.True(models[0].Available)
	assert.Equal([]string{"en", "tr-TR"}, models[0].Languages)
	assert.True(models[0].Punctuate)
	assert.Equal(0.36, models[0].CostPerHour)
	assert.Nil(models[1].Languages)
	assert.False(models[1].Available)
}

func Test_Models_002(t *testing.T) {
	// Catalog failures normalize like any other call
	assert := assert.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "invalid API key"}`))
	}))
	defer server.Close()

	_, err := NewClient(t, server).ListModels(context.Background())
	assert.Error(err)
	assert.Equal("HTTP 401: invalid API key", err.Error())
}

func Test_Models_003(t *testing.T) {
	// An unparseable catalog body is an undocumented response
	assert := assert.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"models": "nope"}`))
	}))
	defer server.Close()

	_, err := NewClient(t, server).ListModels(context.Background())
	assert.Error(err)
	assert.IsType(&client.UndocumentedError{}, err)
}
