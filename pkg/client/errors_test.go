package client_test

import (
	"testing"

	// Packages
	"github.com/dictate-dev/dictate/pkg/client"
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Error_001(t *testing.T) {
	// Rate limit formatting with and without the Retry-After value
	assert := assert.New(t)

	after := int64(30)
	err := &client.RateLimitError{Message: "Too many requests", RetryAfter: &after}
	assert.Equal("HTTP 429: Too many requests (retry after 30s)", err.Error())

	err = &client.RateLimitError{Message: "Too many requests"}
	assert.Equal("HTTP 429: Too many requests", err.Error())
}

func Test_Error_002(t *testing.T) {
	assert := assert.New(t)
	err := &client.APIError{Code: 401, Message: "invalid API key"}
	assert.Equal("HTTP 401: invalid API key", err.Error())
}

func Test_Error_003(t *testing.T) {
	// Undocumented responses fall back to a fixed message when the body
	// is empty or unreadable
	assert := assert.New(t)

	err := &client.UndocumentedError{Code: 418, Body: []byte("I'm a teapot")}
	assert.Equal("HTTP 418: I'm a teapot", err.Error())

	err = &client.UndocumentedError{Code: 599}
	assert.Equal("HTTP 599: Undocumented response", err.Error())

	err = &client.UndocumentedError{Code: 599, Body: []byte("  \n ")}
	assert.Equal("HTTP 599: Undocumented response", err.Error())

	err = &client.UndocumentedError{Code: 599, Body: []byte{0xff, 0xfe}}
	assert.Equal("HTTP 599: Undocumented response", err.Error())
}
