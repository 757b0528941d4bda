package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// APIError is one of the error classes documented by the service, with the
// message extracted from the response body
type APIError struct {
	Code    int
	Message string
}

// RateLimitError is the documented 429 class. RetryAfter carries the
// optional Retry-After header, in seconds.
type RateLimitError struct {
	Message    string
	RetryAfter *int64
}

// UndocumentedError is any response outside the documented contract. Body
// holds the raw bytes, read up to the response cap.
type UndocumentedError struct {
	Code int
	Body []byte
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Documented error classes which carry a structured JSON body. The 429
// and 500 classes are handled separately.
var documentedStatus = map[int]bool{
	http.StatusBadRequest:         true,
	http.StatusUnauthorized:       true,
	http.StatusPaymentRequired:    true,
	http.StatusNotFound:           true,
	http.StatusServiceUnavailable: true,
	http.StatusGatewayTimeout:     true,
}

const undocumentedFallback = "Undocumented response"

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.Message)
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter != nil {
		return fmt.Sprintf("HTTP %d: %s (retry after %ds)", http.StatusTooManyRequests, e.Message, *e.RetryAfter)
	}
	return fmt.Sprintf("HTTP %d: %s", http.StatusTooManyRequests, e.Message)
}

func (e *UndocumentedError) Error() string {
	text := strings.TrimSpace(string(e.Body))
	if text == "" || !utf8.ValidString(text) {
		text = undocumentedFallback
	}
	return fmt.Sprintf("HTTP %d: %s", e.Code, text)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// decodeError normalizes a non-2xx response into exactly one error class.
// Documented classes carry a JSON body with a message field, except the
// 500 class which may instead be plain text. Any other status code, or a
// documented one whose body does not match the contract, is undocumented.
func decodeError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		body = nil
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		if message, ok := jsonMessage(body); ok {
			return &RateLimitError{Message: message, RetryAfter: retryAfter(resp.Header)}
		}
	case resp.StatusCode == http.StatusInternalServerError:
		if message, ok := jsonMessage(body); ok {
			return &APIError{Code: resp.StatusCode, Message: message}
		}
		// Not structured JSON, so the body is plain text, used verbatim
		return &APIError{Code: resp.StatusCode, Message: string(body)}
	case documentedStatus[resp.StatusCode]:
		if message, ok := jsonMessage(body); ok {
			return &APIError{Code: resp.StatusCode, Message: message}
		}
	}

	return &UndocumentedError{Code: resp.StatusCode, Body: body}
}

// jsonMessage extracts the message field from a structured error body
func jsonMessage(body []byte) (string, bool) {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Message == "" {
		return "", false
	}
	return payload.Message, true
}

// retryAfter parses the Retry-After header as integer seconds
func retryAfter(header http.Header) *int64 {
	value := header.Get("Retry-After")
	if value == "" {
		return nil
	}
	seconds, err := strconv.ParseInt(value, 10, 64)
	if err != nil || seconds < 0 {
		return nil
	}
	return &seconds
}
