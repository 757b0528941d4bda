package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	// Packages
	"github.com/dictate-dev/dictate/pkg/schema"
	"github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Transcript is the payload of a successful transcription. The server
// declares the shape through the response content type: plain text is
// carried verbatim, JSON is one of the two transcript shapes.
type Transcript struct {
	mimetype string
	text     string
	body     []byte
	payload  *schema.Transcription
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// decodeTranscript dispatches on the declared content type of a 200
// response. A content type or body outside the contract is routed to
// UndocumentedError.
func decodeTranscript(resp *http.Response) (*Transcript, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}

	mimetype, err := types.ParseContentType(resp.Header.Get(types.ContentTypeHeader))
	if err != nil {
		return nil, &UndocumentedError{Code: resp.StatusCode, Body: body}
	}

	switch mimetype {
	case types.ContentTypeJSON:
		var payload schema.Transcription
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, &UndocumentedError{Code: resp.StatusCode, Body: body}
		}
		return &Transcript{mimetype: mimetype, text: payload.Text, body: body, payload: &payload}, nil
	case types.ContentTypeTextPlain:
		return &Transcript{mimetype: mimetype, text: string(body)}, nil
	}

	return nil, &UndocumentedError{Code: resp.StatusCode, Body: body}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Text returns the transcript text regardless of shape
func (t *Transcript) Text() string {
	return t.text
}

// Transcription returns the decoded JSON payload, or nil when the server
// sent plain text
func (t *Transcript) Transcription() *schema.Transcription {
	return t.payload
}

// Write prints the transcript. Plain text is written verbatim; JSON is
// re-encoded through a generic value so keys come out sorted with stable
// indentation.
func (t *Transcript) Write(w io.Writer) error {
	if t.body == nil {
		_, err := io.WriteString(w, t.text)
		return err
	}

	var payload any
	if err := json.Unmarshal(t.body, &payload); err != nil {
		return err
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
