package client

import (
	"context"
	"io"
	"net/http"
	"os"

	// Packages
	"github.com/djthorpe/go-errors"
)

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Transcribe uploads audio or video in the language of the speech and
// returns the transcript. The reader is streamed to the service as the
// request body; it is never buffered in memory.
func (c *Client) Transcribe(ctx context.Context, model string, r io.Reader, opt ...Opt) (*Transcript, error) {
	req := TranscriptionRequest{Model: model}

	// Set default model
	if req.Model == "" {
		req.Model = DefaultModel
	}

	// Apply request options
	for _, o := range opt {
		if err := o(&req); err != nil {
			return nil, err
		}
	}

	// Check file
	if r == nil {
		return nil, errors.ErrBadParameter.With("file is required")
	}

	// Create the request with the query parameters and streamed body
	httpreq, err := http.NewRequestWithContext(ctx, http.MethodPost, resolveUrl(c.endpoint, transcribePath, req.Values()).String(), r)
	if err != nil {
		return nil, err
	}
	httpreq.Header.Set("Content-Type", "application/octet-stream")

	// Set the content length when the body is a file, so the transport
	// does not fall back to chunked encoding
	if f, ok := r.(*os.File); ok {
		if info, err := f.Stat(); err == nil {
			httpreq.ContentLength = info.Size()
		}
	}

	// Request->Response
	resp, err := c.do(httpreq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	// Return success
	return decodeTranscript(resp)
}
