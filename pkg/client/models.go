package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	// Packages
	"github.com/dictate-dev/dictate/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListModels returns the model catalog. The catalog is fetched fresh on
// every call and is never cached.
func (c *Client) ListModels(ctx context.Context) ([]schema.Model, error) {
	var response struct {
		Models []schema.Model `json:"models"`
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resolveUrl(c.endpoint, modelsPath, nil).String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	// Decode the catalog, treating an unknown shape as undocumented
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, &UndocumentedError{Code: resp.StatusCode, Body: body}
	}

	// Return success
	return response.Models, nil
}
