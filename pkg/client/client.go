package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"strings"
	"time"

	// Packages
	"github.com/djthorpe/go-errors"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client calls the Dictate transcription service
type Client struct {
	http.Client
	endpoint *url.URL
	apikey   string
	trace    io.Writer
	verbose  bool
}

// ClientOpt modifies the client before first use
type ClientOpt func(*Client) error

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// DefaultEndpoint is used when no endpoint option is set
	DefaultEndpoint = "https://api.dictate.dev/v1"

	// APIKeyVar supplies the API key when no key option is set
	APIKeyVar = "DICTATE_API_KEY"
)

const (
	transcribePath = "transcribe"
	modelsPath     = "models"
	healthPath     = "health"
)

// Response bodies are read through this cap so a misbehaving server
// cannot exhaust memory
const maxBodyBytes = 100 << 20

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a client for the Dictate service. The API key is taken from
// the OptAPIKey option, or failing that from the DICTATE_API_KEY
// environment variable; a missing key is an error before any request is
// made.
func New(opts ...ClientOpt) (*Client, error) {
	self := new(Client)
	if endpoint, err := url.Parse(DefaultEndpoint); err != nil {
		return nil, err
	} else {
		self.endpoint = endpoint
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(self); err != nil {
			return nil, err
		}
	}

	// Resolve the API key
	if self.apikey == "" {
		self.apikey = os.Getenv(APIKeyVar)
	}
	if self.apikey == "" {
		return nil, errors.ErrBadParameter.With("API key required")
	}

	// Return success
	return self, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - OPTIONS

// OptEndpoint sets the endpoint of the service
func OptEndpoint(v string) ClientOpt {
	return func(c *Client) error {
		endpoint, err := url.Parse(v)
		if err != nil {
			return errors.ErrBadParameter.Withf("invalid endpoint %q", v)
		} else if endpoint.Scheme == "" || endpoint.Host == "" {
			return errors.ErrBadParameter.Withf("invalid endpoint %q", v)
		}
		c.endpoint = endpoint
		return nil
	}
}

// OptAPIKey sets the key used to authenticate requests, overriding the
// environment
func OptAPIKey(v string) ClientOpt {
	return func(c *Client) error {
		c.apikey = v
		return nil
	}
}

// OptTimeout sets the timeout on all requests made by the client
func OptTimeout(d time.Duration) ClientOpt {
	return func(c *Client) error {
		c.Timeout = d
		return nil
	}
}

// OptTrace writes request and response dumps to w. When verbose is set,
// response bodies are included in the dump.
func OptTrace(w io.Writer, verbose bool) ClientOpt {
	return func(c *Client) error {
		c.trace = w
		c.verbose = verbose
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Ping checks that the service is reachable
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resolveUrl(c.endpoint, healthPath, nil).String(), nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Client) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+c.apikey)

	// Never dump the request body, as it may be a streamed file
	if c.trace != nil {
		if data, err := httputil.DumpRequestOut(req, false); err == nil {
			fmt.Fprintln(c.trace, string(data))
		}
	}

	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}

	if c.trace != nil {
		if data, err := httputil.DumpResponse(resp, c.verbose); err == nil {
			fmt.Fprintln(c.trace, string(data))
		}
	}

	// Return the response for dispatch
	return resp, nil
}

// resolveUrl appends a path and query to the base endpoint
func resolveUrl(base *url.URL, path string, query url.Values) *url.URL {
	abs := base.JoinPath(strings.Trim(path, "/"))
	if query != nil {
		abs.RawQuery = query.Encode()
	}
	return abs
}
