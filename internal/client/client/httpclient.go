package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/userhub/internal/client/models"
	"github.com/dmitrijs2005/userhub/internal/client/session"
	"github.com/dmitrijs2005/userhub/internal/common"
)

// Options configures an HTTPClient.
type Options struct {
	BaseURL string
	APIKey  string
	Version string
	// Timeout bounds each request; zero leaves it to the transport.
	Timeout time.Duration
	// Transport is the base RoundTripper; nil means http.DefaultTransport.
	Transport http.RoundTripper
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client whose requests carry the token held by store.
func NewHTTPClient(opts Options, store session.Store) (*HTTPClient, error) {
	u, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid api base url %q", opts.BaseURL)
	}

	version := opts.Version
	if version == "" {
		version = "dev"
	}

	chain := NewChain(opts.Transport,
		UserAgent(common.AppName, version),
		APIKey(opts.APIKey),
		BearerToken(store),
	)

	return &HTTPClient{
		baseURL:    strings.TrimRight(u.String(), "/"),
		httpClient: &http.Client{Transport: chain, Timeout: opts.Timeout},
	}, nil
}

type apiRequest struct {
	method     string
	path       string
	query      url.Values
	reqBodyObj any
	respObj    any
	// statusErr overrides the error returned for a non-2xx response.
	statusErr error
}

type apiError struct {
	Error string `json:"error"`
}

func (c *HTTPClient) execute(ctx context.Context, r apiRequest) error {
	var body io.Reader
	if r.reqBodyObj != nil {
		b, err := json.Marshal(r.reqBodyObj)
		if err != nil {
			return fmt.Errorf("error marshaling request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	endpoint := c.baseURL + "/" + strings.TrimLeft(r.path, "/")
	if len(r.query) > 0 {
		endpoint += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, body)
	if err != nil {
		return fmt.Errorf("error creating HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %w", r.method, r.path, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: error reading response body: %w: %w", r.method, r.path, ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(r, resp.StatusCode, respBody)
	}

	if r.respObj == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, r.respObj); err != nil {
		return fmt.Errorf("%s %s: error unmarshaling response body: %w", r.method, r.path, err)
	}
	return nil
}

func (c *HTTPClient) statusError(r apiRequest, code int, body []byte) error {
	var ae apiError
	_ = json.Unmarshal(body, &ae)

	detail := fmt.Sprintf("received %d from API server", code)
	if ae.Error != "" {
		detail += ": " + ae.Error
	}

	sentinel := ErrUnexpectedStatus
	switch {
	case r.statusErr != nil:
		sentinel = r.statusErr
	case code == http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	}
	return fmt.Errorf("%s %s: %w: %s", r.method, r.path, sentinel, detail)
}

// Login exchanges credentials for a token. Any non-2xx answer is
// ErrUnauthorized. A 2xx without a token returns "" and no error; deciding
// what that means is up to the caller.
func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	err := c.execute(ctx, apiRequest{
		method:     http.MethodPost,
		path:       "login",
		reqBodyObj: creds,
		respObj:    &resp,
		statusErr:  ErrUnauthorized,
	})
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) GetUsers(ctx context.Context, page int) (models.UserPage, error) {
	var p models.UserPage
	err := c.execute(ctx, apiRequest{
		method:  http.MethodGet,
		path:    "users",
		query:   url.Values{"page": {strconv.Itoa(page)}},
		respObj: &p,
	})
	return p, err
}

// UpdateUser sends the edited fields. reqres does not persist them; a 2xx is
// taken at face value.
func (c *HTTPClient) UpdateUser(ctx context.Context, id int, upd models.UserUpdate) error {
	return c.execute(ctx, apiRequest{
		method:     http.MethodPut,
		path:       fmt.Sprintf("users/%d", id),
		reqBodyObj: upd,
	})
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id int) error {
	return c.execute(ctx, apiRequest{
		method: http.MethodDelete,
		path:   fmt.Sprintf("users/%d", id),
	})
}

// Ping checks that the API answers with the configured key.
func (c *HTTPClient) Ping(ctx context.Context) error {
	err := c.execute(ctx, apiRequest{
		method: http.MethodGet,
		path:   "users",
		query:  url.Values{"page": {"1"}, "per_page": {"1"}},
	})
	if err != nil && !errors.Is(err, ErrUnavailable) {
		return fmt.Errorf("api reachable but not ready: %w", err)
	}
	return err
}
