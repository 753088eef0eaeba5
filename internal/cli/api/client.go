package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"BlogDesk/internal/cli/repo"
)

// BasePath is the path prefix of every CMS endpoint.
const BasePath = "api"

const (
	defaultTimeout   = 15 * time.Second
	defaultRateBurst = 5
	// maxBodyBytes caps how much of a response is read into memory.
	maxBodyBytes = 10 << 20
)

// Options configures a Client. Zero values get defaults.
type Options struct {
	// BaseURL is the server origin, e.g. http://localhost:8080.
	BaseURL    string
	HTTPClient *http.Client
	// Tokens supplies the bearer token for manager calls. Nil means never authenticate.
	Tokens repo.TokenStore
	Logger *zap.SugaredLogger
	// RequestsPerMinute > 0 enables client-side throttling.
	RequestsPerMinute float64
	Burst             int
}

// Client talks to the blog CMS REST API. It is safe for concurrent use: in-flight requests
// share no mutable state beyond the optional rate limiter.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	tokens  repo.TokenStore
	log     *zap.SugaredLogger
	limiter *rate.Limiter
}

// NewClient validates opts and returns a Client.
func NewClient(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, errors.New("api: empty base URL")
	}
	u, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.New("api: base URL must be http or https: " + opts.BaseURL)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	if u.Path == "" {
		u.Path = "/"
	}
	u.RawPath, u.RawQuery, u.Fragment = "", "", ""

	c := &Client{
		baseURL: u,
		http:    opts.HTTPClient,
		tokens:  opts.Tokens,
		log:     opts.Logger,
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: defaultTimeout}
	}
	if c.log == nil {
		c.log = zap.NewNop().Sugar()
	}
	if opts.RequestsPerMinute > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = defaultRateBurst
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerMinute/60.0), burst)
	}
	return c, nil
}

// Public returns the unauthenticated endpoint group.
func (c *Client) Public() *PublicAPI { return &PublicAPI{c: c} }

// Manager returns the authenticated content-administration endpoint group.
func (c *Client) Manager() *ManagerAPI { return &ManagerAPI{c: c} }

// Headers returns the headers for a request. Content-Type is always JSON; Authorization is
// added only when auth is set and a token is stored.
func (c *Client) Headers(auth bool) http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	if auth {
		if tok := c.token(); tok != "" {
			h.Set("Authorization", "Bearer "+tok)
		}
	}
	return h
}

// token reads the store on every call. A missing token is not an error here: the server
// rejects the request.
func (c *Client) token() string {
	if c.tokens == nil {
		return ""
	}
	tok, err := c.tokens.Load()
	if err != nil {
		if !errors.Is(err, repo.ErrNoToken) {
			c.log.Warnw("token store read failed", "error", err)
		}
		return ""
	}
	return tok
}

// endpoint joins already-escaped path segments under the base path.
func (c *Client) endpoint(segments ...string) *url.URL {
	return c.baseURL.JoinPath(append([]string{BasePath}, segments...)...)
}

type call struct {
	method string
	path   []string
	query  url.Values
	body   any
	auth   bool
}

// do performs one request and decodes a 2xx body into out.
func (c *Client) do(ctx context.Context, in call, out any) error {
	u := c.endpoint(in.path...)
	if len(in.query) > 0 {
		u.RawQuery = in.query.Encode()
	}
	path := u.Path

	var body io.Reader
	if in.body != nil {
		b, err := json.Marshal(in.body)
		if err != nil {
			return &Error{Kind: KindEncode, Method: in.method, Path: path, Err: err}
		}
		body = bytes.NewReader(b)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &Error{Kind: KindNetwork, Method: in.method, Path: path, Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, in.method, u.String(), body)
	if err != nil {
		return &Error{Kind: KindNetwork, Method: in.method, Path: path, Err: err}
	}
	req.Header = c.Headers(in.auth)
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warnw("request failed", "method", in.method, "path", path, "request_id", reqID, "error", err)
		return &Error{Kind: KindNetwork, Method: in.method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	c.log.Debugw("request",
		"method", in.method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", reqID,
	)
	if err != nil {
		return &Error{Kind: KindNetwork, Method: in.method, Path: path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		e := statusError(in.method, path, resp.StatusCode, raw)
		c.log.Warnw("request rejected", "method", in.method, "path", path, "status", resp.StatusCode, "message", e.Message, "request_id", reqID)
		return e
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Kind: KindDecode, Method: in.method, Path: path, Err: err}
	}
	return nil
}
