package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"BlogDesk/internal/cli/repo"
)

// recorded is what the fake server saw for one request.
type recorded struct {
	Method  string
	Route   string
	Path    string
	Query   string
	Header  http.Header
	Body    []byte
	URLArgs map[string]string
}

// fakeCMS routes the full endpoint surface with chi, records every request and answers with
// a fixed envelope.
type fakeCMS struct {
	mu   sync.Mutex
	reqs []recorded
	srv  *httptest.Server
}

func newFakeCMS(t *testing.T) *fakeCMS {
	t.Helper()
	f := &fakeCMS{}
	r := chi.NewRouter()

	routes := []struct{ method, pattern string }{
		{http.MethodGet, "/api/public/blogs"},
		{http.MethodGet, "/api/public/blogs/slug/{slug}"},
		{http.MethodGet, "/api/public/blogs/category/{id}"},
		{http.MethodGet, "/api/public/blogs/search"},
		{http.MethodGet, "/api/public/blogs/featured"},
		{http.MethodGet, "/api/public/blogs/top-viewed"},
		{http.MethodGet, "/api/public/blogs/{id}/related"},
		{http.MethodGet, "/api/public/blog-categories"},
		{http.MethodGet, "/api/public/blog-categories/with-blog-count"},
		{http.MethodGet, "/api/public/blog-categories/slug/{slug}"},
		{http.MethodGet, "/api/public/blog-categories/{id}"},
		{http.MethodGet, "/api/manager/blogs"},
		{http.MethodPost, "/api/manager/blogs"},
		{http.MethodGet, "/api/manager/blogs/search"},
		{http.MethodGet, "/api/manager/blogs/my-blogs"},
		{http.MethodGet, "/api/manager/blogs/{id}"},
		{http.MethodPut, "/api/manager/blogs/{id}"},
		{http.MethodDelete, "/api/manager/blogs/{id}"},
		{http.MethodPut, "/api/manager/blogs/{id}/{action}"},
		{http.MethodGet, "/api/manager/blog-categories"},
		{http.MethodPost, "/api/manager/blog-categories"},
		{http.MethodPost, "/api/manager/blog-categories/reorder"},
		{http.MethodGet, "/api/manager/blog-categories/{id}"},
		{http.MethodPut, "/api/manager/blog-categories/{id}"},
		{http.MethodDelete, "/api/manager/blog-categories/{id}"},
		{http.MethodPut, "/api/manager/blog-categories/{id}/{action}"},
	}
	for _, rt := range routes {
		rt := rt
		r.Method(rt.method, rt.pattern, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			body, _ := io.ReadAll(req.Body)
			rec := recorded{
				Method:  req.Method,
				Route:   rt.pattern,
				Path:    req.URL.Path,
				Query:   req.URL.RawQuery,
				Header:  req.Header.Clone(),
				Body:    body,
				URLArgs: map[string]string{},
			}
			if rctx := chi.RouteContext(req.Context()); rctx != nil {
				for i, k := range rctx.URLParams.Keys {
					rec.URLArgs[k] = rctx.URLParams.Values[i]
				}
			}
			f.mu.Lock()
			f.reqs = append(f.reqs, rec)
			f.mu.Unlock()
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success":true,"data":null}`))
		}))
	}
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		t.Errorf("unexpected request %s %s", req.Method, req.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		t.Errorf("method not allowed %s %s", req.Method, req.URL.Path)
		w.WriteHeader(http.StatusMethodNotAllowed)
	})

	f.srv = httptest.NewServer(r)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeCMS) last(t *testing.T) recorded {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.reqs, "no request recorded")
	return f.reqs[len(f.reqs)-1]
}

// memTokens is an in-memory repo.TokenStore.
type memTokens struct {
	tok string
	err error
}

func (m *memTokens) Save(t string) error { m.tok = t; return nil }
func (m *memTokens) Clear() error       { m.tok = ""; return nil }
func (m *memTokens) Load() (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if m.tok == "" {
		return "", repo.ErrNoToken
	}
	return m.tok, nil
}

func newTestClient(t *testing.T, baseURL string, tokens repo.TokenStore) *Client {
	t.Helper()
	c, err := NewClient(Options{BaseURL: baseURL, Tokens: tokens})
	require.NoError(t, err)
	return c
}

func decodeJSON(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	return m
}

// newJSONServer answers GETs on the given paths with canned JSON bodies.
func newJSONServer(t *testing.T, bodies map[string]string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}
