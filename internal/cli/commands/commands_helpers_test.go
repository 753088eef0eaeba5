package commands

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"BlogDesk/internal/config"
)

// withTempConfig points the user config directory at a temp dir for the test,
// so the token file and local storage land there.
func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

// testConfig is a config talking to serverURL with a file token store in a temp dir.
func testConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	dir := withTempConfig(t)
	return &config.Config{
		ServerURL:      serverURL,
		TokenStore:     "file",
		TokenFile:      filepath.Join(dir, "token"),
		StorageDB:      filepath.Join(dir, "storage.db"),
		RequestTimeout: 5 * time.Second,
	}
}

// withClock fixes the clock used for relative times.
func withClock(t *testing.T, at time.Time) {
	t.Helper()
	old := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = old })
}

// withStdin feeds s to commands reading "-".
func withStdin(t *testing.T, s string) {
	t.Helper()
	old := In
	In = strings.NewReader(s)
	t.Cleanup(func() { In = old })
}

type cmsHit struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   string
}

// fakeCMS serves canned JSON per "METHOD /pattern" route and records every hit.
type fakeCMS struct {
	mu   sync.Mutex
	hits []cmsHit
	srv  *httptest.Server
}

type cannedReply struct {
	status int
	body   string
}

func ok(body string) cannedReply { return cannedReply{status: http.StatusOK, body: body} }

func newFakeCMS(t *testing.T, routes map[string]cannedReply) *fakeCMS {
	t.Helper()
	f := &fakeCMS{}
	r := chi.NewRouter()
	for key, reply := range routes {
		method, pattern, found := strings.Cut(key, " ")
		if !found {
			t.Fatalf("bad route key %q", key)
		}
		reply := reply
		r.Method(method, pattern, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			body, _ := io.ReadAll(req.Body)
			f.mu.Lock()
			f.hits = append(f.hits, cmsHit{
				Method: req.Method,
				Path:   req.URL.Path,
				Query:  req.URL.RawQuery,
				Auth:   req.Header.Get("Authorization"),
				Body:   string(body),
			})
			f.mu.Unlock()
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(reply.status)
			_, _ = w.Write([]byte(reply.body))
		}))
	}
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		t.Errorf("unexpected request %s %s", req.Method, req.URL.Path)
		http.NotFound(w, req)
	})
	f.srv = httptest.NewServer(r)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeCMS) last(t *testing.T) cmsHit {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.hits) == 0 {
		t.Fatalf("no request reached the fake CMS")
	}
	return f.hits[len(f.hits)-1]
}

func (f *fakeCMS) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.hits)
}
