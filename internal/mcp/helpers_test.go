package mcp

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/roivaz/bank-support-mcp/internal/backend"
	"github.com/roivaz/bank-support-mcp/internal/logging"
	"github.com/roivaz/bank-support-mcp/internal/telemetry"
)

type fakeBackend struct {
	*httptest.Server
	mu      sync.Mutex
	queries []string
}

func newFakeBackend(t *testing.T, body string) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{}
	fb.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		fb.queries = append(fb.queries, r.URL.Path+"?"+r.URL.RawQuery)
		fb.mu.Unlock()
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(fb.Close)
	return fb
}

func (fb *fakeBackend) hits() []string {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]string(nil), fb.queries...)
}

func newTestServer(t *testing.T, backendURL string, observer *telemetry.ToolObserver) *Server {
	t.Helper()
	srv, err := New(Config{
		Name:         "test-server",
		Version:      Version,
		ToolAdapters: ToolAdapters(backend.NewClient(backendURL)),
		Logger:       logging.New(logging.LeveledLogger("error")),
		Observer:     observer,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return srv
}
