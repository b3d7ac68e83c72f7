package datasource

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testHTTPClient() *RateLimitedHTTPClient {
	cfg := DefaultHTTPClientConfig()
	cfg.Timeout = 2 * time.Second
	cfg.MaxRetries = 0
	cfg.RateLimit = 0
	return NewRateLimitedHTTPClient("test", cfg, quietLogger())
}

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// atomicQuery records the last raw query a test server saw
type atomicQuery struct {
	mu  sync.Mutex
	raw string
}

func (q *atomicQuery) store(raw string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.raw = raw
}

func (q *atomicQuery) load() string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.raw
}
