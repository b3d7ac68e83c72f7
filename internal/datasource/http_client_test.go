package datasource

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/pick-settler/internal/models"
)

func TestGetJSONStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		code   string
	}{
		{"unauthorized", http.StatusUnauthorized, ErrCodeAuthenticationFailed},
		{"forbidden", http.StatusForbidden, ErrCodeAuthenticationFailed},
		{"rate limited", http.StatusTooManyRequests, ErrCodeRateLimitExceeded},
		{"not found", http.StatusNotFound, ErrCodeNotFound},
		{"bad request", http.StatusBadRequest, ErrCodeServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			var out map[string]interface{}
			err := testHTTPClient().GetJSON(context.Background(), srv.URL, nil, &out)
			require.Error(t, err)
			assert.Equal(t, tt.code, ErrorCode(err))
		})
	}
}

func TestGetJSONDecodesAndSendsHeaders(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("x-apisports-key"))
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	var out struct {
		OK bool `json:"ok"`
	}
	err := testHTTPClient().GetJSON(context.Background(), srv.URL, map[string]string{"x-apisports-key": "secret"}, &out)
	require.NoError(t, err)
	assert.True(t, out.OK)
}

func TestGetJSONInvalidBody(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	var out map[string]interface{}
	err := testHTTPClient().GetJSON(context.Background(), srv.URL, nil, &out)
	assert.Equal(t, ErrCodeInvalidData, ErrorCode(err))
}

func TestCircuitBreakerOpensAndRecovers(t *testing.T) {
	var failing atomic.Bool
	failing.Store(true)
	var calls atomic.Int32
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if failing.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	})

	cfg := DefaultHTTPClientConfig()
	cfg.MaxRetries = 0
	cfg.RateLimit = 0
	cfg.CircuitBreakerMax = 2
	cfg.CircuitBreakerTimeout = time.Minute
	client := NewRateLimitedHTTPClient("test", cfg, quietLogger())
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	client.now = func() time.Time { return now }

	var out map[string]interface{}
	ctx := context.Background()
	assert.Equal(t, ErrCodeServerError, ErrorCode(client.GetJSON(ctx, srv.URL, nil, &out)))
	assert.Equal(t, ErrCodeServerError, ErrorCode(client.GetJSON(ctx, srv.URL, nil, &out)))
	assert.True(t, client.IsOpen())

	err := client.GetJSON(ctx, srv.URL, nil, &out)
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, ErrCodeCircuitOpen, ErrorCode(err))
	assert.Equal(t, int32(2), calls.Load())

	failing.Store(false)
	now = now.Add(2 * time.Minute)
	require.NoError(t, client.GetJSON(ctx, srv.URL, nil, &out))
	assert.False(t, client.IsOpen())
}

func TestFetchPerDateAllFailed(t *testing.T) {
	dates := []time.Time{day(2024, 3, 10), day(2024, 3, 10), day(2024, 3, 11)}
	var seen []string
	_, err := fetchPerDate(context.Background(), quietLogger().WithField("test", true), models.SportNBA, dates, time.Second,
		func(ctx context.Context, d time.Time) ([]models.Game, error) {
			seen = append(seen, dateKey(d))
			return nil, NewProviderError("test", ErrCodeServerError, "down", nil)
		})
	require.Error(t, err)
	assert.Equal(t, []string{"2024-03-10", "2024-03-11"}, seen)
	assert.Contains(t, err.Error(), "2024-03-11")
}

func TestFetchPerDatePartialFailure(t *testing.T) {
	dates := []time.Time{day(2024, 3, 10), day(2024, 3, 11)}
	games, err := fetchPerDate(context.Background(), quietLogger().WithField("test", true), models.SportNBA, dates, time.Second,
		func(ctx context.Context, d time.Time) ([]models.Game, error) {
			if d.Day() == 10 {
				return nil, NewProviderError("test", ErrCodeNetworkError, "timeout", nil)
			}
			return []models.Game{{ProviderID: "1", Date: d}}, nil
		})
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "1", games[0].ProviderID)
}
