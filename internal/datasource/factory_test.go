package datasource

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/pick-settler/internal/config"
	"github.com/yourusername/pick-settler/internal/models"
)

type stubProvider struct {
	name   string
	sports []models.Sport
	games  []models.Game
	err    error

	mu    sync.Mutex
	calls [][]time.Time
}

func (s *stubProvider) Name() string           { return s.name }
func (s *stubProvider) Sports() []models.Sport { return s.sports }

func (s *stubProvider) FetchFinalGames(_ context.Context, _ models.Sport, dates []time.Time) ([]models.Game, error) {
	s.mu.Lock()
	s.calls = append(s.calls, dates)
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Game
	for _, g := range s.games {
		for _, d := range dates {
			if dateKey(g.Date) == dateKey(d) {
				out = append(out, g)
			}
		}
	}
	return out, nil
}

func TestRegistryRoutesAndRejectsDuplicates(t *testing.T) {
	r := NewRegistry(quietLogger(), nil)
	require.NoError(t, r.Register(&stubProvider{name: "a", sports: []models.Sport{models.SportNBA, models.SportNCAAB}}))
	err := r.Register(&stubProvider{name: "b", sports: []models.Sport{models.SportNFL, models.SportNBA}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already served by a")

	_, ok := r.Provider(models.SportNFL)
	assert.False(t, ok, "failed registration must not partially apply")
	assert.Equal(t, []models.Sport{models.SportNBA, models.SportNCAAB}, r.Sports())
}

func TestRegistryUnsupportedSport(t *testing.T) {
	r := NewRegistry(quietLogger(), nil)
	games, err := r.FetchFinalGames(context.Background(), models.SportMLB, []time.Time{day(2024, 3, 10)})
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestRegistryUsesScoreCache(t *testing.T) {
	stub := &stubProvider{
		name:   "stub",
		sports: []models.Sport{models.SportNBA},
		games:  []models.Game{{ProviderID: "1", Date: day(2024, 3, 10)}},
	}
	r := NewRegistry(quietLogger(), NewScoreCache(time.Minute))
	require.NoError(t, r.Register(stub))

	dates := []time.Time{day(2024, 3, 10), day(2024, 3, 11)}
	games, err := r.FetchFinalGames(context.Background(), models.SportNBA, dates)
	require.NoError(t, err)
	assert.Len(t, games, 1)

	games, err = r.FetchFinalGames(context.Background(), models.SportNBA, dates)
	require.NoError(t, err)
	assert.Len(t, games, 1)

	// March 10 is cached; the empty March 11 is asked for again
	require.Len(t, stub.calls, 2)
	assert.Equal(t, []time.Time{day(2024, 3, 11)}, stub.calls[1])
}

func TestRegistryRefetchesDateStillInPlay(t *testing.T) {
	stub := &stubProvider{
		name:   "stub",
		sports: []models.Sport{models.SportNBA},
		games:  []models.Game{{ProviderID: "early", Date: day(2024, 3, 10)}},
	}
	r := NewRegistry(quietLogger(), NewScoreCache(10*time.Minute))
	r.now = func() time.Time { return time.Date(2024, 3, 11, 3, 0, 0, 0, time.UTC) }
	require.NoError(t, r.Register(stub))

	dates := []time.Time{day(2024, 3, 10)}
	games, err := r.FetchFinalGames(context.Background(), models.SportNBA, dates)
	require.NoError(t, err)
	assert.Len(t, games, 1)

	// the late game goes final on the same date
	stub.games = append(stub.games, models.Game{ProviderID: "late", Date: day(2024, 3, 10)})
	games, err = r.FetchFinalGames(context.Background(), models.SportNBA, dates)
	require.NoError(t, err)
	assert.Len(t, games, 2)
	assert.Len(t, stub.calls, 2)

	// once the date has closed it is served from the cache
	r.now = func() time.Time { return time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC) }
	_, err = r.FetchFinalGames(context.Background(), models.SportNBA, dates)
	require.NoError(t, err)
	games, err = r.FetchFinalGames(context.Background(), models.SportNBA, dates)
	require.NoError(t, err)
	assert.Len(t, games, 2)
	assert.Len(t, stub.calls, 3)
}

func TestRegistryPropagatesProviderError(t *testing.T) {
	r := NewRegistry(quietLogger(), nil)
	require.NoError(t, r.Register(&stubProvider{name: "down", sports: []models.Sport{models.SportNHL}, err: errors.New("boom")}))

	_, err := r.FetchFinalGames(context.Background(), models.SportNHL, []time.Time{day(2024, 3, 10)})
	assert.EqualError(t, err, "boom")
}

func TestNilScoreCache(t *testing.T) {
	var c *ScoreCache
	assert.Nil(t, NewScoreCache(0))
	c.Set("p", models.SportNBA, day(2024, 3, 10), nil)
	_, ok := c.Get("p", models.SportNBA, day(2024, 3, 10))
	assert.False(t, ok)
	assert.Zero(t, c.ItemCount())
	c.Flush()
}

func TestNewRegistryFromConfig(t *testing.T) {
	cfg, err := config.LoadWithDefaults("testdata/does_not_exist.yaml")
	require.NoError(t, err)
	cfg.Providers.Gridiron.Enabled = true
	cfg.Providers.FinalScore.Enabled = true
	cfg.Providers.FinalScore.APIKey = "key"

	r, err := NewRegistryFromConfig(cfg, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, []models.Sport{models.SportMLB, models.SportNCAAF, models.SportNFL, models.SportNHL}, r.Sports())
	p, ok := r.Provider(models.SportNFL)
	require.True(t, ok)
	assert.Equal(t, GridironFeedName, p.Name())
	_, ok = r.Provider(models.SportNBA)
	assert.False(t, ok)

	assert.Len(t, r.clients, 2)
	r.Close()
	assert.Empty(t, r.clients)
	r.Close()
}

func TestHTTPConfigFor(t *testing.T) {
	hc := httpConfigFor(config.ProviderConfig{RequestTimeoutSeconds: 7, RateLimit: 2, MaxRetries: 1})
	assert.Equal(t, 7*time.Second, hc.Timeout)
	assert.Equal(t, 2.0, hc.RateLimit)
	assert.Equal(t, 1, hc.MaxRetries)
}
