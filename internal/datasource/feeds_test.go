package datasource

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/pick-settler/internal/config"
	"github.com/yourusername/pick-settler/internal/models"
)

const basketballPayload = `{
  "errors": [],
  "response": [
    {
      "id": 101,
      "status": {"short": "FT", "long": "Game Finished"},
      "teams": {"home": {"id": 1, "name": "Los Angeles Lakers"}, "away": {"id": 2, "name": "Boston Celtics"}},
      "scores": {
        "home": {"quarter_1": 30, "quarter_2": 25, "quarter_3": 28, "quarter_4": 29, "over_time": null, "total": 112},
        "away": {"quarter_1": 27, "quarter_2": 25, "quarter_3": 30, "quarter_4": 26, "over_time": null, "total": 108}
      }
    },
    {
      "id": 102,
      "status": {"short": "AOT", "long": "After Over Time"},
      "teams": {"home": {"id": 3, "name": "Denver Nuggets"}, "away": {"id": 4, "name": "Miami Heat"}},
      "scores": {
        "home": {"quarter_1": 20, "quarter_2": 30, "quarter_3": 25, "quarter_4": 25, "over_time": 12, "total": 112},
        "away": {"quarter_1": 25, "quarter_2": 25, "quarter_3": 25, "quarter_4": 25, "over_time": 8, "total": 108}
      }
    },
    {
      "id": 103,
      "status": {"short": "Q3", "long": "Quarter 3"},
      "teams": {"home": {"id": 5, "name": "Utah Jazz"}, "away": {"id": 6, "name": "Phoenix Suns"}},
      "scores": {"home": {"total": 70}, "away": {"total": 66}}
    }
  ]
}`

func TestBasketballFeedFetchFinalGames(t *testing.T) {
	var query atomicQuery
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/games", r.URL.Path)
		assert.Equal(t, "bb-key", r.Header.Get("x-apisports-key"))
		query.store(r.URL.RawQuery)
		_, _ = w.Write([]byte(basketballPayload))
	})

	feed := NewBasketballFeed(testHTTPClient(), config.ProviderConfig{
		Enabled:  true,
		BaseURL:  srv.URL,
		APIKey:   "bb-key",
		Leagues:  map[string]string{"nba": "12"},
		Timezone: "America/New_York",
	}, time.Second, quietLogger())

	assert.Equal(t, []models.Sport{models.SportNBA}, feed.Sports())

	games, err := feed.FetchFinalGames(context.Background(), models.SportNBA, []time.Time{day(2024, 3, 10)})
	require.NoError(t, err)
	require.Len(t, games, 2)

	assert.Contains(t, query.load(), "date=2024-03-10")
	assert.Contains(t, query.load(), "league=12")
	assert.Contains(t, query.load(), "season=2023-2024")

	lakers := games[0]
	assert.Equal(t, "101", lakers.ProviderID)
	assert.Equal(t, "Los Angeles Lakers", lakers.HomeTeam)
	assert.Equal(t, 112, *lakers.HomeScore)
	assert.Equal(t, day(2024, 3, 10), lakers.Date)
	assert.Equal(t, models.NewScorePair(55, 52), lakers.HalfScores[models.HalfFirst])
	assert.Equal(t, models.NewScorePair(57, 56), lakers.HalfScores[models.HalfSecond])

	// overtime is part of the second half
	ot := games[1]
	assert.Equal(t, models.NewScorePair(50, 50), ot.HalfScores[models.HalfFirst])
	assert.Equal(t, models.NewScorePair(62, 58), ot.HalfScores[models.HalfSecond])
}

func TestBasketballFeedDropsDateThatTimesOut(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("date") == "2024-03-10" {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
			return
		}
		_, _ = w.Write([]byte(basketballPayload))
	})

	feed := NewBasketballFeed(testHTTPClient(), config.ProviderConfig{
		BaseURL: srv.URL,
		Leagues: map[string]string{"nba": "12"},
	}, 100*time.Millisecond, quietLogger())

	games, err := feed.FetchFinalGames(context.Background(), models.SportNBA, []time.Time{day(2024, 3, 10), day(2024, 3, 11)})
	require.NoError(t, err)
	require.Len(t, games, 2)
	for _, g := range games {
		assert.Equal(t, day(2024, 3, 11), g.Date)
	}
}

func TestBasketballFeedUnsupportedSport(t *testing.T) {
	feed := NewBasketballFeed(testHTTPClient(), config.ProviderConfig{Leagues: map[string]string{"nba": "12"}}, time.Second, quietLogger())
	_, err := feed.FetchFinalGames(context.Background(), models.SportNFL, []time.Time{day(2024, 3, 10)})
	assert.Equal(t, ErrCodeUnsupportedSport, ErrorCode(err))
}

func TestBasketballFeedAPIErrors(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors": {"token": "Error/Missing application key."}, "response": []}`))
	})
	feed := NewBasketballFeed(testHTTPClient(), config.ProviderConfig{BaseURL: srv.URL, Leagues: map[string]string{"nba": "12"}}, time.Second, quietLogger())

	_, err := feed.FetchFinalGames(context.Background(), models.SportNBA, []time.Time{day(2024, 3, 10)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing application key")
}

func TestBasketballSeason(t *testing.T) {
	assert.Equal(t, "2023-2024", basketballSeason(day(2024, 3, 10)))
	assert.Equal(t, "2024-2025", basketballSeason(day(2024, 11, 2)))
	assert.Equal(t, "2023-2024", basketballSeason(day(2024, 8, 31)))
}

const espnPayload = `{
  "events": [
    {
      "id": "401547",
      "status": {"type": {"name": "STATUS_FINAL", "completed": true}},
      "competitions": [{
        "competitors": [
          {"homeAway": "home", "score": "27", "team": {"displayName": "Kansas City Chiefs"},
           "linescores": [{"value": 7}, {"value": 10}, {"value": 3}, {"value": 7}]},
          {"homeAway": "away", "score": "20", "team": {"displayName": "Buffalo Bills"},
           "linescores": [{"value": 3}, {"value": 7}, {"value": 7}, {"value": 3}]}
        ]
      }]
    },
    {
      "id": "401548",
      "status": {"type": {"name": "STATUS_IN_PROGRESS", "completed": false}},
      "competitions": [{"competitors": [
        {"homeAway": "home", "score": "14", "team": {"displayName": "Dallas Cowboys"}},
        {"homeAway": "away", "score": "3", "team": {"displayName": "New York Giants"}}
      ]}]
    }
  ]
}`

func TestGridironFeedFetchFinalGames(t *testing.T) {
	var query atomicQuery
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/football/nfl/scoreboard", r.URL.Path)
		query.store(r.URL.RawQuery)
		_, _ = w.Write([]byte(espnPayload))
	})

	feed := NewGridironFeed(testHTTPClient(), config.ProviderConfig{
		BaseURL: srv.URL,
		Leagues: map[string]string{"nfl": "football/nfl"},
	}, time.Second, quietLogger())

	games, err := feed.FetchFinalGames(context.Background(), models.SportNFL, []time.Time{day(2024, 1, 21)})
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Contains(t, query.load(), "dates=20240121")
	assert.NotContains(t, query.load(), "groups=")

	g := games[0]
	assert.Equal(t, "Kansas City Chiefs", g.HomeTeam)
	assert.Equal(t, "Buffalo Bills", g.AwayTeam)
	assert.Equal(t, 27, *g.HomeScore)
	assert.Equal(t, 20, *g.AwayScore)
	assert.Equal(t, models.NewScorePair(17, 10), g.HalfScores[models.HalfFirst])
	assert.Equal(t, models.NewScorePair(10, 10), g.HalfScores[models.HalfSecond])
}

func TestGridironFeedCollegeGroups(t *testing.T) {
	var query atomicQuery
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		query.store(r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"events": []}`))
	})

	feed := NewGridironFeed(testHTTPClient(), config.ProviderConfig{
		BaseURL: srv.URL,
		Leagues: map[string]string{"ncaaf": "football/college-football"},
	}, time.Second, quietLogger())

	games, err := feed.FetchFinalGames(context.Background(), models.SportNCAAF, []time.Time{day(2023, 11, 25)})
	require.NoError(t, err)
	assert.Empty(t, games)
	assert.Contains(t, query.load(), "groups=80")
}

const oddsPayload = `[
  {"id": "a1", "sport_key": "icehockey_nhl", "commence_time": "2024-03-10T23:00:00Z", "completed": true,
   "home_team": "Boston Bruins", "away_team": "Toronto Maple Leafs",
   "scores": [{"name": "Boston Bruins", "score": "4"}, {"name": "Toronto Maple Leafs", "score": "2"}]},
  {"id": "a2", "sport_key": "icehockey_nhl", "commence_time": "2024-03-11T02:30:00Z", "completed": true,
   "home_team": "Vegas Golden Knights", "away_team": "Seattle Kraken",
   "scores": [{"name": "Vegas Golden Knights", "score": "3"}, {"name": "Seattle Kraken", "score": "1"}]},
  {"id": "a3", "sport_key": "icehockey_nhl", "commence_time": "2024-03-11T23:00:00Z", "completed": false,
   "home_team": "New York Rangers", "away_team": "New Jersey Devils", "scores": null}
]`

func TestFinalScoreFeedFiltersByLocalDate(t *testing.T) {
	var calls atomic.Int32
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/v4/sports/icehockey_nhl/scores", r.URL.Path)
		assert.Equal(t, "odds-key", r.URL.Query().Get("apiKey"))
		_, _ = w.Write([]byte(oddsPayload))
	})

	feed := NewFinalScoreFeed(testHTTPClient(), config.ProviderConfig{
		BaseURL:  srv.URL,
		APIKey:   "odds-key",
		Leagues:  map[string]string{"nhl": "icehockey_nhl"},
		Timezone: "America/New_York",
	}, time.Second, quietLogger())

	games, err := feed.FetchFinalGames(context.Background(), models.SportNHL, []time.Time{day(2024, 3, 10), day(2024, 3, 11)})
	require.NoError(t, err)

	// the 02:30Z game is still March 10 in New York; a3 is not completed
	require.Len(t, games, 2)
	for _, g := range games {
		assert.Equal(t, day(2024, 3, 10), g.Date)
		assert.Empty(t, g.HalfScores)
	}
	assert.Equal(t, 3, *games[1].HomeScore)
	assert.Equal(t, int32(1), calls.Load())
}

func TestScoreFor(t *testing.T) {
	scores := []finalScoreEntry{{Name: "Boston Bruins", Score: "4"}, {Name: "Seattle Kraken", Score: "n/a"}}
	assert.Equal(t, 4, *scoreFor(scores, "boston bruins"))
	assert.Nil(t, scoreFor(scores, "Seattle Kraken"))
	assert.Nil(t, scoreFor(scores, "Vegas Golden Knights"))
}
