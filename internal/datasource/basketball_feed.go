package datasource

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/pick-settler/internal/config"
	"github.com/yourusername/pick-settler/internal/models"
)

// BasketballFeedName identifies the api-sports basketball feed
const BasketballFeedName = "basketball"

// Completed game statuses: full time and after overtime
var basketballFinalStatuses = map[string]bool{"FT": true, "AOT": true}

// BasketballFeed implements ScoreProvider for an api-sports style basketball API.
// Scores arrive per quarter; college games may carry native halves.
type BasketballFeed struct {
	httpClient *RateLimitedHTTPClient
	cfg        config.ProviderConfig
	timeout    time.Duration
	location   *time.Location
	logger     *logrus.Entry
}

type basketballResponse struct {
	Errors   interface{}      `json:"errors"`
	Response []basketballGame `json:"response"`
}

type basketballGame struct {
	ID     int    `json:"id"`
	Date   string `json:"date"`
	Status struct {
		Short string `json:"short"`
		Long  string `json:"long"`
	} `json:"status"`
	Teams struct {
		Home basketballTeam `json:"home"`
		Away basketballTeam `json:"away"`
	} `json:"teams"`
	Scores struct {
		Home basketballScore `json:"home"`
		Away basketballScore `json:"away"`
	} `json:"scores"`
}

type basketballTeam struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type basketballScore struct {
	Quarter1 *int `json:"quarter_1"`
	Quarter2 *int `json:"quarter_2"`
	Quarter3 *int `json:"quarter_3"`
	Quarter4 *int `json:"quarter_4"`
	OverTime *int `json:"over_time"`
	Half1    *int `json:"half_1"`
	Half2    *int `json:"half_2"`
	Total    *int `json:"total"`
}

// firstHalf returns native first-half points, else Q1+Q2
func (s basketballScore) firstHalf() *int {
	if s.Half1 != nil {
		return s.Half1
	}
	if s.Quarter1 == nil || s.Quarter2 == nil {
		return nil
	}
	v := *s.Quarter1 + *s.Quarter2
	return &v
}

// NewBasketballFeed creates a new basketball feed client
func NewBasketballFeed(httpClient *RateLimitedHTTPClient, cfg config.ProviderConfig, timeout time.Duration, logger *logrus.Logger) *BasketballFeed {
	return &BasketballFeed{
		httpClient: httpClient,
		cfg:        cfg,
		timeout:    timeout,
		location:   cfg.Location(),
		logger:     logger.WithFields(logrus.Fields{"component": "datasource", "provider": BasketballFeedName}),
	}
}

// Name returns the name of the provider
func (f *BasketballFeed) Name() string { return BasketballFeedName }

// Sports returns the configured sports
func (f *BasketballFeed) Sports() []models.Sport { return f.cfg.Sports() }

// FetchFinalGames retrieves finished games one date at a time
func (f *BasketballFeed) FetchFinalGames(ctx context.Context, sport models.Sport, dates []time.Time) ([]models.Game, error) {
	league, ok := f.cfg.LeagueFor(sport)
	if !ok {
		return nil, NewProviderError(BasketballFeedName, ErrCodeUnsupportedSport, string(sport), nil)
	}
	return fetchPerDate(ctx, f.logger, sport, dates, f.timeout, func(ctx context.Context, date time.Time) ([]models.Game, error) {
		return f.fetchDate(ctx, sport, league, date)
	})
}

func (f *BasketballFeed) fetchDate(ctx context.Context, sport models.Sport, league string, date time.Time) ([]models.Game, error) {
	season := f.cfg.Season
	if season == "" {
		season = basketballSeason(date)
	}

	q := url.Values{}
	q.Set("date", dateKey(date))
	q.Set("league", league)
	q.Set("season", season)
	q.Set("timezone", f.location.String())
	endpoint := strings.TrimRight(f.cfg.BaseURL, "/") + "/games?" + q.Encode()

	var body basketballResponse
	if err := f.httpClient.GetJSON(ctx, endpoint, map[string]string{"x-apisports-key": f.cfg.APIKey}, &body); err != nil {
		return nil, err
	}
	if msg := apiSportsError(body.Errors); msg != "" {
		return nil, NewProviderError(BasketballFeedName, ErrCodeInvalidData, msg, nil)
	}

	games := make([]models.Game, 0, len(body.Response))
	for _, g := range body.Response {
		if !basketballFinalStatuses[strings.ToUpper(g.Status.Short)] {
			continue
		}
		game, err := f.normalize(sport, date, g)
		if err != nil {
			f.logger.WithField("game_id", g.ID).WithError(err).Warn("Skipping malformed game")
			continue
		}
		games = append(games, game)
	}
	return games, nil
}

func (f *BasketballFeed) normalize(sport models.Sport, date time.Time, g basketballGame) (models.Game, error) {
	home, away := g.Scores.Home, g.Scores.Away
	if home.Total == nil || away.Total == nil {
		return models.Game{}, errors.New("final game without total score")
	}

	game := models.Game{
		Provider:   BasketballFeedName,
		ProviderID: fmt.Sprintf("%d", g.ID),
		Sport:      sport,
		Date:       calendarDate(date),
		HomeTeam:   g.Teams.Home.Name,
		AwayTeam:   g.Teams.Away.Name,
		HomeScore:  home.Total,
		AwayScore:  away.Total,
		Status:     models.GameStatusFinal,
	}

	var firstHalf *models.ScorePair
	if h, a := home.firstHalf(), away.firstHalf(); h != nil && a != nil {
		firstHalf = &models.ScorePair{Home: h, Away: a}
	}
	game.HalfScores = models.BuildHalfScores(firstHalf, game.HomeScore, game.AwayScore)
	return game, nil
}

// basketballSeason returns the "2023-2024" style season containing date.
// Seasons roll over in September.
func basketballSeason(date time.Time) string {
	start := date.Year()
	if date.Month() < time.September {
		start--
	}
	return fmt.Sprintf("%d-%d", start, start+1)
}

// apiSportsError flattens the api-sports "errors" field, which is an empty
// array on success and an object of messages on failure.
func apiSportsError(v interface{}) string {
	m, ok := v.(map[string]interface{})
	if !ok || len(m) == 0 {
		return ""
	}
	parts := make([]string, 0, len(m))
	for k, msg := range m {
		parts = append(parts, fmt.Sprintf("%s: %v", k, msg))
	}
	return strings.Join(parts, "; ")
}
