package datasource

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/pick-settler/internal/config"
	"github.com/yourusername/pick-settler/internal/models"
)

const (
	// FinalScoreFeedName identifies the odds-api style scores feed
	FinalScoreFeedName = "final_score"

	// one upstream call serves every date in a run
	finalScoreResponseTTL = time.Minute
)

// FinalScoreFeed implements ScoreProvider for a feed that returns recent
// scores for a sport in one call. It carries final scores only, no halves.
type FinalScoreFeed struct {
	httpClient *RateLimitedHTTPClient
	cfg        config.ProviderConfig
	timeout    time.Duration
	location   *time.Location
	responses  *gocache.Cache
	logger     *logrus.Entry
}

type finalScoreEvent struct {
	ID           string            `json:"id"`
	SportKey     string            `json:"sport_key"`
	CommenceTime time.Time         `json:"commence_time"`
	Completed    bool              `json:"completed"`
	HomeTeam     string            `json:"home_team"`
	AwayTeam     string            `json:"away_team"`
	Scores       []finalScoreEntry `json:"scores"`
}

type finalScoreEntry struct {
	Name  string `json:"name"`
	Score string `json:"score"`
}

// NewFinalScoreFeed creates a new final score feed client
func NewFinalScoreFeed(httpClient *RateLimitedHTTPClient, cfg config.ProviderConfig, timeout time.Duration, logger *logrus.Logger) *FinalScoreFeed {
	return &FinalScoreFeed{
		httpClient: httpClient,
		cfg:        cfg,
		timeout:    timeout,
		location:   cfg.Location(),
		responses:  gocache.New(finalScoreResponseTTL, 2*finalScoreResponseTTL),
		logger:     logger.WithFields(logrus.Fields{"component": "datasource", "provider": FinalScoreFeedName}),
	}
}

// Name returns the name of the provider
func (f *FinalScoreFeed) Name() string { return FinalScoreFeedName }

// Sports returns the configured sports
func (f *FinalScoreFeed) Sports() []models.Sport { return f.cfg.Sports() }

// FetchFinalGames fetches the sport's recent scores once and filters them by
// the event's calendar date in the league timezone.
func (f *FinalScoreFeed) FetchFinalGames(ctx context.Context, sport models.Sport, dates []time.Time) ([]models.Game, error) {
	key, ok := f.cfg.LeagueFor(sport)
	if !ok {
		return nil, NewProviderError(FinalScoreFeedName, ErrCodeUnsupportedSport, string(sport), nil)
	}
	return fetchPerDate(ctx, f.logger, sport, dates, f.timeout, func(ctx context.Context, date time.Time) ([]models.Game, error) {
		events, err := f.events(ctx, key)
		if err != nil {
			return nil, err
		}
		return f.gamesOn(sport, date, events), nil
	})
}

func (f *FinalScoreFeed) events(ctx context.Context, key string) ([]finalScoreEvent, error) {
	if cached, ok := f.responses.Get(key); ok {
		return cached.([]finalScoreEvent), nil
	}

	q := url.Values{}
	q.Set("daysFrom", strconv.Itoa(f.cfg.ScoreWindowDays()))
	q.Set("dateFormat", "iso")
	q.Set("apiKey", f.cfg.APIKey)
	endpoint := strings.TrimRight(f.cfg.BaseURL, "/") + "/v4/sports/" + url.PathEscape(key) + "/scores?" + q.Encode()

	var events []finalScoreEvent
	if err := f.httpClient.GetJSON(ctx, endpoint, nil, &events); err != nil {
		return nil, err
	}
	f.responses.SetDefault(key, events)
	return events, nil
}

func (f *FinalScoreFeed) gamesOn(sport models.Sport, date time.Time, events []finalScoreEvent) []models.Game {
	want := dateKey(date)
	games := make([]models.Game, 0)
	for _, ev := range events {
		if !ev.Completed || dateKey(ev.CommenceTime.In(f.location)) != want {
			continue
		}
		home, away := scoreFor(ev.Scores, ev.HomeTeam), scoreFor(ev.Scores, ev.AwayTeam)
		if home == nil || away == nil {
			f.logger.WithField("event_id", ev.ID).Warn("Skipping completed event without scores")
			continue
		}
		games = append(games, models.Game{
			Provider:   FinalScoreFeedName,
			ProviderID: ev.ID,
			Sport:      sport,
			Date:       calendarDate(date),
			HomeTeam:   ev.HomeTeam,
			AwayTeam:   ev.AwayTeam,
			HomeScore:  home,
			AwayScore:  away,
			HalfScores: map[models.Half]models.ScorePair{},
			Status:     models.GameStatusFinal,
		})
	}
	return games
}

// scoreFor finds a team's score by name in the event's score list
func scoreFor(scores []finalScoreEntry, team string) *int {
	for _, s := range scores {
		if !strings.EqualFold(strings.TrimSpace(s.Name), strings.TrimSpace(team)) {
			continue
		}
		v, err := strconv.Atoi(strings.TrimSpace(s.Score))
		if err != nil {
			return nil
		}
		return &v
	}
	return nil
}
