package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/yourusername/pick-settler/internal/grading"
	"github.com/yourusername/pick-settler/internal/logger"
	"github.com/yourusername/pick-settler/internal/metrics"
	"github.com/yourusername/pick-settler/internal/models"
	"github.com/yourusername/pick-settler/internal/repository"
)

// ErrNotGradable is returned by Regrade when the pick's game has no final score yet
var ErrNotGradable = errors.New("pick cannot be graded yet")

const defaultLookback = 3 * 24 * time.Hour

// GameSource returns final games for a sport; datasource.Registry implements it
type GameSource interface {
	FetchFinalGames(ctx context.Context, sport models.Sport, dates []time.Time) ([]models.Game, error)
}

// RunNotifier receives the summary of a run that graded at least one pick
type RunNotifier interface {
	NotifyRunSummary(ctx context.Context, summary models.RunSummary) error
}

// CacheInvalidator drops downstream read caches after a run
type CacheInvalidator interface {
	Invalidate(ctx context.Context) (int64, error)
}

// SettlementOptions configures a SettlementService. Nil collaborators are skipped.
type SettlementOptions struct {
	Lookback       time.Duration
	NotifyOnGraded bool
	Notifier       RunNotifier
	Invalidator    CacheInvalidator
}

// SettlementService grades pending picks against final scores and persists
// the outcome. Runs may overlap: Settle only writes picks that are still
// pending or live, so a pick is never settled twice.
type SettlementService struct {
	picks   repository.PickRepository
	games   GameSource
	opts    SettlementOptions
	audit   *logger.AuditLogger
	events  *logger.SettlementLogger
	logger  *logrus.Entry
	now     func() time.Time
	newUUID func() string
}

// NewSettlementService creates a new settlement service
func NewSettlementService(picks repository.PickRepository, games GameSource, opts SettlementOptions, log *logrus.Logger) *SettlementService {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	if opts.Lookback <= 0 {
		opts.Lookback = defaultLookback
	}
	return &SettlementService{
		picks:   picks,
		games:   games,
		opts:    opts,
		audit:   logger.NewAuditLogger(log),
		events:  logger.NewSettlementLogger(log),
		logger:  log.WithField("component", "settlement"),
		now:     time.Now,
		newUUID: uuid.NewString,
	}
}

// Run performs one settlement sweep. Only a failure to load picks aborts the
// run; per-sport fetch failures and per-pick failures are counted and logged.
func (s *SettlementService) Run(ctx context.Context) (*RunStats, error) {
	start := s.now()
	stats := NewRunStats(s.newUUID(), start)
	runLog := s.logger.WithField("run_id", stats.RunID)

	from := startOfDay(start).Add(-s.opts.Lookback)
	picks, err := s.picks.Find(ctx, repository.PickFilter{
		Statuses: []models.PickStatus{models.PickStatusPending, models.PickStatusLive},
		From:     from,
	})
	if err != nil {
		stats.Finish(s.now())
		metrics.RecordRun("failure", stats.Duration.Seconds(), 0, 0, float64(s.now().Unix()))
		return stats, fmt.Errorf("failed to load pending picks: %w", err)
	}
	stats.Loaded = len(picks)
	runLog.WithFields(logrus.Fields{"picks": len(picks), "from": from.Format("2006-01-02")}).Info("Starting settlement run")

	gamesBySport := s.fetchGames(ctx, DateSetsBySport(picks))

	for _, pick := range picks {
		s.settlePick(ctx, stats, pick, gamesBySport[pick.Sport])
	}

	if s.opts.Invalidator != nil {
		if n, err := s.opts.Invalidator.Invalidate(ctx); err != nil {
			runLog.WithError(err).Warn("Failed to invalidate read caches")
		} else {
			runLog.WithField("keys", n).Debug("Read caches invalidated")
		}
	}

	stats.Finish(s.now())
	summary := stats.Summary()

	if summary.Graded > 0 && s.opts.NotifyOnGraded && s.opts.Notifier != nil {
		if err := s.opts.Notifier.NotifyRunSummary(ctx, summary); err != nil {
			runLog.WithError(err).Warn("Failed to send run summary")
		}
	}

	s.audit.LogRunSummary(summary, stats.Duration)
	pnl, _ := summary.NetPnL.Float64()
	metrics.RecordRun("success", stats.Duration.Seconds(), summary.Loaded, pnl, float64(s.now().Unix()))
	runLog.Info(stats.String())

	return stats, nil
}

// settlePick grades one pick and writes the result. It never returns an
// error; failures are counted on stats.
func (s *SettlementService) settlePick(ctx context.Context, stats *RunStats, pick *models.Pick, games []models.Game) {
	sport := string(pick.Sport)

	outcome, err := safeGrade(pick, games)
	if err != nil {
		stats.RecordError()
		metrics.RecordPickError(sport, "grade")
		s.events.LogPickError(pick.ID, sport, "grade", err)
		return
	}
	if !outcome.Settles() {
		stats.RecordSkipped()
		metrics.RecordPickDeferred(sport)
		s.events.LogPickDeferred(pick.ID, sport, outcome.Reason)
		return
	}

	previous := pick.Status
	settled := *pick
	settled.ApplyGrade(outcome.Grade, s.now().UTC())

	if err := s.picks.Settle(ctx, &settled); err != nil {
		if errors.Is(err, models.ErrAlreadySettled) {
			stats.RecordSkipped()
			s.events.LogPickDeferred(pick.ID, sport, "already settled by another run")
			return
		}
		stats.RecordError()
		metrics.RecordPickError(sport, "persist")
		s.events.LogPickError(pick.ID, sport, "persist", err)
		return
	}

	stats.RecordGraded(settled.Result, settled.PnL)
	metrics.RecordPickSettled(sport, string(settled.Result))
	s.audit.LogPickSettled(stats.RunID, &settled, previous)
	s.events.LogPickGraded(pick.ID, sport, string(settled.Result), settled.PnL.StringFixed(2), settled.GradeNote)
}

// Regrade grades a pick in any status against fresh scores and overwrites
// its stored result.
func (s *SettlementService) Regrade(ctx context.Context, pickID string) (*models.Pick, error) {
	pick, err := s.picks.GetByID(ctx, pickID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pick %s: %w", pickID, err)
	}

	dates := DateSetsBySport([]*models.Pick{pick})[pick.Sport]
	games, err := s.games.FetchFinalGames(ctx, pick.Sport, dates)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s games: %w", pick.Sport, err)
	}

	outcome, err := safeGrade(pick, games)
	if err != nil {
		return nil, err
	}
	if !outcome.Settles() {
		return nil, fmt.Errorf("%w: %s", ErrNotGradable, outcome.Reason)
	}

	oldResult, oldPnL := pick.Result, pick.PnL.StringFixed(2)
	regraded := *pick
	regraded.ApplyGrade(outcome.Grade, s.now().UTC())
	if err := s.picks.Upsert(ctx, &regraded); err != nil {
		return nil, fmt.Errorf("failed to save regraded pick %s: %w", pickID, err)
	}

	s.audit.LogPickRegraded(&regraded, oldResult, oldPnL)
	metrics.RecordPickSettled(string(regraded.Sport), string(regraded.Result))
	return &regraded, nil
}

// fetchGames fetches every sport concurrently. A failed sport gets no games,
// which defers its picks to a later run.
func (s *SettlementService) fetchGames(ctx context.Context, dateSets map[models.Sport][]time.Time) map[models.Sport][]models.Game {
	var (
		mu     sync.Mutex
		result = make(map[models.Sport][]models.Game, len(dateSets))
		g      errgroup.Group
	)

	for sport, dates := range dateSets {
		sport, dates := sport, dates
		g.Go(func() error {
			start := s.now()
			games, err := s.games.FetchFinalGames(ctx, sport, dates)
			s.events.LogProviderFetch("registry", string(sport), len(dates), len(games), s.now().Sub(start), err)
			if err != nil {
				games = nil
			}
			mu.Lock()
			result[sport] = games
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return result
}

// DateSetsBySport returns, per sport, the distinct pick game dates plus the
// day after each. Late games land on the next UTC day in some feeds.
func DateSetsBySport(picks []*models.Pick) map[models.Sport][]time.Time {
	seen := make(map[models.Sport]map[string]bool)
	sets := make(map[models.Sport][]time.Time)
	for _, p := range picks {
		if seen[p.Sport] == nil {
			seen[p.Sport] = make(map[string]bool)
		}
		day := startOfDay(p.GameDate)
		for _, d := range []time.Time{day, day.AddDate(0, 0, 1)} {
			key := d.Format("2006-01-02")
			if seen[p.Sport][key] {
				continue
			}
			seen[p.Sport][key] = true
			sets[p.Sport] = append(sets[p.Sport], d)
		}
	}
	return sets
}

// safeGrade converts a grading panic into an error
func safeGrade(pick *models.Pick, games []models.Game) (out grading.Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("grading panicked: %v", r)
		}
	}()
	return grading.GradePick(pick, games)
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
