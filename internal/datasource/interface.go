package datasource

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/pick-settler/internal/models"
)

// ScoreProvider fetches finished games for a sport from one upstream feed
type ScoreProvider interface {
	// Name returns the name of the provider
	Name() string

	// Sports returns the sports this provider is configured for
	Sports() []models.Sport

	// FetchFinalGames returns the completed games on the given dates. A failed
	// date is logged and skipped; the error is non-nil only when every date failed.
	FetchFinalGames(ctx context.Context, sport models.Sport, dates []time.Time) ([]models.Game, error)
}

// ProviderError represents errors from score provider operations
type ProviderError struct {
	Provider string // Provider name
	Code     string // Error code (e.g., "rate_limit_exceeded")
	Message  string // Error message
	Err      error  // Underlying error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Provider + ": " + e.Code + ": " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Provider + ": " + e.Code + ": " + e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeRateLimitExceeded    = "rate_limit_exceeded"
	ErrCodeAuthenticationFailed = "authentication_failed"
	ErrCodeNotFound             = "not_found"
	ErrCodeInvalidData          = "invalid_data"
	ErrCodeNetworkError         = "network_error"
	ErrCodeServerError          = "server_error"
	ErrCodeCircuitOpen          = "circuit_open"
	ErrCodeUnsupportedSport     = "unsupported_sport"
)

// ErrCircuitOpen is wrapped by requests refused while the circuit breaker is open
var ErrCircuitOpen = errors.New("circuit breaker open")

// NewProviderError creates a new provider error
func NewProviderError(provider, code, message string, err error) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Code:     code,
		Message:  message,
		Err:      err,
	}
}

// ErrorCode extracts the ProviderError code from err, or "" if there is none
func ErrorCode(err error) string {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

const dateLayout = "2006-01-02"

// dateKey returns the calendar date of t as YYYY-MM-DD
func dateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// calendarDate truncates t to midnight UTC of its own calendar date
func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// uniqueDates returns the distinct calendar dates in order of first appearance
func uniqueDates(dates []time.Time) []time.Time {
	seen := make(map[string]bool, len(dates))
	out := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := calendarDate(d)
		if key := dateKey(day); !seen[key] {
			seen[key] = true
			out = append(out, day)
		}
	}
	return out
}

// dateFetcher fetches the final games for one calendar date
type dateFetcher func(ctx context.Context, date time.Time) ([]models.Game, error)

// fetchPerDate calls fetch for each distinct date under its own timeout. A
// failed date is logged and skipped; the joined error is returned only when
// no date succeeded.
func fetchPerDate(ctx context.Context, logger *logrus.Entry, sport models.Sport, dates []time.Time, timeout time.Duration, fetch dateFetcher) ([]models.Game, error) {
	var (
		games []models.Game
		errs  []error
	)
	days := uniqueDates(dates)
	for _, day := range days {
		if err := ctx.Err(); err != nil {
			return games, err
		}

		dayCtx, cancel := ctx, context.CancelFunc(func() {})
		if timeout > 0 {
			dayCtx, cancel = context.WithTimeout(ctx, timeout)
		}
		dayGames, err := fetch(dayCtx, day)
		cancel()

		if err != nil {
			logger.WithFields(logrus.Fields{
				"sport": sport,
				"date":  dateKey(day),
			}).WithError(err).Warn("Failed to fetch scores for date")
			errs = append(errs, fmt.Errorf("%s: %w", dateKey(day), err))
			continue
		}
		games = append(games, dayGames...)
	}

	if len(days) > 0 && len(errs) == len(days) {
		return nil, errors.Join(errs...)
	}
	return games, nil
}
