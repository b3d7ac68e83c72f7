package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// SettlementLogger provides dedicated logging for grading decisions.
type SettlementLogger struct {
	*logrus.Entry
}

// NewSettlementLogger creates a new settlement logger.
func NewSettlementLogger(baseLogger *logrus.Logger) *SettlementLogger {
	return &SettlementLogger{
		Entry: baseLogger.WithField("component", "settlement"),
	}
}

// LogPickGraded logs the verdict reached for a pick.
func (sl *SettlementLogger) LogPickGraded(pickID, sport, result, pnl, note string) {
	sl.WithFields(logrus.Fields{
		"pick_id": pickID,
		"sport":   sport,
		"result":  result,
		"pnl":     pnl,
		"note":    note,
	}).Info("Pick graded")
}

// LogPickDeferred logs a pick left pending for the next run.
func (sl *SettlementLogger) LogPickDeferred(pickID, sport, reason string) {
	sl.WithFields(logrus.Fields{
		"pick_id": pickID,
		"sport":   sport,
		"reason":  reason,
	}).Debug("Pick deferred")
}

// LogPickError logs a per-pick failure. The run continues.
func (sl *SettlementLogger) LogPickError(pickID, sport, stage string, err error) {
	sl.WithFields(logrus.Fields{
		"pick_id": pickID,
		"sport":   sport,
		"stage":   stage,
	}).WithError(err).Error("Pick failed")
}

// LogProviderFetch logs the result of fetching one sport's games.
func (sl *SettlementLogger) LogProviderFetch(provider, sport string, dates, games int, latency time.Duration, err error) {
	entry := sl.WithFields(logrus.Fields{
		"provider":   provider,
		"sport":      sport,
		"dates":      dates,
		"games":      games,
		"latency_ms": latency.Milliseconds(),
	})
	if err != nil {
		entry.WithError(err).Warn("Provider fetch incomplete")
		return
	}
	entry.Info("Provider fetch completed")
}
