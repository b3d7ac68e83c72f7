// Package logger provides audit logging.
package logger

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/pick-settler/internal/models"
)

// AuditLogger provides dedicated audit trail logging.
type AuditLogger struct {
	*logrus.Entry
}

// NewAuditLogger creates a new audit logger.
func NewAuditLogger(baseLogger *logrus.Logger) *AuditLogger {
	return &AuditLogger{
		Entry: baseLogger.WithField("component", "audit"),
	}
}

// LogPickSettled logs a pick moving to settled.
func (al *AuditLogger) LogPickSettled(runID string, pick *models.Pick, previousStatus models.PickStatus) {
	al.WithFields(pickFields(pick)).WithFields(logrus.Fields{
		"run_id":     runID,
		"old_status": string(previousStatus),
		"new_status": string(pick.Status),
	}).Info("Pick settled")
}

// LogPickRegraded logs an explicit re-grade, including the verdict it replaced.
func (al *AuditLogger) LogPickRegraded(pick *models.Pick, oldResult models.Result, oldPnL string) {
	al.WithFields(pickFields(pick)).WithFields(logrus.Fields{
		"old_result": string(oldResult),
		"old_pnl":    oldPnL,
	}).Warn("Pick re-graded")
}

// LogRunSummary logs the totals of a settlement run.
func (al *AuditLogger) LogRunSummary(summary models.RunSummary, duration time.Duration) {
	al.WithFields(logrus.Fields{
		"run_id":      summary.RunID,
		"loaded":      summary.Loaded,
		"graded":      summary.Graded,
		"skipped":     summary.Skipped,
		"errors":      summary.Errors,
		"wins":        summary.Wins,
		"losses":      summary.Losses,
		"pushes":      summary.Pushes,
		"ungraded":    summary.Ungraded,
		"net_pnl":     summary.NetPnL.String(),
		"duration_ms": duration.Milliseconds(),
	}).Info("Settlement run completed")
}

func pickFields(pick *models.Pick) logrus.Fields {
	fields := logrus.Fields{
		"pick_id":   pick.ID,
		"sport":     string(pick.Sport),
		"pick_type": string(pick.PickType),
		"result":    string(pick.Result),
		"pnl":       pick.PnL.String(),
	}
	if pick.GradedAt != nil {
		fields["graded_at"] = pick.GradedAt.Unix()
	}
	return fields
}
