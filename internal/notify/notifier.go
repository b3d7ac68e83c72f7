// Package notify delivers settlement run summaries to chat webhooks. Every
// configured sender receives each message; one failing sender does not stop
// delivery to the rest.
package notify

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/pick-settler/internal/config"
	"github.com/yourusername/pick-settler/internal/models"
)

// Sender is one notification channel
type Sender interface {
	// Send delivers a message with the given title and body
	Send(ctx context.Context, title, message string) error
	// Name returns the sender identifier (e.g. "slack")
	Name() string
}

// Notifier fans a message out to its senders
type Notifier struct {
	senders []Sender
	logger  *logrus.Entry
}

// NewNotifier creates a Notifier for the given senders
func NewNotifier(senders []Sender, logger *logrus.Logger) *Notifier {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &Notifier{
		senders: senders,
		logger:  logger.WithField("component", "notifier"),
	}
}

// NewNotifierFromConfig builds the senders that have a webhook configured.
// Disabled notifications yield a Notifier with no senders.
func NewNotifierFromConfig(cfg config.NotificationsConfig, logger *logrus.Logger) *Notifier {
	if !cfg.Enabled {
		return NewNotifier(nil, logger)
	}
	var senders []Sender
	if cfg.SlackWebhookURL != "" {
		senders = append(senders, NewSlackSender(cfg.SlackWebhookURL, cfg.Username, cfg.Timeout()))
	}
	if cfg.TeamsWebhookURL != "" {
		senders = append(senders, NewTeamsSender(cfg.TeamsWebhookURL, cfg.Timeout()))
	}
	return NewNotifier(senders, logger)
}

// Enabled reports whether any sender is configured
func (n *Notifier) Enabled() bool {
	return len(n.senders) > 0
}

// NotifyRunSummary sends the summary of a settlement run
func (n *Notifier) NotifyRunSummary(ctx context.Context, summary models.RunSummary) error {
	return n.Notify(ctx, SummaryTitle(summary), FormatSummary(summary))
}

// Notify sends a message to every sender and joins their failures
func (n *Notifier) Notify(ctx context.Context, title, message string) error {
	if len(n.senders) == 0 {
		return nil
	}

	var errs []string
	for _, s := range n.senders {
		if err := s.Send(ctx, title, message); err != nil {
			n.logger.WithError(err).WithField("sender", s.Name()).Error("Notification failed")
			errs = append(errs, fmt.Sprintf("%s: %v", s.Name(), err))
			continue
		}
		n.logger.WithFields(logrus.Fields{"sender": s.Name(), "title": title}).Debug("Notification sent")
	}

	if len(errs) > 0 {
		return fmt.Errorf("notify: %d sender(s) failed: %s", len(errs), strings.Join(errs, "; "))
	}
	return nil
}

// SummaryTitle returns e.g. "Settled 12 picks (8-3-1)"
func SummaryTitle(s models.RunSummary) string {
	return fmt.Sprintf("Settled %d picks (%d-%d-%d)", s.Graded, s.Wins, s.Losses, s.Pushes)
}

// FormatSummary renders the run counters as plain text lines
func FormatSummary(s models.RunSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Record: %dW %dL %dP\n", s.Wins, s.Losses, s.Pushes)
	fmt.Fprintf(&b, "Net PnL: %s\n", signedAmount(s.NetPnL.StringFixed(2)))
	if s.Ungraded > 0 {
		fmt.Fprintf(&b, "Needs review: %d\n", s.Ungraded)
	}
	fmt.Fprintf(&b, "Loaded %d, skipped %d, errors %d\n", s.Loaded, s.Skipped, s.Errors)
	fmt.Fprintf(&b, "Run: %s", s.RunID)
	return b.String()
}

func signedAmount(v string) string {
	if strings.HasPrefix(v, "-") {
		return v
	}
	return "+" + v
}
