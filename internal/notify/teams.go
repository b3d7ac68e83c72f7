package notify

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// TeamsSender delivers notifications via a Microsoft Teams incoming webhook
// using the legacy MessageCard format.
type TeamsSender struct {
	webhookURL string
	client     *retryablehttp.Client
}

// NewTeamsSender creates a TeamsSender for the given webhook URL
func NewTeamsSender(webhookURL string, timeout time.Duration) *TeamsSender {
	return &TeamsSender{
		webhookURL: webhookURL,
		client:     newWebhookClient(timeout),
	}
}

type teamsCard struct {
	Type       string `json:"@type"`
	Context    string `json:"@context"`
	Summary    string `json:"summary"`
	ThemeColor string `json:"themeColor,omitempty"`
	Title      string `json:"title"`
	Text       string `json:"text"`
}

// Send posts a MessageCard; Teams needs explicit line breaks in card text
func (t *TeamsSender) Send(ctx context.Context, title, message string) error {
	return postJSON(ctx, t.client, t.Name(), t.webhookURL, teamsCard{
		Type:       "MessageCard",
		Context:    "http://schema.org/extensions",
		Summary:    title,
		ThemeColor: "2E7D32",
		Title:      title,
		Text:       strings.ReplaceAll(message, "\n", "<br>"),
	})
}

// Name returns the sender identifier
func (t *TeamsSender) Name() string {
	return "teams"
}
