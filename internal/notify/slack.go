package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// SlackSender delivers notifications via a Slack incoming webhook
type SlackSender struct {
	webhookURL string
	username   string
	client     *retryablehttp.Client
}

// NewSlackSender creates a SlackSender for the given webhook URL
func NewSlackSender(webhookURL, username string, timeout time.Duration) *SlackSender {
	return &SlackSender{
		webhookURL: webhookURL,
		username:   username,
		client:     newWebhookClient(timeout),
	}
}

type slackPayload struct {
	Text     string `json:"text"`
	Username string `json:"username,omitempty"`
}

// Send posts the message with the title in Slack bold markup
func (s *SlackSender) Send(ctx context.Context, title, message string) error {
	return postJSON(ctx, s.client, s.Name(), s.webhookURL, slackPayload{
		Text:     fmt.Sprintf("*%s*\n%s", title, message),
		Username: s.username,
	})
}

// Name returns the sender identifier
func (s *SlackSender) Name() string {
	return "slack"
}
