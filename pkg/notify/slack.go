package notify

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
)

// SlackSender delivers notifications to Slack channels via the chat API
type SlackSender struct {
	api *slack.Client
}

// NewSlackSender creates a Slack sender using a bot token
func NewSlackSender(token string) *SlackSender {
	return &SlackSender{api: slack.New(token)}
}

// Name returns the channel name
func (s *SlackSender) Name() string {
	return "SLACK"
}

// Send posts one message to the given channel id
func (s *SlackSender) Send(ctx context.Context, channel, subject, body string) error {
	text := body
	if subject != "" {
		text = "*" + subject + "*\n" + body
	}

	if _, _, err := s.api.PostMessageContext(ctx, channel, slack.MsgOptionText(text, false)); err != nil {
		return fmt.Errorf("post to slack channel %s: %w", channel, err)
	}
	return nil
}
