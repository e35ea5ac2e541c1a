package communication

import (
	"fmt"
	"os"

	"github.com/slack-go/slack"
)

// Slack posts operational messages to the team channels. A nil *Slack is a
// valid no-op sender, so callers never have to guard.
type Slack struct {
	client  *slack.Client
	options SlackOption
}

type SlackOption struct {
	InfoChannelID  string
	ErrorChannelID string
}

// ConnectSlack builds a sender. The bot token comes from the environment;
// channels not set on options fall back to the SLACK_*_CHANNEL env vars.
// Returns nil when no bot token is configured.
func ConnectSlack(options SlackOption) *Slack {
	token := os.Getenv("SLACK_BOT_TOKEN")
	if token == "" {
		return nil
	}
	if options.InfoChannelID == "" {
		options.InfoChannelID = os.Getenv("SLACK_INFO_CHANNEL")
	}
	if options.ErrorChannelID == "" {
		options.ErrorChannelID = os.Getenv("SLACK_ERROR_CHANNEL")
	}
	return NewSlack(token, options)
}

func NewSlack(token string, options SlackOption) *Slack {
	return &Slack{client: slack.New(token), options: options}
}

func (s *Slack) postMessage(channelID, message string) error {
	if s == nil || channelID == "" {
		return nil
	}
	_, _, err := s.client.PostMessage(
		channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to Slack: %w", err)
	}
	return nil
}

func (s *Slack) Info(message string) error {
	return s.postMessage(s.options.InfoChannelID, message)
}

func (s *Slack) Error(message string) error {
	return s.postMessage(s.options.ErrorChannelID, message)
}
