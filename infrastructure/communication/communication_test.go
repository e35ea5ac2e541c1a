package communication

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectSlackWithoutToken(t *testing.T) {
	t.Setenv("SLACK_BOT_TOKEN", "")

	s := ConnectSlack(SlackOption{ErrorChannelID: "C123"})
	assert.Nil(t, s)

	// A nil sender is a valid no-op.
	assert.NoError(t, s.Info("hello"))
	assert.NoError(t, s.Error("boom"))
}

func TestConnectSlackChannelPrecedence(t *testing.T) {
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_INFO_CHANNEL", "C-env-info")
	t.Setenv("SLACK_ERROR_CHANNEL", "C-env-error")

	// Configured channels win over the environment.
	s := ConnectSlack(SlackOption{ErrorChannelID: "C-cfg-error"})
	require.NotNil(t, s)
	assert.Equal(t, "C-cfg-error", s.options.ErrorChannelID)
	assert.Equal(t, "C-env-info", s.options.InfoChannelID)

	// Unset options fall back to the environment.
	s = ConnectSlack(SlackOption{})
	require.NotNil(t, s)
	assert.Equal(t, "C-env-error", s.options.ErrorChannelID)
}
