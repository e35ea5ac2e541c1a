package core

import (
	"testing"

	"dmfengineering.com/timesheet/infrastructure/communication"
	"github.com/stretchr/testify/assert"
)

func TestNotifierWithSender(t *testing.T) {
	n := &Notifier{EmailFrom: "timesheet@dmfengineering.com"}

	email := n.withSender(&communication.EmailInfo{To: []string{"a@dmfengineering.com"}})
	assert.Equal(t, "timesheet@dmfengineering.com", email.From)

	// An explicit sender is never overridden.
	email = n.withSender(&communication.EmailInfo{From: "other@dmfengineering.com"})
	assert.Equal(t, "other@dmfengineering.com", email.From)

	assert.Nil(t, n.withSender(nil))
}

func TestNotifierWithSenderUnconfigured(t *testing.T) {
	n := &Notifier{}

	// Left empty so SendEmail falls back to communication.DefaultSender.
	email := n.withSender(&communication.EmailInfo{To: []string{"a@dmfengineering.com"}})
	assert.Empty(t, email.From)
}
