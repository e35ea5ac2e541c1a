package core

import (
	"context"
	"fmt"
	"log"

	"dmfengineering.com/timesheet/core/models"
	"dmfengineering.com/timesheet/infrastructure/communication"
	"dmfengineering.com/timesheet/utils"
	"github.com/google/uuid"
)

// Notifier persists in-app notifications and mirrors them to email. Delivery
// is a side channel of the state machine: Dispatch never blocks the calling
// transition and never propagates its failure.
type Notifier struct {
	Dm    *DatabaseManager
	Slack *communication.Slack

	// EmailFrom is the sender for outbound mail; empty falls back to
	// communication.DefaultSender.
	EmailFrom string

	// EmailEnabled toggles the SES mirror; in-app rows are always written.
	EmailEnabled bool
}

// NotifierConfig carries the delivery settings from the service
// configuration.
type NotifierConfig struct {
	EmailFrom      string
	SlackChannelID string
}

func NewNotifier(dm *DatabaseManager, cfg NotifierConfig) *Notifier {
	return &Notifier{
		Dm:           dm,
		Slack:        communication.ConnectSlack(communication.SlackOption{ErrorChannelID: cfg.SlackChannelID}),
		EmailFrom:    cfg.EmailFrom,
		EmailEnabled: true,
	}
}

// Dispatch sends in the background. Failures are logged and mirrored to the
// ops Slack channel; the triggering operation has already committed.
func (n *Notifier) Dispatch(notification models.Notification, email *communication.EmailInfo) {
	go func() {
		ctx := context.Background()
		if err := n.Send(ctx, notification, email); err != nil {
			wrapped := &ExternalServiceError{Service: "notification", Err: err}
			log.Printf("notification delivery failed for user %s: %v", notification.UserID, wrapped)
			if slackErr := n.Slack.Error(fmt.Sprintf("notification delivery failed: %v", wrapped)); slackErr != nil {
				log.Printf("slack alert failed: %v", slackErr)
			}
		}
	}()
}

// Send delivers synchronously. Batch callers use it directly so delivery
// finishes before the process exits.
func (n *Notifier) Send(ctx context.Context, notification models.Notification, email *communication.EmailInfo) error {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	if notification.Type == "" {
		notification.Type = models.NotificationInfo
	}
	if err := n.Dm.GetDB(ctx).Create(&notification).Error; err != nil {
		return fmt.Errorf("persist notification: %w", err)
	}

	if email != nil && n.EmailEnabled {
		if err := communication.SendEmail(ctx, n.withSender(email)); err != nil {
			return fmt.Errorf("send email: %w", err)
		}
	}
	return nil
}

// withSender fills the configured sender onto an email that has none.
func (n *Notifier) withSender(email *communication.EmailInfo) *communication.EmailInfo {
	if email != nil && email.From == "" {
		email.From = n.EmailFrom
	}
	return email
}

// EntryReviewed tells the entry's owner the outcome of an admin review.
func (n *Notifier) EntryReviewed(owner models.Employee, entry *models.TimeEntry, decision string, notes *string) {
	title := "Time entry approved"
	kind := models.NotificationSuccess
	if decision == DecisionRejected {
		title = "Time entry rejected"
		kind = models.NotificationWarning
	}

	message := fmt.Sprintf("Your %v hour entry on %s (%s) was %s.",
		entry.Hours, entry.EntryDate, entry.WbsCode, decision)
	if notes != nil && *notes != "" {
		message += fmt.Sprintf(" Notes: %s", *notes)
	}

	var email *communication.EmailInfo
	if owner.Email != "" {
		email = &communication.EmailInfo{
			To:      []string{owner.Email},
			Subject: title,
			Text:    fmt.Sprintf("Hi %s,\n\n%s\n", owner.Name, message),
		}
	}

	n.Dispatch(models.Notification{
		UserID:      owner.UserID,
		Title:       title,
		Message:     message,
		Type:        kind,
		RelatedID:   utils.Ptr(entry.ID),
		RelatedType: utils.Ptr("time_entry"),
	}, email)
}

// TimesheetSubmitted confirms a bulk submission back to the employee.
func (n *Notifier) TimesheetSubmitted(owner models.Employee, dateLabel string, count int64) {
	message := fmt.Sprintf("%d time entries for %s were submitted for review.", count, dateLabel)

	n.Dispatch(models.Notification{
		UserID:  owner.UserID,
		Title:   "Timesheet submitted",
		Message: message,
		Type:    models.NotificationInfo,
	}, nil)
}
