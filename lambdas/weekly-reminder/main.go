package main

import (
	"context"
	"fmt"
	"time"

	"dmfengineering.com/timesheet/core"
	"dmfengineering.com/timesheet/core/models"
	"dmfengineering.com/timesheet/infrastructure/communication"
	"dmfengineering.com/timesheet/infrastructure/devops"
	"dmfengineering.com/timesheet/utils"
	"github.com/aws/aws-lambda-go/lambda"
	"gorm.io/gorm"
)

type ReminderEvent struct {
	DryRun bool `json:"dryRun"`
}

type ReminderStats struct {
	Employees int `json:"employees"`
	Entries   int `json:"entries"`
}

// HandleRequest runs on a Monday schedule and nudges anyone who left last
// week's entries in draft.
func HandleRequest(ctx context.Context, event ReminderEvent) (*ReminderStats, error) {
	weekStart, weekEnd := utils.PreviousWeekRange(time.Now())
	fmt.Printf("[INFO] checking drafts for %s to %s\n", weekStart, weekEnd)

	cfg, err := devops.LoadConfiguration(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	dm, err := core.New(cfg.Dsn, 2)
	if err != nil {
		return nil, fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dm.Close()

	var entries []models.TimeEntry
	err = dm.Exec(ctx, func(db *gorm.DB) error {
		return db.
			Where("status = ? AND entry_date BETWEEN ? AND ?", models.StatusDraft, weekStart, weekEnd).
			Find(&entries).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load draft entries: %w", err)
	}

	summaries := SummarizeDrafts(entries)
	stats := &ReminderStats{Employees: len(summaries), Entries: len(entries)}
	if event.DryRun {
		fmt.Printf("[INFO] dry run, would remind %d employees\n", len(summaries))
		return stats, nil
	}

	notifier := core.NewNotifier(dm, core.NotifierConfig{
		EmailFrom:      cfg.NotifyEmailFrom,
		SlackChannelID: cfg.SlackChannelID,
	})
	for employeeID, summary := range summaries {
		var owner models.Employee
		if err := dm.GetDB(ctx).Where("id = ?", employeeID).Take(&owner).Error; err != nil {
			fmt.Printf("[ERROR] no employee record for %s: %v\n", employeeID, err)
			continue
		}

		message := ReminderMessage(summary, weekStart, weekEnd)
		notification := models.Notification{
			UserID:  owner.UserID,
			Title:   "Timesheet reminder",
			Message: message,
			Type:    models.NotificationWarning,
		}

		var email *communication.EmailInfo
		if owner.Email != "" {
			email = &communication.EmailInfo{
				To:      []string{owner.Email},
				Subject: "Timesheet reminder",
				Text:    fmt.Sprintf("Hi %s,\n\n%s\n", owner.Name, message),
			}
		}

		if err := notifier.Send(ctx, notification, email); err != nil {
			fmt.Printf("[ERROR] failed to remind %s: %v\n", owner.Email, err)
			continue
		}
		fmt.Printf("[INFO] reminded %s about %d entries\n", owner.Email, summary.Count)
	}

	return stats, nil
}

func main() {
	lambda.Start(HandleRequest)
}
