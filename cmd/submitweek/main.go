package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	v1 "dmfengineering.com/timesheet/client/v1"
	"dmfengineering.com/timesheet/utils"
)

// Submits the current (or previous) week's drafts from the command line,
// for people who keep their entries up to date and just need the Friday
// submission step.
func main() {
	baseURL := flag.String("url", "https://timesheet.dmfengineering.com", "server base url")
	previous := flag.Bool("previous", false, "submit last week instead of this week")
	flag.Parse()

	token := os.Getenv("TIMESHEET_TOKEN")
	if token == "" {
		log.Fatal("TIMESHEET_TOKEN is not set")
	}

	weekStart, weekEnd := utils.WeekRange(time.Now())
	if *previous {
		weekStart, weekEnd = utils.PreviousWeekRange(time.Now())
	}

	client := v1.NewTimesheetClient(*baseURL, token)
	result, err := client.TimeEntries.SubmitWeek(weekStart, weekEnd)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("submitted %d entries for %s to %s\n", result.Submitted, weekStart, weekEnd)
}
