package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"dmfengineering.com/timesheet/ai/suggest"
	aiutils "dmfengineering.com/timesheet/ai/utils"
	"dmfengineering.com/timesheet/core"
	"dmfengineering.com/timesheet/utils"
)

// Runs the suggestion prompt against a transcript from stdin, for iterating
// on the prompt without going through the web API.
func main() {
	date := flag.String("date", utils.Today(), "local date anchored to \"today\"")
	flag.Parse()

	transcript, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	dm, err := core.New(os.Getenv("TIMESHEET_DSN"), 2)
	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()

	items, err := core.GetBudgetItemsEmployee(dm.GetDB(ctx))
	if err != nil {
		log.Fatal(err)
	}

	service := suggest.NewService(ctx)
	suggestions, resp, err := service.SuggestDebug(ctx, string(transcript), *date, items)
	if err != nil {
		log.Fatal(err)
	}

	out, err := json.MarshalIndent(suggestions, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
	aiutils.PrintUsage(resp)
}
