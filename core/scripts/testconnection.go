package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"dmfengineering.com/timesheet/core"
	"dmfengineering.com/timesheet/core/models"
)

func main() {
	dm, err := core.New(os.Getenv("TIMESHEET_DSN"), 10)
	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()

	ctx := context.Background()

	var catalogRows, entryRows, employeeRows int64
	db := dm.GetDB(ctx)
	if err := db.Model(&models.BudgetItem{}).Count(&catalogRows).Error; err != nil {
		log.Fatal(err)
	}
	if err := db.Model(&models.TimeEntry{}).Count(&entryRows).Error; err != nil {
		log.Fatal(err)
	}
	if err := db.Model(&models.Employee{}).Count(&employeeRows).Error; err != nil {
		log.Fatal(err)
	}

	fmt.Printf("OK: %d catalog rows, %d time entries, %d employees\n",
		catalogRows, entryRows, employeeRows)
}
