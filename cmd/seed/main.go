package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"dmfengineering.com/timesheet/core"
	"dmfengineering.com/timesheet/core/models"
	"dmfengineering.com/timesheet/infrastructure/filesystem"
	"dmfengineering.com/timesheet/utils"
)

// Seeds the schema and loads the WBS catalog from a CSV export. The catalog
// file can be a local path or s3://bucket/key.
func main() {
	catalogPath := flag.String("catalog", "", "catalog csv (local path or s3://bucket/key)")
	flag.Parse()

	db := core.ConnectDB(os.Getenv("TIMESHEET_DSN"))

	tables := []interface{}{
		&models.BudgetItem{},
		&models.TimeEntry{},
		&models.Employee{},
		&models.Notification{},
	}
	for _, m := range tables {
		if !db.Migrator().HasTable(m) {
			if err := db.Migrator().CreateTable(m); err != nil {
				log.Fatalf("failed to create table for %T: %v", m, err)
			}
		}
	}

	if *catalogPath == "" {
		return
	}

	reader, err := openCatalog(context.Background(), *catalogPath)
	if err != nil {
		log.Fatal(err)
	}

	items, err := parseCatalog(reader)
	if err != nil {
		log.Fatal(err)
	}

	for _, item := range items {
		if err := db.Save(&item).Error; err != nil {
			log.Fatalf("failed to save %s: %v", item.WbsCode, err)
		}
	}
	log.Printf("loaded %d catalog rows", len(items))
}

func openCatalog(ctx context.Context, path string) (io.Reader, error) {
	if rest, ok := strings.CutPrefix(path, "s3://"); ok {
		bucket, key, ok := strings.Cut(rest, "/")
		if !ok {
			return nil, fmt.Errorf("invalid s3 path %q", path)
		}
		var buf bytes.Buffer
		if err := filesystem.ReadFile(bucket, key, ctx, &buf); err != nil {
			return nil, err
		}
		return &buf, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// parseCatalog maps a header-keyed CSV export onto budget items. Rows without
// a wbs_code are skipped.
func parseCatalog(r io.Reader) ([]models.BudgetItem, error) {
	records, err := utils.ParseCSVRecords(r)
	if err != nil {
		return nil, err
	}

	var items []models.BudgetItem
	for _, record := range records {
		code := strings.TrimSpace(record["wbs_code"])
		if code == "" {
			continue
		}

		projectNumber, err := strconv.Atoi(record["project_number"])
		if err != nil {
			return nil, fmt.Errorf("row %s: bad project_number %q", code, record["project_number"])
		}
		taskNumber, err := strconv.Atoi(record["task_number"])
		if err != nil {
			return nil, fmt.Errorf("row %s: bad task_number %q", code, record["task_number"])
		}

		item := models.BudgetItem{
			WbsCode:         code,
			ProjectNumber:   projectNumber,
			ProjectName:     record["project_name"],
			Contract:        record["contract"],
			TaskNumber:      taskNumber,
			TaskDescription: record["task_description"],
			FeeStructure:    record["fee_structure"],
		}
		if v := strings.TrimSpace(record["task_unit"]); v != "" {
			item.TaskUnit = utils.Ptr(v)
		}
		if v := strings.TrimSpace(record["subtask_number"]); v != "" {
			n, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("row %s: bad subtask_number %q", code, v)
			}
			item.SubtaskNumber = utils.Ptr(n)
		}
		if v := strings.TrimSpace(record["subtask_description"]); v != "" {
			item.SubtaskDescription = utils.Ptr(v)
		}
		if v := strings.TrimSpace(record["budget_amount"]); v != "" {
			n, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("row %s: bad budget_amount %q", code, v)
			}
			item.BudgetAmount = n
		}
		if v := strings.TrimSpace(record["dmf_budget_amount"]); v != "" {
			n, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("row %s: bad dmf_budget_amount %q", code, v)
			}
			item.DmfBudgetAmount = n
		}

		items = append(items, item)
	}
	return items, nil
}
