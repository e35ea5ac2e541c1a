package utils

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseCSV(t *testing.T) {
	csvData := `wbs_code,project_number,task_number
25002-01.1,25002,1
25002-01.2,25002,1`

	got, err := ParseCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ParseCSV returned error: %v", err)
	}

	want := [][]string{
		{"wbs_code", "project_number", "task_number"},
		{"25002-01.1", "25002", "1"},
		{"25002-01.2", "25002", "1"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseCSV returned %+v, want %+v", got, want)
	}
}

func TestParseCSVRecords(t *testing.T) {
	csvData := `wbs_code,project_number,subtask_number
25002-01.1,25002,1
25002-02,25002,`

	got, err := ParseCSVRecords(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ParseCSVRecords returned error: %v", err)
	}

	want := []map[string]string{
		{"wbs_code": "25002-01.1", "project_number": "25002", "subtask_number": "1"},
		{"wbs_code": "25002-02", "project_number": "25002", "subtask_number": ""},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseCSVRecords returned %+v, want %+v", got, want)
	}
}

func TestParseCSVRecordsEmpty(t *testing.T) {
	if _, err := ParseCSVRecords(strings.NewReader("")); err == nil {
		t.Error("expected error for empty input")
	}
}
