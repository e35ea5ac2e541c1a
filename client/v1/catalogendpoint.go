package v1

import (
	"encoding/json"
	"strconv"

	"dmfengineering.com/timesheet/core/models"
)

type CatalogEndpoint struct {
	transport *Transport
}

func (ep *CatalogEndpoint) List() ([]models.BudgetItem, error) {
	resp, err := ep.transport.Get("/api/v1/catalog", nil)
	if err != nil {
		return nil, err
	}

	var result envelope[[]models.BudgetItem]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}

	return result.Data, nil
}

// Resolve maps a (project, task, subtask?) path onto its wbs code.
func (ep *CatalogEndpoint) Resolve(project, task int, subtask *float64) (string, error) {
	query := map[string]string{
		"project": strconv.Itoa(project),
		"task":    strconv.Itoa(task),
	}
	if subtask != nil {
		query["subtask"] = strconv.FormatFloat(*subtask, 'f', -1, 64)
	}

	resp, err := ep.transport.Get("/api/v1/catalog/resolve", query)
	if err != nil {
		return "", err
	}

	var result envelope[struct {
		WbsCode string `json:"wbsCode"`
	}]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return "", err
	}

	return result.Data.WbsCode, nil
}
