package v1

import (
	"encoding/json"
	"fmt"

	"dmfengineering.com/timesheet/core/models"
)

type envelope[T any] struct {
	Data T `json:"data"`
}

type TimeEntryEndpoint struct {
	transport *Transport
}

func (ep *TimeEntryEndpoint) List() ([]models.TimeEntry, error) {
	resp, err := ep.transport.Get("/api/v1/time-entries", nil)
	if err != nil {
		return nil, err
	}

	var result envelope[[]models.TimeEntry]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}

	return result.Data, nil
}

type NewTimeEntryDTO struct {
	WbsCode     string  `json:"wbsCode"`
	EntryDate   string  `json:"entryDate"` // yyyy-MM-dd
	Hours       float64 `json:"hours"`
	Description *string `json:"description,omitempty"`
}

func (ep *TimeEntryEndpoint) Create(dto *NewTimeEntryDTO) (*models.TimeEntry, error) {
	resp, err := ep.transport.Post("/api/v1/time-entries", dto, nil)
	if err != nil {
		return nil, err
	}

	var result envelope[models.TimeEntry]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}

	return &result.Data, nil
}

type SubmitResult struct {
	Submitted int64 `json:"submitted"`
}

func (ep *TimeEntryEndpoint) Submit(date string) (*SubmitResult, error) {
	payload := map[string]string{"date": date}

	resp, err := ep.transport.Post("/api/v1/time-entries/submit", payload, nil)
	if err != nil {
		return nil, err
	}

	var result envelope[SubmitResult]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}

	return &result.Data, nil
}

func (ep *TimeEntryEndpoint) SubmitWeek(weekStart, weekEnd string) (*SubmitResult, error) {
	payload := map[string]string{"weekStart": weekStart, "weekEnd": weekEnd}

	resp, err := ep.transport.Post("/api/v1/time-entries/submit-week", payload, nil)
	if err != nil {
		return nil, err
	}

	var result envelope[SubmitResult]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}

	return &result.Data, nil
}

type ReviewDTO struct {
	Decision string  `json:"decision"`
	Notes    *string `json:"notes,omitempty"`
}

func (ep *TimeEntryEndpoint) Review(id string, dto *ReviewDTO) (*models.TimeEntry, error) {
	resp, err := ep.transport.Put(fmt.Sprintf("/api/v1/time-entries/%s/review", id), dto, nil)
	if err != nil {
		return nil, err
	}

	var result envelope[models.TimeEntry]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}

	return &result.Data, nil
}
