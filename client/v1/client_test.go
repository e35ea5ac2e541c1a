package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitWeek(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/time-entries/submit-week", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2024-01-15", body["weekStart"])
		assert.Equal(t, "2024-01-21", body["weekEnd"])

		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]int64{"submitted": 3},
		})
	}))
	defer server.Close()

	client := NewTimesheetClient(server.URL, "test-token")

	result, err := client.TimeEntries.SubmitWeek("2024-01-15", "2024-01-21")
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Submitted)
}

func TestResolveWbsCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/catalog/resolve", r.URL.Path)
		assert.Equal(t, "25002", r.URL.Query().Get("project"))
		assert.Equal(t, "1", r.URL.Query().Get("task"))
		assert.Equal(t, "1", r.URL.Query().Get("subtask"))

		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]string{"wbsCode": "25002-01.1"},
		})
	}))
	defer server.Close()

	client := NewTimesheetClient(server.URL, "test-token")

	subtask := 1.0
	code, err := client.Catalog.Resolve(25002, 1, &subtask)
	require.NoError(t, err)
	assert.Equal(t, "25002-01.1", code)
}

func TestTransportErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"admin role required"}`))
	}))
	defer server.Close()

	client := NewTimesheetClient(server.URL, "test-token")

	_, err := client.TimeEntries.List()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "admin role required")
}
