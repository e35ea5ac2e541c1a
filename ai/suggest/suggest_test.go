package suggest

import (
	"testing"

	"dmfengineering.com/timesheet/core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSuggestions(t *testing.T) {
	catalog := []models.BudgetItem{
		{WbsCode: "25002-01.1"},
		{WbsCode: "25002-01.2"},
	}

	suggestions := []Suggestion{
		{WbsCode: "25002-01.1", Hours: 4, EntryDate: "2024-01-15"},
		{WbsCode: "99999-01.1", Hours: 4, EntryDate: "2024-01-15"},  // unknown code
		{WbsCode: "25002-01.2", Hours: 0, EntryDate: "2024-01-15"},  // no hours
		{WbsCode: "25002-01.2", Hours: -2, EntryDate: "2024-01-15"}, // negative hours
		{WbsCode: "25002-01.2", Hours: 2, EntryDate: "Monday"},      // bad date
		{WbsCode: "25002-01.2", Hours: 2.5, EntryDate: "2024-01-16"},
	}

	valid := ValidateSuggestions(suggestions, catalog)

	require.Len(t, valid, 2)
	assert.Equal(t, "25002-01.1", valid[0].WbsCode)
	assert.Equal(t, "25002-01.2", valid[1].WbsCode)
	assert.Equal(t, 2.5, valid[1].Hours)
}

func TestValidateSuggestionsEmpty(t *testing.T) {
	assert.Empty(t, ValidateSuggestions(nil, []models.BudgetItem{{WbsCode: "25002-01.1"}}))
	assert.Empty(t, ValidateSuggestions([]Suggestion{{WbsCode: "25002-01.1", Hours: 1, EntryDate: "2024-01-15"}}, nil))
}
