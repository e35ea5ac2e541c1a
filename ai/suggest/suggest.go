package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"dmfengineering.com/timesheet/core"
	"dmfengineering.com/timesheet/core/models"
	"dmfengineering.com/timesheet/utils"
	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"
	"google.golang.org/genai"
)

// Suggestion is one AI-proposed time entry. Suggestions are review items on
// the client until the user accepts them; nothing is persisted here.
type Suggestion struct {
	WbsCode         string  `json:"wbs_code" jsonschema:"description=The WBS code from the project hierarchy"`
	Hours           float64 `json:"hours" jsonschema:"description=Hours worked in 0.5 increments"`
	Description     string  `json:"description" jsonschema:"description=Brief description of the work"`
	EntryDate       string  `json:"entry_date" jsonschema:"description=Date in YYYY-MM-DD format"`
	ProjectName     string  `json:"project_name" jsonschema:"description=Project name for display"`
	TaskDescription string  `json:"task_description" jsonschema:"description=Task description for display"`
}

type SuggestionList struct {
	Suggestions []Suggestion `json:"suggestions"`
}

var suggestModel = googlegenai.GoogleAIModelRef("gemini-2.5-flash", &genai.GenerateContentConfig{
	MaxOutputTokens: 2000,
	Temperature:     genai.Ptr[float32](0.2),
	TopP:            genai.Ptr[float32](0.4),
	ThinkingConfig: &genai.ThinkingConfig{
		ThinkingBudget: genai.Ptr[int32](0),
	},
})

// Service turns a spoken-work transcript into candidate time entries.
type Service struct {
	g *genkit.Genkit
}

func NewService(ctx context.Context) *Service {
	g := genkit.Init(ctx,
		genkit.WithPlugins(&googlegenai.GoogleAI{APIKey: os.Getenv("GOOGLE_AI_API_KEY")}),
		genkit.WithDefaultModel("googleai/gemini-2.5-flash"),
	)
	return &Service{g: g}
}

// catalogEntry is the slimmed hierarchy serialized into the prompt. Built
// from the employee-scoped catalog, so no financial fields can reach the
// model.
type catalogEntry struct {
	WbsCode            string   `json:"wbs_code"`
	ProjectName        string   `json:"project_name"`
	TaskDescription    string   `json:"task_description"`
	SubtaskNumber      *float64 `json:"subtask_number,omitempty"`
	SubtaskDescription *string  `json:"subtask_description,omitempty"`
}

// Suggest generates candidates from the transcript and drops any that do not
// validate against the catalog. A model failure is an ExternalServiceError:
// the caller may retry, no state has changed.
func (s *Service) Suggest(ctx context.Context, transcript, localDate string, items []models.BudgetItem) ([]Suggestion, error) {
	suggestions, _, err := s.SuggestDebug(ctx, transcript, localDate, items)
	return suggestions, err
}

// SuggestDebug also returns the raw model response, for prompt iteration from
// the command line.
func (s *Service) SuggestDebug(ctx context.Context, transcript, localDate string, items []models.BudgetItem) ([]Suggestion, *ai.ModelResponse, error) {
	hierarchy := utils.Map(core.RedactFinancials(items), func(item models.BudgetItem) catalogEntry {
		return catalogEntry{
			WbsCode:            item.WbsCode,
			ProjectName:        item.ProjectName,
			TaskDescription:    item.TaskDescription,
			SubtaskNumber:      item.SubtaskNumber,
			SubtaskDescription: item.SubtaskDescription,
		}
	})
	hierarchyJSON, err := json.Marshal(hierarchy)
	if err != nil {
		return nil, nil, err
	}
	if localDate == "" {
		localDate = utils.Today()
	}

	system := fmt.Sprintf(`You are a timesheet assistant. Given a transcript of someone describing their work week and a list of available projects/tasks/subtasks, suggest time entries.

AVAILABLE PROJECTS/TASKS (JSON):
%s

RULES:
- Match the described work to the most appropriate entry from the hierarchy
- Each suggestion needs: wbs_code, hours, description, entry_date (YYYY-MM-DD)
- Hours should be in 0.5 increments
- If the user mentions "today", use exactly this date: %s
- If the user mentions specific days, use those. Otherwise distribute across the current work week (Mon-Fri); the week starts on Monday
- The description should be concise (1-2 sentences)
- Only suggest entries for work that matches available projects`, hierarchyJSON, localDate)

	result, resp, err := genkit.GenerateData[SuggestionList](ctx, s.g,
		ai.WithModel(suggestModel),
		ai.WithSystem(system),
		ai.WithPrompt("Here's what I did this week:\n\n%s", transcript),
	)
	if err != nil {
		return nil, nil, &core.ExternalServiceError{Service: "suggestion", Err: err}
	}

	return ValidateSuggestions(result.Suggestions, items), resp, nil
}

// ValidateSuggestions keeps only suggestions whose wbs_code exists in the
// catalog, with positive hours and a well-formed date. Invalid ones are
// silently dropped: this feature is best-effort, never a hard error.
func ValidateSuggestions(suggestions []Suggestion, items []models.BudgetItem) []Suggestion {
	known := make(map[string]bool, len(items))
	for _, item := range items {
		known[item.WbsCode] = true
	}

	return utils.Filter(suggestions, func(sug Suggestion) bool {
		if !known[sug.WbsCode] {
			return false
		}
		if core.ValidateHours(sug.Hours) != nil {
			return false
		}
		if core.ValidateEntryDate(sug.EntryDate) != nil {
			return false
		}
		return true
	})
}
