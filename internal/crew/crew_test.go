package crew

import (
	"context"
	"errors"
	"strings"
	"testing"

	"navmind/internal/domain"
	"navmind/internal/domain/models"
	"navmind/internal/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedLLM answers by agent role and records every prompt it receives.
type scriptedLLM struct {
	answers map[string]string
	failOn  string
	prompts []llm.Prompt
}

func (s *scriptedLLM) Complete(_ context.Context, p llm.Prompt) (string, error) {
	s.prompts = append(s.prompts, p)
	if s.failOn != "" && p.Agent.Role == s.failOn {
		return "", errors.New("503 service unavailable")
	}
	return s.answers[p.Agent.Role], nil
}

func newScripted() *scriptedLLM {
	return &scriptedLLM{answers: map[string]string{
		"City Selection Agent":    "Here are my picks:\n• Lisbon is great for food\n• Porto has wine",
		"Local Destination Agent": "## Attractions\n- Belem Tower",
		"Itinerary Planner Agent": "| Day | Plan |\n| 1 | Alfama walk |",
		"Budget Planner Agent":    "| Item | Cost |\nAccommodation: $400\nTransportation: $150",
	}}
}

func prefs() models.TripPreferences {
	return models.TripPreferences{
		TravelType:   "Cultural",
		Interests:    []string{"Food", "History"},
		Season:       "Spring",
		TripDuration: 5,
		Budget:       "$500-$1000",
	}
}

func TestExecuteSelectsCityAndRunsFourTasks(t *testing.T) {
	fake := newScripted()

	bundle, err := New(fake).Execute(context.Background(), prefs())
	require.NoError(t, err)

	require.Len(t, fake.prompts, 4)
	roles := []string{}
	for _, p := range fake.prompts {
		roles = append(roles, p.Agent.Role)
	}
	assert.Equal(t, []string{
		"City Selection Agent",
		"Local Destination Agent",
		"Itinerary Planner Agent",
		"Budget Planner Agent",
	}, roles)

	assert.Contains(t, fake.prompts[0].Description, "- Travel Type: Cultural")
	assert.Contains(t, fake.prompts[0].Description, "- Interests: ['Food', 'History']")
	assert.Contains(t, fake.prompts[1].Description, "Provide detailed information about Lisbon")
	assert.Contains(t, fake.prompts[2].Description, "Create a 5 day itinerary for a trip to Lisbon")

	// the budget prompt carries the itinerary's rendered output, not its task description
	assert.Equal(t, []string{"| Day | Plan |\n| 1 | Alfama walk |"}, fake.prompts[3].Context)
	assert.Empty(t, fake.prompts[1].Context)
	assert.Empty(t, fake.prompts[2].Context)

	assert.Equal(t, fake.answers["City Selection Agent"], bundle.CitySelection)
	assert.Equal(t, fake.answers["Local Destination Agent"], bundle.CityResearch)
	assert.Equal(t, fake.answers["Itinerary Planner Agent"], bundle.Itinerary)
	assert.Equal(t, fake.answers["Budget Planner Agent"], bundle.Budget)
}

func TestExecuteCustomCitySkipsSelection(t *testing.T) {
	fake := newScripted()
	p := prefs()
	p.CustomCity = "  Kyoto "

	bundle, err := New(fake).Execute(context.Background(), p)
	require.NoError(t, err)

	require.Len(t, fake.prompts, 3)
	for _, pr := range fake.prompts {
		assert.NotEqual(t, "City Selection Agent", pr.Agent.Role)
	}
	assert.Contains(t, bundle.CitySelection, "Kyoto")
	assert.Equal(t, "User manually entered destination: **Kyoto**", bundle.CitySelection)
	assert.Contains(t, fake.prompts[0].Description, "about Kyoto")
}

func TestExecuteFallsBackToDefaultCity(t *testing.T) {
	fake := newScripted()
	fake.answers["City Selection Agent"] = "1. Lisbon\n2. Porto"

	_, err := New(fake).Execute(context.Background(), prefs())
	require.NoError(t, err)
	assert.Contains(t, fake.prompts[1].Description, "about Paris")
}

func TestExecuteFillsPlaceholders(t *testing.T) {
	fake := newScripted()
	fake.answers["Local Destination Agent"] = ""
	fake.answers["Budget Planner Agent"] = "   "

	bundle, err := New(fake).Execute(context.Background(), prefs())
	require.NoError(t, err)
	assert.Equal(t, models.NoCityResearch, bundle.CityResearch)
	assert.Equal(t, models.NoBudget, bundle.Budget)
}

func TestExecuteFailsWholeRunOnPhaseTwoError(t *testing.T) {
	for _, role := range []string{"Local Destination Agent", "Itinerary Planner Agent", "Budget Planner Agent"} {
		t.Run(role, func(t *testing.T) {
			fake := newScripted()
			fake.failOn = role

			bundle, err := New(fake).Execute(context.Background(), prefs())
			require.Error(t, err)
			assert.True(t, domain.IsUpstream(err))
			assert.Equal(t, models.TripPlanBundle{}, bundle)
			assert.Contains(t, err.Error(), "503 service unavailable")
		})
	}
}

func TestExecuteFailsOnSelectionError(t *testing.T) {
	fake := newScripted()
	fake.failOn = "City Selection Agent"

	_, err := New(fake).Execute(context.Background(), prefs())
	require.Error(t, err)
	assert.Len(t, fake.prompts, 1)
}

func TestKickoffRejectsBadEdges(t *testing.T) {
	a := models.TaskSpec{Name: "a"}
	cases := map[string][]models.TaskSpec{
		"empty":     nil,
		"forward":   {{Name: "b", Context: []string{"a"}}, a},
		"unknown":   {a, {Name: "b", Context: []string{"zzz"}}},
		"self":      {{Name: "a", Context: []string{"a"}}},
		"duplicate": {a, a},
		"unnamed":   {{Name: ""}},
		"twice":     {a, {Name: "b", Context: []string{"a", "a"}}},
	}
	for name, tasks := range cases {
		t.Run(name, func(t *testing.T) {
			fake := newScripted()
			_, err := New(fake).Kickoff(context.Background(), tasks)
			require.Error(t, err)
			assert.Empty(t, fake.prompts, "no task may be submitted when the graph is invalid")
		})
	}
}

func TestKickoffJoinsMultipleContexts(t *testing.T) {
	fake := &scriptedLLM{answers: map[string]string{"A": "alpha", "B": "beta", "C": "gamma"}}
	tasks := []models.TaskSpec{
		{Name: "a", Agent: models.Agent{Role: "A"}},
		{Name: "b", Agent: models.Agent{Role: "B"}},
		{Name: "c", Agent: models.Agent{Role: "C"}, Context: []string{"b", "a"}},
	}

	results, err := New(fake).Kickoff(context.Background(), tasks)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "gamma", results[2].Raw)
	assert.Equal(t, []string{"beta", "alpha"}, fake.prompts[2].Context)
}

func TestTaskFactory(t *testing.T) {
	cat := DefaultCatalog()
	itinerary := ItineraryCreationTask(cat.TripPlanner, 3, "Lisbon")
	budget := BudgetManagementTask(cat.BudgetManager, "Luxury", itinerary)

	assert.Equal(t, []string{TaskItinerary}, budget.Context)
	assert.Contains(t, budget.Description, "budget range of Luxury")
	assert.Contains(t, budget.Description, "~$4000")
	assert.Contains(t, budget.Description, "at most 10% over the upper bound")
	assert.Contains(t, budget.ExpectedOutput, "markdown table")

	research := CityResearchTask(cat.LocalExpert, "Lisbon")
	for _, category := range []string{"attractions", "cuisine", "Cultural", "accommodation", "Travel tips", "Hidden gems"} {
		assert.Contains(t, research.Description, category)
	}
	assert.Equal(t, 6, strings.Count(research.Description, "\n- "))
}
