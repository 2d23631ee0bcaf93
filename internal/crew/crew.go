package crew

import (
	"context"
	"fmt"
	"time"

	"navmind/internal/domain"
	"navmind/internal/domain/models"
	"navmind/internal/llm"
	"navmind/internal/utils"

	"go.uber.org/zap"
)

// Crew runs the fixed trip planning pipeline against one LLM client.
type Crew struct {
	Client    llm.Completer
	Agents    Catalog
	RequestID string
}

// New returns a Crew with the default personas.
func New(client llm.Completer) Crew {
	return Crew{Client: client, Agents: DefaultCatalog()}
}

// Execute runs city selection (unless a custom city is given) and then the
// research -> itinerary -> budget batch. Any task failure aborts the whole run.
func (c Crew) Execute(ctx context.Context, prefs models.TripPreferences) (models.TripPlanBundle, error) {
	var bundle models.TripPlanBundle

	city := prefs.City()
	if city != "" {
		bundle.CitySelection = CustomCityAck(city)
		utils.LogEvent(c.RequestID, "crew", "city_selection_skipped", "custom city supplied", zap.String("city", city))
	} else {
		results, err := c.Kickoff(ctx, []models.TaskSpec{CitySelectionTask(c.Agents.CitySelector, prefs)})
		if err != nil {
			return models.TripPlanBundle{}, err
		}
		bundle.CitySelection = results[0].Raw
		city = ExtractCity(bundle.CitySelection)
		utils.LogEvent(c.RequestID, "crew", "city_selected", "city extracted from selection", zap.String("city", city))
	}

	research := CityResearchTask(c.Agents.LocalExpert, city)
	itinerary := ItineraryCreationTask(c.Agents.TripPlanner, prefs.TripDuration, city)
	budget := BudgetManagementTask(c.Agents.BudgetManager, prefs.Budget, itinerary)

	results, err := c.Kickoff(ctx, []models.TaskSpec{research, itinerary, budget})
	if err != nil {
		return models.TripPlanBundle{}, err
	}

	bundle.CityResearch = results[0].Raw
	bundle.Itinerary = results[1].Raw
	bundle.Budget = results[2].Raw
	return bundle.WithPlaceholders(), nil
}

// Kickoff runs tasks one by one in declaration order. Each task's Context must
// name earlier tasks of the same batch; their outputs are injected into its prompt.
// The edges are checked before any task is submitted.
func (c Crew) Kickoff(ctx context.Context, tasks []models.TaskSpec) ([]models.TaskResult, error) {
	if err := validateEdges(tasks); err != nil {
		return nil, err
	}
	if c.Client == nil {
		return nil, domain.InternalError{Msg: "crew has no llm client"}
	}

	byName := make(map[string]string, len(tasks))
	out := make([]models.TaskResult, 0, len(tasks))
	for _, t := range tasks {
		ctxTexts := make([]string, 0, len(t.Context))
		for _, dep := range t.Context {
			ctxTexts = append(ctxTexts, byName[dep])
		}

		start := time.Now()
		raw, err := c.Client.Complete(ctx, llm.Prompt{
			Agent:          t.Agent,
			Description:    t.Description,
			ExpectedOutput: t.ExpectedOutput,
			Context:        ctxTexts,
		})
		if err != nil {
			utils.Logger().Warn("task failed",
				zap.String("request_id", c.RequestID),
				zap.String("task", t.Name),
				zap.Error(err))
			return nil, domain.UpstreamError{Service: "llm", Err: fmt.Errorf("%s: %w", t.Name, err)}
		}
		utils.LogEvent(c.RequestID, "crew", "task_done", t.Name,
			zap.Duration("latency", time.Since(start)),
			zap.Int("output_len", len(raw)))

		byName[t.Name] = raw
		out = append(out, models.TaskResult{TaskName: t.Name, Raw: raw})
	}
	return out, nil
}

func validateEdges(tasks []models.TaskSpec) error {
	if len(tasks) == 0 {
		return domain.InternalError{Msg: "no tasks to run"}
	}
	seen := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		if t.Name == "" {
			return domain.InternalError{Msg: "task name is required"}
		}
		if seen[t.Name] {
			return domain.InternalError{Msg: fmt.Sprintf("duplicate task name: %q", t.Name)}
		}
		deps := make(map[string]bool, len(t.Context))
		for _, dep := range t.Context {
			switch {
			case dep == t.Name:
				return domain.InternalError{Msg: fmt.Sprintf("task %q depends on itself", t.Name)}
			case deps[dep]:
				return domain.InternalError{Msg: fmt.Sprintf("task %q lists %q twice", t.Name, dep)}
			case !seen[dep]:
				return domain.InternalError{Msg: fmt.Sprintf("task %q depends on %q, which does not run before it", t.Name, dep)}
			}
			deps[dep] = true
		}
		seen[t.Name] = true
	}
	return nil
}
