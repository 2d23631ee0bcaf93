package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"navmind/internal/crew"
	"navmind/internal/domain/models"
	"navmind/internal/llm"
	"navmind/internal/utils"

	"go.uber.org/zap"
)

// DefaultUSDToINR is the fixed conversion rate used when none is configured.
const DefaultUSDToINR = 83.0

// TripPlanService runs the planning crew and prepares its output for display.
type TripPlanService struct {
	Client    llm.Completer
	Agents    *crew.Catalog
	USDToINR  float64
	RequestID string
}

// Plan validates prefs, runs the crew and builds the view.
// A pipeline failure returns the error and no view.
func (s TripPlanService) Plan(ctx context.Context, prefs models.TripPreferences) (models.TripPlanView, error) {
	prefs.CustomCity = strings.TrimSpace(prefs.CustomCity)
	if err := prefs.Validate(); err != nil {
		return models.TripPlanView{}, err
	}

	c := crew.New(s.Client)
	if s.Agents != nil {
		c.Agents = *s.Agents
	}
	c.RequestID = s.RequestID

	start := time.Now()
	utils.LogEvent(s.RequestID, "plan", "start", "trip plan requested",
		zap.String("travel_type", prefs.TravelType),
		zap.Int("days", prefs.TripDuration),
		zap.Bool("custom_city", prefs.CustomCity != ""))

	bundle, err := c.Execute(ctx, prefs)
	if err != nil {
		utils.Logger().Error("trip plan failed", zap.String("request_id", s.RequestID), zap.Error(err))
		return models.TripPlanView{}, fmt.Errorf("plan trip: %w", err)
	}

	utils.LogEvent(s.RequestID, "plan", "done", "trip plan generated", zap.Duration("latency", time.Since(start)))
	return s.Present(prefs, bundle), nil
}

// Present derives everything the page shows from a finished bundle.
// It is pure and safe to call again on an exported bundle.
func (s TripPlanService) Present(prefs models.TripPreferences, bundle models.TripPlanBundle) models.TripPlanView {
	bundle = bundle.WithPlaceholders()
	budgetText := utils.NormalizeMalformedText(bundle.Budget)

	view := models.TripPlanView{
		Preferences: prefs,
		Bundle:      bundle,
		BudgetText:  budgetText,
		EstimateINR: utils.EstimateForBudgetLabel(prefs.Budget),
	}

	items, ok := ExtractBudgetLineItems(budgetText, s.rate())
	if !ok {
		view.Warning = budgetTableWarning
	}
	view.LineItems = items
	view.ExportText = BuildExportText(view)
	return view
}

func (s TripPlanService) rate() float64 {
	if s.USDToINR > 0 {
		return s.USDToINR
	}
	return DefaultUSDToINR
}

// BuildExportText renders the downloadable plain-text trip plan.
func BuildExportText(v models.TripPlanView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Recommended Cities\n%s\n\n", v.Bundle.CitySelection)
	fmt.Fprintf(&b, "Destination Insights\n%s\n\n", v.Bundle.CityResearch)
	fmt.Fprintf(&b, "Itinerary Plan\n%s\n\n", v.Bundle.Itinerary)
	fmt.Fprintf(&b, "Budget Breakdown\n%s\n\n", v.BudgetText)
	fmt.Fprintf(&b, "Estimated Total Budget (INR): %s\n", v.EstimateINR)
	return b.String()
}
