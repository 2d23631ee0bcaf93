package models

import (
	"fmt"
	"strings"

	"navmind/internal/domain"
)

// TripPreferences is one submitted planning request.
type TripPreferences struct {
	TravelType   string   `json:"travel_type"`
	Interests    []string `json:"interests"`
	Season       string   `json:"season"`
	TripDuration int      `json:"trip_duration"`
	Budget       string   `json:"budget"`
	CustomCity   string   `json:"custom_city,omitempty"`
}

// Validate checks every enumerated field and the duration range.
func (p TripPreferences) Validate() error {
	if !domain.TravelTypes.Contains(p.TravelType) {
		return domain.ValidationError{Field: "travel_type", Msg: fmt.Sprintf("unknown travel type %q", p.TravelType)}
	}
	for _, in := range p.Interests {
		if !domain.Interests.Contains(in) {
			return domain.ValidationError{Field: "interests", Msg: fmt.Sprintf("unknown interest %q", in)}
		}
	}
	if !domain.Seasons.Contains(p.Season) {
		return domain.ValidationError{Field: "season", Msg: fmt.Sprintf("unknown season %q", p.Season)}
	}
	if p.TripDuration < domain.MinTripDuration || p.TripDuration > domain.MaxTripDuration {
		return domain.ValidationError{
			Field: "trip_duration",
			Msg:   fmt.Sprintf("must be between %d and %d days", domain.MinTripDuration, domain.MaxTripDuration),
		}
	}
	if !domain.BudgetLabels.Contains(p.Budget) {
		return domain.ValidationError{Field: "budget", Msg: fmt.Sprintf("unknown budget range %q", p.Budget)}
	}
	return nil
}

// City returns the trimmed custom city override, empty when none was given.
func (p TripPreferences) City() string {
	return strings.TrimSpace(p.CustomCity)
}

// InterestsText renders the interests the way they appear in prompts.
func (p TripPreferences) InterestsText() string {
	if len(p.Interests) == 0 {
		return "[]"
	}
	quoted := make([]string, len(p.Interests))
	for i, in := range p.Interests {
		quoted[i] = "'" + in + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

const (
	NoCitySelection = "No city selection found."
	NoCityResearch  = "No city research found."
	NoItinerary     = "No itinerary found."
	NoBudget        = "No budget found."
)

// TripPlanBundle holds the raw text of the four pipeline tasks.
type TripPlanBundle struct {
	CitySelection string `json:"city_selection"`
	CityResearch  string `json:"city_research"`
	Itinerary     string `json:"itinerary"`
	Budget        string `json:"budget"`
}

// WithPlaceholders fills every empty section with its fallback text.
func (b TripPlanBundle) WithPlaceholders() TripPlanBundle {
	fill := func(v, fallback string) string {
		if strings.TrimSpace(v) == "" {
			return fallback
		}
		return v
	}
	return TripPlanBundle{
		CitySelection: fill(b.CitySelection, NoCitySelection),
		CityResearch:  fill(b.CityResearch, NoCityResearch),
		Itinerary:     fill(b.Itinerary, NoItinerary),
		Budget:        fill(b.Budget, NoBudget),
	}
}

// BudgetLineItem is one cost row recovered from the budget text.
type BudgetLineItem struct {
	Item    string `json:"item"`
	CostINR string `json:"cost_inr"`
}

// TripPlanView is what the presentation layer renders for one run.
type TripPlanView struct {
	Preferences TripPreferences  `json:"preferences"`
	Bundle      TripPlanBundle   `json:"bundle"`
	BudgetText  string           `json:"budget_text"`
	EstimateINR string           `json:"estimate_inr"`
	LineItems   []BudgetLineItem `json:"line_items"`
	Warning     string           `json:"warning,omitempty"`
	ExportText  string           `json:"export_text"`
}
