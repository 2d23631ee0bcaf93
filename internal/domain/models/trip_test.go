package models

import (
	"testing"

	"navmind/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPrefs() TripPreferences {
	return TripPreferences{
		TravelType:   "Leisure",
		Interests:    []string{"Food", "Art"},
		Season:       "Spring",
		TripDuration: 7,
		Budget:       "$1000-$2000",
	}
}

func TestTripPreferencesValidate(t *testing.T) {
	require.NoError(t, validPrefs().Validate())

	cases := map[string]func(*TripPreferences){
		"travel_type":   func(p *TripPreferences) { p.TravelType = "Cruise" },
		"interests":     func(p *TripPreferences) { p.Interests = []string{"Food", "Gaming"} },
		"season":        func(p *TripPreferences) { p.Season = "Monsoon" },
		"trip_duration": func(p *TripPreferences) { p.TripDuration = 31 },
		"budget":        func(p *TripPreferences) { p.Budget = "₹41,500 - ₹83,000" },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			p := validPrefs()
			mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
			var ve domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, field, ve.Field)
		})
	}
}

func TestTripPreferencesZeroDurationRejected(t *testing.T) {
	p := validPrefs()
	p.TripDuration = 0
	assert.Error(t, p.Validate())
}

func TestTripPreferencesInterestsText(t *testing.T) {
	assert.Equal(t, "['Food', 'Art']", validPrefs().InterestsText())
	assert.Equal(t, "[]", TripPreferences{}.InterestsText())
}

func TestBundleWithPlaceholders(t *testing.T) {
	b := TripPlanBundle{CitySelection: "Lisbon", Itinerary: "  \n"}.WithPlaceholders()

	assert.Equal(t, "Lisbon", b.CitySelection)
	assert.Equal(t, NoCityResearch, b.CityResearch)
	assert.Equal(t, NoItinerary, b.Itinerary)
	assert.Equal(t, NoBudget, b.Budget)
}
