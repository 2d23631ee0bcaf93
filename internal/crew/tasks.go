package crew

import (
	"fmt"
	"strings"

	"navmind/internal/domain/models"
)

const (
	TaskCitySelection = "City Selection Task"
	TaskCityResearch  = "City Research Task"
	TaskItinerary     = "Itinerary Creation Task"
	TaskBudget        = "Budget Management Task"
)

// CitySelectionTask asks for candidate cities matching the preferences.
func CitySelectionTask(agent models.Agent, prefs models.TripPreferences) models.TaskSpec {
	return models.TaskSpec{
		Name: TaskCitySelection,
		Description: "Analyze user preferences and select the best destinations for a trip:\n" +
			fmt.Sprintf("- Travel Type: %s\n", prefs.TravelType) +
			fmt.Sprintf("- Interests: %s\n", prefs.InterestsText()) +
			fmt.Sprintf("- Season: %s\n", prefs.Season) +
			"Output: Provide a list of recommended cities with brief descriptions and reasons for selection.",
		ExpectedOutput: "Bullet points of recommended cities with brief descriptions and reasons for selection.",
		Agent:          agent,
	}
}

// CityResearchTask asks for destination insights on one city.
func CityResearchTask(agent models.Agent, city string) models.TaskSpec {
	return models.TaskSpec{
		Name: TaskCityResearch,
		Description: fmt.Sprintf("Provide detailed information about %s, including:\n", city) +
			strings.Join([]string{
				"- Top attractions and landmarks",
				"- Dining options and local cuisine",
				"- Cultural experiences and events",
				"- Recommended accommodation areas",
				"- Travel tips and local customs",
				"- Hidden gems and off-the-beaten-path suggestions",
			}, "\n"),
		ExpectedOutput: "Organized sections with headings and bullet points for each category.",
		Agent:          agent,
	}
}

// ItineraryCreationTask asks for a day-by-day schedule.
func ItineraryCreationTask(agent models.Agent, days int, city string) models.TaskSpec {
	return models.TaskSpec{
		Name: TaskItinerary,
		Description: fmt.Sprintf("Create a %d day itinerary for a trip to %s based on the following:\n", days, city) +
			strings.Join([]string{
				"- Daily schedule with time allocations for activities",
				"- Transportation arrangements (e.g., flights, local transport)",
				"- Activity sequences and time optimization",
				"- Meal planning suggestions",
			}, "\n"),
		ExpectedOutput: "Day-to-day table format itinerary with time slots and activities.",
		Agent:          agent,
	}
}

// BudgetManagementTask asks for a cost breakdown of the itinerary.
// The itinerary's output is injected as context through an explicit dependency edge.
func BudgetManagementTask(agent models.Agent, budget string, itinerary models.TaskSpec) models.TaskSpec {
	return models.TaskSpec{
		Name: TaskBudget,
		Description: fmt.Sprintf("The user selected a budget range of %s for their trip. ", budget) +
			"Estimate the total cost of the trip by breaking it down into:\n" +
			"- Accommodation\n" +
			"- Transportation\n" +
			"- Meals\n" +
			"- Activities\n" +
			"- Miscellaneous (tips, shopping, etc.)\n\n" +
			"Instructions:\n" +
			"- First, convert the given budget range string into numerical bounds.\n" +
			"  For example: '$500-$1000' means min = 500, max = 1000.\n" +
			"- Create an approximate cost breakdown such that the total is within the max, " +
			"or at most 10% over the upper bound (e.g., up to $1100 if the range is $500-$1000).\n" +
			"- If the user selected 'Luxury', assume a total budget of ~$4000.\n" +
			"- Return the breakdown in markdown table format.\n" +
			"- At the end, summarize the total and whether it's within or slightly above the user's range.",
		ExpectedOutput: "A clean markdown table with estimated costs per category and total, followed by a brief summary.",
		Agent:          agent,
		Context:        []string{itinerary.Name},
	}
}
