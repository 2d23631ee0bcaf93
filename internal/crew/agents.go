package crew

import "navmind/internal/domain/models"

// Catalog holds the four personas used by the planning pipeline.
type Catalog struct {
	CitySelector  models.Agent
	LocalExpert   models.Agent
	TripPlanner   models.Agent
	BudgetManager models.Agent
}

// DefaultCatalog returns the built-in personas.
func DefaultCatalog() Catalog {
	return Catalog{
		CitySelector: models.Agent{
			Role:      "City Selection Agent",
			Goal:      "Identify the best cities for a trip based on user preferences.",
			Backstory: "An expert travel agent with global travel knowledge and client-first approach.",
		},
		LocalExpert: models.Agent{
			Role:      "Local Destination Agent",
			Goal:      "Provide detailed city insights: food, culture, travel tips, and hidden gems.",
			Backstory: "A cultural insider with deep city-specific knowledge and recommendations.",
		},
		TripPlanner: models.Agent{
			Role:      "Itinerary Planner Agent",
			Goal:      "Build a detailed trip plan with travel, stay, meals, and activities.",
			Backstory: "A logistic planner that optimizes time, convenience, and excitement.",
		},
		BudgetManager: models.Agent{
			Role:      "Budget Planner Agent",
			Goal:      "Ensure trip costs align with user budget and maximize experiences.",
			Backstory: "A cost-efficient travel manager who finds the best deals and value.",
		},
	}
}
