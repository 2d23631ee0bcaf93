package domain

// ID is used across domain entities.
type ID int64

// Choice lists the accepted values of an enumerated form field.
type Choice []string

// Contains reports whether v is one of the choices (exact match).
func (c Choice) Contains(v string) bool {
	for _, s := range c {
		if s == v {
			return true
		}
	}
	return false
}

var (
	TravelTypes = Choice{"Leisure", "Business", "Adventure", "Cultural"}
	Interests   = Choice{"Nature", "History", "Food", "Adventure", "Culture", "Art", "Shopping", "Relaxation", "Nightlife"}
	Seasons     = Choice{"Spring", "Summer", "Autumn", "Winter"}
	// BudgetLabels are the budget ranges the estimate table knows about.
	BudgetLabels = Choice{"$500-$1000", "$1000-$2000", "$2000-$3000", "$3000+", "Luxury"}
)

const (
	MinTripDuration     = 1
	MaxTripDuration     = 30
	DefaultTripDuration = 7
)

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID ID     `json:"userId"`
	Role   string `json:"role"`
}
