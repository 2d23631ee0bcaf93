package handlers

import (
	"net/http"
	"strings"

	"navmind/internal/domain/models"
	"navmind/internal/http/middleware"
	"navmind/internal/llm"
	"navmind/internal/services"
	"navmind/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Plans serves trip planning over the HTML form and the JSON API.
type Plans struct {
	Client   llm.Completer
	USDToINR float64
}

// PlanRequest is the submitted trip preference form (form fields or JSON).
type PlanRequest struct {
	TravelType   string   `form:"travel_type" json:"travel_type" binding:"required"`
	Interests    []string `form:"interests" json:"interests"`
	Season       string   `form:"season" json:"season" binding:"required"`
	TripDuration int      `form:"trip_duration" json:"trip_duration" binding:"required,min=1,max=30"`
	Budget       string   `form:"budget" json:"budget" binding:"required"`
	CustomCity   string   `form:"custom_city" json:"custom_city" binding:"max=120"`
}

func (r PlanRequest) Preferences() models.TripPreferences {
	return models.TripPreferences{
		TravelType:   strings.TrimSpace(r.TravelType),
		Interests:    trimmed(r.Interests),
		Season:       strings.TrimSpace(r.Season),
		TripDuration: r.TripDuration,
		Budget:       strings.TrimSpace(r.Budget),
		CustomCity:   strings.TrimSpace(r.CustomCity),
	}
}

// ExportRequest carries a finished bundle back for a file download.
type ExportRequest struct {
	Preferences models.TripPreferences `json:"preferences"`
	Bundle      models.TripPlanBundle  `json:"bundle"`
}

func (h Plans) service(c *gin.Context) services.TripPlanService {
	return services.TripPlanService{
		Client:    h.Client,
		USDToINR:  h.USDToINR,
		RequestID: middleware.GetRequestID(c),
	}
}

// CreatePlan runs the pipeline and returns the view as JSON.
// POST /api/plans
func (h Plans) CreatePlan(c *gin.Context) {
	var req PlanRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "plan", "api_request", "json plan requested",
		zap.Int64("user_id", middleware.GetUserID(c)))
	view, err := h.service(c).Plan(c.Request.Context(), req.Preferences())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ExportPlan renders a previously returned bundle as a TXT or PDF attachment.
// POST /api/plans/export?format=txt|pdf
func (h Plans) ExportPlan(c *gin.Context) {
	var req ExportRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	view := h.service(c).Present(req.Preferences, req.Bundle)

	docs := services.DocsService{RequestID: middleware.GetRequestID(c)}
	data, filename, contentType, err := docs.Generate(c.DefaultQuery("format", services.ExportTXT), view)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_format", err.Error(), nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}

func trimmed(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
