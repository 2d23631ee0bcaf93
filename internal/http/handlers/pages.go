package handlers

import (
	"html/template"
	"net/http"

	"navmind/internal/domain"
	"navmind/internal/domain/models"
	"navmind/internal/http/middleware"
	"navmind/internal/http/web"
	"navmind/internal/services"
	"navmind/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type formData struct {
	TravelTypes []string
	Interests   []string
	Seasons     []string
	Budgets     []string
	MinDays     int
	MaxDays     int
	Values      PlanRequest
}

type resultData struct {
	View    models.TripPlanView
	TextURL template.URL
	PDFURL  template.URL
}

type pageData struct {
	Form   formData
	Result *resultData
	Error  string
}

func newFormData(values PlanRequest) formData {
	return formData{
		TravelTypes: domain.TravelTypes,
		Interests:   domain.Interests,
		Seasons:     domain.Seasons,
		Budgets:     domain.BudgetLabels,
		MinDays:     domain.MinTripDuration,
		MaxDays:     domain.MaxTripDuration,
		Values:      values,
	}
}

func defaultFormValues() PlanRequest {
	return PlanRequest{
		TravelType:   domain.TravelTypes[0],
		Season:       domain.Seasons[0],
		TripDuration: domain.DefaultTripDuration,
		Budget:       domain.BudgetLabels[0],
	}
}

// Index renders the empty preference form.
// GET /
func (h Plans) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index", pageData{Form: newFormData(defaultFormValues())})
}

// SubmitPlan runs the pipeline for the form and renders either the full plan
// or a single error banner.
// POST /plan
func (h Plans) SubmitPlan(c *gin.Context) {
	req := defaultFormValues()
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "index", pageData{
			Form:  newFormData(req),
			Error: "invalid form: " + err.Error(),
		})
		return
	}

	view, err := h.service(c).Plan(c.Request.Context(), req.Preferences())
	if err != nil {
		status, _ := statusFor(err)
		c.HTML(status, "index", pageData{Form: newFormData(req), Error: err.Error()})
		return
	}

	result := &resultData{
		View:    view,
		TextURL: web.DataURI("text/plain;charset=utf-8", []byte(view.ExportText)),
	}
	docs := services.DocsService{RequestID: middleware.GetRequestID(c)}
	if pdf, _, err := docs.GeneratePDF(view); err == nil {
		result.PDFURL = web.DataURI("application/pdf", pdf)
	} else {
		utils.Logger().Warn("pdf export failed", zap.String("request_id", middleware.GetRequestID(c)), zap.Error(err))
	}

	c.HTML(http.StatusOK, "index", pageData{Form: newFormData(req), Result: result})
}
