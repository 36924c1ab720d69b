package recommend

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"nutricoach/internal/bmi"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

/* =================================================================================
							DTOs (Data Transfer Objects)
=================================================================================*/

// RecommendRequest is the payload for POST /recommend. It binds from either
// a form post or a JSON body. The diet field historically arrives under two
// names; both are accepted.
type RecommendRequest struct {
	Age         string `json:"age" form:"age"`
	Gender      string `json:"gender" form:"gender"`
	Weight      string `json:"weight" form:"weight"`
	Height      string `json:"height" form:"height"`
	Disease     string `json:"disease" form:"disease"`
	Veg         string `json:"veg" form:"veg"`
	VegOrNonVeg string `json:"veg_or_nonveg" form:"veg_or_nonveg"`
	Allergics   string `json:"allergics" form:"allergics"`
	FoodType    string `json:"foodtype" form:"foodtype"`
}

// User-facing error messages.
const (
	msgMissingFields = "⚠️ Missing required fields!"
	msgInvalidNumber = "⚠️ Invalid weight or height format!"
	msgInternal      = "⚠️ Something went wrong!"
	msgPDFFailed     = "⚠️ Failed to generate PDF!"
)

/* =================================================================================
									HANDLERS
=================================================================================*/

// Handler exposes the recommendation flow over HTTP.
type Handler struct {
	service *Service
}

// NewHandler builds a Handler around the orchestrating service.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Home serves the input form, or a JSON welcome for API clients.
func (h *Handler) Home(c echo.Context) error {
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "Welcome! POST your details to /recommend for a personalized diet and workout plan.",
		})
	}
	return c.Render(http.StatusOK, "index.html", nil)
}

// Recommend is the main entry point. It orchestrates:
// Validation -> BMI -> AI Generation -> Extraction -> Response.
func (h *Handler) Recommend(c echo.Context) error {
	ctx := c.Request().Context()

	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		log.Error().Err(err).Msg("Failed to bind request body")
		return h.fail(c, http.StatusBadRequest, msgMissingFields)
	}

	// The diet field arrives as either 'veg' or 'veg_or_nonveg'.
	diet := req.Veg
	if strings.TrimSpace(diet) == "" {
		diet = req.VegOrNonVeg
	}

	profile := UserProfile{
		Age:         strings.TrimSpace(req.Age),
		Gender:      strings.TrimSpace(req.Gender),
		Weight:      strings.TrimSpace(req.Weight),
		Height:      strings.TrimSpace(req.Height),
		Disease:     strings.TrimSpace(req.Disease),
		VegOrNonVeg: strings.TrimSpace(diet),
		Allergics:   strings.TrimSpace(req.Allergics),
		FoodType:    strings.TrimSpace(req.FoodType),
	}

	plan, err := h.service.Generate(ctx, profile)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingField):
			return h.fail(c, http.StatusBadRequest, msgMissingFields)
		case errors.Is(err, bmi.ErrInvalidInput):
			return h.fail(c, http.StatusBadRequest, msgInvalidNumber)
		default:
			log.Error().Err(err).Msg("Recommendation generation failed")
			return h.fail(c, http.StatusInternalServerError, msgInternal)
		}
	}

	if wantsJSON(c) {
		return c.JSON(http.StatusOK, plan)
	}

	return c.Render(http.StatusOK, "result.html", map[string]interface{}{
		"bmi":             fmt.Sprintf("%.2f", plan.BMI),
		"bmi_status":      plan.BMIStatus,
		"daily_routine":   plan.DailyRoutine,
		"breakfast_items": plan.BreakfastItems,
		"dinner_items":    plan.DinnerItems,
		"workout_plans":   plan.WorkoutPlans,
		"download_url":    downloadURL(plan),
	})
}

// Download renders the plan passed back via query parameters into a PDF
// attachment.
func (h *Handler) Download(c echo.Context) error {
	data := ReportData{
		BMI:            c.QueryParam("bmi"),
		BMIStatus:      c.QueryParam("bmi_status"),
		DailyRoutine:   c.QueryParams()["daily_routine"],
		BreakfastItems: c.QueryParams()["breakfast_items"],
		DinnerItems:    c.QueryParams()["dinner_items"],
		WorkoutPlans:   c.QueryParams()["workout_plans"],
	}

	pdfBytes, err := RenderPDF(data)
	if err != nil {
		log.Error().Err(err).Msg("PDF generation failed")
		return h.fail(c, http.StatusInternalServerError, msgPDFFailed)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="Diet_Workout_Recommendations.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", pdfBytes)
}

/* =================================================================================
									HELPERS
=================================================================================*/

// fail answers in the format the client asked for: a JSON error object for
// API clients, a rendered error page otherwise.
func (h *Handler) fail(c echo.Context, status int, message string) error {
	if wantsJSON(c) {
		return c.JSON(status, map[string]string{"error": message})
	}
	return c.Render(status, "error.html", map[string]interface{}{
		"message": message,
	})
}

// wantsJSON reports whether the client sent JSON or asked for it back.
func wantsJSON(c echo.Context) bool {
	if strings.Contains(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return true
	}
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

// downloadURL rebuilds the plan as /download query parameters so the result
// page can link straight to the PDF.
func downloadURL(plan *Plan) string {
	q := url.Values{}
	q.Set("bmi", fmt.Sprintf("%.2f", plan.BMI))
	q.Set("bmi_status", plan.BMIStatus)
	for _, line := range plan.DailyRoutine {
		q.Add("daily_routine", line)
	}
	for _, line := range plan.BreakfastItems {
		q.Add("breakfast_items", line)
	}
	for _, line := range plan.DinnerItems {
		q.Add("dinner_items", line)
	}
	for _, line := range plan.WorkoutPlans {
		q.Add("workout_plans", line)
	}
	return "/download?" + q.Encode()
}
