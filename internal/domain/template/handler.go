package template

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/radreport/radreport/internal/platform/auth"
)

// requiredPatientFields must be present before a template is populated.
var requiredPatientFields = []string{"patientName", "age", "gender", "examDate"}

// Handler serves the template catalog and populate endpoints.
type Handler struct {
	engine *Engine
}

func NewHandler(engine *Engine) *Handler {
	return &Handler{engine: engine}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/templates", h.ListTemplates)
	g.GET("/templates/:id", h.GetTemplate)
	g.GET("/templates/:id/placeholders", h.GetPlaceholders)
	g.POST("/templates/:id/populate", h.PopulateTemplate)
}

func (h *Handler) ListTemplates(c echo.Context) error {
	return c.JSON(http.StatusOK, List())
}

func (h *Handler) GetTemplate(c echo.Context) error {
	t, ok := Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "template not found")
	}
	return c.JSON(http.StatusOK, t)
}

func (h *Handler) GetPlaceholders(c echo.Context) error {
	if _, ok := Get(c.Param("id")); !ok {
		return echo.NewHTTPError(http.StatusNotFound, "template not found")
	}
	return c.JSON(http.StatusOK, Placeholders(c.Param("id")))
}

type populateRequest struct {
	PatientData map[string]string `json:"patientData"`
}

type populateResponse struct {
	Content string `json:"content"`
}

// PopulateTemplate validates the patient data and fills the template.
// The radiologist name always comes from the session, never the request.
func (h *Handler) PopulateTemplate(c echo.Context) error {
	var req populateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	for _, field := range requiredPatientFields {
		if req.PatientData[field] == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "Please fill all required patient data fields")
		}
	}

	data := make(map[string]string, len(req.PatientData)+1)
	for k, v := range req.PatientData {
		data[k] = v
	}
	if acct := auth.AccountFromContext(c); acct != nil {
		data["doctorName"] = acct.Name
	}

	return c.JSON(http.StatusOK, populateResponse{
		Content: h.engine.Populate(c.Param("id"), data),
	})
}
