package report

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/radreport/radreport/internal/platform/auth"
	"github.com/radreport/radreport/pkg/pagination"
)

// printView renders a report for printing.
var printView = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
<head><title>USG Report</title></head>
<body>
<div class="print-preview">
<div class="print-header">
<h1>RADIOLOGY REPORT</h1>
<p>ULTRASOUND EXAMINATION</p>
</div>
<pre>{{.Content}}</pre>
<div class="print-footer">
<p>This is a computer-generated report.</p>
</div>
</div>
</body>
</html>
`))

// Handler serves the report and draft endpoints.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/reports", h.ListReports)
	g.GET("/reports/search", h.SearchReports)
	g.POST("/reports", h.CreateReport)
	g.POST("/reports/finish", h.FinishReport)
	g.GET("/reports/:id", h.GetReport)
	g.GET("/reports/:id/print", h.PrintReport)
	g.PUT("/reports/:id", h.UpdateReport)
	g.DELETE("/reports/:id", h.DeleteReport, auth.RequireRole("admin"))

	g.GET("/drafts", h.ListDrafts)
	g.POST("/drafts", h.SaveDraft)
	g.GET("/drafts/:id", h.GetDraft)
	g.DELETE("/drafts/:id", h.DeleteDraft)
}

// scopeDoctor returns the doctor-name restriction for the session:
// empty for admins (all reports), the account name otherwise.
func scopeDoctor(c echo.Context) (string, error) {
	acct := auth.AccountFromContext(c)
	if acct == nil {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "no active session")
	}
	if acct.Role == "admin" {
		return "", nil
	}
	return acct.Name, nil
}

func (h *Handler) ListReports(c echo.Context) error {
	doctor, err := scopeDoctor(c)
	if err != nil {
		return err
	}

	reports, err := h.svc.Search(c.Request().Context(), "", doctor)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list reports")
	}
	if reports == nil {
		reports = []Report{}
	}

	p := pagination.FromContext(c)
	start, end := p.Slice(len(reports))
	return c.JSON(http.StatusOK, pagination.NewResponse(reports[start:end], len(reports), p.Limit, p.Offset))
}

// SearchReports handles GET /reports/search?q=&doctor=. Admins may
// restrict by any doctor name; everyone else searches their own reports
// regardless of the parameter.
func (h *Handler) SearchReports(c echo.Context) error {
	doctor, err := scopeDoctor(c)
	if err != nil {
		return err
	}
	if doctor == "" {
		doctor = c.QueryParam("doctor")
	}

	reports, err := h.svc.Search(c.Request().Context(), c.QueryParam("q"), doctor)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}
	if reports == nil {
		reports = []Report{}
	}

	p := pagination.FromContext(c)
	start, end := p.Slice(len(reports))
	return c.JSON(http.StatusOK, pagination.NewResponse(reports[start:end], len(reports), p.Limit, p.Offset))
}

type createReportRequest struct {
	TemplateID  string      `json:"templateId"`
	PatientData PatientData `json:"patientData"`
	Content     string      `json:"content"`
}

func (h *Handler) CreateReport(c echo.Context) error {
	acct := auth.AccountFromContext(c)
	if acct == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
	}

	var req createReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	r := &Report{
		TemplateID:  req.TemplateID,
		PatientData: req.PatientData,
		Content:     req.Content,
		DoctorName:  acct.Name,
		Status:      StatusFinished,
	}
	if err := h.svc.Create(c.Request().Context(), r); err != nil {
		return validationError(err)
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *Handler) FinishReport(c echo.Context) error {
	acct := auth.AccountFromContext(c)
	if acct == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
	}

	var in FinishInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	r, err := h.svc.Finish(c.Request().Context(), in, acct.Name)
	if err != nil {
		return validationError(err)
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *Handler) GetReport(c echo.Context) error {
	r, err := h.fetchVisible(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}

func (h *Handler) PrintReport(c echo.Context) error {
	r, err := h.fetchVisible(c)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return printView.Execute(c.Response(), r)
}

// fetchVisible loads the report and enforces ownership: doctors only see
// their own reports, admins see everything.
func (h *Handler) fetchVisible(c echo.Context) (*Report, error) {
	acct := auth.AccountFromContext(c)
	if acct == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "no active session")
	}

	r, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "failed to load report")
	}
	if r == nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, "report not found")
	}
	if acct.Role != "admin" && r.DoctorName != acct.Name {
		return nil, echo.NewHTTPError(http.StatusNotFound, "report not found")
	}
	return r, nil
}

func (h *Handler) UpdateReport(c echo.Context) error {
	if _, err := h.fetchVisible(c); err != nil {
		return err
	}

	var upd Update
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	r, err := h.svc.Update(c.Request().Context(), c.Param("id"), upd)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "report not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "update failed")
	}
	return c.JSON(http.StatusOK, r)
}

func (h *Handler) DeleteReport(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "delete failed")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListDrafts(c echo.Context) error {
	acct := auth.AccountFromContext(c)
	if acct == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
	}

	drafts, err := h.svc.ListDrafts(c.Request().Context(), acct.Name)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list drafts")
	}
	if drafts == nil {
		drafts = []Draft{}
	}
	return c.JSON(http.StatusOK, drafts)
}

type saveDraftRequest struct {
	ID          string      `json:"id"`
	TemplateID  string      `json:"templateId"`
	PatientData PatientData `json:"patientData"`
	Content     string      `json:"content"`
}

func (h *Handler) SaveDraft(c echo.Context) error {
	acct := auth.AccountFromContext(c)
	if acct == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
	}

	var req saveDraftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	d := &Draft{
		ID:          req.ID,
		TemplateID:  req.TemplateID,
		PatientData: req.PatientData,
		Content:     req.Content,
		DoctorName:  acct.Name,
	}
	saved, err := h.svc.SaveDraft(c.Request().Context(), d)
	if err != nil {
		return validationError(err)
	}
	return c.JSON(http.StatusOK, saved)
}

func (h *Handler) GetDraft(c echo.Context) error {
	acct := auth.AccountFromContext(c)
	if acct == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
	}

	d, err := h.svc.GetDraft(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load draft")
	}
	if d == nil || (acct.Role != "admin" && d.DoctorName != acct.Name) {
		return echo.NewHTTPError(http.StatusNotFound, "draft not found")
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) DeleteDraft(c echo.Context) error {
	acct := auth.AccountFromContext(c)
	if acct == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
	}

	d, err := h.svc.GetDraft(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load draft")
	}
	if d != nil && acct.Role != "admin" && d.DoctorName != acct.Name {
		return echo.NewHTTPError(http.StatusNotFound, "draft not found")
	}
	if err := h.svc.DeleteDraft(c.Request().Context(), c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "delete failed")
	}
	return c.NoContent(http.StatusNoContent)
}

func validationError(err error) error {
	switch {
	case errors.Is(err, ErrMissingPatientData):
		return echo.NewHTTPError(http.StatusBadRequest, ErrMissingPatientData.Error())
	case errors.Is(err, ErrEmptyContent):
		return echo.NewHTTPError(http.StatusBadRequest, "report content is required")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "operation failed")
	}
}
