package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/dashboard/internal/core/domain"
	"github.com/freelancehub/dashboard/internal/core/ports"
)

// DashboardHandler serves the summary and the project and invoice listings.
type DashboardHandler struct {
	service ports.DashboardService
	now     func() time.Time
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service, now: time.Now}
}

// Summary handles GET /v1/dashboard.
//
// @Summary      Dashboard summary
// @Description  Active projects, hours this month, pending invoices and paid total visible to the caller.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        date  query     string  false  "Reference date (YYYY-MM-DD), defaults to today"
// @Success      200   {object}  dashboardResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	ref := domain.Day(h.now().UTC())
	if raw := c.QueryParam("date"); raw != "" {
		if ref, err = domain.ParseDay(raw); err != nil {
			return domain.NewValidationError("date", "must be a date in YYYY-MM-DD format")
		}
	}

	sum, err := h.service.DashboardSummary(c.Request().Context(), actor, ref)
	if err != nil {
		return err
	}

	label := "total_earned"
	if actor.Role == domain.RoleClient {
		label = "total_spent"
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		Date:                ref.Format(domain.DateLayout),
		ActiveProjectCount:  sum.ActiveProjectCount,
		MonthHoursTotal:     sum.MonthHoursDisplay(),
		PendingInvoiceCount: sum.PendingInvoiceCount,
		PaidTotal:           sum.PaidTotal,
		PaidLabel:           label,
	})
}

// Projects handles GET /v1/projects.
//
// @Summary      List visible projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   projectResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/projects [get]
func (h *DashboardHandler) Projects(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	rows, err := h.service.Projects(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	resp := make([]projectResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, toProjectResponse(r))
	}
	return c.JSON(http.StatusOK, resp)
}

// Invoices handles GET /v1/invoices.
//
// @Summary      List visible invoices
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   invoiceResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/invoices [get]
func (h *DashboardHandler) Invoices(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	rows, err := h.service.Invoices(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	resp := make([]invoiceResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, toInvoiceResponse(r))
	}
	return c.JSON(http.StatusOK, resp)
}
