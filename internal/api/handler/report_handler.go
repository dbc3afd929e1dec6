package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/dashboard/internal/core/ports"
)

type ReportHandler struct {
	service ports.DashboardService
}

func NewReportHandler(service ports.DashboardService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Get handles GET /v1/reports.
//
// @Summary      Report charts
// @Description  Hours by project name, paid earnings by month and, for staff, the top clients.
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  reportResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/reports [get]
func (h *ReportHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	view, err := h.service.ReportView(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReportResponse(view))
}
