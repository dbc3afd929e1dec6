package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/dashboard/internal/core/ports"
)

// TimeEntryHandler serves the time log and the time-entry write.
type TimeEntryHandler struct {
	service ports.DashboardService
}

func NewTimeEntryHandler(service ports.DashboardService) *TimeEntryHandler {
	return &TimeEntryHandler{service: service}
}

// List handles GET /v1/time-entries.
//
// @Summary      Time log
// @Description  Visible time entries, newest first, with lifetime totals per project.
// @Tags         time-entries
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  timeLogResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/time-entries [get]
func (h *TimeEntryHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	view, err := h.service.TimeLogView(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTimeLogResponse(view))
}

// Create handles POST /v1/time-entries.
//
// @Summary      Record a time entry
// @Tags         time-entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                  false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createTimeEntryRequest  true   "Time entry"
// @Success      201              {object}  timeEntryResponse
// @Success      200              {object}  timeEntryResponse  "Replay of an earlier submission"
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Failure      403              {object}  errorResponse
// @Failure      409              {object}  errorResponse  "Same key still in flight"
// @Router       /v1/time-entries [post]
func (h *TimeEntryHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createTimeEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	res, err := h.service.RecordTimeEntry(c.Request().Context(), actor, ports.RecordTimeEntryInput{
		ProjectID:      req.ProjectID,
		Date:           req.Date,
		Hours:          req.Hours,
		Description:    req.Description,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}

	status := http.StatusCreated
	if res.AlreadyExisted {
		status = http.StatusOK
	}
	return c.JSON(status, toTimeEntryResponse(res.Entry, ""))
}
