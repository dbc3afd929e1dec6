package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/dashboard/internal/api/middleware"
	"github.com/freelancehub/dashboard/internal/core/aggregate"
	"github.com/freelancehub/dashboard/internal/core/domain"
	"github.com/freelancehub/dashboard/internal/core/ports"
)

type stubDashboardService struct {
	summaryFn  func(ctx context.Context, actor domain.Actor, ref time.Time) (aggregate.DashboardSummary, error)
	timeLogFn  func(ctx context.Context, actor domain.Actor) (aggregate.TimeLogView, error)
	reportFn   func(ctx context.Context, actor domain.Actor) (aggregate.ReportView, error)
	projectsFn func(ctx context.Context, actor domain.Actor) ([]aggregate.ProjectRow, error)
	invoicesFn func(ctx context.Context, actor domain.Actor) ([]aggregate.InvoiceRow, error)
	recordFn   func(ctx context.Context, actor domain.Actor, in ports.RecordTimeEntryInput) (*ports.RecordTimeEntryResult, error)
}

func (s *stubDashboardService) DashboardSummary(ctx context.Context, actor domain.Actor, ref time.Time) (aggregate.DashboardSummary, error) {
	return s.summaryFn(ctx, actor, ref)
}

func (s *stubDashboardService) TimeLogView(ctx context.Context, actor domain.Actor) (aggregate.TimeLogView, error) {
	return s.timeLogFn(ctx, actor)
}

func (s *stubDashboardService) ReportView(ctx context.Context, actor domain.Actor) (aggregate.ReportView, error) {
	return s.reportFn(ctx, actor)
}

func (s *stubDashboardService) Projects(ctx context.Context, actor domain.Actor) ([]aggregate.ProjectRow, error) {
	return s.projectsFn(ctx, actor)
}

func (s *stubDashboardService) Invoices(ctx context.Context, actor domain.Actor) ([]aggregate.InvoiceRow, error) {
	return s.invoicesFn(ctx, actor)
}

func (s *stubDashboardService) RecordTimeEntry(ctx context.Context, actor domain.Actor, in ports.RecordTimeEntryInput) (*ports.RecordTimeEntryResult, error) {
	return s.recordFn(ctx, actor, in)
}

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, username, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

// newTestContext builds an echo context as if the Auth middleware had run for
// actor. A zero actor leaves the context unauthenticated.
func newTestContext(method, target, body string, actor domain.Actor) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req = httptest.NewRequest(method, target, nil)
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if actor.Role != "" {
		c.Set(middleware.KeyUsername, actor.Username)
		c.Set(middleware.KeyRole, string(actor.Role))
		c.Set(middleware.KeyClientID, actor.ClientID)
	}
	return c, rec
}
