package rest

import (
	"net/http"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
	"github.com/heartmarshall/scanreview-backend/internal/transport/middleware"
)

// Routes groups every handler served under the API mux.
type Routes struct {
	Health        *HealthHandler
	Cases         *CaseHandler
	Results       *ResultHandler
	Assignments   *AssignmentHandler
	Messages      *MessageHandler
	Notifications *NotificationHandler
	Polling       *PollingHandler
	// WebSocket is optional; nil disables push.
	WebSocket http.HandlerFunc
	// Loaders installs the per-request dataloaders used by the overview.
	Loaders func(http.Handler) http.Handler
}

// Register mounts all routes on mux with their role guards.
func (rt Routes) Register(mux *http.ServeMux) {
	var (
		anyone    = middleware.RequireRole(domain.RolePatient, domain.RoleDoctor, domain.RoleOperator)
		uploaders = middleware.RequireRole(domain.RolePatient, domain.RoleOperator)
		doctors   = middleware.RequireRole(domain.RoleDoctor)
		reviewers = middleware.RequireRole(domain.RoleDoctor, domain.RoleOperator)
		operators = middleware.RequireRole(domain.RoleOperator)
	)
	handle := func(pattern string, guard middleware.Middleware, h http.HandlerFunc) {
		mux.Handle(pattern, guard(h))
	}

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)

	handle("GET /api/v1/polling", anyone, rt.Polling.Get)

	handle("POST /api/v1/cases", uploaders, rt.Cases.Create)
	handle("POST /api/v1/cases/upload", uploaders, rt.Cases.Upload)
	handle("GET /api/v1/cases/unassigned", reviewers, rt.Cases.ListUnassigned)
	mux.Handle("GET /api/v1/cases/overview", operators(rt.Loaders(http.HandlerFunc(rt.Cases.Overview))))
	handle("GET /api/v1/cases/{id}", anyone, rt.Cases.Get)
	handle("GET /api/v1/cases/{id}/status", anyone, rt.Cases.Status)
	handle("POST /api/v1/cases/{id}/status", operators, rt.Cases.SetStatus)
	handle("POST /api/v1/cases/{id}/analysis", uploaders, rt.Cases.RequestAnalysis)
	handle("POST /api/v1/cases/{id}/complete", operators, rt.Cases.Complete)
	handle("GET /api/v1/patients/{id}/cases", uploaders, rt.Cases.ListByPatient)

	handle("PUT /api/v1/cases/{id}/result", operators, rt.Results.Put)
	handle("GET /api/v1/cases/{id}/result", anyone, rt.Results.Get)

	handle("GET /api/v1/cases/{id}/assignment", anyone, rt.Assignments.ByCase)
	handle("POST /api/v1/cases/{id}/claim", doctors, rt.Assignments.Claim)
	handle("GET /api/v1/doctors/me/assignments", doctors, rt.Assignments.Mine)
	handle("POST /api/v1/assignments/{id}/complete", doctors, rt.Assignments.Complete)

	handle("POST /api/v1/assignments/{id}/messages", anyone, rt.Messages.Send)
	handle("GET /api/v1/assignments/{id}/messages", anyone, rt.Messages.History)

	handle("GET /api/v1/notifications", anyone, rt.Notifications.List)
	handle("GET /api/v1/notifications/unread-count", anyone, rt.Notifications.UnreadCount)
	handle("POST /api/v1/notifications/{id}/read", anyone, rt.Notifications.MarkRead)
	handle("POST /api/v1/notifications/read-all", anyone, rt.Notifications.MarkAllRead)

	if rt.WebSocket != nil {
		handle("GET /api/v1/ws", anyone, rt.WebSocket)
	}
}
