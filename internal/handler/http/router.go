package http

import (
	"log/slog"
	"os"

	"github.com/codewithgaurave/hrms-console-go/internal/config"
	"github.com/codewithgaurave/hrms-console-go/internal/handler/http/middleware"
	"github.com/codewithgaurave/hrms-console-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	attendanceHandler AttendanceHandler,
	taskHandler TaskHandler,
	payrollHandler PayrollHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-console"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/today", attendanceHandler.Today)
				r.Post("/punch-in", attendanceHandler.PunchIn)
				r.Post("/punch-out", attendanceHandler.PunchOut)
				r.Post("/punch/{action}/confirm", attendanceHandler.ConfirmPunch)
				r.Post("/punch/cancel", attendanceHandler.CancelPunch)
				r.Get("/my-attendances", attendanceHandler.My)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Get("/", attendanceHandler.List)
					r.Get("/employee/{employeeID}/today", attendanceHandler.EmployeeToday)
					r.Get("/{employeeID}/details", attendanceHandler.EmployeeDetails)
					r.Post("/{employeeID}/punch-in/by-hr", attendanceHandler.PunchInByHR)
					r.Post("/{employeeID}/punch-out/by-hr", attendanceHandler.PunchOutByHR)
				})
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/my", taskHandler.My)
				r.Put("/{taskID}/status", taskHandler.UpdateStatus)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Get("/", taskHandler.List)
					r.Put("/{taskID}/review", taskHandler.Review)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/my-slips", payrollHandler.MySlips)
				r.Get("/slips/{slipID}", payrollHandler.Slip)
			})

			r.Get("/dashboard", dashboardHandler.Overview)
		})
	})
	return r
}
