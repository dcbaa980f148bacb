package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftwise/timeclock-backend-go/internal/config"
	"github.com/shiftwise/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/shiftwise/timeclock-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	employeeHandler EmployeeHandler,
	punchHandler PunchHandler,
	reportHandler ReportHandler,
	settingHandler SettingHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListEmployees)
				r.Get("/{id}", employeeHandler.GetEmployee)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.CreateEmployee)
					r.Put("/{id}", employeeHandler.UpdateEmployee)
					r.Delete("/{id}", employeeHandler.DeactivateEmployee)
				})
			})

			r.Route("/punches", func(r chi.Router) {
				r.Get("/", punchHandler.ListPunches)
				r.Get("/{id}", punchHandler.GetPunch)
				r.Get("/{id}/breakdown", punchHandler.GetPunchBreakdown)
				r.Post("/", punchHandler.CreatePunch)
				r.Put("/{id}", punchHandler.UpdatePunch)
				r.Delete("/{id}", punchHandler.DeletePunch)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/batch", punchHandler.BatchReplacePunches)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/payroll", reportHandler.PayrollReport)
				r.Get("/overtime", reportHandler.OvertimeLeaderboard)
				r.Get("/dashboard", reportHandler.Dashboard)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/period", reportHandler.PayrollReport)
				r.Get("/export", reportHandler.ExportPayrollCSV)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", settingHandler.GetSettings)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/", settingHandler.UpdateSettings)
				})
			})
		})
	})
	return r
}
