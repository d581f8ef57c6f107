package http

import (
	"log/slog"

	"github.com/cmlabs-hris/payroll-engine/internal/handler/http/middleware"
	"github.com/cmlabs-hris/payroll-engine/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	AllowedOrigins []string
	Logger         *slog.Logger
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, payrollHandler PayrollHandler) *chi.Mux {
	r := chi.NewRouter()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
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
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
			r.Use(middleware.RequireManager)

			r.Route("/payroll", func(r chi.Router) {
				r.Route("/cycles", func(r chi.Router) {
					r.Post("/", payrollHandler.CreateCycle)
					r.Get("/", payrollHandler.ListCycles)

					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", payrollHandler.GetCycle)
						r.Post("/calculate", payrollHandler.CalculateCycle)
						r.Get("/details", payrollHandler.ListDetails)
						r.Get("/finalization-check", payrollHandler.ValidateFinalization)
						r.Post("/finalize", payrollHandler.FinalizeCycle)
						r.Get("/summary", payrollHandler.GetCycleSummary)
					})
				})

				r.Route("/details/{id}", func(r chi.Router) {
					r.Get("/", payrollHandler.GetDetail)
					r.Put("/bonus", payrollHandler.SetBonus)
					r.Delete("/bonus", payrollHandler.ClearBonus)
					r.Put("/deduction", payrollHandler.SetDeduction)
					r.Delete("/deduction", payrollHandler.ClearDeduction)
				})
			})
		})
	})

	return r
}
