package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hisaab-hr/payroll-backend-go/internal/config"
	"github.com/hisaab-hr/payroll-backend-go/internal/handler/http/middleware"
	"github.com/hisaab-hr/payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg config.AppConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)

				// Manager or admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})

				r.Route("/{employeeId}/components", func(r chi.Router) {
					r.Get("/", payrollHandler.GetEmployeeAssignments)
					r.With(middleware.RequireManager).Post("/", payrollHandler.AssignComponent)
				})

				r.Route("/{employeeId}/overtime", func(r chi.Router) {
					r.Get("/", payrollHandler.ListOvertime)
					r.With(middleware.RequireManager).Post("/", payrollHandler.CreateOvertime)
				})

				r.Get("/{employeeId}/salary", payrollHandler.CalculateSalary)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Route("/components", func(r chi.Router) {
					r.Get("/", payrollHandler.ListComponents)
					r.Get("/{id}", payrollHandler.GetComponent)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireManager)
						r.Post("/", payrollHandler.CreateComponent)
						r.Put("/{id}", payrollHandler.UpdateComponent)
						r.Delete("/{id}", payrollHandler.DeleteComponent)
					})
				})

				r.Route("/assignments", func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Put("/{id}", payrollHandler.UpdateAssignment)
					r.Delete("/{id}", payrollHandler.RemoveAssignment)
				})

				r.Route("/overtime", func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Put("/{id}", payrollHandler.UpdateOvertime)
					r.Delete("/{id}", payrollHandler.DeleteOvertime)
				})

				r.With(middleware.RequireManager).Post("/generate", payrollHandler.GenerateSalaries)

				r.Route("/payments", func(r chi.Router) {
					r.Get("/", payrollHandler.ListPayments)
					r.Get("/{id}", payrollHandler.GetPayment)
					r.Get("/{id}/breakdown", payrollHandler.GetBreakdown)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireManager)
						r.Patch("/{id}/status", payrollHandler.UpdatePaymentStatus)
						r.Put("/{id}", payrollHandler.UpdatePayment)
					})

					r.With(middleware.RequireAdmin).Delete("/{id}", payrollHandler.DeletePayment)
				})

				r.Get("/summary", payrollHandler.GetMonthlySummary)
			})
		})
	})

	return r
}
