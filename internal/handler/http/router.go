package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/balsons/erp-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type RouterOptions struct {
	AllowedOrigins []string
	Env            string
	LogLevel       slog.Level
}

func NewRouter(opts RouterOptions, employeeHandler EmployeeHandler, dashboardHandler DashboardHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "employee-master"),
		slog.String("version", "v1.0.0"),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/dashboard", dashboardHandler.GetSummary)

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.ListEmployees)
			r.Post("/", employeeHandler.CreateEmployee)
			r.Post("/import", employeeHandler.ImportEmployees)
			r.Get("/export", employeeHandler.ExportEmployees)

			r.Route("/{ecNumber}", func(r chi.Router) {
				r.Get("/", employeeHandler.GetEmployee)
				r.Put("/", employeeHandler.UpdateEmployee)
				r.Delete("/", employeeHandler.DeleteEmployee)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	return r
}
