package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/config"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/middleware"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	leaveHandler LeaveHandler,
	departmentHandler DepartmentHandler,
	taskHandler TaskHandler,
	summaryHandler SummaryHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffdesk"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	// Stored profile images
	if cfg.Storage.Type == "local" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.BasePath)))
		r.Get("/uploads/*", fileServer.ServeHTTP)
	}

	r.Route("/api", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/register", authHandler.Register)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/verify", authHandler.Verify)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employee", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/summary", summaryHandler.EmployeeSummary)

				r.Route("/leave", func(r chi.Router) {
					r.Post("/apply", leaveHandler.Apply)
					r.Get("/my", leaveHandler.ListMine)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Post("/{id}/approve", leaveHandler.Approve)
						r.Post("/{id}/reject", leaveHandler.Reject)
					})
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/leaves", leaveHandler.List)
					r.Post("/create", employeeHandler.Create)
					r.Put("/update/{id}", employeeHandler.Update)
					r.Delete("/delete/{id}", employeeHandler.Delete)
					r.Post("/{id}/attendance", employeeHandler.RecordAttendance)
				})

				r.Get("/{id}", employeeHandler.Get)
				r.Get("/{id}/approved-leaves", leaveHandler.ApprovedDays)
				r.Get("/{id}/attendance", employeeHandler.ListAttendance)
				r.Post("/{id}/profile-image", employeeHandler.UploadProfileImage)
			})

			r.Route("/department", func(r chi.Router) {
				r.Get("/", departmentHandler.List)
				r.Get("/{id}", departmentHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/add", departmentHandler.Create)
					r.Put("/{id}", departmentHandler.Update)
					r.Delete("/{id}", departmentHandler.Delete)
				})
			})

			r.Route("/task", func(r chi.Router) {
				r.Route("/employee", func(r chi.Router) {
					r.Get("/my-tasks", taskHandler.ListMine)
					r.Get("/stats", taskHandler.MyStats)
					r.Put("/{id}/status", taskHandler.UpdateStatus)
				})

				r.Get("/{id}", taskHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/create", taskHandler.Create)
					r.Get("/", taskHandler.List)
					r.Put("/{id}", taskHandler.Update)
					r.Delete("/{id}", taskHandler.Delete)
				})
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/summary", summaryHandler.AdminSummary)
			})
		})
	})

	return r
}
