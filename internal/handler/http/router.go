package http

import (
	"log/slog"
	"os"

	"github.com/campus-mis/attendance-backend-go/internal/domain/user"
	"github.com/campus-mis/attendance-backend-go/internal/handler/http/middleware"
	"github.com/campus-mis/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterDeps struct {
	JWTService       jwt.Service
	AuthHandler      AuthHandler
	ReportHandler    ReportHandler
	ExemptionHandler ExemptionHandler
	StaffHandler     StaffHandler
	CategoryHandler  CategoryHandler
	DeviceHandler    DeviceHandler
	AccessHandler    AccessHandler
	FrontendURL      string
	Env              string
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "campus-attendance"),
		slog.String("version", "v1.0.0"),
		slog.String("env", deps.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.FrontendURL},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", deps.AuthHandler.Login)
			r.Post("/refresh", deps.AuthHandler.Refresh)
			r.Post("/logout", deps.AuthHandler.Logout)
			r.Post("/forgot-password", deps.AuthHandler.ForgotPassword)
			r.Post("/reset-password", deps.AuthHandler.ResetPassword)
			r.Get("/login/oauth/google", deps.AuthHandler.LoginWithGoogle)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", deps.AuthHandler.OAuthCallbackGoogle)
			})

			// Session check needs a verified access token.
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(deps.JWTService))
				r.Get("/session", deps.AuthHandler.CheckSession)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService))

			r.Route("/reports", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionReportViewOwn))
					r.Get("/individual/{staffID}", deps.ReportHandler.IndividualReport)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionReportViewDept))
					r.Get("/summary", deps.ReportHandler.DepartmentSummary)
					r.Get("/summary/export", deps.ReportHandler.ExportSummaryPDF)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionFlagToggle))
					r.Post("/flags/toggle", deps.ReportHandler.ToggleFlag)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionReportAdjust))
					r.Put("/additional-late", deps.ReportHandler.SetAdditionalLateMinutes)
				})
			})

			r.Route("/exemptions", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionExemptionApply))
					r.Post("/", deps.ExemptionHandler.Apply)
				})

				r.Get("/", deps.ExemptionHandler.List)
				r.Get("/{id}", deps.ExemptionHandler.GetByID)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionExemptionReview))
					r.Put("/{id}/approve", deps.ExemptionHandler.Approve)
					r.Put("/{id}/reject", deps.ExemptionHandler.Reject)
				})
			})

			r.Route("/staff", func(r chi.Router) {
				r.Get("/departments", deps.StaffHandler.ListDepartments)
				r.Get("/designations", deps.StaffHandler.ListDesignations)
				r.Get("/", deps.StaffHandler.List)
				r.Get("/{staffID}", deps.StaffHandler.GetByID)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionStaffManage))
					r.Post("/", deps.StaffHandler.Create)
					r.Put("/{staffID}", deps.StaffHandler.Update)
					r.Delete("/{staffID}", deps.StaffHandler.Delete)
				})
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", deps.CategoryHandler.List)
				r.Get("/{id}", deps.CategoryHandler.GetByID)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionMasterManage))
					r.Post("/", deps.CategoryHandler.Create)
					r.Put("/{id}", deps.CategoryHandler.Update)
					r.Delete("/{id}", deps.CategoryHandler.Delete)
				})
			})

			r.Route("/devices", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionDeviceManage))
				r.Get("/", deps.DeviceHandler.List)
				r.Post("/", deps.DeviceHandler.Create)
				r.Get("/{id}", deps.DeviceHandler.GetByID)
				r.Put("/{id}", deps.DeviceHandler.Update)
				r.Delete("/{id}", deps.DeviceHandler.Delete)
				r.Put("/{id}/maintenance", deps.DeviceHandler.ToggleMaintenance)
				r.Post("/provision", deps.DeviceHandler.ProvisionStaff)
			})

			r.Route("/access", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionAccessManage))

				r.Route("/roles", func(r chi.Router) {
					r.Get("/", deps.AccessHandler.ListRoles)
					r.Post("/", deps.AccessHandler.CreateRole)
					r.Put("/{id}", deps.AccessHandler.UpdateRole)
					r.Delete("/{id}", deps.AccessHandler.DeleteRole)
				})

				r.Route("/pages", func(r chi.Router) {
					r.Get("/", deps.AccessHandler.ListPageRules)
					r.Put("/", deps.AccessHandler.UpsertPageRule)
					r.Delete("/{id}", deps.AccessHandler.DeletePageRule)
				})

				r.Put("/staff-roles", deps.AccessHandler.BulkUpdateStaffRoles)

				r.Route("/hod/{staffID}/departments", func(r chi.Router) {
					r.Get("/", deps.AccessHandler.ListHODDepartments)
					r.Put("/", deps.AccessHandler.SetHODDepartments)
				})
			})
		})
	})

	return r
}
