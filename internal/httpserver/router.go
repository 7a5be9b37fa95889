package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"katgen/internal/auth"
	"katgen/internal/httpserver/handlers"
)

// NewRouter wires the API. defaultOracle names the encryption oracle used
// for runs that do not ask for a specific one.
func NewRouter(db *gorm.DB, lg *zap.SugaredLogger, defaultOracle string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, middleware.Logger)
	r.Post("/v1/auth/login", handlers.Login(db, lg))
	r.Group(func(protected chi.Router) {
		protected.Use(auth.JWTAuth(db))
		protected.Get("/v1/me", handlers.Me(db, lg))
		protected.Post("/v1/auth/logout", handlers.Logout(db))
		protected.Post("/v1/auth/password", handlers.ChangePassword(db, lg))
		protected.Group(func(admin chi.Router) {
			admin.Use(auth.RequireRole("Administrator"))
			admin.Get("/v1/admin/users", handlers.ListUsers(db, lg))
			admin.Post("/v1/admin/users", handlers.CreateUser(db, lg))
			admin.Patch("/v1/admin/users/{id}", handlers.UpdateUser(db, lg))
			admin.Delete("/v1/admin/users/{id}", handlers.DeleteUser(db, lg))
		})
		protected.Post("/v1/runs", handlers.CreateRun(db, lg, defaultOracle))
		protected.Get("/v1/runs", handlers.ListRuns(db, lg))
		protected.Get("/v1/runs/{id}", handlers.GetRun(db, lg))
		protected.Get("/v1/runs/{id}/download", handlers.DownloadRun(db, lg))
		protected.Get("/v1/logs", handlers.MyLogs(db, lg))
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	return r
}
