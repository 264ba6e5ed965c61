package router

import (
	"net/http"

	"northlinktelecom.com/cmd/server/handler"
	"northlinktelecom.com/cmd/server/middleware"
	"northlinktelecom.com/cmd/server/models"
)

// Deps holds everything the router wires together. Constructed in main so
// lifecycle and test substitution stay with the caller.
type Deps struct {
	Auth         middleware.Authenticator
	Divisions    *handler.DivisionHandler
	Categories   *handler.CategoryHandler
	Services     *handler.ServiceHandler
	Partners     *handler.PartnerHandler
	Jobs         *handler.JobHandler
	Applications *handler.ApplicationHandler
	Media        *handler.MediaHandler
	Sitemap      *handler.SitemapHandler
}

// Setup configures and returns the HTTP router with all routes and middleware
func Setup(deps *Deps) http.Handler {
	mux := http.NewServeMux()

	// The authorization policy, declared once: editors and admins may
	// create and update; only admins may delete.
	editor := middleware.RequireRole(deps.Auth, models.RoleAdmin, models.RoleEditor)
	admin := middleware.RequireRole(deps.Auth, models.RoleAdmin)

	mux.HandleFunc("GET /healthz", handler.HealthzHandler)

	// Divisions
	mux.HandleFunc("GET /api/divisions", deps.Divisions.List)
	mux.HandleFunc("GET /api/divisions/{id}", deps.Divisions.Get)
	mux.HandleFunc("GET /api/divisions/slug/{slug}", deps.Divisions.GetBySlug)
	mux.Handle("POST /api/divisions", editor(http.HandlerFunc(deps.Divisions.Create)))
	mux.Handle("PUT /api/divisions/{id}", editor(http.HandlerFunc(deps.Divisions.Update)))
	mux.Handle("PATCH /api/divisions/{id}", editor(http.HandlerFunc(deps.Divisions.Update)))
	mux.Handle("DELETE /api/divisions/{id}", admin(http.HandlerFunc(deps.Divisions.Delete)))

	// Categories
	mux.HandleFunc("GET /api/categories", deps.Categories.List)
	mux.HandleFunc("GET /api/categories/{id}", deps.Categories.Get)
	mux.HandleFunc("GET /api/categories/slug/{slug}", deps.Categories.GetBySlug)
	mux.Handle("POST /api/categories", editor(http.HandlerFunc(deps.Categories.Create)))
	mux.Handle("PUT /api/categories/{id}", editor(http.HandlerFunc(deps.Categories.Update)))
	mux.Handle("PATCH /api/categories/{id}", editor(http.HandlerFunc(deps.Categories.Update)))
	mux.Handle("DELETE /api/categories/{id}", admin(http.HandlerFunc(deps.Categories.Delete)))

	// Services
	mux.HandleFunc("GET /api/services", deps.Services.List)
	mux.HandleFunc("GET /api/services/{id}", deps.Services.Get)
	mux.HandleFunc("GET /api/services/slug/{slug}", deps.Services.GetBySlug)
	mux.HandleFunc("GET /api/services/category/{categoryId}", deps.Services.ListByCategory)
	mux.Handle("POST /api/services", editor(http.HandlerFunc(deps.Services.Create)))
	mux.Handle("PUT /api/services/{id}", editor(http.HandlerFunc(deps.Services.Update)))
	mux.Handle("PATCH /api/services/{id}", editor(http.HandlerFunc(deps.Services.Update)))
	mux.Handle("DELETE /api/services/{id}", admin(http.HandlerFunc(deps.Services.Delete)))

	// Partners
	mux.HandleFunc("GET /api/partners", deps.Partners.List)
	mux.HandleFunc("GET /api/partners/{id}", deps.Partners.Get)
	mux.HandleFunc("GET /api/partners/slug/{slug}", deps.Partners.GetBySlug)
	mux.Handle("POST /api/partners", editor(http.HandlerFunc(deps.Partners.Create)))
	mux.Handle("PUT /api/partners/{id}", editor(http.HandlerFunc(deps.Partners.Update)))
	mux.Handle("PATCH /api/partners/{id}", editor(http.HandlerFunc(deps.Partners.Update)))
	mux.Handle("DELETE /api/partners/{id}", admin(http.HandlerFunc(deps.Partners.Delete)))

	// Jobs + public careers search
	mux.HandleFunc("GET /api/jobs", deps.Jobs.List)
	mux.HandleFunc("GET /api/jobs/{id}", deps.Jobs.Get)
	mux.HandleFunc("GET /api/careers", deps.Jobs.Search)
	mux.Handle("POST /api/jobs", editor(http.HandlerFunc(deps.Jobs.Create)))
	mux.Handle("PUT /api/jobs/{id}", editor(http.HandlerFunc(deps.Jobs.Update)))
	mux.Handle("PATCH /api/jobs/{id}", editor(http.HandlerFunc(deps.Jobs.Update)))
	mux.Handle("DELETE /api/jobs/{id}", admin(http.HandlerFunc(deps.Jobs.Delete)))

	// Applications: creation is the public intake path, everything else is
	// admin console territory (rows carry applicant personal data).
	mux.HandleFunc("POST /api/applications", deps.Applications.Create)
	mux.Handle("GET /api/applications", editor(http.HandlerFunc(deps.Applications.List)))
	mux.Handle("GET /api/applications/{id}", editor(http.HandlerFunc(deps.Applications.Get)))
	mux.Handle("PATCH /api/applications/{id}/status", editor(http.HandlerFunc(deps.Applications.UpdateStatus)))

	// Media: public reads see published items only; the by-id read serves
	// the admin edit form and may return drafts, so it is guarded.
	mux.HandleFunc("GET /api/media", deps.Media.ListPublished)
	mux.HandleFunc("GET /api/media/slug/{slug}", deps.Media.GetBySlug)
	mux.Handle("GET /api/media/all", editor(http.HandlerFunc(deps.Media.ListAll)))
	mux.Handle("GET /api/media/{id}", editor(http.HandlerFunc(deps.Media.Get)))
	mux.Handle("POST /api/media", editor(http.HandlerFunc(deps.Media.Create)))
	mux.Handle("PUT /api/media/{id}", editor(http.HandlerFunc(deps.Media.Update)))
	mux.Handle("PATCH /api/media/{id}", editor(http.HandlerFunc(deps.Media.Update)))
	mux.Handle("PATCH /api/media/{id}/publish", editor(http.HandlerFunc(deps.Media.Publish)))
	mux.Handle("DELETE /api/media/{id}", admin(http.HandlerFunc(deps.Media.Delete)))

	// Sitemap for static generation
	mux.HandleFunc("GET /api/sitemap", deps.Sitemap.Get)

	// Wrap with middleware (order matters: outer wraps inner)
	var handlerWrapper http.Handler = mux
	handlerWrapper = middleware.RecoverMiddleware(handlerWrapper)
	handlerWrapper = middleware.CORSMiddleware(handlerWrapper)
	handlerWrapper = middleware.LoggingMiddleware(handlerWrapper)

	return handlerWrapper
}
