package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spec-kit/catalog-service/internal/api/http/handlers"
	"github.com/spec-kit/catalog-service/internal/auth"
	"github.com/spec-kit/catalog-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Auth    *handlers.AuthHandler
	Profile *handlers.ProfileHandler
	Admin   *handlers.AdminHandler
	Events  *handlers.EventsHandler
	Catalog *handlers.CatalogHandler
	Content *handlers.ContentHandler
	Photos  *handlers.MediaHandler
	Videos  *handlers.MediaHandler
	Guard   *auth.Guard
	// Gatherer backs GET /metrics; nil leaves the endpoint out.
	Gatherer prometheus.Gatherer
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")
	authenticated := cfg.Guard.Authenticate
	adminOnly := cfg.Guard.Authorize(domain.RoleAdmin)

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	profile := api.Group("/perfil", authenticated)
	profile.Get("/", cfg.Profile.Get)
	profile.Put("/", cfg.Profile.Update)
	profile.Put("/password", cfg.Profile.ChangePassword)

	admin := api.Group("/admin", authenticated, adminOnly)
	admin.Get("/dashboard", cfg.Admin.Dashboard)
	admin.Get("/users", cfg.Admin.ListUsers)
	admin.Put("/users/:userId/role", cfg.Admin.ChangeRole)
	admin.Delete("/users/:userId", cfg.Admin.DeleteUser)
	admin.Put("/nosotros", cfg.Content.SaveAbout)
	admin.Put("/contacto", cfg.Content.SaveContact)

	events := api.Group("/eventos")
	events.Get("/", cfg.Events.List)
	events.Get("/:id", cfg.Events.Get)
	events.Post("/", authenticated, adminOnly, cfg.Events.Create)
	events.Put("/:id", authenticated, adminOnly, cfg.Events.Update)
	events.Delete("/:id", authenticated, adminOnly, cfg.Events.Delete)

	c := cfg.Catalog
	resource(api.Group("/categorias"), authenticated, adminOnly, c.ListCategories, c.GetCategory, c.CreateCategory, c.UpdateCategory, c.DeleteCategory)
	resource(api.Group("/localidades"), authenticated, adminOnly, c.ListLocalities, c.GetLocality, c.CreateLocality, c.UpdateLocality, c.DeleteLocality)
	resource(api.Group("/tallas"), authenticated, adminOnly, c.ListSizes, c.GetSize, c.CreateSize, c.UpdateSize, c.DeleteSize)
	resource(api.Group("/productos"), authenticated, adminOnly, c.ListProducts, c.GetProduct, c.CreateProduct, c.UpdateProduct, c.DeleteProduct)

	content := cfg.Content
	resource(api.Group("/servicios"), authenticated, adminOnly, content.ListOfferings, content.GetOffering, content.CreateOffering, content.UpdateOffering, content.DeleteOffering)
	resource(api.Group("/nosotros"), authenticated, adminOnly, content.GetAbout, content.GetAboutByID, content.SaveAbout, content.UpdateAbout, content.DeleteAbout)
	resource(api.Group("/fotos"), authenticated, adminOnly, cfg.Photos.List, cfg.Photos.Get, cfg.Photos.Create, cfg.Photos.Update, cfg.Photos.Delete)
	resource(api.Group("/videos"), authenticated, adminOnly, cfg.Videos.List, cfg.Videos.Get, cfg.Videos.Create, cfg.Videos.Update, cfg.Videos.Delete)
	api.Get("/contacto", content.GetContact)
}

// resource registers public reads and admin-only writes for one collection.
func resource(r fiber.Router, authenticated, adminOnly fiber.Handler, list, get, create, update, remove fiber.Handler) {
	r.Get("/", list)
	r.Get("/:id", get)
	r.Post("/", authenticated, adminOnly, create)
	r.Put("/:id", authenticated, adminOnly, update)
	r.Delete("/:id", authenticated, adminOnly, remove)
}
