package routes

import (
	"log/slog"

	"ht5play/internal/auth"
	"ht5play/internal/config"
	"ht5play/internal/controllers"
	mw "ht5play/internal/middleware"
	"ht5play/internal/services"
	"ht5play/internal/storage"
	"ht5play/internal/storage/uploads"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRouter wires services and controllers over the given storage and
// mounts the public catalog API plus the admin back office.
func SetupRouter(
	log *slog.Logger,
	store storage.Storage,
	uploadsStorage uploads.IUploads,
	provider auth.Provider,
	importCfg config.ImportConfig,
	corsOrigins []string,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authMiddleware := mw.NewAuthMiddleware(provider)

	gameService := services.NewGameService(store, log)
	categoryService := services.NewCategoryService(store, log)
	blogService := services.NewBlogService(store, log)
	pageService := services.NewPageService(store, log)
	menuService := services.NewMenuService(store, log)
	adService := services.NewAdService(store, log)
	settingsService := services.NewSettingsService(store, uploadsStorage, log)
	importService := services.NewImportService(gameService, importCfg, log)

	gameController := controllers.NewGameController(gameService, settingsService, log, uploadsStorage)
	categoryController := controllers.NewCategoryController(categoryService, log)
	blogController := controllers.NewBlogController(blogService, log)
	pageController := controllers.NewPageController(pageService, log)
	menuController := controllers.NewMenuController(menuService, log)
	adController := controllers.NewAdController(adService, log)
	settingsController := controllers.NewSettingsController(settingsService, log)
	authController := controllers.NewAuthController(provider, log)
	importController := controllers.NewImportController(importService, log)

	r.Route("/api", func(r chi.Router) {
		r.Route("/games", func(r chi.Router) {
			r.Get("/", gameController.List)
			r.Get("/featured", gameController.GetFeatured)
			r.Get("/slug/{slug}", gameController.GetBySlug)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", gameController.GetByID)
				r.Get("/related", gameController.GetRelated)
				r.Post("/play", gameController.Play)
			})
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", categoryController.GetAll)
			r.Get("/slug/{slug}", categoryController.GetBySlug)
			r.Get("/{id}", categoryController.GetByID)
		})

		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", blogController.List)
			r.Get("/featured", blogController.GetFeatured)
			r.Get("/slug/{slug}", blogController.GetBySlug)
		})

		r.Get("/pages/slug/{slug}", pageController.GetBySlug)
		r.Get("/menus", menuController.GetAll)
		r.Get("/ads", adController.GetActive)
		r.Get("/settings", settingsController.Get)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authController.Login)
			r.With(authMiddleware.ValidateToken).Get("/me", authController.Me)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(authMiddleware.ValidateToken)
			r.Use(authMiddleware.RequireAdmin)

			r.Route("/games", func(r chi.Router) {
				r.Get("/", gameController.AdminList)
				r.Get("/stats", gameController.Stats)
				r.Post("/", gameController.Create)
				r.Post("/upload", gameController.UploadThumb)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", gameController.GetByID)
					r.Put("/", gameController.Update)
					r.Delete("/", gameController.Delete)
				})
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", categoryController.GetAll)
				r.Post("/", categoryController.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", categoryController.GetByID)
					r.Put("/", categoryController.Update)
					r.Delete("/", categoryController.Delete)
				})
			})

			r.Route("/blogs", func(r chi.Router) {
				r.Get("/", blogController.GetAll)
				r.Post("/", blogController.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", blogController.GetByID)
					r.Put("/", blogController.Update)
					r.Delete("/", blogController.Delete)
				})
			})

			r.Route("/pages", func(r chi.Router) {
				r.Get("/", pageController.GetAll)
				r.Post("/", pageController.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", pageController.GetByID)
					r.Put("/", pageController.Update)
					r.Delete("/", pageController.Delete)
				})
			})

			r.Route("/menus", func(r chi.Router) {
				r.Get("/", menuController.GetAll)
				r.Post("/", menuController.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Put("/", menuController.Update)
					r.Delete("/", menuController.Delete)
				})
			})

			r.Route("/ads", func(r chi.Router) {
				r.Get("/", adController.GetAll)
				r.Post("/", adController.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Put("/", adController.Update)
					r.Delete("/", adController.Delete)
				})
			})

			r.Put("/settings", settingsController.Save)

			r.Route("/import", func(r chi.Router) {
				r.Get("/providers", importController.Providers)
				r.Post("/url", importController.FromURL)
				r.Post("/{provider}", importController.FromProvider)
			})
		})
	})

	return r
}
