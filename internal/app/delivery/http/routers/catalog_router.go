package routers

import (
	"labtrack-service/internal/app/delivery/http/controllers"
	"labtrack-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

// Catalog endpoints are public: patients browse the price list before login.
func attachCatalogRoutes(router chi.Router, _ *middlewares.Middlewares, catalogController *controllers.CatalogController) {
	router.Get("/", catalogController.GetTestPackages)
	router.Get("/categories", catalogController.GetTestCategories)
}
