package http

import (
	"net/http"

	"github.com/balapan-kz/go-storefront/internal/usecase"
	"github.com/balapan-kz/go-storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(storeUC usecase.StoreUC, catalogUC usecase.CatalogUC, checkoutUC usecase.CheckoutUC) {
	r.router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.router.Route("/api/v1", func(v1 chi.Router) {
		catalogHandler := NewCatalogHandler(catalogUC, r.logger)
		registerCatalogRoutes(v1, catalogHandler)

		storeHandler := NewStoreHandler(storeUC, catalogUC, r.logger)
		registerStoreRoutes(v1, storeHandler)

		checkoutHandler := NewCheckoutHandler(checkoutUC, r.logger)
		registerCheckoutRoutes(v1, checkoutHandler)
	})
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Get("/{productID}", h.getProduct)
	})
	router.Get("/categories", h.listCategories)
	router.Get("/brands", h.listBrands)
	router.Get("/age-ranges", h.listAgeRanges)
}

func registerStoreRoutes(router chi.Router, h *StoreHandler) {
	router.Route("/cart", func(cr chi.Router) {
		cr.Get("/", h.getCart)
		cr.Delete("/", h.clearCart)
		cr.Post("/items", h.addCartItem)
		cr.Patch("/items/{productID}", h.updateCartItem)
		cr.Delete("/items/{productID}", h.removeCartItem)
	})

	router.Route("/wishlist", func(wr chi.Router) {
		wr.Get("/", h.getWishlist)
		wr.Post("/{productID}/toggle", h.toggleWishlist)
	})

	router.Put("/language", h.setLanguage)
	router.Get("/translations/{lang}", h.getTranslations)
}

func registerCheckoutRoutes(router chi.Router, h *CheckoutHandler) {
	router.Post("/checkout", h.placeOrder)
	router.Get("/orders", h.listOrders)
}
