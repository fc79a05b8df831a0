package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sikawofie/shop-backend/api/controllers"
	"github.com/sikawofie/shop-backend/api/middleware"
	"github.com/sikawofie/shop-backend/internal/cart"
	"github.com/sikawofie/shop-backend/internal/orders"
	"github.com/sikawofie/shop-backend/internal/products"
	"github.com/sikawofie/shop-backend/internal/stylist"
	"github.com/sikawofie/shop-backend/pkg/config"
	"github.com/sikawofie/shop-backend/pkg/logger"
	"github.com/sikawofie/shop-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	registry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	productService products.Service,
	cartService cart.Service,
	orderService orders.Service,
	stylistService stylist.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(productService, logg))
			r.Get("/{productID}", controllers.GetProduct(productService, logg))
		})

		r.Route("/admin/products", func(r chi.Router) {
			r.Post("/", controllers.AdminCreateProduct(productService, logg))
			r.Put("/{productID}", controllers.AdminUpdateProduct(productService, logg))
			r.Delete("/{productID}", controllers.AdminDeleteProduct(productService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(cartService, logg))
			r.Delete("/", controllers.CartClear(cartService, logg))
			r.Post("/items", controllers.CartAddItem(cartService, logg))
			r.Patch("/items", controllers.CartUpdateQuantity(cartService, logg))
			r.Delete("/items", controllers.CartRemoveItem(cartService, logg))
			r.Post("/toggle", controllers.CartToggle(cartService, logg))
		})

		r.Post("/checkout", controllers.CheckoutPlaceOrder(orderService, logg))
		r.Get("/orders", controllers.OrdersList(orderService, logg))

		r.Post("/stylist/advice", controllers.StylistAdvice(stylistService, logg))
	})

	return r
}
