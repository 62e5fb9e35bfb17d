package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/myantech/erp-api/internal/authz"
	"github.com/myantech/erp-api/internal/metrics"
	"github.com/myantech/erp-api/internal/store"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/ping"))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(h.withSecureHeaders)
	router.Use(h.withCORS())
	router.Use(h.withRateLimit())
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Get("/", h.root)
	router.Method(http.MethodGet, "/metrics", metrics.Handler(h.gatherer))

	router.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
		r.Get("/me", h.guard(authz.ResourceSession, authz.OpWhoAmI, h.me))
	})

	s := h.services
	returns := newResourceHandler(h, "Return", authz.ResourceReturns, store.ReturnsTable, s.Returns).routes()

	router.Route("/api", func(r chi.Router) {
		r.Mount("/drivers", newResourceHandler(h, "Driver", authz.ResourceDrivers, store.DriversTable, s.Drivers).routes())
		r.Mount("/products", newResourceHandler(h, "Product", authz.ResourceProducts, store.ProductsTable, s.Products).routes())
		r.Mount("/customers", newResourceHandler(h, "Customer", authz.ResourceCustomers, store.CustomersTable, s.Customers).routes())
		r.Mount("/orders", newResourceHandler(h, "Order", authz.ResourceOrders, store.OrdersTable, s.Orders).routes())
		r.Mount("/deliveries", newResourceHandler(h, "Delivery", authz.ResourceDeliveries, store.DeliveriesTable, s.Deliveries).routes())
		r.Mount("/returns", returns)
		// older clients use the singular path
		r.Mount("/return", returns)
		r.Mount("/users", newResourceHandler(h, "User", authz.ResourceUsers, store.UsersTable, s.Users).routes())
	})

	return router
}
