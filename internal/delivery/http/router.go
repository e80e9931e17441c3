package http

import (
	"net/http"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/delivery/http/handler"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	Product  *handler.ProductHandler
	Import   *handler.ImportHandler
	Sale     *handler.SaleHandler
	Report   *handler.ReportHandler
	User     *handler.UserHandler
	AuditLog *handler.AuditLogHandler
}

type Router struct {
	router            *mux.Router
	handlers          Handlers
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		handlers:          handlers,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

// Setup registers every route. CORS and access logging wrap the router so
// they also see requests that match no route, such as preflights.
func (r *Router) Setup() http.Handler {
	h := r.handlers

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", h.Auth.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", h.Auth.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", h.Auth.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", h.Auth.GetCurrentUser).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.NewRoute().Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/admin/dashboard", h.Report.Dashboard).Methods(http.MethodGet)
	admin.HandleFunc("/admin/audit-logs", h.AuditLog.List).Methods(http.MethodGet)
	admin.HandleFunc("/create/salesAgent", h.User.CreateSalesAgent).Methods(http.MethodPost)
	admin.HandleFunc("/create/product", h.Product.Create).Methods(http.MethodPost)
	admin.HandleFunc("/update/product/{id:[0-9]+}", h.Product.Update).Methods(http.MethodPut)
	admin.HandleFunc("/upload/product", h.Import.Upload).Methods(http.MethodPost)
	admin.HandleFunc("/sales/visualization/data", h.Report.Visualization).Methods(http.MethodGet)
	admin.HandleFunc("/list/sales/users", h.User.ListSalesAgents).Methods(http.MethodGet)

	// POS routes (protected - any authenticated user)
	pos := api.NewRoute().Subrouter()
	pos.Use(r.authMiddleware.Authenticate)

	pos.HandleFunc("/list/products", h.Product.List).Methods(http.MethodGet)
	pos.HandleFunc("/product/{id:[0-9]+}", h.Product.GetByID).Methods(http.MethodGet)
	pos.HandleFunc("/index/product/items", h.Product.IndexItems).Methods(http.MethodGet)
	pos.HandleFunc("/index/recent/product/items", h.Product.RecentItems).Methods(http.MethodGet)
	pos.HandleFunc("/make/sales/{customerName}/{grandPrice}", h.Sale.MakeSale).Methods(http.MethodPost)
	pos.HandleFunc("/sales/summary", h.Report.Summary).Methods(http.MethodGet)
	pos.HandleFunc("/sales/details/{id:[0-9]+}", h.Report.Details).Methods(http.MethodGet)
	pos.HandleFunc("/sales", h.Report.Sales).Methods(http.MethodGet)
	pos.HandleFunc("/user/profile", h.User.Profile).Methods(http.MethodGet)
	pos.HandleFunc("/get/users/list", h.User.ListUsers).Methods(http.MethodGet)

	return r.loggingMiddleware.Handle(r.corsMiddleware.Handle(r.router))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
