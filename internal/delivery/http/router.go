package http

import (
	"net/http"

	"easymed-booking/internal/delivery/http/handler"
	"easymed-booking/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	doctorHandler       *handler.DoctorHandler
	availabilityHandler *handler.AvailabilityHandler
	favoritesHandler    *handler.FavoritesHandler
	bookingHandler      *handler.BookingHandler
	notificationHandler *handler.NotificationHandler
	authHandler         *handler.AuthHandler
	clientMiddleware    *middleware.ClientMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	metricsHandler      http.Handler
}

type RouterParams struct {
	DoctorHandler       *handler.DoctorHandler
	AvailabilityHandler *handler.AvailabilityHandler
	FavoritesHandler    *handler.FavoritesHandler
	BookingHandler      *handler.BookingHandler
	NotificationHandler *handler.NotificationHandler
	AuthHandler         *handler.AuthHandler
	ClientMiddleware    *middleware.ClientMiddleware
	CORSMiddleware      *middleware.CORSMiddleware
	MetricsHandler      http.Handler
}

func NewRouter(p RouterParams) *Router {
	return &Router{
		router:              mux.NewRouter(),
		doctorHandler:       p.DoctorHandler,
		availabilityHandler: p.AvailabilityHandler,
		favoritesHandler:    p.FavoritesHandler,
		bookingHandler:      p.BookingHandler,
		notificationHandler: p.NotificationHandler,
		authHandler:         p.AuthHandler,
		clientMiddleware:    p.ClientMiddleware,
		corsMiddleware:      p.CORSMiddleware,
		metricsHandler:      p.MetricsHandler,
	}
}

func (r *Router) Setup() *mux.Router {
	// Preflight for every path, answered by the CORS middleware
	r.router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	if r.metricsHandler != nil {
		api.Handle("/metrics", r.metricsHandler).Methods(http.MethodGet)
	}

	// Catalog (public)
	api.HandleFunc("/doctors", r.doctorHandler.SearchDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id:[0-9]+}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/specialties", r.doctorHandler.ListSpecialties).Methods(http.MethodGet)

	// Notifications (public)
	api.HandleFunc("/notifications", r.notificationHandler.SendNotification).Methods(http.MethodPost)

	// Client token
	api.HandleFunc("/clients", r.authHandler.IssueClientToken).Methods(http.MethodPost)

	// Client routes (protected)
	client := api.NewRoute().Subrouter()
	client.Use(r.clientMiddleware.Authenticate)

	client.HandleFunc("/favorites", r.favoritesHandler.ListFavorites).Methods(http.MethodGet)
	client.HandleFunc("/favorites/{doctorId:[0-9]+}", r.favoritesHandler.GetFavoriteStatus).Methods(http.MethodGet)
	client.HandleFunc("/favorites/{doctorId:[0-9]+}", r.favoritesHandler.AddFavorite).Methods(http.MethodPut)
	client.HandleFunc("/favorites/{doctorId:[0-9]+}", r.favoritesHandler.RemoveFavorite).Methods(http.MethodDelete)

	client.HandleFunc("/doctors/{id:[0-9]+}/availability", r.availabilityHandler.GetAvailability).Methods(http.MethodGet)
	client.HandleFunc("/doctors/{id:[0-9]+}/availability/{index:[0-9]+}/toggle", r.availabilityHandler.ToggleSlot).Methods(http.MethodPost)

	client.HandleFunc("/bookings", r.bookingHandler.CreateBooking).Methods(http.MethodPost)

	// Mock session
	client.HandleFunc("/auth/register", r.authHandler.Register).Methods(http.MethodPost)
	client.HandleFunc("/auth/login", r.authHandler.Login).Methods(http.MethodPost)
	client.HandleFunc("/auth/logout", r.authHandler.Logout).Methods(http.MethodPost)
	client.HandleFunc("/auth/me", r.authHandler.GetCurrentSession).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
