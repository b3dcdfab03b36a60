package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"planora/internal/domain/model"
	"planora/pkg/jwt"
	"planora/pkg/middleware"
)

// Controllers bundles every HTTP controller the router mounts
type Controllers struct {
	Auth    *AuthController
	Event   *EventController
	Booking *BookingController
	Item    *ItemController
	Client  *ClientController
	Media   *MediaController
}

// NewRouter builds the HTTP routing table. Reads are public; writes require
// a token, and provider-side writes additionally require the client role.
func NewRouter(c Controllers, jwtManager *jwt.JWTManager, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.ErrorHandler(log))

	auth := middleware.JWTAuthMiddleware(jwtManager)
	clientOnly := middleware.RequireRole(model.RoleClient, model.RoleAdmin)
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", c.Auth.Register)
		r.Post("/login", c.Auth.Login)
	})

	r.Route("/events", func(r chi.Router) {
		r.Get("/", c.Event.ListPublishedEvents)
		r.Get("/{id}", c.Event.GetEventDetail)

		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Get("/mine", c.Event.ListMyEvents)
			r.Post("/", c.Event.CreateEvent)
			r.Put("/{id}", c.Event.EditEvent)
			r.Post("/{id}/publish", c.Event.PublishEvent)
			r.Post("/{id}/cancel", c.Event.CancelEvent)

			r.With(adminOnly).Delete("/{id}/fields", c.Event.DeleteEventField)
		})
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Use(auth, clientOnly)
		r.Post("/{id}/confirm", c.Booking.ConfirmBooking)
		r.Post("/{id}/reject", c.Booking.RejectBooking)
	})

	r.Route("/items", func(r chi.Router) {
		r.Get("/available", c.Item.SearchAvailableItems)
		r.Get("/type/{typeName}", c.Item.ListItemsByType)
		r.Get("/{id}", c.Item.GetItem)

		r.Group(func(r chi.Router) {
			r.Use(auth, clientOnly)
			r.Post("/", c.Item.CreateItem)
			r.Put("/{id}", c.Item.EditItem)
			r.Delete("/{id}", c.Item.DeleteItem)
		})
	})

	r.Route("/clients", func(r chi.Router) {
		r.Get("/", c.Client.ListClients)
		r.Get("/{id}", c.Client.GetClient)
		r.Get("/{id}/images", c.Client.GetClientImages)
		r.Get("/{id}/items", c.Item.ListClientItems)

		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Post("/", c.Client.CreateClient)
			r.Get("/me", c.Client.GetMyClientProfile)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth, clientOnly)
			r.Put("/{id}", c.Client.UpdateClient)
			r.Put("/{id}/photos", c.Client.UpdateClientPhotos)
			r.Delete("/{id}", c.Client.DeleteClient)
			r.Get("/{id}/bookings", c.Booking.ListClientBookings)
			r.Get("/{id}/schedule", c.Booking.ListClientSchedule)
		})
	})

	r.Route("/media", func(r chi.Router) {
		r.Get("/{name}", c.Media.Download)
		r.With(auth).Post("/", c.Media.Upload)
	})

	return r
}
