package handlers

import (
	"github.com/go-chi/chi/v5"

	"tour-booking-platform/internal/middleware"
)

// RegisterRoutes mounts the API surface. Cart and checkout routes run behind
// the session middleware; the webhook does not, since it is called by the
// payment provider, not a browser.
func RegisterRoutes(
	r chi.Router,
	session *middleware.SessionMiddleware,
	experiences *ExperienceHandler,
	cart *CartHandler,
	bookings *BookingHandler,
	payments *PaymentHandler,
) {
	r.Route("/api", func(api chi.Router) {
		api.Get("/experiences", experiences.List)
		api.Get("/experiences/{id}", experiences.Get)
		api.Get("/bookings/{id}", bookings.Get)
		api.Post("/stripe-webhook", payments.Webhook)

		api.Group(func(g chi.Router) {
			g.Use(session.EnsureCartID)
			g.Get("/cart", cart.List)
			g.Post("/cart", cart.Add)
			g.Patch("/cart/{id}", cart.UpdateQuantity)
			g.Delete("/cart/{id}", cart.Remove)
			g.Delete("/cart", cart.Clear)
			g.Post("/bookings", bookings.Create)
			g.Post("/create-checkout-session", payments.CreateCheckoutSession)
		})
	})
}
