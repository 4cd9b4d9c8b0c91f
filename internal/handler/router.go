package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	custommiddleware "github.com/BrettAtwell/Movie-theatre-project/internal/middleware"
)

// SetupRouter настраивает HTTP-маршруты и middleware API кассы.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.GzipMiddleware)
	r.Use(custommiddleware.Logger(h.logger))

	r.Route("/api", func(r chi.Router) {
		r.Post("/session", h.CreateSession)

		r.Get("/movies", h.GetMovies)
		r.Post("/movies", h.AddMovie)
		r.Patch("/movies/{screen}", h.UpdateMoviePrice)
		r.Delete("/movies/{screen}", h.DeleteMovie)

		r.Get("/snacks", h.GetSnacks)

		r.Get("/orders", h.GetOrders)
		r.Get("/orders/summary", h.GetOrdersSummary)

		r.Group(func(r chi.Router) {
			r.Use(h.session.Middleware)

			r.Post("/orders", h.CreateOrder)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}
