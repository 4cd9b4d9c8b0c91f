// Package handler содержит HTTP-обработчики API кассы кинотеатра.
package handler

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BrettAtwell/Movie-theatre-project/internal/booking"
	"github.com/BrettAtwell/Movie-theatre-project/internal/catalog"
	"github.com/BrettAtwell/Movie-theatre-project/internal/middleware"
	"github.com/BrettAtwell/Movie-theatre-project/internal/model"
	"github.com/BrettAtwell/Movie-theatre-project/internal/receipt"
)

// Service определяет контракт ядра кассы, используемый HTTP-обработчиками.
type Service interface {
	Movies() []booking.MovieSnapshot
	MovieByScreen(number int) (booking.MovieSnapshot, error)
	AddMovie(m *model.Movie) error
	UpdatePrice(screen int, price model.Cents) error
	RemoveMovie(screen int) error
	Snacks() []model.SnackItem
	SnackByName(name string) (model.SnackItem, error)
	Reserve(patron *model.Patron, screen int, showtime model.Showtime, tickets int, snacks []model.SnackItem) (*model.Order, error)
	Orders() []model.Order
	OrderCount() int
	GrandTotal() model.Cents
}

// centsFromDollars переводит сумму из JSON-запроса в центы.
// Округление до ближайшего цента: усечение сделало бы 9.95 центом меньше.
func centsFromDollars(v float64) model.Cents {
	return model.Cents(math.Round(v * 100))
}

// Handler реализует HTTP-обработчики API кассы кинотеатра.
type Handler struct {
	service Service
	logger  *zap.Logger
	session *middleware.SessionMiddleware
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(s Service, logger *zap.Logger, session *middleware.SessionMiddleware) *Handler {
	return &Handler{
		service: s,
		logger:  logger,
		session: session,
	}
}

type sessionRequest struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

type sessionResponse struct {
	SessionID string `json:"session_id"`
}

// CreateSession открывает сессию посетителя: имя и возраст фиксируются
// в подписанном cookie и дальше используются транзакцией бронирования.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if req.Name == "" || req.Age < 0 {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	sessionID := h.session.SetSessionCookie(w, &model.Patron{Name: req.Name, Age: req.Age})

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(sessionResponse{SessionID: sessionID}); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}

type movieResponse struct {
	Title     string   `json:"title"`
	Price     float64  `json:"price"`
	Rating    string   `json:"rating"`
	Screen    int      `json:"screen"`
	Capacity  int      `json:"capacity"`
	FreeSeats int      `json:"free_seats"`
	Showtimes []string `json:"showtimes"`
}

func toMovieResponse(m booking.MovieSnapshot) movieResponse {
	showtimes := make([]string, 0, len(m.Showtimes))
	for _, st := range m.Showtimes {
		showtimes = append(showtimes, st.String())
	}

	return movieResponse{
		Title:     m.Title,
		Price:     m.Price.Dollars(),
		Rating:    string(m.Rating),
		Screen:    m.Screen,
		Capacity:  m.Capacity,
		FreeSeats: m.FreeSeats,
		Showtimes: showtimes,
	}
}

// GetMovies возвращает каталог фильмов.
func (h *Handler) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies := h.service.Movies()

	resp := make([]movieResponse, 0, len(movies))
	for _, m := range movies {
		resp = append(resp, toMovieResponse(m))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}

type addMovieRequest struct {
	Title     string   `json:"title"`
	Price     float64  `json:"price"`
	Rating    string   `json:"rating"`
	Screen    int      `json:"screen"`
	Capacity  int      `json:"capacity"`
	Showtimes []string `json:"showtimes"`
}

// AddMovie добавляет позицию каталога.
func (h *Handler) AddMovie(w http.ResponseWriter, r *http.Request) {
	var req addMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if req.Title == "" || req.Price < 0 || req.Screen < 0 || req.Capacity < 0 {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	rating, err := model.ParseRating(req.Rating)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnprocessableEntity), http.StatusUnprocessableEntity)
		return
	}

	showtimes := make([]model.Showtime, 0, len(req.Showtimes))
	for _, raw := range req.Showtimes {
		st, err := model.ParseShowtime(raw)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusUnprocessableEntity), http.StatusUnprocessableEntity)
			return
		}
		showtimes = append(showtimes, st)
	}

	price := centsFromDollars(req.Price)
	movie := &model.Movie{
		Title:     req.Title,
		Price:     price,
		Rating:    rating,
		Screen:    model.NewScreen(req.Screen, req.Capacity),
		Showtimes: showtimes,
	}

	if err := h.service.AddMovie(movie); err != nil {
		if errors.Is(err, catalog.ErrScreenTaken) {
			http.Error(w, http.StatusText(http.StatusConflict), http.StatusConflict)
			return
		}
		h.logger.Error("add movie error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// Ответ собирается из данных запроса: после публикации позиция
	// принадлежит ядру кассы и читается только его снимками.
	resp := toMovieResponse(booking.MovieSnapshot{
		Title:     req.Title,
		Price:     price,
		Rating:    rating,
		Screen:    req.Screen,
		Capacity:  req.Capacity,
		FreeSeats: req.Capacity,
		Showtimes: showtimes,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}

type updatePriceRequest struct {
	Price float64 `json:"price"`
}

// UpdateMoviePrice меняет цену билета у позиции каталога.
func (h *Handler) UpdateMoviePrice(w http.ResponseWriter, r *http.Request) {
	screen, err := strconv.Atoi(chi.URLParam(r, "screen"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var req updatePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if req.Price < 0 {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.service.UpdatePrice(screen, centsFromDollars(req.Price)); err != nil {
		if errors.Is(err, catalog.ErrMovieNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		h.logger.Error("update price error", zap.Error(err), zap.Int("screen", screen))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// DeleteMovie удаляет позицию каталога.
func (h *Handler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	screen, err := strconv.Atoi(chi.URLParam(r, "screen"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.service.RemoveMovie(screen); err != nil {
		if errors.Is(err, catalog.ErrMovieNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		h.logger.Error("remove movie error", zap.Error(err), zap.Int("screen", screen))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

type snackResponse struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// GetSnacks возвращает каталог буфета.
func (h *Handler) GetSnacks(w http.ResponseWriter, r *http.Request) {
	snacks := h.service.Snacks()

	resp := make([]snackResponse, 0, len(snacks))
	for _, s := range snacks {
		resp = append(resp, snackResponse{
			Name:     s.Name,
			Category: s.Category,
			Price:    s.Price.Dollars(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}

type createOrderRequest struct {
	Screen   int      `json:"screen"`
	Showtime string   `json:"showtime"`
	Tickets  int      `json:"tickets"`
	Snacks   []string `json:"snacks"`
}

type orderSnackResponse struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type orderResponse struct {
	Number   int                  `json:"number"`
	Movie    string               `json:"movie"`
	Screen   int                  `json:"screen"`
	Showtime string               `json:"showtime"`
	Price    float64              `json:"price"`
	Tickets  int                  `json:"tickets"`
	Snacks   []orderSnackResponse `json:"snacks"`
	Subtotal float64              `json:"subtotal"`
}

func toOrderResponse(o model.Order) orderResponse {
	snacks := make([]orderSnackResponse, 0, len(o.Snacks))
	for _, s := range o.Snacks {
		snacks = append(snacks, orderSnackResponse{
			Name:  s.Name,
			Price: s.Price.Dollars(),
		})
	}

	return orderResponse{
		Number:   o.Number,
		Movie:    o.MovieTitle,
		Screen:   o.ScreenNumber,
		Showtime: o.Showtime.String(),
		Price:    o.UnitPrice.Dollars(),
		Tickets:  o.TicketCount,
		Snacks:   snacks,
		Subtotal: o.Subtotal().Dollars(),
	}
}

// CreateOrder выполняет бронирование от имени посетителя текущей сессии.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	patron, ok := middleware.GetPatronFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	movie, err := h.service.MovieByScreen(req.Screen)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	showtime, err := model.ParseShowtime(req.Showtime)
	if err != nil || !movie.HasShowtime(showtime) {
		http.Error(w, http.StatusText(http.StatusUnprocessableEntity), http.StatusUnprocessableEntity)
		return
	}

	snacks := make([]model.SnackItem, 0, len(req.Snacks))
	for _, name := range req.Snacks {
		snack, err := h.service.SnackByName(name)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusUnprocessableEntity), http.StatusUnprocessableEntity)
			return
		}
		snacks = append(snacks, snack)
	}

	order, err := h.service.Reserve(patron, req.Screen, showtime, req.Tickets, snacks)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrCapacityExceeded):
			http.Error(w, http.StatusText(http.StatusConflict), http.StatusConflict)
		case errors.Is(err, booking.ErrAgeRestricted):
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		case errors.Is(err, booking.ErrInvalidTicketCount):
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		case errors.Is(err, catalog.ErrMovieNotFound):
			// Позиция удалена между проверкой сеанса и бронированием.
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		default:
			h.logger.Error("reserve error", zap.Error(err), zap.Int("screen", req.Screen))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	if sessionID, ok := middleware.GetSessionIDFromContext(r.Context()); ok {
		h.logger.Info("order committed",
			zap.String("session", sessionID),
			zap.Int("order", order.Number),
			zap.Int("screen", order.ScreenNumber),
			zap.Int("tickets", order.TicketCount),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toOrderResponse(*order)); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}

// GetOrders возвращает журнал заказов в порядке фиксации.
func (h *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.service.Orders()

	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	resp := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}

// GetOrdersSummary возвращает текстовую сводку заказов — ту же,
// что видит посетитель интерактивной сессии.
func (h *Handler) GetOrdersSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(receipt.Summary(h.service.Orders()))); err != nil {
		h.logger.Error("write summary error", zap.Error(err))
	}
}
