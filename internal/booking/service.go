// Package booking реализует транзакцию бронирования и доступ к ядру кассы.
package booking

import (
	"errors"
	"fmt"
	"sync"

	"github.com/BrettAtwell/Movie-theatre-project/internal/catalog"
	"github.com/BrettAtwell/Movie-theatre-project/internal/ledger"
	"github.com/BrettAtwell/Movie-theatre-project/internal/model"
)

// ErrCapacityExceeded возвращается, если в зале недостаточно свободных мест.
var (
	ErrCapacityExceeded = errors.New("not enough free seats for the show")
	// ErrAgeRestricted возвращается, если зритель не проходит по возрастному рейтингу.
	ErrAgeRestricted = errors.New("patron does not meet the age requirement")
	// ErrInvalidTicketCount возвращается на отрицательное число билетов.
	ErrInvalidTicketCount = errors.New("ticket count must not be negative")
	// ErrSnackNotFound возвращается, если закуски нет в каталоге буфета.
	ErrSnackNotFound = errors.New("snack not found")
)

// DefaultSnacks возвращает стандартный каталог буфета.
func DefaultSnacks() []model.SnackItem {
	return []model.SnackItem{
		{Name: "Popcorn", Category: "Snack", Price: 450},
		{Name: "Soda", Category: "Drink", Price: 300},
		{Name: "Chocolate Bar", Category: "Candy", Price: 250},
	}
}

// Service владеет каталогом, журналом заказов и каталогом буфета
// и выполняет транзакции бронирования над ними.
// Блокировка сервиса — единственная точка сериализации изменяемого
// состояния позиций каталога (цена билета, занятость зала): живые
// Screen и Movie наружу не выдаются, читающие поверхности получают
// снимки, снятые под той же блокировкой.
type Service struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	ledger  *ledger.Ledger
	snacks  []model.SnackItem
}

// MovieSnapshot содержит согласованный снимок позиции каталога
// для читающих поверхностей.
type MovieSnapshot struct {
	Title     string
	Price     model.Cents
	Rating    model.Rating
	Screen    int
	Capacity  int
	FreeSeats int
	Showtimes []model.Showtime
}

// HasShowtime проверяет, что сеанс есть в расписании позиции.
func (m MovieSnapshot) HasShowtime(t model.Showtime) bool {
	for _, st := range m.Showtimes {
		if st == t {
			return true
		}
	}
	return false
}

func snapshot(m *model.Movie) MovieSnapshot {
	showtimes := make([]model.Showtime, len(m.Showtimes))
	copy(showtimes, m.Showtimes)

	return MovieSnapshot{
		Title:     m.Title,
		Price:     m.Price,
		Rating:    m.Rating,
		Screen:    m.Screen.Number,
		Capacity:  m.Screen.Capacity,
		FreeSeats: m.Screen.FreeSeats(),
		Showtimes: showtimes,
	}
}

// NewService создаёт сервис над указанными каталогом и журналом.
// Пустой список закусок заменяется стандартным каталогом буфета.
func NewService(c *catalog.Catalog, l *ledger.Ledger, snacks []model.SnackItem) *Service {
	if len(snacks) == 0 {
		snacks = DefaultSnacks()
	}
	return &Service{
		catalog: c,
		ledger:  l,
		snacks:  snacks,
	}
}

// Reserve выполняет транзакцию бронирования: находит позицию каталога по
// номеру зала, проверяет вместимость и возрастное ограничение, занимает
// места и фиксирует заказ в журнале. При отказе состояние не меняется;
// причина отказа различима через errors.Is. Поиск позиции, проверки,
// занятие мест и запись в журнал выполняются под одной блокировкой:
// внешний наблюдатель не увидит занятые места без заказа.
// Принадлежность сеанса расписанию не проверяется, это забота вызывающего.
func (s *Service) Reserve(patron *model.Patron, screen int, showtime model.Showtime, tickets int, snacks []model.SnackItem) (*model.Order, error) {
	if tickets < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTicketCount, tickets)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	movie, err := s.catalog.ByScreen(screen)
	if err != nil {
		return nil, err
	}

	if !movie.Screen.HasCapacity(tickets) {
		return nil, fmt.Errorf("%w: screen %d has %d free seats, want %d",
			ErrCapacityExceeded, movie.Screen.Number, movie.Screen.FreeSeats(), tickets)
	}

	if !movie.CanAttend(patron) {
		return nil, fmt.Errorf("%w: rating %s, age %d", ErrAgeRestricted, movie.Rating, patron.Age)
	}

	movie.Screen.Reserve(tickets)

	order := model.NewOrder(s.ledger.NextOrderNumber(), movie, showtime, tickets, snacks)
	s.ledger.Append(order)

	return &order, nil
}

// Movies возвращает снимки позиций каталога в порядке добавления.
func (s *Service) Movies() []MovieSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	movies := s.catalog.Movies()
	res := make([]MovieSnapshot, 0, len(movies))
	for _, m := range movies {
		res = append(res, snapshot(m))
	}
	return res
}

// MovieByScreen возвращает снимок позиции каталога по номеру зала.
func (s *Service) MovieByScreen(number int) (MovieSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.catalog.ByScreen(number)
	if err != nil {
		return MovieSnapshot{}, err
	}
	return snapshot(m), nil
}

// AddMovie добавляет позицию каталога.
func (s *Service) AddMovie(m *model.Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.catalog.Add(m)
}

// UpdatePrice меняет цену билета у позиции каталога.
func (s *Service) UpdatePrice(screen int, price model.Cents) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.catalog.UpdatePrice(screen, price)
}

// RemoveMovie удаляет позицию каталога.
func (s *Service) RemoveMovie(screen int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.catalog.Remove(screen)
}

// Snacks возвращает каталог буфета.
func (s *Service) Snacks() []model.SnackItem {
	res := make([]model.SnackItem, len(s.snacks))
	copy(res, s.snacks)
	return res
}

// SnackByName находит закуску в каталоге буфета по названию.
func (s *Service) SnackByName(name string) (model.SnackItem, error) {
	for _, snack := range s.snacks {
		if snack.Name == name {
			return snack, nil
		}
	}
	return model.SnackItem{}, fmt.Errorf("%w: %q", ErrSnackNotFound, name)
}

// Orders возвращает журнал заказов в порядке фиксации.
func (s *Service) Orders() []model.Order {
	return s.ledger.All()
}

// OrderCount возвращает число зафиксированных заказов.
func (s *Service) OrderCount() int {
	return s.ledger.Count()
}

// GrandTotal возвращает сумму стоимостей всех заказов.
func (s *Service) GrandTotal() model.Cents {
	return s.ledger.GrandTotal()
}
