// Package model содержит доменные сущности кассы кинотеатра.
package model

import "fmt"

// Cents представляет денежную сумму в центах. Все цены хранятся
// целыми числами, перевод в доллары выполняется только на границе вывода.
type Cents int64

// String форматирует сумму в долларах с символом валюты.
// Обе формы чека используют именно этот формат.
func (c Cents) String() string {
	v := int64(c)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s$%d.%02d", sign, v/100, v%100)
}

// Dollars возвращает сумму в долларах для JSON-ответов API.
func (c Cents) Dollars() float64 {
	return float64(c) / 100
}

// Rating описывает возрастную классификацию MPAA.
type Rating string

const (
	RatingG    Rating = "G"
	RatingPG   Rating = "PG"
	RatingPG13 Rating = "PG13"
	RatingR    Rating = "R"
	RatingNC17 Rating = "NC17"
)

// ParseRating разбирает код рейтинга из каталога или пользовательского ввода.
func ParseRating(s string) (Rating, error) {
	switch Rating(s) {
	case RatingG, RatingPG, RatingPG13, RatingR, RatingNC17:
		return Rating(s), nil
	}
	return "", fmt.Errorf("unknown MPAA rating: %q", s)
}

// Screen описывает зал кинотеатра: номер, вместимость и текущую занятость.
// Инвариант Occupied <= Capacity поддерживается тем, что занятость меняет
// только транзакция бронирования после проверки HasCapacity.
type Screen struct {
	Number   int
	Capacity int
	Occupied int
}

// NewScreen создаёт пустой зал с указанным номером и вместимостью.
func NewScreen(number, capacity int) *Screen {
	return &Screen{
		Number:   number,
		Capacity: capacity,
	}
}

// HasCapacity сообщает, поместятся ли в зал ещё tickets зрителей.
// Сравнение со свободными местами не переполняется даже на числах
// билетов около MaxInt из внешнего ввода.
func (s *Screen) HasCapacity(tickets int) bool {
	return tickets <= s.Capacity-s.Occupied
}

// Reserve занимает места в зале. Вызывается только транзакцией
// бронирования под её блокировкой и только после проверки HasCapacity.
func (s *Screen) Reserve(tickets int) {
	s.Occupied += tickets
}

// FreeSeats возвращает число свободных мест.
func (s *Screen) FreeSeats() int {
	return s.Capacity - s.Occupied
}

// Movie описывает позицию каталога: фильм, закреплённый за одним залом,
// с ценой билета, рейтингом и списком сеансов.
type Movie struct {
	Title     string
	Price     Cents
	Rating    Rating
	Screen    *Screen
	Showtimes []Showtime
}

// CanAttend сообщает, допускается ли зритель на фильм. Единственное
// ограничение — рейтинг R для зрителей младше 17 лет.
func (m *Movie) CanAttend(p *Patron) bool {
	return p.Age >= 17 || m.Rating != RatingR
}

// HasShowtime проверяет, что сеанс есть в расписании фильма.
func (m *Movie) HasShowtime(t Showtime) bool {
	for _, st := range m.Showtimes {
		if st == t {
			return true
		}
	}
	return false
}

// Patron описывает посетителя в рамках одной сессии. Не сохраняется.
type Patron struct {
	Name string
	Age  int
}

// SnackItem описывает позицию буфета. Каталог закусок неизменяем,
// заказы ссылаются на его элементы по значению.
type SnackItem struct {
	Name     string
	Category string
	Price    Cents
}

// Order описывает зафиксированный заказ. Название фильма, номер зала и
// цена билета копируются в момент фиксации: последующие правки каталога
// не должны менять историю заказов.
type Order struct {
	Number       int
	MovieTitle   string
	ScreenNumber int
	Showtime     Showtime
	UnitPrice    Cents
	TicketCount  int
	Snacks       []SnackItem
}

// NewOrder создаёт заказ-снимок по текущему состоянию позиции каталога.
func NewOrder(number int, movie *Movie, showtime Showtime, tickets int, snacks []SnackItem) Order {
	copied := make([]SnackItem, len(snacks))
	copy(copied, snacks)

	return Order{
		Number:       number,
		MovieTitle:   movie.Title,
		ScreenNumber: movie.Screen.Number,
		Showtime:     showtime,
		UnitPrice:    movie.Price,
		TicketCount:  tickets,
		Snacks:       copied,
	}
}

// Subtotal возвращает стоимость заказа: билеты плюс закуски.
func (o Order) Subtotal() Cents {
	total := o.UnitPrice * Cents(o.TicketCount)
	for _, snack := range o.Snacks {
		total += snack.Price
	}
	return total
}
