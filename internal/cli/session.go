// Package cli реализует интерактивную сессию кассы в терминале:
// главное меню, покупку билетов с закусками и управление каталогом.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/BrettAtwell/Movie-theatre-project/internal/booking"
	"github.com/BrettAtwell/Movie-theatre-project/internal/catalog"
	"github.com/BrettAtwell/Movie-theatre-project/internal/model"
	"github.com/BrettAtwell/Movie-theatre-project/internal/receipt"
	"github.com/BrettAtwell/Movie-theatre-project/internal/validation"
)

// Service определяет контракт ядра кассы, используемый интерактивной сессией.
type Service interface {
	Movies() []booking.MovieSnapshot
	AddMovie(m *model.Movie) error
	UpdatePrice(screen int, price model.Cents) error
	RemoveMovie(screen int) error
	Snacks() []model.SnackItem
	Reserve(patron *model.Patron, screen int, showtime model.Showtime, tickets int, snacks []model.SnackItem) (*model.Order, error)
	Orders() []model.Order
}

// Session ведёт диалог с посетителем через строчные подсказки.
// Ошибки ввода не прерывают сессию: некорректная строка пропускается,
// вопрос задаётся заново или пункт меню отменяется.
type Session struct {
	in          *bufio.Scanner
	out         io.Writer
	service     Service
	receiptPath string
	logger      *zap.Logger
}

// NewSession создаёт интерактивную сессию над указанным ядром кассы.
func NewSession(in io.Reader, out io.Writer, svc Service, receiptPath string, logger *zap.Logger) *Session {
	return &Session{
		in:          bufio.NewScanner(in),
		out:         out,
		service:     svc,
		receiptPath: receiptPath,
		logger:      logger,
	}
}

// Run выполняет главное меню до выбора выхода или конца ввода.
func (s *Session) Run() error {
	fmt.Fprintln(s.out, "Welcome to Willie the Wildcat Cinema!")
	fmt.Fprintln(s.out, "Experience the magic of movies and more!")
	fmt.Fprintln(s.out)

	for {
		fmt.Fprintln(s.out, "Main Menu:")
		fmt.Fprintln(s.out, "1. Movie Selection")
		fmt.Fprintln(s.out, "2. Movie Management")
		fmt.Fprintln(s.out, "3. Exit")

		line, ok := s.readLine("Choose an option:")
		if !ok {
			return nil
		}

		choice, err := validation.ParseCount(line)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
			continue
		}

		switch choice {
		case 1:
			if !s.movieSelectionPath() {
				return nil
			}
		case 2:
			if !s.movieManagementPath() {
				return nil
			}
		case 3:
			fmt.Fprintln(s.out, "Exiting the program...")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

// readLine печатает подсказку и читает строку ввода.
// Второй результат false означает конец ввода: сессия завершается.
func (s *Session) readLine(prompt string) (string, bool) {
	fmt.Fprintln(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// movieSelectionPath ведёт посетителя по циклу покупки билетов.
// Возвращает false только при конце ввода.
func (s *Session) movieSelectionPath() bool {
	name, ok := s.readLine("Enter your name:")
	if !ok {
		return false
	}

	var age int
	for {
		line, ok := s.readLine("Enter your age:")
		if !ok {
			return false
		}
		n, err := validation.ParseCount(line)
		if err != nil {
			fmt.Fprintln(s.out, "Please enter a valid age.")
			continue
		}
		age = n
		break
	}

	patron := &model.Patron{Name: name, Age: age}

	for {
		if s.purchaseOnce(patron) {
			line, ok := s.readLine("Do you want to purchase tickets for another movie? (yes/no)")
			if !ok {
				return false
			}
			if validation.IsYes(line) {
				continue
			}
		}
		break
	}

	orders := s.service.Orders()
	fmt.Fprintln(s.out)
	fmt.Fprint(s.out, receipt.Summary(orders))

	if err := receipt.WriteFile(s.receiptPath, orders); err != nil {
		fmt.Fprintf(s.out, "Error writing to file: %v\n", err)
		s.logger.Error("write receipt error", zap.Error(err), zap.String("path", s.receiptPath))
	} else {
		fmt.Fprintf(s.out, "Receipt file created at %s\n", s.receiptPath)
	}

	return true
}

// purchaseOnce проводит одну попытку покупки. Возвращает false при конце
// ввода или пустом каталоге — тогда цикл покупок завершается.
func (s *Session) purchaseOnce(patron *model.Patron) bool {
	movies := s.service.Movies()
	if len(movies) == 0 {
		fmt.Fprintln(s.out, "No movies are currently available.")
		return false
	}

	s.displayMovies(movies)

	line, ok := s.readLine("Select a movie by number:")
	if !ok {
		return false
	}
	selection, err := validation.ParseCount(line)
	if err != nil || selection < 1 || selection > len(movies) {
		fmt.Fprintln(s.out, "Invalid movie selection.")
		return true
	}
	movie := movies[selection-1]

	fmt.Fprintf(s.out, "Selected Movie: %s\n", movie.Title)
	fmt.Fprintln(s.out, "Available Showtimes:")
	for _, st := range movie.Showtimes {
		fmt.Fprintln(s.out, st)
	}

	line, ok = s.readLine("Select a showtime by entering the time (hh:mm):")
	if !ok {
		return false
	}
	showtime, err := model.ParseShowtime(line)
	if err != nil || !movie.HasShowtime(showtime) {
		fmt.Fprintln(s.out, "Invalid showtime selection.")
		return true
	}

	line, ok = s.readLine("Enter number of tickets:")
	if !ok {
		return false
	}
	tickets, err := validation.ParseCount(line)
	if err != nil {
		fmt.Fprintln(s.out, "Please enter a valid number of tickets.")
		return true
	}

	snacks, ok := s.selectSnacks()
	if !ok {
		return false
	}

	if _, err := s.service.Reserve(patron, movie.Screen, showtime, tickets, snacks); err != nil {
		// Касса различает причины отказа, посетителю выводится
		// одно общее сообщение.
		if errors.Is(err, booking.ErrCapacityExceeded) || errors.Is(err, booking.ErrAgeRestricted) {
			fmt.Fprintln(s.out, "Unable to add tickets to your order. Show may be sold out or you may not meet the age requirement.")
		} else {
			fmt.Fprintln(s.out, "Unable to add tickets to your order.")
			s.logger.Error("reserve error", zap.Error(err), zap.Int("screen", movie.Screen))
		}
		return true
	}

	fmt.Fprintf(s.out, "Tickets and snacks for '%s' at %s added to your order.\n", movie.Title, showtime)
	return true
}

func (s *Session) displayMovies(movies []booking.MovieSnapshot) {
	fmt.Fprintln(s.out, "Available Movies:")
	for i, m := range movies {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, m.Title)
	}
}

// selectSnacks предлагает предзаказ закусок. Одну и ту же закуску
// можно выбрать несколько раз — каждая становится отдельной позицией заказа.
func (s *Session) selectSnacks() ([]model.SnackItem, bool) {
	line, ok := s.readLine("Would you like to pre-buy snacks? (yes/no)")
	if !ok {
		return nil, false
	}
	if !validation.IsYes(line) {
		return nil, true
	}

	available := s.service.Snacks()
	var selected []model.SnackItem

	for {
		for i, snack := range available {
			fmt.Fprintf(s.out, "%d. %s - %s\n", i+1, snack.Name, snack.Price)
		}

		line, ok := s.readLine("Select a snack by number:")
		if !ok {
			return nil, false
		}
		selection, err := validation.ParseCount(line)
		if err != nil || selection < 1 || selection > len(available) {
			fmt.Fprintln(s.out, "Invalid snack selection.")
		} else {
			selected = append(selected, available[selection-1])
		}

		line, ok = s.readLine("Do you want to select more snacks? (yes/no)")
		if !ok {
			return nil, false
		}
		if !validation.IsYes(line) {
			break
		}
	}

	return selected, true
}

// movieManagementPath ведёт меню управления каталогом.
// Возвращает false только при конце ввода.
func (s *Session) movieManagementPath() bool {
	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "--- Movie Management Menu ---")
		fmt.Fprintln(s.out, "1. Add New Movie")
		fmt.Fprintln(s.out, "2. Update Existing Movie")
		fmt.Fprintln(s.out, "3. Remove Movie")
		fmt.Fprintln(s.out, "4. Return to Main Menu")

		line, ok := s.readLine("Enter your choice:")
		if !ok {
			return false
		}

		choice, err := validation.ParseCount(line)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
			continue
		}

		switch choice {
		case 1:
			if !s.addNewMovie() {
				return false
			}
		case 2:
			if !s.updateExistingMovie() {
				return false
			}
		case 3:
			if !s.removeMovie() {
				return false
			}
		case 4:
			return true
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

// addNewMovie добавляет позицию каталога. Некорректное значение любого
// поля отменяет добавление целиком — частично заполненных позиций не бывает.
func (s *Session) addNewMovie() bool {
	title, ok := s.readLine("Enter movie title:")
	if !ok {
		return false
	}
	if title == "" {
		fmt.Fprintln(s.out, "Movie title must not be empty.")
		return true
	}

	line, ok := s.readLine("Enter ticket price:")
	if !ok {
		return false
	}
	price, err := validation.ParsePrice(line)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid price.")
		return true
	}

	line, ok = s.readLine("Enter MPAA rating (G, PG, PG13, R, NC17):")
	if !ok {
		return false
	}
	rating, err := model.ParseRating(line)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid MPAA rating.")
		return true
	}

	line, ok = s.readLine("Enter screen number:")
	if !ok {
		return false
	}
	screenNumber, err := validation.ParseCount(line)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid screen number.")
		return true
	}

	line, ok = s.readLine("Enter seating capacity:")
	if !ok {
		return false
	}
	capacity, err := validation.ParseCount(line)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid seating capacity.")
		return true
	}

	line, ok = s.readLine("Enter showtimes (separated by '|'):")
	if !ok {
		return false
	}
	var showtimes []model.Showtime
	for _, raw := range strings.Split(line, "|") {
		st, err := model.ParseShowtime(raw)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid showtime.")
			return true
		}
		showtimes = append(showtimes, st)
	}

	movie := &model.Movie{
		Title:     title,
		Price:     price,
		Rating:    rating,
		Screen:    model.NewScreen(screenNumber, capacity),
		Showtimes: showtimes,
	}

	if err := s.service.AddMovie(movie); err != nil {
		if errors.Is(err, catalog.ErrScreenTaken) {
			fmt.Fprintln(s.out, "Screen number is already taken.")
		} else {
			fmt.Fprintln(s.out, "Unable to add the movie.")
			s.logger.Error("add movie error", zap.Error(err))
		}
		return true
	}

	fmt.Fprintln(s.out, "New movie added successfully.")
	return true
}

func (s *Session) updateExistingMovie() bool {
	movies := s.service.Movies()
	if len(movies) == 0 {
		fmt.Fprintln(s.out, "No movies are currently available.")
		return true
	}

	s.displayMovies(movies)

	line, ok := s.readLine("Select the number of the movie to update:")
	if !ok {
		return false
	}
	selection, err := validation.ParseCount(line)
	if err != nil || selection < 1 || selection > len(movies) {
		fmt.Fprintln(s.out, "Invalid movie selection.")
		return true
	}
	movie := movies[selection-1]

	fmt.Fprintf(s.out, "Updating movie: %s\n", movie.Title)
	fmt.Fprintf(s.out, "Current price: %s\n", movie.Price)

	line, ok = s.readLine("Enter new price:")
	if !ok {
		return false
	}
	price, err := validation.ParsePrice(line)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid price.")
		return true
	}

	if err := s.service.UpdatePrice(movie.Screen, price); err != nil {
		fmt.Fprintln(s.out, "Unable to update the movie.")
		s.logger.Error("update price error", zap.Error(err), zap.Int("screen", movie.Screen))
		return true
	}

	fmt.Fprintln(s.out, "Movie updated successfully.")
	return true
}

func (s *Session) removeMovie() bool {
	movies := s.service.Movies()
	if len(movies) == 0 {
		fmt.Fprintln(s.out, "No movies are currently available.")
		return true
	}

	s.displayMovies(movies)

	line, ok := s.readLine("Select the number of the movie to remove:")
	if !ok {
		return false
	}
	selection, err := validation.ParseCount(line)
	if err != nil || selection < 1 || selection > len(movies) {
		fmt.Fprintln(s.out, "Invalid movie selection.")
		return true
	}
	movie := movies[selection-1]

	fmt.Fprintf(s.out, "Removing movie: %s\n", movie.Title)

	line, ok = s.readLine("Are you sure you want to remove this movie? (yes/no)")
	if !ok {
		return false
	}
	if !validation.IsYes(line) {
		fmt.Fprintln(s.out, "Movie removal cancelled.")
		return true
	}

	if err := s.service.RemoveMovie(movie.Screen); err != nil {
		fmt.Fprintln(s.out, "Unable to remove the movie.")
		s.logger.Error("remove movie error", zap.Error(err), zap.Int("screen", movie.Screen))
		return true
	}

	fmt.Fprintln(s.out, "Movie removed successfully.")
	return true
}
