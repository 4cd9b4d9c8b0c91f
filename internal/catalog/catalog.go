// Package catalog содержит каталог фильмов и его загрузку из текстового файла.
package catalog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/BrettAtwell/Movie-theatre-project/internal/model"
)

// ErrMovieNotFound возвращается, если в каталоге нет фильма с таким залом.
var (
	ErrMovieNotFound = errors.New("movie not found")
	// ErrScreenTaken возвращается при попытке закрепить за фильмом уже занятый зал.
	ErrScreenTaken = errors.New("screen already assigned to another movie")
)

// Catalog хранит позиции каталога на время жизни процесса.
// Залы принадлежат каталогу и создаются вместе с позициями.
type Catalog struct {
	mu     sync.RWMutex
	movies []*model.Movie
}

// New создаёт пустой каталог.
func New() *Catalog {
	return &Catalog{}
}

// Add добавляет позицию каталога. Номер зала — идентичность позиции,
// поэтому занятый номер приводит к ошибке ErrScreenTaken.
func (c *Catalog) Add(m *model.Movie) error {
	if m == nil || m.Screen == nil {
		return errors.New("movie must have a screen")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.movies {
		if existing.Screen.Number == m.Screen.Number {
			return fmt.Errorf("%w: %d", ErrScreenTaken, m.Screen.Number)
		}
	}

	c.movies = append(c.movies, m)
	return nil
}

// Movies возвращает позиции каталога в порядке добавления.
func (c *Catalog) Movies() []*model.Movie {
	c.mu.RLock()
	defer c.mu.RUnlock()

	res := make([]*model.Movie, len(c.movies))
	copy(res, c.movies)
	return res
}

// ByScreen возвращает позицию каталога по номеру зала.
func (c *Catalog) ByScreen(number int) (*model.Movie, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, m := range c.movies {
		if m.Screen.Number == number {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: screen %d", ErrMovieNotFound, number)
}

// UpdatePrice меняет цену билета у позиции каталога.
// Уже зафиксированные заказы хранят цену на момент фиксации и не меняются.
func (c *Catalog) UpdatePrice(number int, price model.Cents) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, m := range c.movies {
		if m.Screen.Number == number {
			m.Price = price
			return nil
		}
	}
	return fmt.Errorf("%w: screen %d", ErrMovieNotFound, number)
}

// Remove удаляет позицию каталога по номеру зала.
func (c *Catalog) Remove(number int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, m := range c.movies {
		if m.Screen.Number == number {
			c.movies = append(c.movies[:i], c.movies[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: screen %d", ErrMovieNotFound, number)
}

// Len возвращает число позиций каталога.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.movies)
}
