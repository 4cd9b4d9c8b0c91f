package catalog

import (
	"errors"
	"testing"

	"github.com/BrettAtwell/Movie-theatre-project/internal/model"
)

func testMovie(title string, screen int) *model.Movie {
	return &model.Movie{
		Title:  title,
		Price:  1000,
		Rating: model.RatingPG,
		Screen: model.NewScreen(screen, 50),
	}
}

func TestAdd_RejectsDuplicateScreen(t *testing.T) {
	c := New()

	if err := c.Add(testMovie("first", 1)); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	err := c.Add(testMovie("second", 1))
	if !errors.Is(err, ErrScreenTaken) {
		t.Fatalf("expected ErrScreenTaken, got %v", err)
	}

	if c.Len() != 1 {
		t.Fatalf("Len = %d, want 1", c.Len())
	}
}

func TestAdd_RequiresScreen(t *testing.T) {
	c := New()

	if err := c.Add(&model.Movie{Title: "no screen"}); err == nil {
		t.Fatalf("expected error for movie without screen")
	}
	if err := c.Add(nil); err == nil {
		t.Fatalf("expected error for nil movie")
	}
}

func TestByScreen(t *testing.T) {
	c := New()
	if err := c.Add(testMovie("first", 3)); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	m, err := c.ByScreen(3)
	if err != nil {
		t.Fatalf("ByScreen error: %v", err)
	}
	if m.Title != "first" {
		t.Fatalf("ByScreen title = %q", m.Title)
	}

	if _, err := c.ByScreen(99); !errors.Is(err, ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestUpdatePrice(t *testing.T) {
	c := New()
	if err := c.Add(testMovie("first", 1)); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	if err := c.UpdatePrice(1, 1250); err != nil {
		t.Fatalf("UpdatePrice error: %v", err)
	}

	m, err := c.ByScreen(1)
	if err != nil {
		t.Fatalf("ByScreen error: %v", err)
	}
	if m.Price != 1250 {
		t.Fatalf("Price = %v, want 1250", m.Price)
	}

	if err := c.UpdatePrice(99, 100); !errors.Is(err, ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	c := New()
	if err := c.Add(testMovie("first", 1)); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if err := c.Add(testMovie("second", 2)); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	if err := c.Remove(1); err != nil {
		t.Fatalf("Remove error: %v", err)
	}

	movies := c.Movies()
	if len(movies) != 1 || movies[0].Title != "second" {
		t.Fatalf("unexpected catalog after remove: %+v", movies)
	}

	if err := c.Remove(1); !errors.Is(err, ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestMovies_PreservesInsertionOrder(t *testing.T) {
	c := New()
	for i, title := range []string{"a", "b", "c"} {
		if err := c.Add(testMovie(title, i+1)); err != nil {
			t.Fatalf("Add error: %v", err)
		}
	}

	movies := c.Movies()
	for i, title := range []string{"a", "b", "c"} {
		if movies[i].Title != title {
			t.Fatalf("movies[%d] = %q, want %q", i, movies[i].Title, title)
		}
	}
}
