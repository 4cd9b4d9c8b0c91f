package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BrettAtwell/Movie-theatre-project/internal/model"
	"github.com/BrettAtwell/Movie-theatre-project/internal/validation"
)

// Строка каталога: title,price,rating,screen,capacity,showtimes.
// Сеансы перечисляются через '|', например "12:00|15:30|19:45".
const fieldsPerRow = 6

// Load читает каталог из r. Некорректные строки пропускаются,
// на каждую возвращается отдельная ошибка с номером строки —
// одна испорченная строка не должна срывать загрузку остальных.
func Load(r io.Reader) (*Catalog, []error) {
	c := New()
	var rowErrs []error

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrs = append(rowErrs, fmt.Errorf("row %d: %w", line, err))
			continue
		}

		movie, err := parseRow(record)
		if err != nil {
			rowErrs = append(rowErrs, fmt.Errorf("row %d: %w", line, err))
			continue
		}

		if err := c.Add(movie); err != nil {
			rowErrs = append(rowErrs, fmt.Errorf("row %d: %w", line, err))
		}
	}

	return c, rowErrs
}

// LoadFile читает каталог из файла. Ошибка открытия файла возвращается
// отдельно от построчных: сессия продолжает работу с пустым каталогом.
func LoadFile(path string) (*Catalog, []error, error) {
	f, err := os.Open(path)
	if err != nil {
		return New(), nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	c, rowErrs := Load(f)
	return c, rowErrs, nil
}

func parseRow(record []string) (*model.Movie, error) {
	if len(record) != fieldsPerRow {
		return nil, fmt.Errorf("want %d fields, got %d", fieldsPerRow, len(record))
	}

	title := strings.TrimSpace(record[0])
	if title == "" {
		return nil, fmt.Errorf("empty title")
	}

	price, err := validation.ParsePrice(record[1])
	if err != nil {
		return nil, err
	}

	rating, err := model.ParseRating(strings.TrimSpace(record[2]))
	if err != nil {
		return nil, err
	}

	screenNumber, err := validation.ParseCount(record[3])
	if err != nil {
		return nil, fmt.Errorf("screen number: %w", err)
	}

	capacity, err := validation.ParseCount(record[4])
	if err != nil {
		return nil, fmt.Errorf("seating capacity: %w", err)
	}

	var showtimes []model.Showtime
	for _, raw := range strings.Split(record[5], "|") {
		st, err := model.ParseShowtime(raw)
		if err != nil {
			return nil, err
		}
		showtimes = append(showtimes, st)
	}

	return &model.Movie{
		Title:     title,
		Price:     price,
		Rating:    rating,
		Screen:    model.NewScreen(screenNumber, capacity),
		Showtimes: showtimes,
	}, nil
}
