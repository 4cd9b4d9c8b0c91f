package receipt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BrettAtwell/Movie-theatre-project/internal/model"
)

func sampleOrders() []model.Order {
	return []model.Order{
		{
			Number:       1,
			MovieTitle:   "The Matrix",
			ScreenNumber: 1,
			Showtime:     model.Showtime{Hour: 19, Minute: 30},
			UnitPrice:    1000,
			TicketCount:  2,
			Snacks: []model.SnackItem{
				{Name: "Popcorn", Category: "Snack", Price: 450},
				{Name: "Soda", Category: "Drink", Price: 300},
			},
		},
		{
			Number:       2,
			MovieTitle:   "Toy Story",
			ScreenNumber: 2,
			Showtime:     model.Showtime{Hour: 14, Minute: 0},
			UnitPrice:    850,
			TicketCount:  1,
		},
	}
}

func TestSummary(t *testing.T) {
	got := Summary(sampleOrders())

	want := "Order Summary:\n" +
		"Order Number: 1, Movie: The Matrix, Screen: 1, Time: 19:30, Price: $10.00, Tickets: 2, Subtotal: $27.50\n" +
		"   Snack: Popcorn, Price: $4.50\n" +
		"   Snack: Soda, Price: $3.00\n" +
		"Order Number: 2, Movie: Toy Story, Screen: 2, Time: 14:00, Price: $8.50, Tickets: 1, Subtotal: $8.50\n" +
		"Total number of movies selected: 2\n" +
		"Grand Total: $36.00\n"

	if got != want {
		t.Fatalf("Summary mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestSummary_Empty(t *testing.T) {
	got := Summary(nil)

	want := "Order Summary:\n" +
		"Total number of movies selected: 0\n" +
		"Grand Total: $0.00\n"

	if got != want {
		t.Fatalf("Summary mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender(t *testing.T) {
	got := Render(sampleOrders())

	want := "Customer Order Receipt\n" +
		separator + "\n" +
		"Order Number: 1\n" +
		"Movie Title: The Matrix\n" +
		"Screen: 1\n" +
		"Showtime: 19:30\n" +
		"Price per Ticket: $10.00\n" +
		"Number of Tickets: 2\n" +
		"Subtotal: $27.50\n" +
		"Snacks:\n" +
		"   Popcorn - $4.50\n" +
		"   Soda - $3.00\n" +
		separator + "\n" +
		"Order Number: 2\n" +
		"Movie Title: Toy Story\n" +
		"Screen: 2\n" +
		"Showtime: 14:00\n" +
		"Price per Ticket: $8.50\n" +
		"Number of Tickets: 1\n" +
		"Subtotal: $8.50\n" +
		"Snacks:\n" +
		separator + "\n" +
		"Grand Total: $36.00\n"

	if got != want {
		t.Fatalf("Render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestSummaryAndRenderAgreeOnGrandTotal(t *testing.T) {
	orders := sampleOrders()

	var total model.Cents
	for _, o := range orders {
		total += o.Subtotal()
	}
	line := "Grand Total: " + total.String() + "\n"

	if !strings.HasSuffix(Summary(orders), line) {
		t.Fatalf("Summary grand total differs from ledger sum %s", total)
	}
	if !strings.HasSuffix(Render(orders), line) {
		t.Fatalf("Render grand total differs from ledger sum %s", total)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "receipt.txt")

	if err := WriteFile(path, sampleOrders()); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != Render(sampleOrders()) {
		t.Fatalf("file content differs from Render output")
	}
}

func TestWriteFile_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "receipt.txt")

	if err := WriteFile(path, nil); err == nil {
		t.Fatalf("expected error for unwritable path")
	}
}
