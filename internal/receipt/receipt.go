// Package receipt содержит читающие представления журнала заказов:
// экранную сводку и долговечный чек.
package receipt

import (
	"fmt"
	"os"
	"strings"

	"github.com/BrettAtwell/Movie-theatre-project/internal/model"
)

const separator = "--------------------------------------------------"

// Summary форматирует экранную сводку заказов. Общие с чеком поля
// выводятся теми же форматтерами model, поэтому обе формы совпадают байт в байт.
func Summary(orders []model.Order) string {
	var b strings.Builder
	b.WriteString("Order Summary:\n")

	var grandTotal model.Cents
	for _, o := range orders {
		fmt.Fprintf(&b, "Order Number: %d, Movie: %s, Screen: %d, Time: %s, Price: %s, Tickets: %d, Subtotal: %s\n",
			o.Number, o.MovieTitle, o.ScreenNumber, o.Showtime, o.UnitPrice, o.TicketCount, o.Subtotal())
		for _, snack := range o.Snacks {
			fmt.Fprintf(&b, "   Snack: %s, Price: %s\n", snack.Name, snack.Price)
		}
		grandTotal += o.Subtotal()
	}

	fmt.Fprintf(&b, "Total number of movies selected: %d\n", len(orders))
	fmt.Fprintf(&b, "Grand Total: %s\n", grandTotal)

	return b.String()
}

// Render форматирует чек. Итог считается заново по заказам,
// независимо от сводки и журнала.
func Render(orders []model.Order) string {
	var b strings.Builder
	b.WriteString("Customer Order Receipt\n")
	b.WriteString(separator + "\n")

	var grandTotal model.Cents
	for _, o := range orders {
		fmt.Fprintf(&b, "Order Number: %d\n", o.Number)
		fmt.Fprintf(&b, "Movie Title: %s\n", o.MovieTitle)
		fmt.Fprintf(&b, "Screen: %d\n", o.ScreenNumber)
		fmt.Fprintf(&b, "Showtime: %s\n", o.Showtime)
		fmt.Fprintf(&b, "Price per Ticket: %s\n", o.UnitPrice)
		fmt.Fprintf(&b, "Number of Tickets: %d\n", o.TicketCount)
		fmt.Fprintf(&b, "Subtotal: %s\n", o.Subtotal())
		b.WriteString("Snacks:\n")
		for _, snack := range o.Snacks {
			fmt.Fprintf(&b, "   %s - %s\n", snack.Name, snack.Price)
		}
		b.WriteString(separator + "\n")
		grandTotal += o.Subtotal()
	}

	fmt.Fprintf(&b, "Grand Total: %s\n", grandTotal)

	return b.String()
}

// WriteFile записывает чек в файл. Ошибка записи не фатальна для сессии:
// журнал и каталог остаются в памяти, вызывающий лишь сообщает о сбое.
func WriteFile(path string, orders []model.Order) error {
	if err := os.WriteFile(path, []byte(Render(orders)), 0o644); err != nil {
		return fmt.Errorf("write receipt file: %w", err)
	}
	return nil
}
