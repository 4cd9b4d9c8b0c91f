// Package ledger содержит журнал зафиксированных заказов.
package ledger

import (
	"sync"

	"github.com/BrettAtwell/Movie-theatre-project/internal/model"
)

// Ledger хранит заказы в порядке фиксации и выдаёт номера заказов.
// Журнал только пополняется: заказы не изменяются и не удаляются,
// номера строго возрастают с единицы без пропусков и повторов.
// Журнал живёт в памяти процесса, единственный долговечный артефакт — чек.
type Ledger struct {
	mu     sync.Mutex
	orders []model.Order
	next   int
}

// New создаёт пустой журнал заказов. Нумерация начинается с единицы.
func New() *Ledger {
	return &Ledger{next: 1}
}

// NextOrderNumber возвращает очередной номер заказа и потребляет его.
// Вызывается только транзакцией бронирования непосредственно перед Append.
func (l *Ledger) NextOrderNumber() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := l.next
	l.next++
	return n
}

// Append добавляет зафиксированный заказ в конец журнала.
func (l *Ledger) Append(o model.Order) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.orders = append(l.orders, o)
}

// All возвращает копию журнала в порядке фиксации.
func (l *Ledger) All() []model.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	res := make([]model.Order, len(l.orders))
	copy(res, l.orders)
	return res
}

// Count возвращает число зафиксированных заказов.
func (l *Ledger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.orders)
}

// GrandTotal возвращает сумму стоимостей всех заказов журнала.
func (l *Ledger) GrandTotal() model.Cents {
	l.mu.Lock()
	defer l.mu.Unlock()

	var total model.Cents
	for _, o := range l.orders {
		total += o.Subtotal()
	}
	return total
}
