package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	// ErrIndexOutOfRange is returned by indexed Order operations given a bad position.
	ErrIndexOutOfRange = errors.New("quote index out of range")
	// ErrInvalidOrderID is returned when an order number is not strictly positive.
	ErrInvalidOrderID = errors.New("order id must be positive")
	// ErrEmptyOrder is returned by boundary operations that need at least one quote.
	ErrEmptyOrder = errors.New("current order is empty")
)

// Order is the in-progress, ordered collection of quotes awaiting checkout.
//
// A single read/write lock guards the quotes: every mutation holds the write
// lock and every read that spans several quotes holds the read lock for its
// whole duration, so readers never observe a half-applied change.
type Order struct {
	mu     sync.RWMutex
	id     int
	quotes []Quote
}

// NewOrder creates an empty order with the given number.
func NewOrder(id int) (*Order, error) {
	if id < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrderID, id)
	}
	return &Order{id: id, quotes: []Quote{}}, nil
}

// ID returns the order number.
func (o *Order) ID() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.id
}

// Len returns the number of quotes in the order.
func (o *Order) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.quotes)
}

// Total returns the sum of every quote total in minor currency units.
func (o *Order) Total() int64 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return totalOf(o.quotes)
}

func totalOf(quotes []Quote) int64 {
	var total int64
	for _, q := range quotes {
		total += q.Total()
	}
	return total
}

// Quotes returns a snapshot of the quotes in insertion order.
func (o *Order) Quotes() []Quote {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return copyQuotes(o.quotes)
}

// At returns a copy of the quote at index i.
func (o *Order) At(i int) (Quote, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if i < 0 || i >= len(o.quotes) {
		return Quote{}, indexError(i, len(o.quotes))
	}
	return o.quotes[i].Copy(), nil
}

// Append adds a copy of q to the end of the order.
func (o *Order) Append(q Quote) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.quotes = append(o.quotes, q.Copy())
	Logger().Debug("quote appended", "order", o.id, "quote", q.ID, "index", len(o.quotes)-1)
}

// Insert places a copy of q at index i, shifting later quotes back.
// i may equal Len to append.
func (o *Order) Insert(i int, q Quote) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if i < 0 || i > len(o.quotes) {
		return indexError(i, len(o.quotes))
	}
	o.quotes = append(o.quotes, Quote{})
	copy(o.quotes[i+1:], o.quotes[i:])
	o.quotes[i] = q.Copy()
	Logger().Debug("quote inserted", "order", o.id, "quote", q.ID, "index", i)
	return nil
}

// RemoveAt removes and returns the quote at index i.
func (o *Order) RemoveAt(i int) (Quote, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if i < 0 || i >= len(o.quotes) {
		return Quote{}, indexError(i, len(o.quotes))
	}
	removed := o.quotes[i]
	o.quotes = append(o.quotes[:i], o.quotes[i+1:]...)
	Logger().Debug("quote removed", "order", o.id, "quote", removed.ID, "index", i)
	return removed, nil
}

// Clear removes every quote, keeping the order number.
func (o *Order) Clear() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.quotes = []Quote{}
	Logger().Debug("order cleared", "order", o.id)
}

// Replace swaps the whole quote list in one step. Used to restore snapshots.
func (o *Order) Replace(quotes []Quote) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.quotes = copyQuotes(quotes)
}

// StartNext empties the order and advances its number by one, as happens
// after checkout. It returns the new number.
func (o *Order) StartNext() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.quotes = []Quote{}
	o.id++
	Logger().Info("started new order", "order", o.id)
	return o.id
}

// OrderView is a consistent read-only copy of an order.
type OrderView struct {
	ID     int
	Quotes []Quote
	Total  int64
}

// View returns the number, quotes and total captured under one lock.
func (o *Order) View() OrderView {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return OrderView{
		ID:     o.id,
		Quotes: copyQuotes(o.quotes),
		Total:  totalOf(o.quotes),
	}
}

// Receipt date and filename stamp, DD-MM-YY.
const receiptDateLayout = "02-01-06"

// ExportFilename returns the receipt file name for the order at the given time.
func (o *Order) ExportFilename(at time.Time) string {
	return exportFilename(o.ID(), at)
}

func exportFilename(id int, at time.Time) string {
	return fmt.Sprintf("Export - %s - Order #%d.txt", at.Format(receiptDateLayout), id)
}

// Receipt returns the lines of the exported receipt: seven header lines
// followed by one summary line per quote.
func (o *Order) Receipt(storeName string, at time.Time) []string {
	return o.View().Receipt(storeName, at)
}

// Receipt renders the receipt lines for this snapshot.
func (v OrderView) Receipt(storeName string, at time.Time) []string {
	s := Settings()
	lines := []string{
		fmt.Sprintf("%s %s - %s %s", strings.Repeat("=", 20), s.CompanyName, storeName, strings.Repeat("=", 20)),
		"Thank you for your purchase!",
		fmt.Sprintf("Order Number: %d", v.ID),
		fmt.Sprintf("Date: %s", at.Format(receiptDateLayout)),
		fmt.Sprintf("Items: %d", len(v.Quotes)),
		fmt.Sprintf("Subtotal: %s", FormatMoney(v.Total)),
		fmt.Sprintf("%s Order Contents %s", strings.Repeat("-", 31), strings.Repeat("-", 31)),
	}
	for _, q := range v.Quotes {
		lines = append(lines, q.Summary())
	}
	return lines
}

// Export writes the receipt to the current working directory and returns
// the file name.
func (o *Order) Export(storeName string, at time.Time) (string, error) {
	return o.ExportTo(".", storeName, at)
}

// ExportTo writes the receipt into dir and returns the file name. The file
// is written to a temporary name and renamed into place, so a failed export
// never leaves a partial receipt behind.
func (o *Order) ExportTo(dir, storeName string, at time.Time) (string, error) {
	view := o.View()
	filename := exportFilename(view.ID, at)

	var b strings.Builder
	for _, line := range view.Receipt(storeName, at) {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	tmp, err := os.CreateTemp(dir, ".receipt-*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create receipt file: %w", err)
	}
	tmpName := tmp.Name()
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to create receipt file: %w", err)
	}
	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to write receipt: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to write receipt: %w", err)
	}
	if err := os.Rename(tmpName, filepath.Join(dir, filename)); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to save receipt: %w", err)
	}

	Logger().Info("order exported", "order", view.ID, "file", filename, "items", len(view.Quotes))
	return filename, nil
}

func indexError(i, n int) error {
	return fmt.Errorf("%w: index %d, order has %d quotes", ErrIndexOutOfRange, i, n)
}

func copyQuotes(quotes []Quote) []Quote {
	cp := make([]Quote, len(quotes))
	for i, q := range quotes {
		cp[i] = q.Copy()
	}
	return cp
}
