package sales

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when a sale with the given ID is not found.
var ErrNotFound = errors.New("sale not found")

// ErrRowOutOfRange is returned for a positional write past the snapshot.
var ErrRowOutOfRange = errors.New("ledger row index out of range")

// Ledger is the main interface over the row-ordered sales store. Each row is
// a 7-cell string tuple: id, product, totalPrice, due, quantity, senderId,
// timestamp. ReadAll returns the header row at index 0. Replace and DeleteRow
// address rows by position in a previously read snapshot; the read-then-write
// pair is not atomic, so callers must take a fresh snapshot immediately
// before a positional write.
type Ledger interface {
	Append(row []string) error
	ReadAll() ([][]string, error)
	Replace(rowIndex int, row []string) error
	DeleteRow(rowIndex int) error
}

// ledgerHeader is the schema row every ledger snapshot starts with.
var ledgerHeader = []string{"Sale ID", "Product", "Price", "Due", "Quantity", "SellerNumber", "Timestamp"}

// LocalLedger provides an in-memory implementation of Ledger, used in tests
// and for running without a remote sheet. A mutex serializes all operations,
// so the positional-write hazard does not apply here.
type LocalLedger struct {
	mu   sync.RWMutex
	rows [][]string
}

// NewLocalLedger instantiates a LocalLedger holding only the header row.
func NewLocalLedger() *LocalLedger {
	return &LocalLedger{rows: [][]string{append([]string(nil), ledgerHeader...)}}
}

var _ Ledger = (*LocalLedger)(nil)

func (l *LocalLedger) Append(row []string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rows = append(l.rows, append([]string(nil), row...))
	return nil
}

// ReadAll returns a copy of every row, header included.
func (l *LocalLedger) ReadAll() ([][]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([][]string, len(l.rows))
	for i, r := range l.rows {
		out[i] = append([]string(nil), r...)
	}
	return out, nil
}

func (l *LocalLedger) Replace(rowIndex int, row []string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if rowIndex < 0 || rowIndex >= len(l.rows) {
		return ErrRowOutOfRange
	}
	l.rows[rowIndex] = append([]string(nil), row...)
	return nil
}

func (l *LocalLedger) DeleteRow(rowIndex int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if rowIndex < 0 || rowIndex >= len(l.rows) {
		return ErrRowOutOfRange
	}
	l.rows = append(l.rows[:rowIndex], l.rows[rowIndex+1:]...)
	return nil
}
