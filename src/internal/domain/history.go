package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EntryKind string

const (
	EntryDeposit    EntryKind = "Deposit"
	EntryWithdrawal EntryKind = "Withdrawal"
)

// LedgerEntry is one completed movement. Entries are only created by History.Record.
type LedgerEntry struct {
	ID         string
	Kind       EntryKind
	Amount     decimal.Decimal
	RecordedAt time.Time
}

// History is the append-only log of movements of a single account.
type History struct {
	entries []LedgerEntry
}

func NewHistory() *History {
	return &History{}
}

func (h *History) Record(kind EntryKind, amount decimal.Decimal, at time.Time) LedgerEntry {
	entry := LedgerEntry{
		ID:         uuid.NewString(),
		Kind:       kind,
		Amount:     amount,
		RecordedAt: at,
	}
	h.entries = append(h.entries, entry)
	return entry
}

// Entries returns a copy, in recording order.
func (h *History) Entries() []LedgerEntry {
	out := make([]LedgerEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) Count(kind EntryKind) int {
	count := 0
	for _, entry := range h.entries {
		if entry.Kind == kind {
			count++
		}
	}
	return count
}

// Net is the sum of deposits minus the sum of withdrawals.
func (h *History) Net() decimal.Decimal {
	total := decimal.Zero
	for _, entry := range h.entries {
		switch entry.Kind {
		case EntryDeposit:
			total = total.Add(entry.Amount)
		case EntryWithdrawal:
			total = total.Sub(entry.Amount)
		}
	}
	return total
}
