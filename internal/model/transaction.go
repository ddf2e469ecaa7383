package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// EntryRole is the side of a double-entry line.
type EntryRole string

const (
	RoleDebit  EntryRole = "DEBITO"
	RoleCredit EntryRole = "CREDITO"
)

// Entry is a single debit or credit line ("partida") within a transaction.
type Entry struct {
	ID               int             `json:"id,omitempty"`
	CuentaContableID int             `json:"cuentaContableId"`
	Tipo             EntryRole       `json:"tipo"`
	Valor            decimal.Decimal `json:"valor"`
}

// Transaction is a committed double-entry transaction as returned by the
// backend. Committed transactions are immutable in this layer; the console
// only views and re-creates them.
type Transaction struct {
	ID          int       `json:"id"`
	Tercero     *PartyRef `json:"tercero,omitempty"`
	TerceroID   int       `json:"terceroId,omitempty"` // legacy flat reference
	Fecha       string    `json:"fecha"`
	Descripcion string    `json:"descripcion"`
	Partidas    []Entry   `json:"partidas"`
}

// PartyID resolves the party reference regardless of which wire shape the
// backend used (embedded object or flat terceroId).
func (t Transaction) PartyID() int {
	if t.Tercero != nil && t.Tercero.ID != 0 {
		return t.Tercero.ID
	}
	return t.TerceroID
}

// DateOnly normalizes fecha to the calendar date, discarding any time
// component ("2024-03-05T10:00:00" -> "2024-03-05").
func (t Transaction) DateOnly() string {
	return DateOnly(t.Fecha)
}

// TotalDebits sums the debit side, the figure the transaction list displays.
func (t Transaction) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, p := range t.Partidas {
		if p.Tipo == RoleDebit {
			total = total.Add(p.Valor)
		}
	}
	return total
}

// DateOnly strips a time suffix from an ISO date string. Malformed values
// pass through unchanged.
func DateOnly(fecha string) string {
	if i := strings.IndexByte(fecha, 'T'); i >= 0 {
		return fecha[:i]
	}
	return fecha
}
