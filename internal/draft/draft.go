// Package draft holds the in-progress transaction form and the rules that
// decide whether it is fit to submit. Validation is pure: the network step
// lives in the api package so these rules stay independently testable.
package draft

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/contable-dev/contable/internal/model"
)

// EntryRow is one line of a draft exactly as entered: account reference,
// role and amount are raw strings. Rows with a missing account or a missing
// or non-numeric amount are incomplete, not errors; validation skips them.
type EntryRow struct {
	CuentaID string
	Tipo     model.EntryRole
	Valor    string
}

// Draft is an in-progress transaction before submission.
type Draft struct {
	TerceroID   string
	Fecha       string
	Descripcion string
	Partidas    []EntryRow
}

// activeRow is a parsed row that participates in validation.
type activeRow struct {
	cuentaID int
	tipo     model.EntryRole
	valor    decimal.Decimal
}

// active filters the rows down to the ones with both an account reference
// and a numeric amount, preserving order.
func (d Draft) active() []activeRow {
	var rows []activeRow
	for _, p := range d.Partidas {
		if strings.TrimSpace(p.CuentaID) == "" || strings.TrimSpace(p.Valor) == "" {
			continue
		}
		cuentaID, err := strconv.Atoi(strings.TrimSpace(p.CuentaID))
		if err != nil {
			continue
		}
		valor, err := decimal.NewFromString(strings.TrimSpace(p.Valor))
		if err != nil {
			continue
		}
		rows = append(rows, activeRow{cuentaID: cuentaID, tipo: p.Tipo, valor: valor})
	}
	return rows
}
