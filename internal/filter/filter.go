// Package filter narrows an in-memory transaction list without mutating it.
package filter

import "github.com/contable-dev/contable/internal/model"

// Spec is a set of optional criteria. Zero values impose no constraint;
// criteria compose conjunctively.
type Spec struct {
	FechaDesde string // inclusive lower bound, ISO calendar date
	FechaHasta string // inclusive upper bound, ISO calendar date
	TerceroID  int    // 0 = any party
}

// IsZero reports whether the spec imposes no constraint at all.
func (s Spec) IsZero() bool {
	return s.FechaDesde == "" && s.FechaHasta == "" && s.TerceroID == 0
}

// Apply returns a new slice with the transactions matching the spec,
// preserving input order. Dates are compared as ISO calendar-date strings,
// which sort lexicographically in chronological order; each transaction's
// fecha is normalized to date-only first. Malformed dates are not rejected;
// they simply compare like any other string.
func Apply(txs []model.Transaction, spec Spec) []model.Transaction {
	out := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		if matches(tx, spec) {
			out = append(out, tx)
		}
	}
	return out
}

func matches(tx model.Transaction, spec Spec) bool {
	fecha := tx.DateOnly()

	if spec.FechaDesde != "" && spec.FechaDesde == spec.FechaHasta {
		// Exact-day filter when both bounds name the same date.
		if fecha != spec.FechaDesde {
			return false
		}
	} else {
		if spec.FechaDesde != "" && fecha < spec.FechaDesde {
			return false
		}
		if spec.FechaHasta != "" && fecha > spec.FechaHasta {
			return false
		}
	}

	if spec.TerceroID != 0 && tx.PartyID() != spec.TerceroID {
		return false
	}
	return true
}
