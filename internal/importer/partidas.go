package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/contable-dev/contable/internal/draft"
	"github.com/contable-dev/contable/internal/model"
)

// Header is the expected first row of a partidas CSV.
const Header = "ref,fecha,descripcion,tercero_id,cuenta_id,tipo,valor"

const (
	numFields      = 7
	colRef         = 0
	colFecha       = 1
	colDescripcion = 2
	colTerceroID   = 3
	colCuentaID    = 4
	colTipo        = 5
	colValor       = 6
)

// PartidasParser reads the built-in CSV format: one row per entry line,
// rows sharing a ref form one transaction. Row order is preserved within
// and across drafts.
type PartidasParser struct{}

// Format returns the registry key for this parser.
func (p *PartidasParser) Format() string { return "partidas" }

// Parse reads all rows and groups them into drafts by ref. The fecha,
// descripcion and tercero_id of rows in one group must agree.
func (p *PartidasParser) Parse(r io.Reader) ([]draft.Draft, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading partidas CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	drafts := make(map[string]*draft.Draft)
	var order []string
	for i, rec := range records[1:] { // skip header
		ref := rec[colRef]
		if ref == "" {
			return nil, fmt.Errorf("row %d: empty ref", i+2)
		}

		d, seen := drafts[ref]
		if !seen {
			d = &draft.Draft{
				TerceroID:   rec[colTerceroID],
				Fecha:       rec[colFecha],
				Descripcion: rec[colDescripcion],
			}
			drafts[ref] = d
			order = append(order, ref)
		} else if d.Fecha != rec[colFecha] || d.Descripcion != rec[colDescripcion] || d.TerceroID != rec[colTerceroID] {
			return nil, fmt.Errorf("row %d: ref %q has conflicting header fields", i+2, ref)
		}

		tipo := model.EntryRole(rec[colTipo])
		if tipo != model.RoleDebit && tipo != model.RoleCredit {
			return nil, fmt.Errorf("row %d: invalid tipo %q", i+2, rec[colTipo])
		}

		d.Partidas = append(d.Partidas, draft.EntryRow{
			CuentaID: rec[colCuentaID],
			Tipo:     tipo,
			Valor:    rec[colValor],
		})
	}

	out := make([]draft.Draft, len(order))
	for i, ref := range order {
		out[i] = *drafts[ref]
	}
	return out, nil
}
