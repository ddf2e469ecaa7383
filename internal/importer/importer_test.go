package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contable-dev/contable/internal/model"
)

const sampleCSV = `ref,fecha,descripcion,tercero_id,cuenta_id,tipo,valor
T1,2024-03-05,Pago proveedor,1,1,DEBITO,100
T1,2024-03-05,Pago proveedor,1,2,CREDITO,100
T2,2024-03-06,Venta,2,2,DEBITO,50
T2,2024-03-06,Venta,2,3,CREDITO,50
`

func TestPartidasParser_GroupsByRef(t *testing.T) {
	drafts, err := (&PartidasParser{}).Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	first := drafts[0]
	assert.Equal(t, "1", first.TerceroID)
	assert.Equal(t, "2024-03-05", first.Fecha)
	assert.Equal(t, "Pago proveedor", first.Descripcion)
	require.Len(t, first.Partidas, 2)
	assert.Equal(t, model.RoleDebit, first.Partidas[0].Tipo)
	assert.Equal(t, "100", first.Partidas[0].Valor)

	second := drafts[1]
	assert.Equal(t, "Venta", second.Descripcion)
	require.Len(t, second.Partidas, 2)
}

func TestPartidasParser_ConflictingGroup(t *testing.T) {
	csv := `ref,fecha,descripcion,tercero_id,cuenta_id,tipo,valor
T1,2024-03-05,Pago,1,1,DEBITO,100
T1,2024-03-06,Pago,1,2,CREDITO,100
`
	_, err := (&PartidasParser{}).Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conflicting")
}

func TestPartidasParser_InvalidTipo(t *testing.T) {
	csv := `ref,fecha,descripcion,tercero_id,cuenta_id,tipo,valor
T1,2024-03-05,Pago,1,1,DEBE,100
`
	_, err := (&PartidasParser{}).Parse(strings.NewReader(csv))
	assert.Error(t, err)
}

func TestPartidasParser_EmptyInput(t *testing.T) {
	drafts, err := (&PartidasParser{}).Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("partidas"))
	assert.NotNil(t, r.Get("PARTIDAS"))
	assert.Nil(t, r.Get("chase"))
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := DefaultRegistry()
	assert.Panics(t, func() { r.Register(&PartidasParser{}) })
}
