package render

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contable-dev/contable/internal/catalog"
	"github.com/contable-dev/contable/internal/model"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"":      FormatTable,
		"table": FormatTable,
		"JSON":  FormatJSON,
		" csv ": FormatCSV,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestParties_CSV(t *testing.T) {
	var buf bytes.Buffer
	parties := []model.Party{
		{ID: 1, Nombre: "Acme, Ltda", TipoDocumento: "NIT", NumeroDocumento: "900123456"},
	}
	require.NoError(t, Parties(&buf, FormatCSV, parties))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, strings.Split(partiesHeader, ","), records[0])
	// Comma in the name survives CSV quoting.
	assert.Equal(t, []string{"1", "Acme, Ltda", "NIT", "900123456"}, records[1])
}

func TestAccounts_Table(t *testing.T) {
	var buf bytes.Buffer
	accounts := []model.Account{
		{ID: 1, Codigo: "1105", Nombre: "Caja", Tipo: model.AccountTypeAsset, Activo: true},
	}
	require.NoError(t, Accounts(&buf, FormatTable, accounts))

	out := buf.String()
	assert.Contains(t, out, "CODIGO")
	assert.Contains(t, out, "Caja")
	assert.Contains(t, out, "si")
}

func TestTransactions_JSON(t *testing.T) {
	var buf bytes.Buffer
	txs := []model.Transaction{
		{ID: 9, Fecha: "2024-03-05T10:00:00", Descripcion: "Pago", Tercero: &model.PartyRef{ID: 1}},
	}
	require.NoError(t, Transactions(&buf, FormatJSON, txs, catalog.NewParties(nil)))

	var decoded []model.Transaction
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, 9, decoded[0].ID)
}

func TestMarshalTransaction_ResolvesPartyName(t *testing.T) {
	parties := catalog.NewParties([]model.Party{{ID: 2, Nombre: "Juan"}})

	row := MarshalTransaction(model.Transaction{ID: 1, Fecha: "2024-03-05", TerceroID: 2}, parties)
	assert.Equal(t, "Juan", row[2])

	// Embedded name wins over the catalog.
	row = MarshalTransaction(model.Transaction{
		ID: 1, Fecha: "2024-03-05", Tercero: &model.PartyRef{ID: 2, Nombre: "Embebido"},
	}, parties)
	assert.Equal(t, "Embebido", row[2])

	row = MarshalTransaction(model.Transaction{ID: 1, TerceroID: 99}, parties)
	assert.Equal(t, "N/A", row[2])
}

func TestTransactionDetail_Table(t *testing.T) {
	var buf bytes.Buffer
	tx := model.Transaction{
		ID: 4, Fecha: "2024-03-05", Descripcion: "Pago", TerceroID: 1,
		Partidas: []model.Entry{
			{CuentaContableID: 1, Tipo: model.RoleDebit, Valor: decimal.NewFromInt(100)},
			{CuentaContableID: 2, Tipo: model.RoleCredit, Valor: decimal.NewFromInt(100)},
		},
	}
	parties := catalog.NewParties([]model.Party{{ID: 1, Nombre: "Acme"}})
	require.NoError(t, TransactionDetail(&buf, FormatTable, tx, parties))

	out := buf.String()
	assert.Contains(t, out, "Transaccion 4")
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "DEBITO")
	assert.Contains(t, out, "100.00")
}

func TestBalances_CSV(t *testing.T) {
	var buf bytes.Buffer
	records := []model.BalanceRecord{{
		CuentaID: 1, Codigo: "1105", Nombre: "Caja", Tipo: model.AccountTypeAsset,
		SaldoValido:  true,
		TotalDebitos: decimal.NewFromInt(500), TotalCreditos: decimal.NewFromInt(200),
		Saldo: decimal.NewFromInt(300),
	}}
	require.NoError(t, Balances(&buf, FormatCSV, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "300.00", rows[1][7])
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	records := []model.BalanceRecord{
		{Tipo: model.AccountTypeAsset, Saldo: decimal.NewFromInt(100)},
		{Tipo: model.AccountTypeLiability, Saldo: decimal.NewFromInt(-40)},
	}
	require.NoError(t, Summary(&buf, records))

	out := buf.String()
	assert.Contains(t, out, "Total general: 60.00")
	assert.Contains(t, out, "ACTIVO")
	assert.Contains(t, out, "en positivo: 1")
	assert.Contains(t, out, "en negativo: 1")
}

func TestSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Summary(&buf, nil))
	assert.Contains(t, buf.String(), "Total general: 0.00")
}
