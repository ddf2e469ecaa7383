package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/contable-dev/contable/internal/balance"
	"github.com/contable-dev/contable/internal/catalog"
	"github.com/contable-dev/contable/internal/model"
)

// CSV/table headers, one per entity list.
const (
	partiesHeader      = "id,nombre,tipo_documento,numero_documento"
	accountsHeader     = "id,codigo,nombre,tipo,permite_saldo_negativo,activo"
	transactionsHeader = "id,fecha,tercero,descripcion,total,partidas"
	entriesHeader      = "cuenta_contable_id,tipo,valor"
	balancesHeader     = "cuenta_id,codigo,nombre,tipo,valido,total_debitos,total_creditos,saldo,permite_saldo_negativo"
)

func yesNo(b bool) string {
	if b {
		return "si"
	}
	return "no"
}

// MarshalParty converts a Party to one output row.
func MarshalParty(p model.Party) []string {
	return []string{strconv.Itoa(p.ID), p.Nombre, p.TipoDocumento, p.NumeroDocumento}
}

// Parties renders a third-party list.
func Parties(w io.Writer, f Format, parties []model.Party) error {
	rows := make([][]string, len(parties))
	for i, p := range parties {
		rows[i] = MarshalParty(p)
	}
	return write(w, f, partiesHeader, rows, parties)
}

// MarshalAccount converts an Account to one output row.
func MarshalAccount(a model.Account) []string {
	return []string{
		strconv.Itoa(a.ID),
		a.Codigo,
		a.Nombre,
		string(a.Tipo),
		yesNo(a.PermiteSaldoNegativo),
		yesNo(a.Activo),
	}
}

// Accounts renders a chart-of-accounts list.
func Accounts(w io.Writer, f Format, accounts []model.Account) error {
	rows := make([][]string, len(accounts))
	for i, a := range accounts {
		rows[i] = MarshalAccount(a)
	}
	return write(w, f, accountsHeader, rows, accounts)
}

// MarshalTransaction converts a Transaction to one output row, resolving the
// party name through the catalog.
func MarshalTransaction(tx model.Transaction, parties *catalog.Parties) []string {
	nombre := parties.Name(tx.PartyID())
	if tx.Tercero != nil && tx.Tercero.Nombre != "" {
		nombre = tx.Tercero.Nombre
	}
	return []string{
		strconv.Itoa(tx.ID),
		tx.DateOnly(),
		nombre,
		tx.Descripcion,
		tx.TotalDebits().StringFixed(2),
		strconv.Itoa(len(tx.Partidas)),
	}
}

// Transactions renders a transaction list.
func Transactions(w io.Writer, f Format, txs []model.Transaction, parties *catalog.Parties) error {
	rows := make([][]string, len(txs))
	for i, tx := range txs {
		rows[i] = MarshalTransaction(tx, parties)
	}
	return write(w, f, transactionsHeader, rows, txs)
}

// TransactionDetail renders one transaction with its entry lines.
func TransactionDetail(w io.Writer, f Format, tx model.Transaction, parties *catalog.Parties) error {
	if f == FormatJSON {
		return write(w, f, "", nil, tx)
	}

	if f == FormatTable {
		nombre := parties.Name(tx.PartyID())
		if tx.Tercero != nil && tx.Tercero.Nombre != "" {
			nombre = tx.Tercero.Nombre
		}
		fmt.Fprintf(w, "Transaccion %d\n", tx.ID)
		fmt.Fprintf(w, "Fecha:       %s\n", tx.DateOnly())
		fmt.Fprintf(w, "Tercero:     %s\n", nombre)
		fmt.Fprintf(w, "Descripcion: %s\n", tx.Descripcion)
		fmt.Fprintln(w)
	}

	rows := make([][]string, len(tx.Partidas))
	for i, p := range tx.Partidas {
		rows[i] = []string{strconv.Itoa(p.CuentaContableID), string(p.Tipo), p.Valor.StringFixed(2)}
	}
	return write(w, f, entriesHeader, rows, tx.Partidas)
}

// MarshalBalance converts a BalanceRecord to one output row.
func MarshalBalance(r model.BalanceRecord) []string {
	return []string{
		strconv.Itoa(r.CuentaID),
		r.Codigo,
		r.Nombre,
		string(r.Tipo),
		yesNo(r.SaldoValido),
		r.TotalDebitos.StringFixed(2),
		r.TotalCreditos.StringFixed(2),
		r.Saldo.StringFixed(2),
		yesNo(r.PermiteSaldoNegativo),
	}
}

// Balances renders a balance list.
func Balances(w io.Writer, f Format, records []model.BalanceRecord) error {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = MarshalBalance(r)
	}
	return write(w, f, balancesHeader, rows, records)
}

// Summary renders the balance aggregates: grand total, per-type subtotals
// and sign classification counts.
func Summary(w io.Writer, records []model.BalanceRecord) error {
	fmt.Fprintf(w, "Total general: %s\n\n", balance.Total(records).StringFixed(2))

	subtotals := balance.ByType(records)
	for _, t := range model.AccountTypes {
		fmt.Fprintf(w, "%-12s %s\n", t, subtotals[t].StringFixed(2))
	}

	c := balance.Classify(records)
	fmt.Fprintf(w, "\nCuentas en positivo: %d, en negativo: %d, en cero: %d\n",
		c.Positive, c.Negative, c.Zero)
	return nil
}
