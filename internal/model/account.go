package model

import "strings"

// AccountType classifies accounts in the chart of accounts.
// Values match the backend's wire representation.
type AccountType string

const (
	AccountTypeAsset     AccountType = "ACTIVO"
	AccountTypeLiability AccountType = "PASIVO"
	AccountTypeEquity    AccountType = "PATRIMONIO"
	AccountTypeIncome    AccountType = "INGRESO"
	AccountTypeExpense   AccountType = "GASTO"
)

// AccountTypes lists all account types in display order.
var AccountTypes = []AccountType{
	AccountTypeAsset,
	AccountTypeLiability,
	AccountTypeEquity,
	AccountTypeIncome,
	AccountTypeExpense,
}

// NormalizeAccountType upper-cases a wire value so type comparisons are
// case-insensitive; some backends return mixed case.
func NormalizeAccountType(s string) AccountType {
	return AccountType(strings.ToUpper(strings.TrimSpace(s)))
}

// Account is one entry in the chart of accounts ("cuenta contable").
// The code is human-assigned and not required to be unique by this layer.
type Account struct {
	ID                   int         `json:"id"`
	Codigo               string      `json:"codigo"`
	Nombre               string      `json:"nombre"`
	Tipo                 AccountType `json:"tipo"`
	PermiteSaldoNegativo bool        `json:"permiteSaldoNegativo"`
	Activo               bool        `json:"activo"`
}
