package model

import "github.com/shopspring/decimal"

// BalanceRecord is the backend-computed position of one account ("saldo").
// This layer never mutates balance records; it only reads and aggregates.
type BalanceRecord struct {
	CuentaID             int             `json:"cuentaId"`
	Codigo               string          `json:"codigo"`
	Nombre               string          `json:"nombre"`
	Tipo                 AccountType     `json:"tipo"`
	SaldoValido          bool            `json:"saldoValido"`
	TotalDebitos         decimal.Decimal `json:"totalDebitos"`
	TotalCreditos        decimal.Decimal `json:"totalCreditos"`
	Saldo                decimal.Decimal `json:"saldo"`
	PermiteSaldoNegativo bool            `json:"permiteSaldoNegativo"`
}
