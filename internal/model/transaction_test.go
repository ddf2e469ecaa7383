package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDateOnly(t *testing.T) {
	assert.Equal(t, "2024-03-05", DateOnly("2024-03-05T10:30:00"))
	assert.Equal(t, "2024-03-05", DateOnly("2024-03-05"))
	assert.Equal(t, "", DateOnly(""))
	assert.Equal(t, "not-a-date", DateOnly("not-a-date"))
}

func TestPartyID_PrefersEmbeddedRef(t *testing.T) {
	tx := Transaction{Tercero: &PartyRef{ID: 7}, TerceroID: 3}
	assert.Equal(t, 7, tx.PartyID())

	legacy := Transaction{TerceroID: 3}
	assert.Equal(t, 3, legacy.PartyID())
}

func TestTotalDebits(t *testing.T) {
	tx := Transaction{Partidas: []Entry{
		{CuentaContableID: 1, Tipo: RoleDebit, Valor: decimal.NewFromInt(60)},
		{CuentaContableID: 1, Tipo: RoleDebit, Valor: decimal.NewFromInt(40)},
		{CuentaContableID: 2, Tipo: RoleCredit, Valor: decimal.NewFromInt(100)},
	}}
	assert.True(t, tx.TotalDebits().Equal(decimal.NewFromInt(100)))
}
