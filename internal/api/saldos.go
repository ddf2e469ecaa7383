package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/contable-dev/contable/internal/model"
)

// ListSaldos fetches the backend-computed balance for every account.
func (c *Client) ListSaldos(ctx context.Context) ([]model.BalanceRecord, error) {
	var records []model.BalanceRecord
	if err := c.do(ctx, http.MethodGet, "/saldos", nil, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetSaldoPorCuenta fetches the balance of a single account.
func (c *Client) GetSaldoPorCuenta(ctx context.Context, cuentaID int) (model.BalanceRecord, error) {
	var record model.BalanceRecord
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/saldos/cuenta/%d", cuentaID), nil, nil, &record)
	return record, err
}
