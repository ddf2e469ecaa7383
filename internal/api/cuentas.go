package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/contable-dev/contable/internal/model"
)

// ListCuentas fetches the full chart of accounts.
func (c *Client) ListCuentas(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	if err := c.do(ctx, http.MethodGet, "/cuentas", nil, nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// ListCuentasActivas fetches only active accounts, the selectable targets
// for new entries.
func (c *Client) ListCuentasActivas(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	if err := c.do(ctx, http.MethodGet, "/cuentas/activas", nil, nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// GetCuenta fetches one account by id.
func (c *Client) GetCuenta(ctx context.Context, id int) (model.Account, error) {
	var a model.Account
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/cuentas/%d", id), nil, nil, &a)
	return a, err
}

// CreateCuenta creates an account and returns the stored entity.
func (c *Client) CreateCuenta(ctx context.Context, a model.Account) (model.Account, error) {
	var created model.Account
	err := c.do(ctx, http.MethodPost, "/cuentas", nil, a, &created)
	return created, err
}

// UpdateCuenta replaces an account.
func (c *Client) UpdateCuenta(ctx context.Context, id int, a model.Account) (model.Account, error) {
	var updated model.Account
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/cuentas/%d", id), nil, a, &updated)
	return updated, err
}

// DeleteCuenta removes an account.
func (c *Client) DeleteCuenta(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/cuentas/%d", id), nil, nil, nil)
}

// ToggleCuentaActiva flips an account's active flag and returns the new state.
func (c *Client) ToggleCuentaActiva(ctx context.Context, id int) (model.Account, error) {
	var toggled model.Account
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/cuentas/%d/toggle-activo", id), nil, nil, &toggled)
	return toggled, err
}
