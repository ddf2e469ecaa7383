package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/contable-dev/contable/internal/draft"
	"github.com/contable-dev/contable/internal/model"
)

// TransactionQuery is the optional server-side filter for ListTransacciones.
// Zero fields are omitted from the query string.
type TransactionQuery struct {
	FechaDesde string
	FechaHasta string
	TerceroID  int
}

func (q TransactionQuery) values() url.Values {
	v := url.Values{}
	if q.FechaDesde != "" {
		v.Set("fechaDesde", q.FechaDesde)
	}
	if q.FechaHasta != "" {
		v.Set("fechaHasta", q.FechaHasta)
	}
	if q.TerceroID != 0 {
		v.Set("terceroId", strconv.Itoa(q.TerceroID))
	}
	return v
}

// ListTransacciones fetches transactions, optionally filtered server-side.
func (c *Client) ListTransacciones(ctx context.Context, q TransactionQuery) ([]model.Transaction, error) {
	var txs []model.Transaction
	if err := c.do(ctx, http.MethodGet, "/transacciones", q.values(), nil, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// GetTransaccion fetches one transaction by id.
func (c *Client) GetTransaccion(ctx context.Context, id int) (model.Transaction, error) {
	var tx model.Transaction
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/transacciones/%d", id), nil, nil, &tx)
	return tx, err
}

// CreateTransaccion submits an accepted draft payload. The backend may still
// reject a structurally valid payload on policy grounds (e.g. an account
// that does not permit a negative balance); that surfaces as *APIError.
func (c *Client) CreateTransaccion(ctx context.Context, p draft.Payload) (model.Transaction, error) {
	var created model.Transaction
	err := c.do(ctx, http.MethodPost, "/transacciones", nil, p, &created)
	return created, err
}

// UpdateTransaccion replaces a transaction.
func (c *Client) UpdateTransaccion(ctx context.Context, id int, p draft.Payload) (model.Transaction, error) {
	var updated model.Transaction
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/transacciones/%d", id), nil, p, &updated)
	return updated, err
}

// DeleteTransaccion removes a transaction.
func (c *Client) DeleteTransaccion(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/transacciones/%d", id), nil, nil, nil)
}
