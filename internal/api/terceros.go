package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/contable-dev/contable/internal/model"
)

// ListTerceros fetches all third parties.
func (c *Client) ListTerceros(ctx context.Context) ([]model.Party, error) {
	var parties []model.Party
	if err := c.do(ctx, http.MethodGet, "/terceros", nil, nil, &parties); err != nil {
		return nil, err
	}
	return parties, nil
}

// GetTercero fetches one third party by id.
func (c *Client) GetTercero(ctx context.Context, id int) (model.Party, error) {
	var p model.Party
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/terceros/%d", id), nil, nil, &p)
	return p, err
}

// CreateTercero creates a third party and returns the stored entity.
func (c *Client) CreateTercero(ctx context.Context, p model.Party) (model.Party, error) {
	var created model.Party
	err := c.do(ctx, http.MethodPost, "/terceros", nil, p, &created)
	return created, err
}

// UpdateTercero replaces a third party.
func (c *Client) UpdateTercero(ctx context.Context, id int, p model.Party) (model.Party, error) {
	var updated model.Party
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/terceros/%d", id), nil, p, &updated)
	return updated, err
}

// DeleteTercero removes a third party. Deleting a referenced party is a
// backend-enforced constraint; the rejection message is surfaced as-is.
func (c *Client) DeleteTercero(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/terceros/%d", id), nil, nil, nil)
}
