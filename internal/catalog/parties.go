package catalog

import "github.com/contable-dev/contable/internal/model"

// Parties indexes a fetched third-party list by id.
type Parties struct {
	parties []model.Party
	byID    map[int]model.Party
}

// NewParties builds a Parties catalog from a fetched slice.
func NewParties(parties []model.Party) *Parties {
	byID := make(map[int]model.Party, len(parties))
	for _, p := range parties {
		byID[p.ID] = p
	}
	return &Parties{parties: parties, byID: byID}
}

// All returns all parties in fetch order.
func (c *Parties) All() []model.Party {
	return c.parties
}

// Get returns a party by id.
func (c *Parties) Get(id int) (model.Party, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Exists reports whether a party id is present.
func (c *Parties) Exists(id int) bool {
	_, ok := c.byID[id]
	return ok
}

// Len returns the number of parties.
func (c *Parties) Len() int {
	return len(c.parties)
}

// Name returns the display name for a party id, or a fallback when the
// id cannot be resolved from the fetched set.
func (c *Parties) Name(id int) string {
	if p, ok := c.byID[id]; ok {
		return p.Nombre
	}
	return "N/A"
}
