// Package catalog provides in-memory lookup over the entity sets fetched
// from the backend. Catalogs are transient: built per view from a fetch and
// discarded afterwards, never persisted.
package catalog

import "github.com/contable-dev/contable/internal/model"

// Accounts indexes a fetched chart of accounts by id.
type Accounts struct {
	accounts []model.Account
	byID     map[int]model.Account
}

// NewAccounts builds an Accounts catalog from a fetched slice.
func NewAccounts(accounts []model.Account) *Accounts {
	byID := make(map[int]model.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}
	return &Accounts{accounts: accounts, byID: byID}
}

// All returns all accounts in fetch order.
func (c *Accounts) All() []model.Account {
	return c.accounts
}

// Get returns an account by id.
func (c *Accounts) Get(id int) (model.Account, bool) {
	a, ok := c.byID[id]
	return a, ok
}

// Exists reports whether an account id is present.
func (c *Accounts) Exists(id int) bool {
	_, ok := c.byID[id]
	return ok
}

// Len returns the number of accounts.
func (c *Accounts) Len() int {
	return len(c.accounts)
}

// Active returns a catalog of only the active accounts; these are the
// selectable targets for new entries.
func (c *Accounts) Active() *Accounts {
	var active []model.Account
	for _, a := range c.accounts {
		if a.Activo {
			active = append(active, a)
		}
	}
	return NewAccounts(active)
}

// ByType returns all accounts of the given type.
func (c *Accounts) ByType(tipo model.AccountType) []model.Account {
	var out []model.Account
	for _, a := range c.accounts {
		if model.NormalizeAccountType(string(a.Tipo)) == tipo {
			out = append(out, a)
		}
	}
	return out
}
