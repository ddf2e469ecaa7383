package draft

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/contable-dev/contable/internal/model"
)

// ViolationCode identifies which rule a draft broke.
type ViolationCode string

const (
	CodeMissingParty     ViolationCode = "missing-party"
	CodeMissingDate      ViolationCode = "missing-date"
	CodeEmptyDescription ViolationCode = "empty-description"
	CodeMissingSide      ViolationCode = "missing-side"
	CodeUnbalanced       ViolationCode = "unbalanced"
	CodeUnknownAccounts  ViolationCode = "unknown-accounts"
	CodeNoAccounts       ViolationCode = "no-accounts"
	CodeNoParties        ViolationCode = "no-parties"
)

// RuleViolation is the first rule a draft failed, with a user-facing message.
type RuleViolation struct {
	Code    ViolationCode
	Message string

	// UnknownAccounts carries the offending ids for CodeUnknownAccounts,
	// one per distinct id, first-seen order.
	UnknownAccounts []int
}

func (v *RuleViolation) Error() string {
	return v.Message
}

// Tolerance absorbs decimal rounding on the balance rule: drafts whose
// debit/credit difference is at most this amount still balance.
var Tolerance = decimal.RequireFromString("0.01")

// AccountSet is the view of the chart of accounts the validator needs for
// referential checks. Only active accounts should be behind it.
type AccountSet interface {
	Exists(id int) bool
	Len() int
}

// PartySet is the view of known parties the validator needs.
type PartySet interface {
	Len() int
}

// Validate checks a draft against the submission rules in a fixed order and
// returns the first violation found, or nil when the draft may be submitted.
// It never touches the network; backend policy (negative balances,
// referential integrity) is revalidated server-side on submission.
func Validate(d Draft, accounts AccountSet, parties PartySet) *RuleViolation {
	if strings.TrimSpace(d.TerceroID) == "" {
		return &RuleViolation{Code: CodeMissingParty, Message: "a party must be selected"}
	}
	if strings.TrimSpace(d.Fecha) == "" {
		return &RuleViolation{Code: CodeMissingDate, Message: "a date must be provided"}
	}
	if strings.TrimSpace(d.Descripcion) == "" {
		return &RuleViolation{Code: CodeEmptyDescription, Message: "a description must be provided"}
	}

	rows := d.active()

	debits := decimal.Zero
	credits := decimal.Zero
	hasDebit, hasCredit := false, false
	for _, r := range rows {
		switch r.tipo {
		case model.RoleDebit:
			hasDebit = true
			debits = debits.Add(r.valor)
		case model.RoleCredit:
			hasCredit = true
			credits = credits.Add(r.valor)
		}
	}
	if !hasDebit || !hasCredit {
		return &RuleViolation{
			Code:    CodeMissingSide,
			Message: "at least one debit and one credit entry are required",
		}
	}

	if debits.Sub(credits).Abs().GreaterThan(Tolerance) {
		return &RuleViolation{
			Code: CodeUnbalanced,
			Message: fmt.Sprintf("debits (%s) and credits (%s) must be equal",
				debits.StringFixed(2), credits.StringFixed(2)),
		}
	}

	var unknown []int
	seen := make(map[int]bool)
	for _, r := range rows {
		if accounts.Exists(r.cuentaID) || seen[r.cuentaID] {
			continue
		}
		seen[r.cuentaID] = true
		unknown = append(unknown, r.cuentaID)
	}
	if len(unknown) > 0 {
		ids := make([]string, len(unknown))
		for i, id := range unknown {
			ids[i] = strconv.Itoa(id)
		}
		return &RuleViolation{
			Code:            CodeUnknownAccounts,
			Message:         "unknown account(s): " + strings.Join(ids, ", "),
			UnknownAccounts: unknown,
		}
	}

	if accounts.Len() == 0 {
		return &RuleViolation{
			Code:    CodeNoAccounts,
			Message: "no active accounts available; create accounts first",
		}
	}
	if parties.Len() == 0 {
		return &RuleViolation{
			Code:    CodeNoParties,
			Message: "no parties available; create parties first",
		}
	}

	return nil
}

// Payload is the transaction-create body built from an accepted draft.
type Payload struct {
	Tercero     model.PartyRef `json:"tercero"`
	Fecha       string         `json:"fecha"`
	Descripcion string         `json:"descripcion"`
	Partidas    []model.Entry  `json:"partidas"`
}

// BuildPayload converts an accepted draft into the wire payload: party id
// parsed, description trimmed, incomplete rows dropped. Call Validate first;
// BuildPayload assumes the draft passed.
func BuildPayload(d Draft) (Payload, error) {
	terceroID, err := strconv.Atoi(strings.TrimSpace(d.TerceroID))
	if err != nil {
		return Payload{}, fmt.Errorf("parsing party id %q: %w", d.TerceroID, err)
	}

	p := Payload{
		Tercero:     model.PartyRef{ID: terceroID},
		Fecha:       model.DateOnly(strings.TrimSpace(d.Fecha)),
		Descripcion: strings.TrimSpace(d.Descripcion),
	}
	for _, r := range d.active() {
		p.Partidas = append(p.Partidas, model.Entry{
			CuentaContableID: r.cuentaID,
			Tipo:             r.tipo,
			Valor:            r.valor,
		})
	}
	return p, nil
}
