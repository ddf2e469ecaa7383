package docid

import (
	"fmt"
	"strings"
	"unicode"
)

// Type is a party document-type code as the backend stores it.
type Type string

const (
	TypeCedula     Type = "CC" // cédula de ciudadanía
	TypeExtranjero Type = "CE" // cédula de extranjería
	TypeNIT        Type = "NIT"
	TypePasaporte  Type = "PASAPORTE"
)

// labels maps each code to its display name.
var labels = map[Type]string{
	TypeCedula:     "Cédula de Ciudadanía",
	TypeExtranjero: "Cédula de Extranjería",
	TypeNIT:        "NIT",
	TypePasaporte:  "Pasaporte",
}

// Types lists the supported codes in display order.
var Types = []Type{TypeCedula, TypeExtranjero, TypeNIT, TypePasaporte}

// Normalize parses a user-supplied code ("cc", " Nit ") into a Type.
func Normalize(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := labels[t]; !ok {
		return "", fmt.Errorf("unknown document type %q (valid: %s)", s, joinTypes())
	}
	return t, nil
}

// Label returns the display name for a code, or the code itself when unknown.
func Label(t Type) string {
	if l, ok := labels[t]; ok {
		return l
	}
	return string(t)
}

// ValidNumber reports whether a document number is plausible for the type:
// non-empty, and digits-only for CC, CE and NIT. Passport numbers are
// alphanumeric. The backend remains authoritative.
func ValidNumber(t Type, number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return fmt.Errorf("document number is required")
	}
	switch t {
	case TypeCedula, TypeExtranjero, TypeNIT:
		for _, r := range number {
			if !unicode.IsDigit(r) {
				return fmt.Errorf("document number %q must be digits for type %s", number, t)
			}
		}
	case TypePasaporte:
		for _, r := range number {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				return fmt.Errorf("document number %q must be alphanumeric for type %s", number, t)
			}
		}
	}
	return nil
}

func joinTypes() string {
	parts := make([]string, len(Types))
	for i, t := range Types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
