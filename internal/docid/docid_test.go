package docid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want Type
	}{
		{"cc", TypeCedula},
		{" Nit ", TypeNIT},
		{"PASAPORTE", TypePasaporte},
		{"ce", TypeExtranjero},
	}
	for _, tt := range tests {
		got, err := Normalize(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestNormalize_Unknown(t *testing.T) {
	_, err := Normalize("dni")
	assert.Error(t, err)
}

func TestValidNumber(t *testing.T) {
	assert.NoError(t, ValidNumber(TypeCedula, "1032456789"))
	assert.NoError(t, ValidNumber(TypeNIT, "900123456"))
	assert.NoError(t, ValidNumber(TypePasaporte, "AB123456"))

	assert.Error(t, ValidNumber(TypeCedula, "10-32"))
	assert.Error(t, ValidNumber(TypeNIT, ""))
	assert.Error(t, ValidNumber(TypePasaporte, "AB 123"))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "NIT", Label(TypeNIT))
	assert.Equal(t, "XX", Label(Type("XX")))
}
