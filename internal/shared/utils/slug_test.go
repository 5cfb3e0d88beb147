package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple name", "Nova", "nova"},
		{"two words", "Luz Negra", "luz-negra"},
		{"diacritics folded", "João Gilberto", "joao-gilberto"},
		{"mixed punctuation", "DJ K-2000 (live!)", "dj-k-2000-live"},
		{"leading and trailing spaces", "  The Wave  ", "the-wave"},
		{"consecutive separators", "a  --  b", "a-b"},
		{"uppercase", "MADRUGADA", "madrugada"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.input))
		})
	}
}

func TestRemoveDiacritics(t *testing.T) {
	assert.Equal(t, "aeiou", RemoveDiacritics("áéíóú"))
	assert.Equal(t, "Sao Paulo", RemoveDiacritics("São Paulo"))
	assert.Equal(t, "plain", RemoveDiacritics("plain"))
}
