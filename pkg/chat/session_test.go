package chat

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestNewSession_DefaultTitle(t *testing.T) {
	s := NewSession("")
	assert.Equal(t, DefaultSessionTitle, s.Title)
	assert.NotEmpty(t, s.ID)
	assert.False(t, s.CreatedAt.IsZero())
}

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{"vazio", "", DefaultSessionTitle},
		{"somente espaços", "   ", DefaultSessionTitle},
		{"curto", "Draw a circle", "Draw a circle"},
		{"longo é truncado", strings.Repeat("a", 80), strings.Repeat("a", 50) + "..."},
		{"longo com acentos corta por runa", strings.Repeat("ã", 80), strings.Repeat("ã", 50) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveTitle(tt.prompt)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
