package chat

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Título usado quando a sessão é criada sem um prompt inicial
const DefaultSessionTitle = "New Chat"

// Tamanho máximo, em runas, do título derivado do primeiro prompt
const maxTitleLength = 50

// Session representa uma conversa: uma sequência ordenada de mensagens
// com título e dono. Uma sessão nunca muda de dono nem de modo.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id,omitempty"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession cria uma nova sessão de chat
func NewSession(title string) *Session {
	if title == "" {
		title = DefaultSessionTitle
	}

	now := time.Now()
	return &Session{
		ID:        uuid.New().String(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DeriveTitle deriva um título curto a partir do primeiro prompt da conversa
func DeriveTitle(prompt string) string {
	title := strings.TrimSpace(prompt)
	if title == "" {
		return DefaultSessionTitle
	}

	// O corte é por runas, nunca no meio de um caractere multibyte
	if runes := []rune(title); len(runes) > maxTitleLength {
		title = strings.TrimSpace(string(runes[:maxTitleLength])) + "..."
	}

	return title
}
