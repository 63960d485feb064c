package chat

import (
	"context"
	"errors"
)

// Erros comuns às implementações de Repository
var (
	// ErrNotAuthenticated é retornado por operações de escrita sem usuário identificado
	ErrNotAuthenticated = errors.New("usuário não autenticado")

	// ErrSessionNotFound é retornado quando a sessão não existe ou não pertence
	// ao chamador. Os dois casos são indistinguíveis de propósito, para não
	// vazar a existência de sessões de outros usuários.
	ErrSessionNotFound = errors.New("sessão não encontrada")
)

// Repository define a superfície de persistência do histórico de chat.
// Há duas variantes: a local (histórico de convidado, sem dono explícito)
// e a remota (PostgreSQL, com todas as consultas filtradas pelo dono).
type Repository interface {
	// CreateSession cria uma nova sessão de chat
	CreateSession(ctx context.Context, title string) (*Session, error)

	// ListSessions retorna as sessões do chamador, da mais recente para a mais antiga
	ListSessions(ctx context.Context) ([]*Session, error)

	// ListMessages retorna as mensagens da sessão em ordem de criação
	ListMessages(ctx context.Context, sessionID string) ([]*Message, error)

	// AppendMessage anexa uma mensagem à sessão e atualiza o updated_at da sessão
	AppendMessage(ctx context.Context, sessionID string, message *Message) error

	// DeleteSession remove a sessão e todas as suas mensagens
	DeleteSession(ctx context.Context, sessionID string) error

	// RenameSession atualiza o título da sessão
	RenameSession(ctx context.Context, sessionID, title string) error
}
