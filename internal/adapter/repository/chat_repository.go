package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/animai-studio/internal/infrastructure/database"
	"github.com/hugohenrick/animai-studio/pkg/chat"
	"github.com/hugohenrick/animai-studio/pkg/identity"
	"github.com/jackc/pgx/v5"
)

// ChatRepository implementa chat.Repository usando PostgreSQL. Toda operação
// resolve a identidade do chamador uma única vez e filtra as consultas pelo
// dono: uma sessão de outro usuário se comporta exatamente como uma sessão
// inexistente, sem sinal distinto de permissão.
type ChatRepository struct {
	db *database.PostgresDB
}

// NewChatRepository cria uma nova instância de ChatRepository
func NewChatRepository(db *database.PostgresDB) *ChatRepository {
	return &ChatRepository{db: db}
}

// CreateSession implementa chat.Repository.CreateSession
func (r *ChatRepository) CreateSession(ctx context.Context, title string) (*chat.Session, error) {
	userID := identity.UserID(ctx)
	if userID == "" {
		return nil, chat.ErrNotAuthenticated
	}

	s := chat.NewSession(title)
	s.UserID = userID

	query := `
		INSERT INTO chat_sessions (id, user_id, title, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Pool().Exec(ctx, query, s.ID, s.UserID, s.Title, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("falha ao criar sessão: %w", err)
	}

	return s, nil
}

// ListSessions implementa chat.Repository.ListSessions. Sem identidade, o
// resultado é vazio — leituras nunca falham por falta de autenticação.
func (r *ChatRepository) ListSessions(ctx context.Context) ([]*chat.Session, error) {
	userID := identity.UserID(ctx)
	if userID == "" {
		return []*chat.Session{}, nil
	}

	query := `
		SELECT id, user_id, title, created_at, updated_at
		FROM chat_sessions
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`

	rows, err := r.db.Pool().Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar sessões: %w", err)
	}
	defer rows.Close()

	sessions := []*chat.Session{}
	for rows.Next() {
		var s chat.Session
		if err := rows.Scan(&s.ID, &s.UserID, &s.Title, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("falha ao ler sessão: %w", err)
		}
		sessions = append(sessions, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao ler linhas: %w", err)
	}

	return sessions, nil
}

// ListMessages implementa chat.Repository.ListMessages
func (r *ChatRepository) ListMessages(ctx context.Context, sessionID string) ([]*chat.Message, error) {
	userID := identity.UserID(ctx)
	if userID == "" {
		return []*chat.Message{}, nil
	}

	query := `
		SELECT id, session_id, user_id, text, video_url, is_response, is_error, created_at
		FROM chat_messages
		WHERE session_id = $1 AND user_id = $2
		ORDER BY created_at ASC
	`

	rows, err := r.db.Pool().Query(ctx, query, sessionID, userID)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar mensagens: %w", err)
	}
	defer rows.Close()

	messages := []*chat.Message{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao ler linhas: %w", err)
	}

	return messages, nil
}

// AppendMessage implementa chat.Repository.AppendMessage. A inserção da
// mensagem e o avanço do updated_at da sessão acontecem na mesma transação.
func (r *ChatRepository) AppendMessage(ctx context.Context, sessionID string, message *chat.Message) error {
	userID := identity.UserID(ctx)
	if userID == "" {
		return chat.ErrNotAuthenticated
	}

	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	var videoURL interface{}
	if message.VideoURL != "" {
		videoURL = message.VideoURL
	}

	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		// O filtro por dono garante que uma sessão alheia afeta zero linhas
		tag, err := tx.Exec(ctx,
			`UPDATE chat_sessions SET updated_at = $1 WHERE id = $2 AND user_id = $3`,
			time.Now(), sessionID, userID,
		)
		if err != nil {
			return fmt.Errorf("falha ao atualizar sessão: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return chat.ErrSessionNotFound
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO chat_messages (id, session_id, user_id, text, video_url, is_response, is_error, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`,
			message.ID,
			sessionID,
			userID,
			message.Text,
			videoURL,
			message.IsResponse(),
			message.Status == chat.StatusErrored,
			message.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("falha ao inserir mensagem: %w", err)
		}

		return nil
	})
}

// DeleteSession implementa chat.Repository.DeleteSession. A remoção em
// cascata das mensagens fica a cargo da foreign key. Zero linhas afetadas
// (sessão inexistente ou de outro dono) não é um erro.
func (r *ChatRepository) DeleteSession(ctx context.Context, sessionID string) error {
	userID := identity.UserID(ctx)
	if userID == "" {
		return chat.ErrNotAuthenticated
	}

	_, err := r.db.Pool().Exec(ctx,
		`DELETE FROM chat_sessions WHERE id = $1 AND user_id = $2`,
		sessionID, userID,
	)
	if err != nil {
		return fmt.Errorf("falha ao remover sessão: %w", err)
	}

	return nil
}

// RenameSession implementa chat.Repository.RenameSession
func (r *ChatRepository) RenameSession(ctx context.Context, sessionID, title string) error {
	userID := identity.UserID(ctx)
	if userID == "" {
		return chat.ErrNotAuthenticated
	}

	_, err := r.db.Pool().Exec(ctx,
		`UPDATE chat_sessions SET title = $1 WHERE id = $2 AND user_id = $3`,
		title, sessionID, userID,
	)
	if err != nil {
		return fmt.Errorf("falha ao renomear sessão: %w", err)
	}

	return nil
}

// scanMessage converte uma linha de chat_messages para o modelo de domínio
func scanMessage(rows pgx.Rows) (*chat.Message, error) {
	var (
		m          chat.Message
		videoURL   *string
		isResponse bool
		isError    bool
	)

	err := rows.Scan(&m.ID, &m.SessionID, &m.UserID, &m.Text, &videoURL, &isResponse, &isError, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler mensagem: %w", err)
	}

	if videoURL != nil {
		m.VideoURL = *videoURL
	}

	// Mensagens pendentes nunca são persistidas; o que está no banco ou é
	// resposta concluída (com ou sem erro) ou é prompt do usuário
	if isResponse {
		m.Role = chat.RoleResponse
		if isError {
			m.Status = chat.StatusErrored
		} else {
			m.Status = chat.StatusResolved
		}
	} else {
		m.Role = chat.RoleUser
		m.Status = chat.StatusResolved
	}

	return &m, nil
}
