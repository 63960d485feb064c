package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hugohenrick/animai-studio/pkg/chat"
)

// Nome do arquivo que guarda o histórico do modo convidado
const guestHistoryFile = "guest_chat_history.json"

// LocalChatRepository implementa chat.Repository sobre um único arquivo JSON
// local: o histórico do convidado. Não há filtro de dono — o perfil local é
// o único dono implícito, e apagar o arquivo destrói a conversa sem
// recuperação possível.
type LocalChatRepository struct {
	path string
	mu   sync.Mutex
}

// NewLocalChatRepository cria uma nova instância de LocalChatRepository
func NewLocalChatRepository(path string) *LocalChatRepository {
	return &LocalChatRepository{path: path}
}

// DefaultLocalStorePath retorna o caminho padrão do histórico de convidado
func DefaultLocalStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return guestHistoryFile
	}
	return filepath.Join(dir, "animai-studio", guestHistoryFile)
}

// CreateSession reinicia a sessão implícita de convidado com histórico vazio
func (r *LocalChatRepository) CreateSession(ctx context.Context, title string) (*chat.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.save(nil); err != nil {
		return nil, err
	}

	s := chat.NewSession(title)
	s.ID = chat.GuestSessionID
	return s, nil
}

// ListSessions retorna a sessão implícita de convidado, se houver histórico
func (r *LocalChatRepository) ListSessions(ctx context.Context) ([]*chat.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	messages := r.load()
	if len(messages) == 0 {
		return []*chat.Session{}, nil
	}

	first := messages[0]
	last := messages[len(messages)-1]

	title := chat.DefaultSessionTitle
	for _, m := range messages {
		if m.Role == chat.RoleUser {
			title = chat.DeriveTitle(m.Text)
			break
		}
	}

	return []*chat.Session{{
		ID:        chat.GuestSessionID,
		Title:     title,
		CreatedAt: first.CreatedAt,
		UpdatedAt: last.CreatedAt,
	}}, nil
}

// ListMessages retorna o histórico completo em ordem de inserção
func (r *LocalChatRepository) ListMessages(ctx context.Context, sessionID string) ([]*chat.Message, error) {
	if sessionID != chat.GuestSessionID {
		return []*chat.Message{}, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(), nil
}

// AppendMessage anexa a mensagem ao fim do histórico
func (r *LocalChatRepository) AppendMessage(ctx context.Context, sessionID string, message *chat.Message) error {
	if sessionID != chat.GuestSessionID {
		return chat.ErrSessionNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	messages := r.load()
	messages = append(messages, message)
	return r.save(messages)
}

// DeleteSession apaga o arquivo de histórico do convidado
func (r *LocalChatRepository) DeleteSession(ctx context.Context, sessionID string) error {
	if sessionID != chat.GuestSessionID {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("falha ao remover histórico local: %w", err)
	}
	return nil
}

// RenameSession não tem efeito na variante local: o título da sessão de
// convidado é derivado do primeiro prompt, nada é armazenado além do
// histórico de mensagens
func (r *LocalChatRepository) RenameSession(ctx context.Context, sessionID, title string) error {
	return nil
}

// load lê e desserializa o histórico. Arquivo ausente ou conteúdo corrompido
// degradam para histórico vazio — nunca um erro para o chamador.
func (r *LocalChatRepository) load() []*chat.Message {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return []*chat.Message{}
	}

	var messages []*chat.Message
	if err := json.Unmarshal(data, &messages); err != nil {
		// Histórico corrompido é descartado, a conversa recomeça vazia
		return []*chat.Message{}
	}

	return messages
}

// save serializa o histórico completo no arquivo local
func (r *LocalChatRepository) save(messages []*chat.Message) error {
	if messages == nil {
		messages = []*chat.Message{}
	}

	data, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("falha ao serializar histórico local: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("falha ao criar diretório do histórico local: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return fmt.Errorf("falha ao gravar histórico local: %w", err)
	}

	return nil
}
