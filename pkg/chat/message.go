package chat

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Texto exibido enquanto a geração está em andamento
const PendingText = "Thinking..."

var (
	ErrEmptyText         = errors.New("texto da mensagem não pode ser vazio")
	ErrMessageNotPending = errors.New("mensagem não está pendente")
)

// Role representa o autor da mensagem
type Role string

const (
	RoleUser     Role = "user"     // Mensagem escrita pelo usuário
	RoleResponse Role = "response" // Resposta gerada pelo sistema
)

// Status representa o estado do ciclo de vida da mensagem
type Status string

const (
	StatusPending  Status = "pending"  // Aguardando o backend de geração
	StatusResolved Status = "resolved" // Geração concluída (ou mensagem do usuário)
	StatusErrored  Status = "errored"  // Geração falhou
)

// Message representa um turno da conversa no histórico do chat.
// VideoURL só é preenchido em respostas resolvidas; mensagens pendentes
// carregam o texto de espera até serem substituídas in-place.
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id,omitempty"`
	UserID    string    `json:"user_id,omitempty"`
	Text      string    `json:"text"`
	VideoURL  string    `json:"video_url,omitempty"`
	Role      Role      `json:"role"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserMessage cria uma mensagem do usuário, já resolvida na criação
func NewUserMessage(text string) (*Message, error) {
	if text == "" {
		return nil, ErrEmptyText
	}

	return &Message{
		ID:        uuid.New().String(),
		Text:      text,
		Role:      RoleUser,
		Status:    StatusResolved,
		CreatedAt: time.Now(),
	}, nil
}

// NewPendingMessage cria a resposta pendente que aguarda o backend de geração
func NewPendingMessage() *Message {
	return &Message{
		ID:        uuid.New().String(),
		Text:      PendingText,
		Role:      RoleResponse,
		Status:    StatusPending,
		CreatedAt: time.Now(),
	}
}

// IsPending informa se a mensagem ainda aguarda resolução
func (m *Message) IsPending() bool {
	return m.Status == StatusPending
}

// IsResponse informa se a mensagem é uma resposta do sistema
func (m *Message) IsResponse() bool {
	return m.Role == RoleResponse
}

// resolve substitui o conteúdo da mensagem pendente preservando ID e posição
func (m *Message) resolve(text, videoURL string) error {
	if m.Status != StatusPending {
		return ErrMessageNotPending
	}

	if text == "" {
		text = "Your animation has been generated successfully!"
	}

	m.Text = text
	m.VideoURL = videoURL
	m.Status = StatusResolved
	return nil
}

// fail marca a mensagem pendente como falha, sem vídeo associado
func (m *Message) fail(errorText string) error {
	if m.Status != StatusPending {
		return ErrMessageNotPending
	}

	if errorText == "" {
		errorText = "An error occurred"
	}

	m.Text = errorText
	m.VideoURL = ""
	m.Status = StatusErrored
	return nil
}
