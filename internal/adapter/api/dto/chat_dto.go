package dto

import (
	"time"

	"github.com/hugohenrick/animai-studio/pkg/chat"
)

// SessionRequest representa os dados para criar uma sessão de chat
type SessionRequest struct {
	Title string `json:"title"`
}

// RenameSessionRequest representa os dados para renomear uma sessão
type RenameSessionRequest struct {
	Title string `json:"title" binding:"required"`
}

// PromptRequest representa o envio de um prompt de animação
type PromptRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// SessionResponse representa uma sessão de chat
type SessionResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MessageResponse representa uma mensagem da conversa
type MessageResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	VideoURL  string    `json:"video_url,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmitResponse representa o par otimista devolvido ao enviar um prompt
type SubmitResponse struct {
	UserMessage     MessageResponse `json:"user_message"`
	PendingMessage  MessageResponse `json:"pending_message"`
	ShowLoginPrompt bool            `json:"show_login_prompt"`
}

// MessageListResponse representa a sequência de mensagens de uma sessão
type MessageListResponse struct {
	Messages        []MessageResponse `json:"messages"`
	ShowLoginPrompt bool              `json:"show_login_prompt"`
}

// ToSessionResponse converte o modelo de domínio para o DTO de resposta
func ToSessionResponse(s *chat.Session) SessionResponse {
	return SessionResponse{
		ID:        s.ID,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToSessionListResponse converte uma lista de sessões
func ToSessionListResponse(sessions []*chat.Session) []SessionResponse {
	out := make([]SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, ToSessionResponse(s))
	}
	return out
}

// ToMessageResponse converte o modelo de domínio para o DTO de resposta
func ToMessageResponse(m chat.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		Text:      m.Text,
		VideoURL:  m.VideoURL,
		Role:      string(m.Role),
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

// ToMessageListResponse converte uma lista de mensagens
func ToMessageListResponse(messages []chat.Message, showLoginPrompt bool) MessageListResponse {
	out := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, ToMessageResponse(m))
	}
	return MessageListResponse{
		Messages:        out,
		ShowLoginPrompt: showLoginPrompt,
	}
}
