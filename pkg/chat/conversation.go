package chat

import (
	"errors"
	"sync"
)

var (
	// ErrGenerationInFlight é retornado quando já existe uma resposta pendente
	ErrGenerationInFlight = errors.New("já existe uma geração em andamento nesta conversa")
)

// Conversation mantém em memória a sequência ordenada de mensagens da
// conversa ativa. É a fonte de verdade para a interface: a persistência é
// um espelho durável, nunca autoritativa para exibição.
//
// Invariantes:
//   - no máximo uma mensagem pendente por conversa;
//   - resolver/falhar substitui a mensagem in-place, preservando ID e posição;
//   - a sequência está sempre em ordem não decrescente de criação.
type Conversation struct {
	SessionID string

	mu               sync.Mutex
	messages         []*Message
	pendingID        string
	userCount        int
	loginPromptShown bool
}

// NewConversation cria uma conversa vazia associada a uma sessão
func NewConversation(sessionID string) *Conversation {
	return &Conversation{SessionID: sessionID}
}

// NewConversationFromHistory reconstrói a conversa a partir do histórico
// persistido, em ordem de criação
func NewConversationFromHistory(sessionID string, history []*Message) *Conversation {
	c := &Conversation{SessionID: sessionID}
	for _, m := range history {
		c.append(m)
	}
	return c
}

// SubmitPrompt insere a mensagem do usuário seguida da resposta pendente e
// retorna o ID da pendente. As duas entradas ficam visíveis imediatamente,
// antes de qualquer persistência ou chamada ao backend. Sessão e dono são
// carimbados aqui, dentro da seção crítica: depois do append as mensagens
// são compartilhadas com leitores concorrentes e não podem mais ser mutadas
// fora do lock.
func (c *Conversation) SubmitPrompt(text, userID string) (userMsg, pendingMsg *Message, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pendingID != "" {
		return nil, nil, ErrGenerationInFlight
	}

	userMsg, err = NewUserMessage(text)
	if err != nil {
		return nil, nil, err
	}

	pendingMsg = NewPendingMessage()

	userMsg.SessionID = c.SessionID
	userMsg.UserID = userID
	pendingMsg.SessionID = c.SessionID
	pendingMsg.UserID = userID

	c.append(userMsg)
	c.append(pendingMsg)

	return userMsg, pendingMsg, nil
}

// Resolve substitui in-place a mensagem pendente pelo resultado da geração.
// Se o ID não estiver mais presente (a conversa foi trocada antes da resposta
// chegar), o resultado é simplesmente descartado — não é um erro.
func (c *Conversation) Resolve(pendingID, text, videoURL string) (*Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := c.findPending(pendingID)
	if m == nil {
		return nil, false
	}

	if err := m.resolve(text, videoURL); err != nil {
		return nil, false
	}

	c.pendingID = ""
	return m, true
}

// Fail substitui in-place a mensagem pendente por uma falha de geração.
// Segue a mesma política de descarte do Resolve para IDs ausentes.
func (c *Conversation) Fail(pendingID, errorText string) (*Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := c.findPending(pendingID)
	if m == nil {
		return nil, false
	}

	if err := m.fail(errorText); err != nil {
		return nil, false
	}

	c.pendingID = ""
	return m, true
}

// Messages retorna uma cópia da sequência de mensagens, em ordem de criação
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Message, len(c.messages))
	for i, m := range c.messages {
		out[i] = *m
	}
	return out
}

// Len retorna o número de mensagens da conversa
func (c *Conversation) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}

// UserMessageCount retorna o número de mensagens escritas pelo usuário
func (c *Conversation) UserMessageCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.userCount
}

// HasPending informa se há uma geração aguardando resolução
func (c *Conversation) HasPending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingID != ""
}

// MarkLoginPromptShown arma a trava do convite de login. A trava é de mão
// única: uma vez armada, permanece pelo resto da vida da conversa, mesmo que
// a contagem de mensagens pareça diminuir por mutação externa.
func (c *Conversation) MarkLoginPromptShown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loginPromptShown = true
}

// LoginPromptShown informa se a trava do convite de login está armada
func (c *Conversation) LoginPromptShown() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loginPromptShown
}

// append insere a mensagem no fim da sequência mantendo a ordem de criação
// não decrescente. Chamador deve estar com o lock.
func (c *Conversation) append(m *Message) {
	if n := len(c.messages); n > 0 {
		if last := c.messages[n-1]; m.CreatedAt.Before(last.CreatedAt) {
			m.CreatedAt = last.CreatedAt
		}
	}

	c.messages = append(c.messages, m)

	if m.Role == RoleUser {
		c.userCount++
	}
	if m.IsPending() {
		c.pendingID = m.ID
	}
}

// findPending localiza a mensagem pendente com o ID dado. Chamador deve
// estar com o lock.
func (c *Conversation) findPending(pendingID string) *Message {
	if pendingID == "" || pendingID != c.pendingID {
		return nil
	}

	for _, m := range c.messages {
		if m.ID == pendingID {
			return m
		}
	}
	return nil
}
