package chat

import (
	"context"
	"sync"

	"github.com/hugohenrick/animai-studio/pkg/generator"
	"github.com/hugohenrick/animai-studio/pkg/identity"
	"github.com/hugohenrick/animai-studio/pkg/logger"
)

// ID da sessão implícita do modo convidado (variante local de persistência)
const GuestSessionID = "guest"

// Número de mensagens do usuário a partir do qual o convite de login é exibido
const LoginPromptThreshold = 3

// Mensagem genérica para falhas de transporte/parse na chamada de geração
const genericFailureText = "Failed to process your request. Please try again."

// Generator é o contrato com o backend de geração de animações
type Generator interface {
	Generate(ctx context.Context, prompt string) (*generator.Result, error)
}

// SubmitResult é o par otimista devolvido ao submeter um prompt
type SubmitResult struct {
	UserMessage     Message
	PendingMessage  Message
	ShowLoginPrompt bool
}

// Orchestrator decide, para cada prompt, qual sessão e qual variante de
// persistência usar, dispara a geração e realimenta o resultado na conversa.
// O estado em memória é a verdade para a interface; cada transição é
// espelhada na persistência em melhor esforço — uma falha de escrita durável
// nunca descarta o estado otimista.
type Orchestrator struct {
	local  Repository
	remote Repository
	gen    Generator
	log    logger.Logger

	mu            sync.Mutex
	conversations map[string]*Conversation
}

// NewOrchestrator cria uma nova instância de Orchestrator
func NewOrchestrator(local, remote Repository, gen Generator, log logger.Logger) *Orchestrator {
	return &Orchestrator{
		local:         local,
		remote:        remote,
		gen:           gen,
		log:           log,
		conversations: make(map[string]*Conversation),
	}
}

// repositoryFor resolve a variante de persistência pela presença de
// identidade: autenticado usa o armazenamento remoto com dono por usuário;
// convidado usa o armazenamento local. A decisão é tomada aqui, uma única
// vez por operação, e em nenhum outro lugar.
func (o *Orchestrator) repositoryFor(ctx context.Context) Repository {
	if identity.IsAuthenticated(ctx) {
		return o.remote
	}
	return o.local
}

// conversationKey separa o cache por usuário para que sessões de usuários
// distintos com o mesmo ID nunca colidam
func (o *Orchestrator) conversationKey(ctx context.Context, sessionID string) string {
	if userID := identity.UserID(ctx); userID != "" {
		return userID + "/" + sessionID
	}
	return sessionID
}

// Conversation retorna a conversa ativa da sessão, reidratando do histórico
// persistido quando ainda não está em memória
func (o *Orchestrator) Conversation(ctx context.Context, sessionID string) (*Conversation, error) {
	key := o.conversationKey(ctx, sessionID)

	o.mu.Lock()
	if conv, ok := o.conversations[key]; ok {
		o.mu.Unlock()
		return conv, nil
	}
	o.mu.Unlock()

	history, err := o.repositoryFor(ctx).ListMessages(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	// Outra chamada pode ter hidratado a conversa enquanto líamos o histórico
	if conv, ok := o.conversations[key]; ok {
		return conv, nil
	}

	conv := NewConversationFromHistory(sessionID, history)

	// Rearmar a trava do convite de login para históricos de convidado já longos
	if !identity.IsAuthenticated(ctx) && conv.UserMessageCount() >= LoginPromptThreshold {
		conv.MarkLoginPromptShown()
	}

	o.conversations[key] = conv
	return conv, nil
}

// NewSession cria uma nova sessão de chat na variante ativa
func (o *Orchestrator) NewSession(ctx context.Context, title string) (*Session, error) {
	return o.repositoryFor(ctx).CreateSession(ctx, title)
}

// Sessions lista as sessões do chamador, da mais recente para a mais antiga
func (o *Orchestrator) Sessions(ctx context.Context) ([]*Session, error) {
	return o.repositoryFor(ctx).ListSessions(ctx)
}

// Messages retorna a sequência atual de mensagens da sessão
func (o *Orchestrator) Messages(ctx context.Context, sessionID string) ([]Message, error) {
	conv, err := o.Conversation(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return conv.Messages(), nil
}

// DeleteSession remove a sessão, suas mensagens e a conversa em memória
func (o *Orchestrator) DeleteSession(ctx context.Context, sessionID string) error {
	if err := o.repositoryFor(ctx).DeleteSession(ctx, sessionID); err != nil {
		return err
	}

	o.mu.Lock()
	delete(o.conversations, o.conversationKey(ctx, sessionID))
	o.mu.Unlock()

	return nil
}

// RenameSession atualiza o título da sessão
func (o *Orchestrator) RenameSession(ctx context.Context, sessionID, title string) error {
	return o.repositoryFor(ctx).RenameSession(ctx, sessionID, title)
}

// Submit transforma um prompt em um par otimista (mensagem do usuário +
// resposta pendente), persiste a mensagem do usuário em melhor esforço e
// dispara a geração fora de banda. O resultado da geração substitui a
// pendente in-place quando chegar.
func (o *Orchestrator) Submit(ctx context.Context, sessionID, prompt string) (*SubmitResult, error) {
	conv, err := o.Conversation(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	userMsg, pendingMsg, err := conv.SubmitPrompt(prompt, identity.UserID(ctx))
	if err != nil {
		return nil, err
	}

	// Espelho durável da mensagem do usuário. Uma falha aqui não desfaz a
	// inserção otimista: a interface reflete a verdade primeiro.
	if err := o.repositoryFor(ctx).AppendMessage(ctx, sessionID, userMsg); err != nil {
		o.log.Error("falha ao persistir mensagem do usuário", "session_id", sessionID, "error", err)
	}

	// Política de engajamento: trava de mão única no modo convidado
	if !identity.IsAuthenticated(ctx) && conv.UserMessageCount() >= LoginPromptThreshold {
		conv.MarkLoginPromptShown()
	}

	// As cópias do resultado são tiradas antes de disparar a geração: depois
	// do go a pendente pode ser resolvida a qualquer momento
	result := &SubmitResult{
		UserMessage:     *userMsg,
		PendingMessage:  *pendingMsg,
		ShowLoginPrompt: conv.LoginPromptShown(),
	}

	// A geração sobrevive ao request que a originou; apenas o cancelamento do
	// request é descartado, a identidade do chamador permanece
	go o.generate(context.WithoutCancel(ctx), conv, pendingMsg.ID, prompt)

	return result, nil
}

// generate chama o backend de geração e realimenta o resultado na conversa.
// Se a conversa tiver sido trocada ou removida nesse meio tempo, a resolução
// mira um ID que não existe mais e é descartada em silêncio.
func (o *Orchestrator) generate(ctx context.Context, conv *Conversation, pendingID, prompt string) {
	var (
		final   *Message
		applied bool
	)

	res, err := o.gen.Generate(ctx, prompt)
	switch {
	case err != nil:
		o.log.Error("falha na chamada ao backend de geração", "session_id", conv.SessionID, "error", err)
		final, applied = conv.Fail(pendingID, genericFailureText)
	case !res.Success:
		final, applied = conv.Fail(pendingID, res.Error)
	default:
		final, applied = conv.Resolve(pendingID, res.Text, res.VideoURL)
	}

	if !applied {
		o.log.Info("resultado de geração descartado: mensagem pendente não está mais presente", "session_id", conv.SessionID)
		return
	}

	// Espelho durável da resposta, também em melhor esforço
	if err := o.repositoryFor(ctx).AppendMessage(ctx, conv.SessionID, final); err != nil {
		o.log.Error("falha ao persistir resposta gerada", "session_id", conv.SessionID, "error", err)
	}
}
