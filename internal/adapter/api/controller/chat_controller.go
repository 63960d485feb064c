package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/animai-studio/internal/adapter/api/dto"
	"github.com/hugohenrick/animai-studio/pkg/chat"
)

// ChatController gerencia as requisições de sessões e mensagens de chat.
// Os mesmos handlers servem o modo autenticado e o modo convidado: o
// orquestrador escolhe a variante de persistência pela identidade presente.
type ChatController struct {
	orchestrator *chat.Orchestrator
}

// NewChatController cria uma nova instância de ChatController
func NewChatController(orchestrator *chat.Orchestrator) *ChatController {
	return &ChatController{orchestrator: orchestrator}
}

// CreateSession cria uma nova sessão de chat
// @Summary Cria uma nova sessão de chat
// @Description Cria uma nova conversa para o usuário autenticado
// @Tags sessions
// @Accept json
// @Produce json
// @Security Bearer
// @Param session body dto.SessionRequest false "Título da sessão"
// @Success 201 {object} dto.SessionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sessions [post]
func (c *ChatController) CreateSession(ctx *gin.Context) {
	// Corpo opcional: sem título informado, o padrão é usado
	var request dto.SessionRequest
	_ = ctx.ShouldBindJSON(&request)

	s, err := c.orchestrator.NewSession(ctx.Request.Context(), request.Title)
	if err != nil {
		c.handleError(ctx, "Erro ao criar sessão", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSessionResponse(s))
}

// ListSessions lista as sessões do chamador
// @Summary Lista as sessões de chat
// @Description Retorna as sessões do usuário, da mais recente para a mais antiga
// @Tags sessions
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.SessionResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sessions [get]
func (c *ChatController) ListSessions(ctx *gin.Context) {
	sessions, err := c.orchestrator.Sessions(ctx.Request.Context())
	if err != nil {
		c.handleError(ctx, "Erro ao listar sessões", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSessionListResponse(sessions))
}

// DeleteSession remove uma sessão e todas as suas mensagens
// @Summary Remove uma sessão de chat
// @Description Remove a sessão e todo o seu histórico de mensagens
// @Tags sessions
// @Produce json
// @Security Bearer
// @Param id path string true "ID da sessão"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sessions/{id} [delete]
func (c *ChatController) DeleteSession(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	if err := c.orchestrator.DeleteSession(ctx.Request.Context(), sessionID); err != nil {
		c.handleError(ctx, "Erro ao remover sessão", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Sessão removida", nil))
}

// RenameSession atualiza o título de uma sessão
// @Summary Renomeia uma sessão de chat
// @Description Atualiza o título da sessão
// @Tags sessions
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID da sessão"
// @Param rename body dto.RenameSessionRequest true "Novo título"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sessions/{id}/title [patch]
func (c *ChatController) RenameSession(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	var request dto.RenameSessionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	if err := c.orchestrator.RenameSession(ctx.Request.Context(), sessionID, request.Title); err != nil {
		c.handleError(ctx, "Erro ao renomear sessão", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Sessão renomeada", nil))
}

// ListMessages retorna a sequência atual de mensagens da sessão
// @Summary Lista as mensagens de uma sessão
// @Description Retorna as mensagens em ordem de criação, incluindo a pendente
// @Tags sessions
// @Produce json
// @Security Bearer
// @Param id path string true "ID da sessão"
// @Success 200 {object} dto.MessageListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sessions/{id}/messages [get]
func (c *ChatController) ListMessages(ctx *gin.Context) {
	c.listMessages(ctx, ctx.Param("id"))
}

// SubmitPrompt envia um prompt de animação para a sessão
// @Summary Envia um prompt de animação
// @Description Insere o par otimista (prompt + resposta pendente) e dispara a geração
// @Tags sessions
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID da sessão"
// @Param prompt body dto.PromptRequest true "Prompt de animação"
// @Success 202 {object} dto.SubmitResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sessions/{id}/messages [post]
func (c *ChatController) SubmitPrompt(ctx *gin.Context) {
	c.submitPrompt(ctx, ctx.Param("id"))
}

// GuestMessages retorna o histórico do modo convidado
// @Summary Lista as mensagens do convidado
// @Description Retorna o histórico local do modo convidado
// @Tags guest
// @Produce json
// @Success 200 {object} dto.MessageListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /guest/messages [get]
func (c *ChatController) GuestMessages(ctx *gin.Context) {
	c.listMessages(ctx, chat.GuestSessionID)
}

// GuestSubmitPrompt envia um prompt no modo convidado
// @Summary Envia um prompt como convidado
// @Description Envia um prompt usando o histórico local, sem autenticação
// @Tags guest
// @Accept json
// @Produce json
// @Param prompt body dto.PromptRequest true "Prompt de animação"
// @Success 202 {object} dto.SubmitResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /guest/messages [post]
func (c *ChatController) GuestSubmitPrompt(ctx *gin.Context) {
	c.submitPrompt(ctx, chat.GuestSessionID)
}

// GuestClearHistory apaga o histórico local do convidado
// @Summary Apaga o histórico do convidado
// @Description Remove o histórico local; não há recuperação possível
// @Tags guest
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /guest/messages [delete]
func (c *ChatController) GuestClearHistory(ctx *gin.Context) {
	if err := c.orchestrator.DeleteSession(ctx.Request.Context(), chat.GuestSessionID); err != nil {
		c.handleError(ctx, "Erro ao apagar histórico", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Histórico apagado", nil))
}

// listMessages é o corpo comum de ListMessages e GuestMessages
func (c *ChatController) listMessages(ctx *gin.Context, sessionID string) {
	conv, err := c.orchestrator.Conversation(ctx.Request.Context(), sessionID)
	if err != nil {
		c.handleError(ctx, "Erro ao listar mensagens", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMessageListResponse(conv.Messages(), conv.LoginPromptShown()))
}

// submitPrompt é o corpo comum de SubmitPrompt e GuestSubmitPrompt
func (c *ChatController) submitPrompt(ctx *gin.Context, sessionID string) {
	var request dto.PromptRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	result, err := c.orchestrator.Submit(ctx.Request.Context(), sessionID, request.Prompt)
	if err != nil {
		c.handleError(ctx, "Erro ao enviar prompt", err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.SubmitResponse{
		UserMessage:     dto.ToMessageResponse(result.UserMessage),
		PendingMessage:  dto.ToMessageResponse(result.PendingMessage),
		ShowLoginPrompt: result.ShowLoginPrompt,
	})
}

// handleError mapeia os erros do orquestrador para códigos HTTP
func (c *ChatController) handleError(ctx *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, chat.ErrNotAuthenticated):
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Usuário não autenticado", ""))
	case errors.Is(err, chat.ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Sessão não encontrada", ""))
	case errors.Is(err, chat.ErrGenerationInFlight):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Já existe uma geração em andamento nesta conversa", ""))
	case errors.Is(err, chat.ErrEmptyText):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Prompt não pode ser vazio", ""))
	default:
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, message, err.Error()))
	}
}
