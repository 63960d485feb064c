package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/animai-studio/internal/adapter/api/dto"
	"github.com/hugohenrick/animai-studio/internal/adapter/repository"
	"github.com/hugohenrick/animai-studio/pkg/chat"
	"github.com/hugohenrick/animai-studio/pkg/generator"
	"github.com/hugohenrick/animai-studio/pkg/logger"
)

type stubGenerator struct {
	result *generator.Result
	err    error
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (*generator.Result, error) {
	return s.result, s.err
}

func newGuestRouter(t *testing.T, gen chat.Generator) (*gin.Engine, *chat.Orchestrator) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	local := repository.NewLocalChatRepository(filepath.Join(t.TempDir(), "guest_chat_history.json"))
	orchestrator := chat.NewOrchestrator(local, local, gen, logger.NewNopLogger())
	chatController := NewChatController(orchestrator)

	router := gin.New()
	guest := router.Group("/guest")
	{
		guest.GET("/messages", chatController.GuestMessages)
		guest.POST("/messages", chatController.GuestSubmitPrompt)
		guest.DELETE("/messages", chatController.GuestClearHistory)
	}

	return router, orchestrator
}

func postPrompt(t *testing.T, router *gin.Engine, prompt string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(dto.PromptRequest{Prompt: prompt})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/guest/messages", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func waitGuestSettled(t *testing.T, orchestrator *chat.Orchestrator) {
	t.Helper()
	conv, err := orchestrator.Conversation(context.Background(), chat.GuestSessionID)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return !conv.HasPending() },
		2*time.Second, 5*time.Millisecond)
}

func TestGuestSubmitPrompt_ReturnsOptimisticPair(t *testing.T) {
	gen := &stubGenerator{result: &generator.Result{
		Success:  true,
		Text:     "Your animation has been generated successfully!",
		VideoURL: "https://videos.example/out.mp4",
	}}
	router, orchestrator := newGuestRouter(t, gen)

	recorder := postPrompt(t, router, "Draw a circle")
	require.Equal(t, http.StatusAccepted, recorder.Code)

	var response dto.SubmitResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	assert.Equal(t, "Draw a circle", response.UserMessage.Text)
	assert.Equal(t, string(chat.RoleUser), response.UserMessage.Role)
	assert.Equal(t, chat.PendingText, response.PendingMessage.Text)
	assert.Equal(t, string(chat.StatusPending), response.PendingMessage.Status)
	assert.False(t, response.ShowLoginPrompt)

	waitGuestSettled(t, orchestrator)

	// Depois da geração, a listagem traz a pendente substituída in-place
	req := httptest.NewRequest(http.MethodGet, "/guest/messages", nil)
	listRecorder := httptest.NewRecorder()
	router.ServeHTTP(listRecorder, req)
	require.Equal(t, http.StatusOK, listRecorder.Code)

	var list dto.MessageListResponse
	require.NoError(t, json.Unmarshal(listRecorder.Body.Bytes(), &list))
	require.Len(t, list.Messages, 2)
	assert.Equal(t, response.PendingMessage.ID, list.Messages[1].ID)
	assert.Equal(t, string(chat.StatusResolved), list.Messages[1].Status)
	assert.Equal(t, "https://videos.example/out.mp4", list.Messages[1].VideoURL)
}

func TestGuestSubmitPrompt_EmptyBodyIsBadRequest(t *testing.T) {
	router, _ := newGuestRouter(t, &stubGenerator{result: &generator.Result{Success: true}})

	recorder := postPrompt(t, router, "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGuestSubmitPrompt_ConflictWhilePending(t *testing.T) {
	// Gerador bloqueado mantém a pendência aberta durante o segundo envio
	release := make(chan struct{})
	gen := &stubGeneratorBlocking{release: release}
	router, orchestrator := newGuestRouter(t, gen)

	first := postPrompt(t, router, "primeiro")
	require.Equal(t, http.StatusAccepted, first.Code)

	second := postPrompt(t, router, "segundo")
	assert.Equal(t, http.StatusConflict, second.Code)

	close(release)
	waitGuestSettled(t, orchestrator)
}

type stubGeneratorBlocking struct {
	release chan struct{}
}

func (s *stubGeneratorBlocking) Generate(ctx context.Context, prompt string) (*generator.Result, error) {
	<-s.release
	return &generator.Result{Success: true, Text: "ok"}, nil
}

func TestGuestSubmitPrompt_LoginPromptAfterThreshold(t *testing.T) {
	gen := &stubGenerator{result: &generator.Result{Success: true, Text: "ok"}}
	router, orchestrator := newGuestRouter(t, gen)

	var response dto.SubmitResponse
	for i := 0; i < chat.LoginPromptThreshold; i++ {
		recorder := postPrompt(t, router, "prompt")
		require.Equal(t, http.StatusAccepted, recorder.Code)
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		waitGuestSettled(t, orchestrator)
	}

	assert.True(t, response.ShowLoginPrompt)
}

func TestGuestClearHistory(t *testing.T) {
	gen := &stubGenerator{result: &generator.Result{Success: true, Text: "ok"}}
	router, orchestrator := newGuestRouter(t, gen)

	recorder := postPrompt(t, router, "prompt")
	require.Equal(t, http.StatusAccepted, recorder.Code)
	waitGuestSettled(t, orchestrator)

	req := httptest.NewRequest(http.MethodDelete, "/guest/messages", nil)
	deleteRecorder := httptest.NewRecorder()
	router.ServeHTTP(deleteRecorder, req)
	require.Equal(t, http.StatusOK, deleteRecorder.Code)

	listReq := httptest.NewRequest(http.MethodGet, "/guest/messages", nil)
	listRecorder := httptest.NewRecorder()
	router.ServeHTTP(listRecorder, listReq)
	require.Equal(t, http.StatusOK, listRecorder.Code)

	var list dto.MessageListResponse
	require.NoError(t, json.Unmarshal(listRecorder.Body.Bytes(), &list))
	assert.Empty(t, list.Messages)
}
