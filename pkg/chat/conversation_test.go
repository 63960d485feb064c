package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitPrompt_AddsOptimisticPair(t *testing.T) {
	conv := NewConversation("s1")

	userMsg, pendingMsg, err := conv.SubmitPrompt("x", "")
	require.NoError(t, err)

	messages := conv.Messages()
	require.Len(t, messages, 2)

	assert.Equal(t, "x", messages[0].Text)
	assert.Equal(t, RoleUser, messages[0].Role)
	assert.Equal(t, StatusResolved, messages[0].Status)
	assert.Equal(t, userMsg.ID, messages[0].ID)

	assert.Equal(t, PendingText, messages[1].Text)
	assert.Equal(t, RoleResponse, messages[1].Role)
	assert.Equal(t, StatusPending, messages[1].Status)
	assert.Equal(t, pendingMsg.ID, messages[1].ID)

	assert.True(t, conv.HasPending())
}

func TestSubmitPrompt_StampsSessionAndOwner(t *testing.T) {
	conv := NewConversation("s1")

	userMsg, pendingMsg, err := conv.SubmitPrompt("x", "user-1")
	require.NoError(t, err)

	// Sessão e dono já estão presentes no momento da publicação
	assert.Equal(t, "s1", userMsg.SessionID)
	assert.Equal(t, "user-1", userMsg.UserID)
	assert.Equal(t, "s1", pendingMsg.SessionID)
	assert.Equal(t, "user-1", pendingMsg.UserID)

	for _, m := range conv.Messages() {
		assert.Equal(t, "s1", m.SessionID)
		assert.Equal(t, "user-1", m.UserID)
	}
}

func TestSubmitPrompt_EmptyText(t *testing.T) {
	conv := NewConversation("s1")

	_, _, err := conv.SubmitPrompt("", "")
	require.ErrorIs(t, err, ErrEmptyText)
	assert.Equal(t, 0, conv.Len())
}

func TestSubmitPrompt_RejectsSecondWhilePending(t *testing.T) {
	conv := NewConversation("s1")

	_, _, err := conv.SubmitPrompt("primeiro", "")
	require.NoError(t, err)

	_, _, err = conv.SubmitPrompt("segundo", "")
	require.ErrorIs(t, err, ErrGenerationInFlight)
	assert.Equal(t, 2, conv.Len())
}

func TestResolve_ReplacesInPlace(t *testing.T) {
	conv := NewConversation("s1")

	_, pendingMsg, err := conv.SubmitPrompt("Draw y = sin(x)", "")
	require.NoError(t, err)

	resolved, ok := conv.Resolve(pendingMsg.ID, "Generated animation", "https://videos.example/sin.mp4")
	require.True(t, ok)

	messages := conv.Messages()
	require.Len(t, messages, 2)

	// Identidade e posição preservadas, apenas o conteúdo muda
	assert.Equal(t, pendingMsg.ID, messages[1].ID)
	assert.Equal(t, pendingMsg.ID, resolved.ID)
	assert.Equal(t, StatusResolved, messages[1].Status)
	assert.Equal(t, "Generated animation", messages[1].Text)
	assert.Equal(t, "https://videos.example/sin.mp4", messages[1].VideoURL)
	assert.False(t, conv.HasPending())
}

func TestResolve_UnknownIDIsNoOp(t *testing.T) {
	conv := NewConversation("s1")

	_, _, err := conv.SubmitPrompt("x", "")
	require.NoError(t, err)

	before := conv.Messages()

	_, ok := conv.Resolve("id-que-nao-existe", "texto", "url")
	assert.False(t, ok)

	after := conv.Messages()
	require.Equal(t, len(before), len(after))
	for i := range before {
		assert.Equal(t, before[i], after[i])
	}
}

func TestFail_MarksErroredWithoutVideo(t *testing.T) {
	conv := NewConversation("s1")

	_, pendingMsg, err := conv.SubmitPrompt("Draw y=sin(x)", "")
	require.NoError(t, err)

	failed, ok := conv.Fail(pendingMsg.ID, "timeout")
	require.True(t, ok)

	assert.Equal(t, StatusErrored, failed.Status)
	assert.Equal(t, "timeout", failed.Text)
	assert.Empty(t, failed.VideoURL)

	messages := conv.Messages()
	assert.Equal(t, pendingMsg.ID, messages[1].ID)
	assert.Equal(t, StatusErrored, messages[1].Status)
}

func TestFail_UnknownIDIsNoOp(t *testing.T) {
	conv := NewConversation("s1")

	_, ok := conv.Fail("nada", "erro")
	assert.False(t, ok)
	assert.Equal(t, 0, conv.Len())
}

func TestResponsesNeverExceedUserMessagesByMoreThanOne(t *testing.T) {
	conv := NewConversation("s1")

	for i := 0; i < 5; i++ {
		_, pendingMsg, err := conv.SubmitPrompt("prompt", "")
		require.NoError(t, err)

		responses := 0
		users := 0
		for _, m := range conv.Messages() {
			if m.Role == RoleResponse {
				responses++
			} else {
				users++
			}
		}
		assert.LessOrEqual(t, responses, users+1)

		_, ok := conv.Resolve(pendingMsg.ID, "ok", "")
		require.True(t, ok)
	}
}

func TestMessages_OrderIsNonDecreasing(t *testing.T) {
	conv := NewConversation("s1")

	for i := 0; i < 3; i++ {
		_, pendingMsg, err := conv.SubmitPrompt("prompt", "")
		require.NoError(t, err)
		conv.Resolve(pendingMsg.ID, "ok", "")
	}

	messages := conv.Messages()
	for i := 1; i < len(messages); i++ {
		assert.False(t, messages[i].CreatedAt.Before(messages[i-1].CreatedAt),
			"mensagem %d criada antes da anterior", i)
	}
}

func TestLoginPromptLatch_IsOneWay(t *testing.T) {
	conv := NewConversation("s1")

	assert.False(t, conv.LoginPromptShown())

	conv.MarkLoginPromptShown()
	assert.True(t, conv.LoginPromptShown())

	// A trava permanece armada pelo resto da vida da conversa
	conv.MarkLoginPromptShown()
	assert.True(t, conv.LoginPromptShown())
}

func TestNewConversationFromHistory(t *testing.T) {
	now := time.Now()
	history := []*Message{
		{ID: "1", Text: "oi", Role: RoleUser, Status: StatusResolved, CreatedAt: now},
		{ID: "2", Text: "resposta", Role: RoleResponse, Status: StatusResolved, CreatedAt: now.Add(time.Second)},
		{ID: "3", Text: "de novo", Role: RoleUser, Status: StatusResolved, CreatedAt: now.Add(2 * time.Second)},
	}

	conv := NewConversationFromHistory("s1", history)

	assert.Equal(t, 3, conv.Len())
	assert.Equal(t, 2, conv.UserMessageCount())
	assert.False(t, conv.HasPending())
}
