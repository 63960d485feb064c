package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/animai-studio/internal/adapter/api/controller"
	"github.com/hugohenrick/animai-studio/pkg/auth"
)

// SetupChatRoutes configura as rotas de sessões e mensagens de chat
func SetupChatRoutes(router *gin.RouterGroup, chatController *controller.ChatController, jwtService *auth.JWTService) {
	// Rotas de sessões persistidas (requerem autenticação)
	sessionsRouter := router.Group("/sessions")
	sessionsRouter.Use(auth.JWTAuthMiddleware(jwtService))
	{
		sessionsRouter.POST("", chatController.CreateSession)
		sessionsRouter.GET("", chatController.ListSessions)
		sessionsRouter.DELETE("/:id", chatController.DeleteSession)
		sessionsRouter.PATCH("/:id/title", chatController.RenameSession)
		sessionsRouter.GET("/:id/messages", chatController.ListMessages)
		sessionsRouter.POST("/:id/messages", chatController.SubmitPrompt)
	}

	// Rotas do modo convidado (histórico local, sem autenticação)
	guestRouter := router.Group("/guest")
	{
		guestRouter.GET("/messages", chatController.GuestMessages)
		guestRouter.POST("/messages", chatController.GuestSubmitPrompt)
		guestRouter.DELETE("/messages", chatController.GuestClearHistory)
	}
}
