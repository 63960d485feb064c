package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/animai-studio/internal/adapter/api/controller"
	"github.com/hugohenrick/animai-studio/pkg/auth"
)

// SetupAuthRoutes configura as rotas para autenticação
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController, jwtService *auth.JWTService) {
	authRouter := router.Group("/auth")
	{
		// Rotas de cadastro e login (não requerem autenticação)
		authRouter.POST("/register", authController.Register)
		authRouter.POST("/login", authController.Login)

		// Rota para obter informações do usuário logado (requer autenticação)
		authRouter.GET("/me", auth.JWTAuthMiddleware(jwtService), authController.Me)
	}
}
