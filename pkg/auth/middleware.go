package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/animai-studio/internal/adapter/api/dto"
	"github.com/hugohenrick/animai-studio/pkg/identity"
)

// JWTAuthMiddleware exige um token JWT válido e coloca a identidade do
// chamador no contexto
func JWTAuthMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromRequest(c, jwtService)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token inválido ou ausente", ""))
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// claimsFromRequest extrai e valida o token Bearer do cabeçalho Authorization
func claimsFromRequest(c *gin.Context, jwtService *JWTService) (*JWTClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, false
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := jwtService.ValidateToken(token)
	if err != nil {
		return nil, false
	}

	return claims, true
}

// setIdentity registra a identidade nas chaves do Gin e no contexto do request
func setIdentity(c *gin.Context, claims *JWTClaims) {
	c.Set("user_id", claims.UserID)
	c.Set("user_email", claims.Email)
	c.Request = c.Request.WithContext(identity.WithUser(c.Request.Context(), claims.UserID, claims.Email))
}
