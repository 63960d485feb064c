package identity

import (
	"context"
)

type contextKey string

const (
	// userIDKey é a chave usada para armazenar o ID do usuário no contexto
	userIDKey contextKey = "user_id"
	// userEmailKey é a chave usada para armazenar o email do usuário no contexto
	userEmailKey contextKey = "user_email"
)

// WithUser define a identidade do chamador no contexto
func WithUser(ctx context.Context, userID, email string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, userEmailKey, email)
}

// UserID obtém o ID do usuário do contexto. Retorna string vazia quando não
// há identidade — a ausência é um resultado válido (modo convidado), não um
// erro; cada operação decide como tratá-la.
func UserID(ctx context.Context) string {
	if userID, ok := ctx.Value(userIDKey).(string); ok && userID != "" {
		return userID
	}
	// Contextos do Gin armazenam os valores sob chaves string
	if userID, ok := ctx.Value("user_id").(string); ok {
		return userID
	}
	return ""
}

// UserEmail obtém o email do usuário do contexto
func UserEmail(ctx context.Context) string {
	if email, ok := ctx.Value(userEmailKey).(string); ok && email != "" {
		return email
	}
	if email, ok := ctx.Value("user_email").(string); ok {
		return email
	}
	return ""
}

// IsAuthenticated informa se há um usuário identificado no contexto
func IsAuthenticated(ctx context.Context) bool {
	return UserID(ctx) != ""
}
