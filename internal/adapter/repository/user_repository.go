package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/animai-studio/internal/domain/user"
	"github.com/hugohenrick/animai-studio/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Erros específicos do repositório
var (
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrUserDuplicateEmail = errors.New("usuário com mesmo email já existe")
)

// UserRepository implementa a interface user.Repository usando PostgreSQL
type UserRepository struct {
	db *database.PostgresDB
}

// NewUserRepository cria uma nova instância de UserRepository
func NewUserRepository(db *database.PostgresDB) user.Repository {
	return &UserRepository{db: db}
}

// Create implementa user.Repository.Create
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, name, email, password, subscription_tier, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Pool().Exec(ctx, query,
		u.ID,
		u.Name,
		u.Email,
		u.Password,
		string(u.Tier),
		u.CreatedAt,
		u.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return ErrUserDuplicateEmail
		}
		return fmt.Errorf("falha ao inserir usuário: %w", err)
	}

	return nil
}

// FindByID implementa user.Repository.FindByID
func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	return r.findUserByQuery(ctx,
		`SELECT id, name, email, password, subscription_tier, last_login_at, created_at, updated_at
		 FROM users WHERE id = $1`, id)
}

// FindByEmail implementa user.Repository.FindByEmail
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findUserByQuery(ctx,
		`SELECT id, name, email, password, subscription_tier, last_login_at, created_at, updated_at
		 FROM users WHERE email = $1`, email)
}

// UpdateLastLogin implementa user.Repository.UpdateLastLogin
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string) error {
	_, err := r.db.Pool().Exec(ctx,
		`UPDATE users SET last_login_at = $1 WHERE id = $2`,
		time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar último login: %w", err)
	}
	return nil
}

// findUserByQuery executa a consulta e mapeia a linha para o modelo de domínio
func (r *UserRepository) findUserByQuery(ctx context.Context, query string, args ...interface{}) (*user.User, error) {
	var (
		u           user.User
		tier        string
		lastLoginAt *time.Time
	)

	err := r.db.Pool().QueryRow(ctx, query, args...).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Password,
		&tier,
		&lastLoginAt,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("falha ao buscar usuário: %w", err)
	}

	u.Tier = user.SubscriptionTier(tier)
	if lastLoginAt != nil {
		u.LastLoginAt = *lastLoginAt
	}

	return &u, nil
}
