package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"card-trading/internal/model"
	"card-trading/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.UserRepository = (*UserRepositoryImpl)(nil)

// UserRepositoryImpl is the PostgreSQL implementation of UserRepository
type UserRepositoryImpl struct {
	*TransactionManager
}

func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &UserRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const userColumns = `id, username, COALESCE(email, ''), created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	if err := row.Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetByID retrieves a user by primary key
func (r *UserRepositoryImpl) GetByID(ctx context.Context, id int64, tx ...pgx.Tx) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.getExecutor(tx...).QueryRow(ctx, query, id))
}

// FindByIdentifier tries the numeric id first, then username and email case-insensitively
func (r *UserRepositoryImpl) FindByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	if id, err := strconv.ParseInt(identifier, 10, 64); err == nil {
		user, err := r.GetByID(ctx, id)
		if err == nil || !errors.Is(err, model.ErrUserNotFound) {
			return user, err
		}
	}

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE LOWER(username) = LOWER($1) OR LOWER(email) = LOWER($1)
		ORDER BY (LOWER(username) = LOWER($1)) DESC
		LIMIT 1`
	return scanUser(r.pool.QueryRow(ctx, query, identifier))
}
