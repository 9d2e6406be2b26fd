package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/coletaops/coleta/api/internal/model"
)

// UserRepository persists user accounts in the usuarios table.
type UserRepository struct {
	db DBTX
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts the user and fills in its generated id.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO usuarios (nome, email, senha)
	          VALUES ($1, $2, $3)
	          RETURNING id`

	err := r.db.QueryRowContext(ctx, query, user.Nome, user.Email, user.Senha).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByEmail returns the user with the given email, or (nil, nil) when no
// such user exists.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT id, nome, email, senha FROM usuarios
	          WHERE email = $1`

	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.Nome, &user.Email, &user.Senha)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

// List returns every user in insertion order.
func (r *UserRepository) List(ctx context.Context) ([]*model.User, error) {
	query := `SELECT id, nome, email FROM usuarios
	          ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		user := &model.User{}
		if err := rows.Scan(&user.ID, &user.Nome, &user.Email); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return users, nil
}
