package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/coletaops/coleta/api/internal/model"
)

// ClientRepository persists clients in the clientes table.
type ClientRepository struct {
	db DBTX
}

// NewClientRepository creates a new client repository.
func NewClientRepository(db DBTX) *ClientRepository {
	return &ClientRepository{db: db}
}

// Create inserts the client and fills in its generated id.
func (r *ClientRepository) Create(ctx context.Context, client *model.Client) error {
	query := `INSERT INTO clientes (nome, cpf_cnpj)
	          VALUES ($1, $2)
	          RETURNING id`

	err := r.db.QueryRowContext(ctx, query, client.Nome, client.CpfCnpj).Scan(&client.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByID returns the client with the given id, or (nil, nil) when no such
// client exists.
func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	query := `SELECT id, nome, cpf_cnpj FROM clientes
	          WHERE id = $1`

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// GetByTaxID returns the client with the given cpf_cnpj, or (nil, nil)
// when no such client exists.
func (r *ClientRepository) GetByTaxID(ctx context.Context, cpfCnpj string) (*model.Client, error) {
	query := `SELECT id, nome, cpf_cnpj FROM clientes
	          WHERE cpf_cnpj = $1`

	return r.scanOne(r.db.QueryRowContext(ctx, query, cpfCnpj))
}

// List returns every client in insertion order.
func (r *ClientRepository) List(ctx context.Context) ([]*model.Client, error) {
	query := `SELECT id, nome, cpf_cnpj FROM clientes
	          ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var clients []*model.Client
	for rows.Next() {
		client := &model.Client{}
		if err := rows.Scan(&client.ID, &client.Nome, &client.CpfCnpj); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return clients, nil
}

func (r *ClientRepository) scanOne(row *sql.Row) (*model.Client, error) {
	client := &model.Client{}
	err := row.Scan(&client.ID, &client.Nome, &client.CpfCnpj)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return client, nil
}
