package repository

import (
	"context"
	"fmt"

	"github.com/coletaops/coleta/api/internal/model"
)

// CollectionRepository persists scheduled collections in the coletas table.
type CollectionRepository struct {
	db DBTX
}

// NewCollectionRepository creates a new collection repository.
func NewCollectionRepository(db DBTX) *CollectionRepository {
	return &CollectionRepository{db: db}
}

// Create inserts the collection and fills in its generated id.
func (r *CollectionRepository) Create(ctx context.Context, collection *model.Collection) error {
	query := `INSERT INTO coletas (data_coleta, efetuada, cliente_id)
	          VALUES ($1, $2, $3)
	          RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		collection.DataColeta, collection.Efetuada, collection.ClienteID).Scan(&collection.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListByClient returns the client's collections in insertion order.
func (r *CollectionRepository) ListByClient(ctx context.Context, clienteID int64) ([]*model.Collection, error) {
	query := `SELECT id, data_coleta, efetuada, cliente_id FROM coletas
	          WHERE cliente_id = $1
	          ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, clienteID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var collections []*model.Collection
	for rows.Next() {
		collection := &model.Collection{}
		if err := rows.Scan(&collection.ID, &collection.DataColeta, &collection.Efetuada, &collection.ClienteID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		collections = append(collections, collection)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return collections, nil
}
