package service

import (
	"context"
	"time"

	"github.com/coletaops/coleta/api/internal/model"
)

// CollectionRepository defines the interface for collection storage
type CollectionRepository interface {
	Create(ctx context.Context, collection *model.Collection) error
	ListByClient(ctx context.Context, clienteID int64) ([]*model.Collection, error)
}

// CollectionService handles collection registration and per-client listing.
type CollectionService struct {
	collectionRepo CollectionRepository
	clientRepo     ClientRepository
}

// CollectionServiceConfig holds configuration for the collection service
type CollectionServiceConfig struct {
	CollectionRepo CollectionRepository
	ClientRepo     ClientRepository
}

// NewCollectionService creates a new collection service
func NewCollectionService(cfg CollectionServiceConfig) *CollectionService {
	return &CollectionService{
		collectionRepo: cfg.CollectionRepo,
		clientRepo:     cfg.ClientRepo,
	}
}

// CollectionRegisterRequest represents a collection registration request.
// Efetuada defaults to false when omitted by the caller.
type CollectionRegisterRequest struct {
	ClienteID  int64
	DataColeta string
	Efetuada   bool
}

// Register schedules a collection for an existing client. The client is
// resolved before the date is parsed, so an unknown client wins over a
// bad date when both are wrong.
func (s *CollectionService) Register(ctx context.Context, req CollectionRegisterRequest) (*model.Collection, error) {
	if req.ClienteID <= 0 {
		return nil, ErrClienteIDRequired
	}

	client, err := s.clientRepo.GetByID(ctx, req.ClienteID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	if req.DataColeta == "" {
		return nil, ErrDataColetaRequired
	}
	date, err := time.Parse(model.DateLayout, req.DataColeta)
	if err != nil {
		return nil, ErrInvalidDate
	}

	collection := &model.Collection{
		ClienteID:  client.ID,
		DataColeta: date,
		Efetuada:   req.Efetuada,
	}
	if err := s.collectionRepo.Create(ctx, collection); err != nil {
		return nil, err
	}
	return collection, nil
}

// ClientCollections pairs a client summary with its collections.
type ClientCollections struct {
	Client      *model.Client
	Collections []*model.Collection
}

// ListByClient returns the client's summary and its collections in
// insertion order.
func (s *CollectionService) ListByClient(ctx context.Context, clienteID int64) (*ClientCollections, error) {
	client, err := s.clientRepo.GetByID(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	collections, err := s.collectionRepo.ListByClient(ctx, clienteID)
	if err != nil {
		return nil, err
	}

	return &ClientCollections{Client: client, Collections: collections}, nil
}
