package service

import (
	"context"
	"strings"

	"github.com/coletaops/coleta/api/internal/model"
)

// ClientRepository defines the interface for client storage
type ClientRepository interface {
	Create(ctx context.Context, client *model.Client) error
	GetByID(ctx context.Context, id int64) (*model.Client, error)
	GetByTaxID(ctx context.Context, cpfCnpj string) (*model.Client, error)
	List(ctx context.Context) ([]*model.Client, error)
}

// ClientService handles client registration and listing.
type ClientService struct {
	clientRepo ClientRepository
}

// ClientServiceConfig holds configuration for the client service
type ClientServiceConfig struct {
	ClientRepo ClientRepository
}

// NewClientService creates a new client service
func NewClientService(cfg ClientServiceConfig) *ClientService {
	return &ClientService{clientRepo: cfg.ClientRepo}
}

// ClientRegisterRequest represents a client registration request
type ClientRegisterRequest struct {
	Nome    string
	CpfCnpj string
}

// Register creates a new client. The duplicate cpf_cnpj defense is the
// same check-then-act pre-read as user registration.
func (s *ClientService) Register(ctx context.Context, req ClientRegisterRequest) (*model.Client, error) {
	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		return nil, ErrNomeRequired
	}
	if req.CpfCnpj == "" {
		return nil, ErrCpfCnpjRequired
	}

	existing, err := s.clientRepo.GetByTaxID(ctx, req.CpfCnpj)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrTaxIDAlreadyExists
	}

	client := &model.Client{
		Nome:    nome,
		CpfCnpj: req.CpfCnpj,
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// List returns every client in insertion order.
func (s *ClientService) List(ctx context.Context) ([]*model.Client, error) {
	return s.clientRepo.List(ctx)
}
