package service

import "errors"

// Centralized service layer errors. Handlers map these to HTTP responses
// with errors.Is switches.

// ===== Authentication errors =====
var (
	ErrNomeRequired       = errors.New("nome is required")
	ErrEmailRequired      = errors.New("email is required")
	ErrSenhaRequired      = errors.New("senha is required")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ===== Client errors =====
var (
	ErrCpfCnpjRequired    = errors.New("cpf_cnpj is required")
	ErrTaxIDAlreadyExists = errors.New("client with this cpf_cnpj already exists")
	ErrClientNotFound     = errors.New("client not found")
)

// ===== Collection errors =====
var (
	ErrClienteIDRequired  = errors.New("cliente_id is required")
	ErrDataColetaRequired = errors.New("data_coleta is required")
	ErrInvalidDate        = errors.New("invalid date, use the YYYY-MM-DD format")
)
