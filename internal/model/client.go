package model

// Client represents a client of the collection operation. The cpf_cnpj tax
// identifier is unique by business rule only; the storage layer does not
// enforce it and registration relies on a pre-read check.
type Client struct {
	ID      int64  `json:"id"`
	Nome    string `json:"nome"`
	CpfCnpj string `json:"cpf_cnpj"`
}
