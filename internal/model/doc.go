// Package model defines the domain entities and the API error type.
//
// Three entities exist, all create-only and read-only through the API:
//
//   - User: account with a display name, email and password hash
//   - Client: collection customer identified by a cpf_cnpj tax id
//   - Collection: scheduled pickup owned by exactly one client
//
// Wire names are the Portuguese field names of the public contract
// (nome, senha, cpf_cnpj, cliente_id, data_coleta, efetuada). Collection
// dates cross the API strictly as YYYY-MM-DD strings; DateLayout is the
// canonical format.
package model
