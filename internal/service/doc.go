// Package service implements the business rules between handlers and
// repositories: field validation, password hashing, duplicate pre-checks
// and token issuance.
//
// Repository interfaces are declared here, on the consumer side, so tests
// can substitute in-memory fakes. All service errors are sentinel values
// in errors.go; handlers translate them to HTTP statuses.
//
// The duplicate checks on user email and client cpf_cnpj are pre-reads
// with no backing storage constraint. Under concurrent registration both
// requests can pass the read and both rows land. This is a documented
// gap of the contract, not a target for silent hardening here.
package service
