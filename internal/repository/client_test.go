package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/coletaops/coleta/api/internal/model"
)

func TestClientRepository_Create_Success(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewClientRepository(db)

	q := `(?s)^INSERT\s+INTO\s+clientes\s*\(nome,\s*cpf_cnpj\)\s*VALUES\s*\(\$1,\s*\$2\)\s*RETURNING\s+id$`
	mock.ExpectQuery(q).
		WithArgs("ACME", "123").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	client := &model.Client{Nome: "ACME", CpfCnpj: "123"}
	if err := repo.Create(context.Background(), client); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if client.ID != 5 {
		t.Fatalf("expected id 5, got %d", client.ID)
	}
}

func TestClientRepository_GetByID_Found(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewClientRepository(db)

	rows := sqlmock.NewRows([]string{"id", "nome", "cpf_cnpj"}).
		AddRow(int64(5), "ACME", "123")
	mock.ExpectQuery(`SELECT\s+id,\s+nome,\s+cpf_cnpj\s+FROM\s+clientes\s+WHERE\s+id`).
		WithArgs(int64(5)).
		WillReturnRows(rows)

	client, err := repo.GetByID(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if client == nil || client.CpfCnpj != "123" {
		t.Fatalf("unexpected client: %+v", client)
	}
}

func TestClientRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewClientRepository(db)

	mock.ExpectQuery(`SELECT\s+id,\s+nome,\s+cpf_cnpj\s+FROM\s+clientes\s+WHERE\s+id`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	client, err := repo.GetByID(context.Background(), 99)
	if err != nil {
		t.Fatalf("expected nil error for absent client, got %v", err)
	}
	if client != nil {
		t.Fatalf("expected nil client, got %+v", client)
	}
}

func TestClientRepository_GetByTaxID_Found(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewClientRepository(db)

	rows := sqlmock.NewRows([]string{"id", "nome", "cpf_cnpj"}).
		AddRow(int64(5), "ACME", "123")
	mock.ExpectQuery(`SELECT\s+id,\s+nome,\s+cpf_cnpj\s+FROM\s+clientes\s+WHERE\s+cpf_cnpj`).
		WithArgs("123").
		WillReturnRows(rows)

	client, err := repo.GetByTaxID(context.Background(), "123")
	if err != nil {
		t.Fatalf("GetByTaxID error: %v", err)
	}
	if client == nil || client.ID != 5 {
		t.Fatalf("unexpected client: %+v", client)
	}
}

func TestClientRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewClientRepository(db)

	rows := sqlmock.NewRows([]string{"id", "nome", "cpf_cnpj"}).
		AddRow(int64(1), "ACME", "123").
		AddRow(int64(2), "Globex", "456")
	mock.ExpectQuery(`SELECT\s+id,\s+nome,\s+cpf_cnpj\s+FROM\s+clientes\s+ORDER\s+BY\s+id`).
		WillReturnRows(rows)

	clients, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(clients) != 2 || clients[1].Nome != "Globex" {
		t.Fatalf("unexpected clients: %+v", clients)
	}
}
