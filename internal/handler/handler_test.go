package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coletaops/coleta/api/internal/middleware"
	"github.com/coletaops/coleta/api/internal/model"
	"github.com/coletaops/coleta/api/internal/service"
	"github.com/coletaops/coleta/api/pkg/token"
)

// ============================================================================
// In-memory repositories
// ============================================================================

type fakeUserRepo struct {
	users  []*model.User
	nextID int64
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	f.nextID++
	user.ID = f.nextID
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*model.User, error) {
	return f.users, nil
}

type fakeClientRepo struct {
	clients []*model.Client
	nextID  int64
}

func (f *fakeClientRepo) Create(ctx context.Context, client *model.Client) error {
	f.nextID++
	client.ID = f.nextID
	f.clients = append(f.clients, client)
	return nil
}

func (f *fakeClientRepo) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	for _, c := range f.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeClientRepo) GetByTaxID(ctx context.Context, cpfCnpj string) (*model.Client, error) {
	for _, c := range f.clients {
		if c.CpfCnpj == cpfCnpj {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeClientRepo) List(ctx context.Context) ([]*model.Client, error) {
	return f.clients, nil
}

type fakeCollectionRepo struct {
	collections []*model.Collection
	nextID      int64
}

func (f *fakeCollectionRepo) Create(ctx context.Context, collection *model.Collection) error {
	f.nextID++
	collection.ID = f.nextID
	f.collections = append(f.collections, collection)
	return nil
}

func (f *fakeCollectionRepo) ListByClient(ctx context.Context, clienteID int64) ([]*model.Collection, error) {
	var out []*model.Collection
	for _, c := range f.collections {
		if c.ClienteID == clienteID {
			out = append(out, c)
		}
	}
	return out, nil
}

// ============================================================================
// Test server
// ============================================================================

type testEnv struct {
	handler        http.Handler
	tokens         *token.Service
	userRepo       *fakeUserRepo
	clientRepo     *fakeClientRepo
	collectionRepo *fakeCollectionRepo
}

// newTestEnv wires the full HTTP surface the way main does, with
// in-memory repositories and a real token service.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	tokens, err := token.NewService(token.Config{Secret: "test-secret", ValidityMins: 60})
	require.NoError(t, err)

	userRepo := &fakeUserRepo{}
	clientRepo := &fakeClientRepo{}
	collectionRepo := &fakeCollectionRepo{}

	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo: userRepo,
		Tokens:   tokens,
	})
	clientService := service.NewClientService(service.ClientServiceConfig{
		ClientRepo: clientRepo,
	})
	collectionService := service.NewCollectionService(service.CollectionServiceConfig{
		CollectionRepo: collectionRepo,
		ClientRepo:     clientRepo,
	})

	mux := http.NewServeMux()
	auth := middleware.Auth(tokens)
	NewUserHandler(authService).RegisterRoutes(mux, auth)
	NewClientHandler(clientService).RegisterRoutes(mux, auth)
	NewCollectionHandler(collectionService).RegisterRoutes(mux, auth)

	return &testEnv{
		handler:        mux,
		tokens:         tokens,
		userRepo:       userRepo,
		clientRepo:     clientRepo,
		collectionRepo: collectionRepo,
	}
}

func (e *testEnv) do(t *testing.T, method, path, authToken string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	rr := httptest.NewRecorder()
	e.handler.ServeHTTP(rr, req)
	return rr
}

// register creates a user and returns a valid token for it.
func (e *testEnv) register(t *testing.T, nome, email, senha string) string {
	t.Helper()

	rr := e.do(t, http.MethodPost, "/users", "", map[string]string{
		"nome": nome, "email": email, "senha": senha,
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = e.do(t, http.MethodPost, "/login", "", map[string]string{
		"email": email, "senha": senha,
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}
