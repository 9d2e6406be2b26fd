package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFullFlow walks the whole API surface the way a fresh client would:
// sign up, log in, register a client, schedule a collection, then read
// it back through the per-client listing.
func TestFullFlow(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/users", "", map[string]string{
		"nome": "Maria", "email": "maria@example.com", "senha": "s3nh4",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = env.do(t, http.MethodPost, "/login", "", map[string]string{
		"email": "maria@example.com", "senha": "s3nh4",
	})
	require.Equal(t, http.StatusOK, rr.Code)
	tok := decodeBody[LoginResponse](t, rr).Token
	require.NotEmpty(t, tok)

	rr = env.do(t, http.MethodPost, "/clients", tok, map[string]string{
		"nome": "Padaria Central", "cpf_cnpj": "12345678000190",
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	clientID := decodeBody[ClientResponse](t, rr).ID

	rr = env.do(t, http.MethodPost, "/collections", tok, map[string]any{
		"cliente_id": clientID, "data_coleta": "2024-06-01",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = env.do(t, http.MethodGet, "/clients/1/collections", tok, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeBody[ClientCollectionsResponse](t, rr)
	require.Equal(t, "Padaria Central", resp.Cliente.Nome)
	require.Len(t, resp.Coletas, 1)
	require.Equal(t, "2024-06-01", resp.Coletas[0].DataColeta)
	require.False(t, resp.Coletas[0].Efetuada)
}
