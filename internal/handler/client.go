package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/coletaops/coleta/api/internal/middleware"
	"github.com/coletaops/coleta/api/internal/model"
	"github.com/coletaops/coleta/api/internal/service"
)

// ClientHandler handles client registration and listing
type ClientHandler struct {
	clientService *service.ClientService
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientService *service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// RegisterRoutes attaches the client endpoints to the mux; both require
// authentication.
func (h *ClientHandler) RegisterRoutes(mux *http.ServeMux, auth middleware.Middleware) {
	mux.Handle("POST /clients", auth(http.HandlerFunc(h.Register)))
	mux.Handle("GET /clients", auth(http.HandlerFunc(h.List)))
}

// ClientRegisterRequest represents the client register endpoint request body
type ClientRegisterRequest struct {
	Nome    string `json:"nome"`
	CpfCnpj string `json:"cpf_cnpj"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID      int64  `json:"id"`
	Nome    string `json:"nome"`
	CpfCnpj string `json:"cpf_cnpj"`
}

// Register handles POST /clients
func (h *ClientHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req ClientRegisterRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	client, err := h.clientService.Register(r.Context(), service.ClientRegisterRequest{
		Nome:    req.Nome,
		CpfCnpj: req.CpfCnpj,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, toClientResponse(client))
}

// List handles GET /clients
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientService.List(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	out := make([]ClientResponse, 0, len(clients))
	for _, client := range clients {
		out = append(out, toClientResponse(client))
	}
	WriteJSON(w, http.StatusOK, out)
}

func (h *ClientHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNomeRequired),
		errors.Is(err, service.ErrCpfCnpjRequired):
		WriteError(w, model.NewBadRequestError(err.Error()))
	case errors.Is(err, service.ErrTaxIDAlreadyExists):
		WriteError(w, model.NewBadRequestError("client with this cpf_cnpj already exists"))
	default:
		slog.Error("unhandled client error", "error", err)
		WriteError(w, model.NewInternalError(""))
	}
}

func toClientResponse(client *model.Client) ClientResponse {
	return ClientResponse{
		ID:      client.ID,
		Nome:    client.Nome,
		CpfCnpj: client.CpfCnpj,
	}
}
