package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/coletaops/coleta/api/internal/middleware"
	"github.com/coletaops/coleta/api/internal/model"
	"github.com/coletaops/coleta/api/internal/service"
)

// UserHandler handles registration, login and user listing
type UserHandler struct {
	authService *service.AuthService
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService *service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// RegisterRoutes attaches the user endpoints to the mux. Registration and
// login are public; listing requires authentication.
func (h *UserHandler) RegisterRoutes(mux *http.ServeMux, auth middleware.Middleware) {
	mux.Handle("POST /users", http.HandlerFunc(h.Register))
	mux.Handle("POST /login", http.HandlerFunc(h.Login))
	mux.Handle("GET /users", auth(http.HandlerFunc(h.List)))
}

// RegisterRequest represents the register endpoint request body
type RegisterRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginRequest represents the login endpoint request body
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// UserResponse represents a user in API responses. The password hash is
// never part of it.
type UserResponse struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

// LoginResponse carries the authenticated user and its bearer token
type LoginResponse struct {
	Usuario UserResponse `json:"usuario"`
	Token   string       `json:"token"`
}

// Register handles POST /users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	user, err := h.authService.Register(r.Context(), service.RegisterRequest{
		Nome:  req.Nome,
		Email: req.Email,
		Senha: req.Senha,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, toUserResponse(user))
}

// Login handles POST /login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Senha)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, LoginResponse{
		Usuario: toUserResponse(result.User),
		Token:   result.Token,
	})
}

// List handles GET /users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListUsers(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}
	WriteJSON(w, http.StatusOK, out)
}

func (h *UserHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNomeRequired),
		errors.Is(err, service.ErrEmailRequired),
		errors.Is(err, service.ErrSenhaRequired):
		WriteError(w, model.NewBadRequestError(err.Error()))
	case errors.Is(err, service.ErrEmailAlreadyExists):
		WriteError(w, model.NewBadRequestError("email already registered"))
	case errors.Is(err, service.ErrUserNotFound):
		WriteError(w, model.NewUnauthorizedError("user does not exist"))
	case errors.Is(err, service.ErrInvalidCredentials):
		WriteError(w, model.NewUnauthorizedError("invalid email or password"))
	default:
		slog.Error("unhandled user error", "error", err)
		WriteError(w, model.NewInternalError(""))
	}
}

func toUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Nome:  user.Nome,
		Email: user.Email,
	}
}
