package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/coletaops/coleta/api/internal/middleware"
	"github.com/coletaops/coleta/api/internal/model"
	"github.com/coletaops/coleta/api/internal/service"
)

// CollectionHandler handles collection registration and per-client listing
type CollectionHandler struct {
	collectionService *service.CollectionService
}

// NewCollectionHandler creates a new collection handler
func NewCollectionHandler(collectionService *service.CollectionService) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

// RegisterRoutes attaches the collection endpoints to the mux; both
// require authentication.
func (h *CollectionHandler) RegisterRoutes(mux *http.ServeMux, auth middleware.Middleware) {
	mux.Handle("POST /collections", auth(http.HandlerFunc(h.Register)))
	mux.Handle("GET /clients/{id}/collections", auth(http.HandlerFunc(h.ListByClient)))
}

// CollectionRegisterRequest represents the collection register endpoint
// request body. Efetuada defaults to false when omitted.
type CollectionRegisterRequest struct {
	ClienteID  int64  `json:"cliente_id"`
	DataColeta string `json:"data_coleta"`
	Efetuada   bool   `json:"efetuada"`
}

// CollectionResponse represents a collection in API responses; the date is
// re-serialized in YYYY-MM-DD form.
type CollectionResponse struct {
	ID         int64  `json:"id"`
	ClienteID  int64  `json:"cliente_id"`
	DataColeta string `json:"data_coleta"`
	Efetuada   bool   `json:"efetuada"`
}

// ClientCollectionsResponse pairs the client summary with its collections
type ClientCollectionsResponse struct {
	Cliente ClientResponse       `json:"cliente"`
	Coletas []CollectionResponse `json:"coletas"`
}

// Register handles POST /collections
func (h *CollectionHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CollectionRegisterRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	collection, err := h.collectionService.Register(r.Context(), service.CollectionRegisterRequest{
		ClienteID:  req.ClienteID,
		DataColeta: req.DataColeta,
		Efetuada:   req.Efetuada,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, toCollectionResponse(collection))
}

// ListByClient handles GET /clients/{id}/collections
func (h *CollectionHandler) ListByClient(w http.ResponseWriter, r *http.Request) {
	// A non-numeric id cannot reference any client; report it the same
	// way as an unknown one.
	clienteID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		WriteError(w, model.NewNotFoundError("client"))
		return
	}

	result, err := h.collectionService.ListByClient(r.Context(), clienteID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	coletas := make([]CollectionResponse, 0, len(result.Collections))
	for _, collection := range result.Collections {
		coletas = append(coletas, toCollectionResponse(collection))
	}

	WriteJSON(w, http.StatusOK, ClientCollectionsResponse{
		Cliente: toClientResponse(result.Client),
		Coletas: coletas,
	})
}

func (h *CollectionHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrClienteIDRequired),
		errors.Is(err, service.ErrDataColetaRequired):
		WriteError(w, model.NewBadRequestError(err.Error()))
	case errors.Is(err, service.ErrInvalidDate):
		WriteError(w, model.NewBadRequestError("invalid date, use the YYYY-MM-DD format"))
	case errors.Is(err, service.ErrClientNotFound):
		WriteError(w, model.NewNotFoundError("client"))
	default:
		slog.Error("unhandled collection error", "error", err)
		WriteError(w, model.NewInternalError(""))
	}
}

func toCollectionResponse(collection *model.Collection) CollectionResponse {
	return CollectionResponse{
		ID:         collection.ID,
		ClienteID:  collection.ClienteID,
		DataColeta: collection.DateString(),
		Efetuada:   collection.Efetuada,
	}
}
