package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/bookstore/services/items/internal/db"
	"github.com/bookstore/services/items/internal/repo"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// ItemStore is the storage the item handlers need. *repo.ItemRepository
// satisfies it.
type ItemStore interface {
	ListItems(ctx context.Context) ([]db.Item, error)
	GetItem(ctx context.Context, id int32) (*db.Item, error)
	CreateItem(ctx context.Context, name string, description *string) (*db.Item, error)
	DeleteItem(ctx context.Context, id int32) error
}

// ItemsHandler serves the /api/items routes
type ItemsHandler struct {
	store ItemStore
	log   *zap.Logger
}

// NewItemsHandler creates the item handlers over a shared store
func NewItemsHandler(store ItemStore, log *zap.Logger) *ItemsHandler {
	return &ItemsHandler{
		store: store,
		log:   log,
	}
}

// List handles GET /api/items
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ListItems(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgDatabaseError)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponses(items))
}

// Get handles GET /api/items/{id}
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		writeError(w, http.StatusNotFound, msgItemNotFound)
		return
	}

	item, err := h.store.GetItem(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			writeError(w, http.StatusNotFound, msgItemNotFound)
			return
		}
		writeError(w, http.StatusInternalServerError, msgDatabaseError)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// Create handles POST /api/items
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	req, err := decodeCreateItemRequest(r.Body)
	if err != nil {
		h.log.Debug("Rejected create request", zap.Error(err))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.store.CreateItem(r.Context(), *req.Name, req.Description)
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgDatabaseError)
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(item))
}

// Delete handles DELETE /api/items/{id}
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		writeError(w, http.StatusNotFound, msgItemNotFound)
		return
	}

	if err := h.store.DeleteItem(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			writeError(w, http.StatusNotFound, msgItemNotFound)
			return
		}
		writeError(w, http.StatusInternalServerError, msgDatabaseError)
		return
	}

	writeJSON(w, http.StatusOK, DeleteResponse{Message: msgItemDeleted, ID: id})
}

// itemID reads the {id} path variable. The route only matches digits, so
// the only failure left is a value outside the id column's range, which
// cannot name an existing row.
func itemID(r *http.Request) (int32, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(id), true
}
