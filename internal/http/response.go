package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/bookstore/services/items/internal/db"
)

const (
	msgDatabaseError = "Database error"
	msgItemNotFound  = "Item not found"
	msgItemDeleted   = "Item deleted successfully"
)

// ItemResponse is the wire form of an item
type ItemResponse struct {
	ID          int32   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	CreatedAt   *string `json:"created_at"`
}

// CreateItemRequest is the body of POST /api/items. Pointers distinguish a
// missing field from an empty one.
type CreateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// ErrorResponse is the body of every 4xx/5xx produced by the handlers
type ErrorResponse struct {
	Error string `json:"error"`
}

// DeleteResponse confirms a successful delete
type DeleteResponse struct {
	Message string `json:"message"`
	ID      int32  `json:"id"`
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ReadyResponse is the readiness payload
type ReadyResponse struct {
	Status string `json:"status"`
}

// APIInfoResponse describes the service and its routes
type APIInfoResponse struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

var errNameRequired = errors.New("missing field `name`")

// toItemResponse is the single row-to-wire mapping used by every item handler.
func toItemResponse(item *db.Item) ItemResponse {
	resp := ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
	}
	if item.CreatedAt.Valid {
		createdAt := item.CreatedAt.String()
		resp.CreatedAt = &createdAt
	}
	return resp
}

func toItemResponses(items []db.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i := range items {
		out[i] = toItemResponse(&items[i])
	}
	return out
}

// decodeCreateItemRequest parses and checks a create body. Any error it
// returns is a client error.
func decodeCreateItemRequest(body io.Reader) (*CreateItemRequest, error) {
	var req CreateItemRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return nil, err
	}
	if req.Name == nil {
		return nil, errNameRequired
	}
	return &req, nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
