package http

import (
	"context"
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

const (
	apiName    = "Rust REST API"
	apiVersion = "1.0.0"
)

// endpoint describes one public route for the info and home pages
type endpoint struct {
	Route       string
	Description string
}

var endpoints = []endpoint{
	{Route: "GET /", Description: "Homepage"},
	{Route: "GET /health", Description: "Health check"},
	{Route: "GET /api/", Description: "API info"},
	{Route: "GET /api/items", Description: "List all items"},
	{Route: "POST /api/items", Description: "Create new item"},
	{Route: "GET /api/items/{id}", Description: "Get item by ID"},
	{Route: "DELETE /api/items/{id}", Description: "Delete item by ID"},
}

var homePage = template.Must(template.New("home").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>{{.Name}}</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 50px auto; padding: 20px; }
        .endpoint { background: #f5f5f5; padding: 10px; margin: 10px 0; border-radius: 5px; }
        code { background: #e0e0e0; padding: 2px 5px; border-radius: 3px; }
    </style>
</head>
<body>
    <h1>{{.Name}}</h1>
    <p>Items API backed by PostgreSQL.</p>
    <h2>Endpoints</h2>
{{- range .Endpoints}}
    <div class="endpoint"><code>{{.Route}}</code> - {{.Description}}</div>
{{- end}}
    <p><a href="/api/">API Info</a> | <a href="/api/items">Items List</a> | <a href="/health">Health Check</a></p>
</body>
</html>
`))

// Pinger reports whether the database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// InfoHandler serves the static and probe routes
type InfoHandler struct {
	db  Pinger
	log *zap.Logger
}

// NewInfoHandler creates the info handlers
func NewInfoHandler(db Pinger, log *zap.Logger) *InfoHandler {
	return &InfoHandler{db: db, log: log}
}

// Health handles GET /health. It never touches the database.
func (h *InfoHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Message: "Rust API is running",
	})
}

// Ready handles GET /readyz
func (h *InfoHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		h.log.Error("Database readiness check failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, ReadyResponse{Status: "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, ReadyResponse{Status: "ready"})
}

// APIInfo handles GET /api/
func (h *InfoHandler) APIInfo(w http.ResponseWriter, r *http.Request) {
	routes := make(map[string]string, len(endpoints))
	for _, e := range endpoints {
		routes[e.Route] = e.Description
	}

	writeJSON(w, http.StatusOK, APIInfoResponse{
		Name:      apiName,
		Version:   apiVersion,
		Endpoints: routes,
	})
}

// Home handles GET /
func (h *InfoHandler) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := homePage.Execute(w, struct {
		Name      string
		Endpoints []endpoint
	}{
		Name:      apiName,
		Endpoints: endpoints,
	})
	if err != nil {
		h.log.Error("Failed to render home page", zap.Error(err))
	}
}
