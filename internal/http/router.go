package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// NewRouter builds the route table. Paths and methods match exactly; anything
// else gets the mux defaults (404, or 405 for a known path).
func NewRouter(items *ItemsHandler, info *InfoHandler, metrics *Metrics, log *zap.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestID, Logging(log), metrics.Middleware)

	r.HandleFunc("/", info.Home).Methods(http.MethodGet)
	r.HandleFunc("/health", info.Health).Methods(http.MethodGet)
	r.HandleFunc("/readyz", info.Ready).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/api/", info.APIInfo).Methods(http.MethodGet)

	r.HandleFunc("/api/items", items.List).Methods(http.MethodGet)
	r.HandleFunc("/api/items", items.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/items/{id:[0-9]+}", items.Get).Methods(http.MethodGet)
	r.HandleFunc("/api/items/{id:[0-9]+}", items.Delete).Methods(http.MethodDelete)

	return r
}
