package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/nba-stats-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/players", handler.Players)
	mux.HandleFunc("/players/search", handler.SearchPlayer)
	mux.HandleFunc("/players/", handler.PlayerStats)
	return mux
}
