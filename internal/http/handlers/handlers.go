package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	domainstats "github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/logging"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
	"github.com/preston-bernstein/nba-stats-service/internal/resolver"
	"github.com/preston-bernstein/nba-stats-service/internal/stats"
)

// PlayerService is the facade the handlers serve.
type PlayerService interface {
	List(ctx context.Context, onlyActive bool) ([]players.Player, error)
	Find(ctx context.Context, q resolver.Query, includeInactive bool) (players.Player, bool, error)
	Stats(ctx context.Context, q resolver.Query, opts stats.Options) (domainstats.Result, bool, error)
	Ready() bool
}

// Handler wires HTTP routes to the player service.
type Handler struct {
	svc    PlayerService
	logger *slog.Logger
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc PlayerService, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

// ServeHTTP dispatches on path for callers that do not use the router.
func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch {
	case r.URL.Path == "/health":
		h.Health(w, r)
	case r.URL.Path == "/ready":
		h.Ready(w, r)
	case r.URL.Path == "/players":
		h.Players(w, r)
	case r.URL.Path == "/players/search":
		h.SearchPlayer(w, r)
	case strings.HasPrefix(r.URL.Path, "/players/"):
		h.PlayerStats(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	resp := map[string]string{"status": "ok"}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// Ready reports readiness once the roster has been loaded.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.svc == nil || !h.svc.Ready() {
		writeError(w, r, nethttp.StatusServiceUnavailable, "roster not loaded", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Players lists the roster; ?active=true keeps only active players.
func (h *Handler) Players(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	onlyActive, err := boolParam(r.URL.Query(), "active")
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid active flag (expected true or false)", h.logger)
		return
	}

	roster, err := h.svc.List(r.Context(), onlyActive)
	if err != nil {
		writeUpstreamError(w, r, err, h.logger)
		return
	}

	logging.Info(loggerFromContext(r, h.logger), "served roster", logging.FieldCount, len(roster))
	writeJSON(w, nethttp.StatusOK, players.NewRosterResponse(roster), h.logger)
}

// SearchPlayer resolves ?q= to a single player; ?inactive=true searches retired players too.
func (h *Handler) SearchPlayer(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	query := r.URL.Query()
	raw := strings.TrimSpace(query.Get("q"))
	if raw == "" {
		writeError(w, r, nethttp.StatusBadRequest, "missing query parameter q", h.logger)
		return
	}
	includeInactive, err := boolParam(query, "inactive")
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid inactive flag (expected true or false)", h.logger)
		return
	}

	p, ok, err := h.svc.Find(r.Context(), resolver.ParseQuery(raw), includeInactive)
	if err != nil {
		writeUpstreamError(w, r, err, h.logger)
		return
	}
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, p, h.logger)
}

// PlayerStats serves /players/{query}/stats. ?basic= and ?advanced= take
// true, false or a comma-separated code list; dashboard parameters such as
// Season or PerMode pass through as overrides.
func (h *Handler) PlayerStats(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	raw, ok := statsQuery(r.URL.EscapedPath())
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}
	if raw == "" {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player query", h.logger)
		return
	}

	opts := statsOptions(r.URL.Query())
	result, found, err := h.svc.Stats(r.Context(), resolver.ParseQuery(raw), opts)
	if err != nil {
		writeUpstreamError(w, r, err, h.logger)
		return
	}
	if !found {
		writeError(w, r, nethttp.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, result, h.logger)
}

// statsQuery extracts and unescapes {query} from /players/{query}/stats.
func statsQuery(escapedPath string) (string, bool) {
	rest, ok := strings.CutPrefix(escapedPath, "/players/")
	if !ok {
		return "", false
	}
	rest, ok = strings.CutSuffix(rest, "/stats")
	if !ok || strings.Contains(rest, "/") {
		return "", false
	}
	q, err := url.PathUnescape(rest)
	if err != nil {
		return "", true
	}
	return strings.TrimSpace(q), true
}

func statsOptions(query url.Values) stats.Options {
	defaults := stats.DefaultOptions()
	opts := stats.Options{
		Basic:    domainstats.ParseSelection(query.Get("basic"), defaults.Basic),
		Advanced: domainstats.ParseSelection(query.Get("advanced"), defaults.Advanced),
	}
	for key, values := range query {
		if len(values) == 0 || !providers.IsDashboardParam(key) {
			continue
		}
		if opts.Params == nil {
			opts.Params = make(map[string]string)
		}
		opts.Params[key] = values[0]
	}
	return opts
}

func boolParam(query url.Values, key string) (bool, error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}
