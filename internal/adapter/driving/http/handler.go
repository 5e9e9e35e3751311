package http

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/Wyydra/ya-relay/internal/adapter/driven/gateway/ws"
	"github.com/Wyydra/ya-relay/internal/core/port"
	"github.com/Wyydra/ya-relay/internal/core/service"
	"github.com/Wyydra/ya-relay/internal/observability"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/lo"
)

type Options struct {
	QueueSize      int
	WriteTimeout   time.Duration
	PongTimeout    time.Duration
	PingInterval   time.Duration
	MaxFrameBytes  int
	AllowedOrigins []string
}

type Handler struct {
	Sessions *service.SessionManager
	Relay    *service.Relay
	Calls    *service.CallService
	Hub      *ws.Hub
	Presence port.Presence
	Metrics  *observability.Metrics
	Gatherer prometheus.Gatherer

	opts     Options
	upgrader websocket.Upgrader
	routes   map[string]handlerFunc

	// upgraded connections still being served
	active sync.WaitGroup
}

func NewHandler(
	sessions *service.SessionManager,
	relay *service.Relay,
	calls *service.CallService,
	hub *ws.Hub,
	presence port.Presence,
	metrics *observability.Metrics,
	gatherer prometheus.Gatherer,
	opts Options,
) *Handler {
	h := &Handler{
		Sessions: sessions,
		Relay:    relay,
		Calls:    calls,
		Hub:      hub,
		Presence: presence,
		Metrics:  metrics,
		Gatherer: gatherer,
		opts:     opts,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     h.checkOrigin,
	}
	h.routes = h.newRoutes()
	return h
}

func (h *Handler) NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/ws", h.ServeWS)
	r.Get("/healthz", h.Health)
	if h.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// Wait blocks until every upgraded connection has been torn down. The http
// server does not track hijacked connections itself.
func (h *Handler) Wait() {
	h.active.Wait()
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status": "ok",
		"online": h.Presence.OnlineCount(),
	})
}

// Requests without an Origin header come from non-browser clients and are
// always accepted.
func (h *Handler) checkOrigin(r *http.Request) bool {
	if len(h.opts.AllowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	return origin == "" || lo.Contains(h.opts.AllowedOrigins, origin)
}
