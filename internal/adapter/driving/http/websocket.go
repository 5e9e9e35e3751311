package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Wyydra/ya-relay/internal/adapter/driven/gateway/ws"
	"github.com/Wyydra/ya-relay/internal/core/domain"
	"github.com/Wyydra/ya-relay/internal/core/service"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// ServeWS authenticates before upgrading, then reads frames in order until
// the peer goes away.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	session, err := h.Sessions.Open(r.Context(), credential(r))
	if err != nil {
		log.Info().Err(err).Str("remote_addr", r.RemoteAddr).Msg("Rejected websocket handshake")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Error while upgrading ws")
		h.Sessions.Close(session)
		return
	}
	h.active.Add(1)
	defer h.active.Done()

	c := session.Connection()
	client := ws.NewWSClient(c.ID, c.UserID, conn, ws.ClientOptions{
		QueueSize:    h.opts.QueueSize,
		WriteTimeout: h.opts.WriteTimeout,
		PingInterval: h.opts.PingInterval,
	})
	l := log.With().
		Str("connection_id", c.ID.String()).
		Str("user_id", c.UserID.String()).
		Logger()

	// Outlives the request so in-flight store writes finish after a disconnect.
	ctx := context.WithoutCancel(r.Context())

	h.Hub.Register(client)
	if err := h.Sessions.Activate(ctx, session); err != nil {
		l.Error().Err(err).Msg("Failed to activate session")
		h.Hub.Unregister(client)
		_ = client.Close()
		return
	}
	h.Metrics.ConnectionOpened()
	l.Info().Msg("New client connected")

	go client.WritePump()

	defer func() {
		h.Sessions.Close(session)
		h.Hub.Unregister(client)
		_ = client.Close()
		h.Metrics.ConnectionClosed()
		l.Info().Msg("Client disconnected")
	}()

	conn.SetReadLimit(int64(h.opts.MaxFrameBytes))
	_ = conn.SetReadDeadline(time.Now().Add(h.opts.PongTimeout))
	conn.SetPongHandler(func(string) error {
		h.Sessions.Touch(session)
		return conn.SetReadDeadline(time.Now().Add(h.opts.PongTimeout))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				l.Error().Err(err).Msg("Unexpected close error")
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(h.opts.PongTimeout))
		h.Sessions.Touch(session)

		frame, err := ws.DecodeFrame(data)
		if err != nil {
			l.Debug().Err(err).Msg("Dropping malformed frame")
			h.deliver(ctx, []service.Delivery{{
				To:    []domain.ConnectionID{c.ID},
				Event: domain.NewEvent(domain.EventError, domain.ErrorPayload{Error: err.Error()}),
			}})
			continue
		}
		h.dispatch(ctx, session.Connection(), frame)
	}
}

// credential reads a bearer token from the Authorization header, falling back
// to the token query parameter since browsers cannot set headers on a
// websocket handshake.
func credential(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		if scheme, token, ok := strings.Cut(auth, " "); ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	return r.URL.Query().Get("token")
}
