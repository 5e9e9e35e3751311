package ws

import (
	"errors"
	"sync"
	"time"

	"github.com/Wyydra/ya-relay/internal/core/domain"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	ErrClientClosed = errors.New("client closed")
	ErrQueueFull    = errors.New("outbound queue full")
)

type Client interface {
	ID() domain.ConnectionID
	// Enqueue never blocks. It fails with ErrClientClosed or ErrQueueFull.
	Enqueue(frame []byte) error
	CloseWith(code int, reason string) error
}

type ClientOptions struct {
	QueueSize    int
	WriteTimeout time.Duration
	PingInterval time.Duration
}

// WSClient owns the write side of a websocket connection. Only WritePump
// writes data frames; Close may be called from any goroutine.
type WSClient struct {
	id     domain.ConnectionID
	userID domain.UserID
	conn   *websocket.Conn
	opts   ClientOptions
	log    zerolog.Logger

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func NewWSClient(id domain.ConnectionID, userID domain.UserID, conn *websocket.Conn, opts ClientOptions) *WSClient {
	if opts.QueueSize < 1 {
		opts.QueueSize = 1
	}
	return &WSClient{
		id:     id,
		userID: userID,
		conn:   conn,
		opts:   opts,
		log: log.With().
			Str("connection_id", id.String()).
			Str("user_id", userID.String()).
			Logger(),
		send: make(chan []byte, opts.QueueSize),
		done: make(chan struct{}),
	}
}

func (c *WSClient) ID() domain.ConnectionID {
	return c.id
}

func (c *WSClient) Enqueue(frame []byte) error {
	select {
	case <-c.done:
		return ErrClientClosed
	default:
	}
	select {
	case c.send <- frame:
		return nil
	default:
		return ErrQueueFull
	}
}

func (c *WSClient) Close() error {
	return c.CloseWith(websocket.CloseNormalClosure, "")
}

func (c *WSClient) CloseWith(code int, reason string) error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)
		deadline := time.Now().Add(c.opts.WriteTimeout)
		_ = c.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), deadline)
		err = c.conn.Close()
	})
	return err
}

// WritePump drains the queue in order and keeps the peer alive with pings.
// It returns when the client is closed or a write fails.
func (c *WSClient) WritePump() {
	ticker := time.NewTicker(c.opts.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case frame := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.opts.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				c.log.Debug().Err(err).Msg("Write failed")
				_ = c.CloseWith(websocket.CloseAbnormalClosure, "")
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(c.opts.WriteTimeout)); err != nil {
				c.log.Debug().Err(err).Msg("Ping failed")
				_ = c.CloseWith(websocket.CloseAbnormalClosure, "")
				return
			}
		}
	}
}
