package ws

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/services/access"
	"storefront/internal/core/domain/services/lifecycle"
	"storefront/internal/pkg/auth"
	"storefront/internal/pkg/errs"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 64
)

// Client is one WebSocket connection subscribed to a branch room.
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	branchID kernel.UUID
	send     chan []byte
	// reports is set when the subscriber may view the branch report.
	reports bool
}

// readPump only watches for disconnects; clients never send anything useful.
func (c *Client) readPump() {
	defer func() {
		c.hub.leave(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Debug("websocket closed", "error", err)
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ActorLookup resolves the actor named by a token.
type ActorLookup interface {
	Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error)
}

// Handler authenticates subscribers and attaches them to the hub. Only actors
// allowed to view the branch may join its room, and branch summaries go only
// to those allowed to view its report.
type Handler struct {
	hub        *Hub
	tokens     *auth.Tokens
	actors     ActorLookup
	controller *lifecycle.Controller
	upgrader   websocket.Upgrader
	logger     *slog.Logger
}

func NewHandler(
	hub *Hub,
	tokens *auth.Tokens,
	actors ActorLookup,
	controller *lifecycle.Controller,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		hub:        hub,
		tokens:     tokens,
		actors:     actors,
		controller: controller,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The token is the credential, not the origin.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger.With("component", "ws_handler"),
	}
}

// ServeBranch upgrades the request and subscribes it to branchID. The token
// comes from the "token" query parameter since browsers cannot set headers on
// WebSocket requests.
func (h *Handler) ServeBranch(w http.ResponseWriter, r *http.Request, branchID kernel.UUID) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}

	actorID, err := h.tokens.Parse(token)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	subscriber, err := h.actors.Get(r.Context(), actorID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		h.logger.Error("load subscriber", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err = h.controller.Authorize(subscriber, access.Branch(branchID), access.View); err != nil {
		http.Error(w, "branch access denied", http.StatusForbidden)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := &Client{
		hub:      h.hub,
		conn:     conn,
		branchID: branchID,
		send:     make(chan []byte, sendBuffer),
		reports:  h.controller.Authorize(subscriber, access.Report(branchID), access.View) == nil,
	}
	if !h.hub.join(client) {
		_ = conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
