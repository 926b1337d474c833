package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/projetvet/projetvet-go/internal/application"
	"github.com/projetvet/projetvet-go/pkg/response"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// EntryEventHub fans status-change events out to websocket subscribers.
// It implements application.Broadcaster.
type EntryEventHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]chan []byte
}

func NewEntryEventHub() *EntryEventHub {
	return &EntryEventHub{conns: make(map[*websocket.Conn]chan []byte)}
}

func (h *EntryEventHub) BroadcastStatusChange(ev application.StatusEvent) {
	msg, err := json.Marshal(ev)
	if err != nil {
		log.Printf("failed to encode status event: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, send := range h.conns {
		select {
		case send <- msg:
		default:
			// Slow consumer; drop the connection rather than block.
			close(send)
			delete(h.conns, conn)
		}
	}
}

func (h *EntryEventHub) register(conn *websocket.Conn) chan []byte {
	send := make(chan []byte, 64)
	h.mu.Lock()
	h.conns[conn] = send
	h.mu.Unlock()
	return send
}

func (h *EntryEventHub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	if send, ok := h.conns[conn]; ok {
		close(send)
		delete(h.conns, conn)
	}
	h.mu.Unlock()
	_ = conn.Close()
}

// Subscribe godoc
// @Summary Stream entry status changes over websocket
// @Tags entries
// @Router /ws/entries [get]
func (h *EntryEventHub) Subscribe(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		return
	}

	send := h.register(conn)

	// Writer side: events plus heartbeat pings.
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer func() {
			ticker.Stop()
			h.unregister(conn)
		}()

		for {
			select {
			case msg, ok := <-send:
				if !ok {
					return
				}
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					return
				}
			case <-ticker.C:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	// Reader side: drain control frames and refresh the pong deadline.
	go func() {
		defer h.unregister(conn)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
