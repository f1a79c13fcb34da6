// Package broadcast implements the optional live telemetry broadcaster:
// a WebSocket hub that streams checkpoint history to a newly connected
// dashboard, then live checkpoint events as the dispatcher publishes
// them. It is never on the optimizer's hot path: publishing to it is
// always non-blocking and a slow or absent viewer cannot affect a run.
package broadcast

import (
	"context"
	"log"
	"net/http"

	"spsatune/internal/model"
	"spsatune/internal/state"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // dashboards are read-only and same-origin is not assumed
	},
}

// Broadcaster receives CheckpointEvents and fans them out to WS clients.
type Broadcaster struct {
	input  <-chan model.CheckpointEvent
	buffer *state.RingBuffer
}

func NewBroadcaster(input <-chan model.CheckpointEvent, buffer *state.RingBuffer) *Broadcaster {
	return &Broadcaster{input: input, buffer: buffer}
}

// Start launches the hub and an HTTP server on addr, serving /ws. It
// blocks until ctx is cancelled, then shuts the server down and
// returns nil (or the listen error if startup failed).
func (b *Broadcaster) Start(ctx context.Context, addr string) error {
	hub := newHub(b.buffer)
	go hub.run(b.input)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWs(hub, w, r)
	})

	srv := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[live] listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		return srv.Close()
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// Hub maintains active clients and broadcasts MsgPack messages to all.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	buffer     *state.RingBuffer
}

func newHub(buffer *state.RingBuffer) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		buffer:     buffer,
	}
}

func (h *Hub) run(input <-chan model.CheckpointEvent) {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			log.Printf("[live] client connected (%d total)", len(h.clients))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("[live] client disconnected (%d total)", len(h.clients))
			}
		case event, ok := <-input:
			if !ok {
				return
			}
			// Serialize ONCE per event.
			msg := event.AppendMsgPack(make([]byte, 0, 256))

			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					// slow client: drop this tick, don't stall the hub.
				}
			}
		}
	}
}

type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// ═══════════════════════════════════════════════════════════════
// HISTORY REPLAY PROTOCOL
// ═══════════════════════════════════════════════════════════════
//
// Instead of one giant MsgPack array, history streams as individual
// small messages:
//
//   Message 1: MsgPack uint32 = count of history checkpoints
//   Message 2..N+1: individual checkpoint-event maps
//   After: client registered for live checkpoint events
//
// A dashboard detects the header (typeof decoded === 'number') and
// shows a loading indicator until all history events arrive.

func serveWs(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	client := &Client{hub: hub, conn: conn, send: make(chan []byte, 256)}

	if hub.buffer != nil {
		events := hub.buffer.GetAll()
		if len(events) > 0 {
			n := uint32(len(events))
			header := []byte{0xce, byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)}
			if err := conn.WriteMessage(websocket.BinaryMessage, header); err != nil {
				log.Printf("[live] failed to send history header: %v", err)
				conn.Close()
				return
			}

			for sent, e := range events {
				msg := e.AppendMsgPack(make([]byte, 0, 256))
				if err := conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
					log.Printf("[live] history stream interrupted after %d events: %v", sent, err)
					conn.Close()
					return
				}
			}
			log.Printf("[live] streamed %d history events to new client", len(events))
		}
	}

	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for {
		message, ok := <-c.send
		if !ok {
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		w, err := c.conn.NextWriter(websocket.BinaryMessage)
		if err != nil {
			return
		}
		w.Write(message)

		if err := w.Close(); err != nil {
			return
		}
	}
}
