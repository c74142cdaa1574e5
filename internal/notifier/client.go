package notifier

import (
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxIncomingSize = 512
	sendBufferSize  = 16
)

// Client is one live WebSocket channel of a user.
type Client struct {
	hub    *Hub
	userId string
	conn   *websocket.Conn
	send   chan []byte
}

func NewClient(hub *Hub, userId string, conn *websocket.Conn) *Client {
	return &Client{
		hub:    hub,
		userId: userId,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
	}
}

// Serve registers the client with the hub, runs the pumps and blocks
// until the connection is gone. The client is unregistered before Serve
// returns.
func (c *Client) Serve() {
	c.hub.register(c)
	go c.writePump()
	c.readPump()
}

// trySend never blocks: a client that cannot keep up loses the event.
func (c *Client) trySend(payload []byte) bool {
	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

// readPump drains the connection to process control frames. The client
// has nothing to say to us; any read error means the channel is dead.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxIncomingSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
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
