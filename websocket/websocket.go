package websocket

import (
	"log"
	"net/http"
	"sync"

	ws "github.com/gorilla/websocket"
)

// Conn wraps a websocket connection with write locking so the poller
// and future push sources can share it safely.
type Conn struct {
	*ws.Conn
	*sync.Mutex
}

var (
	upgrader = ws.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
)

func (c *Conn) WriteJSON(v any) error {
	c.Lock()
	err := c.Conn.WriteJSON(v)
	c.Unlock()

	if err != nil {
		log.Printf("Websocket::WriteJson error: %v", err)
	}
	return err
}

// NewConn upgrades the HTTP request to a websocket connection.
func NewConn(w http.ResponseWriter, r *http.Request) (*Conn, error) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Websocket upgrade error: %v", err)
		return nil, err
	}

	return &Conn{
		Conn:  conn,
		Mutex: new(sync.Mutex),
	}, nil
}
