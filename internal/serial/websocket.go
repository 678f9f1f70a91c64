package serial

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/ashgrove/dmgcore/pkg/log"
)

// WebSocketSink broadcasts each transmitted serial byte, hex-encoded
// and newline-delimited, to every connected websocket client. It
// implements Sink.
type WebSocketSink struct {
	upgrader websocket.Upgrader
	log      log.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewWebSocketSink returns a sink with no connected clients yet.
// Register it with an http.ServeMux via Handler.
func NewWebSocketSink(logger log.Logger) *WebSocketSink {
	if logger == nil {
		logger = log.NewNull()
	}
	return &WebSocketSink{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		log:     logger,
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Handler upgrades incoming HTTP connections to websockets and tracks
// them as broadcast targets until they disconnect.
func (s *WebSocketSink) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warnf("serial: websocket upgrade failed: %v", err)
		return
	}

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()

	go s.drain(conn)
}

// drain discards inbound frames and removes conn from the broadcast
// set once the client disconnects.
func (s *WebSocketSink) drain(conn *websocket.Conn) {
	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Send implements Sink by broadcasting b to every connected client.
func (s *WebSocketSink) Send(b byte) {
	msg := []byte(fmt.Sprintf("%02x\n", b))

	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			s.log.Warnf("serial: websocket write failed: %v", err)
		}
	}
}
