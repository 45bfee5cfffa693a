package server

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// SafeConn wraps a websocket connection with a write mutex so event broadcasts
// and handler responses never interleave writes.
type SafeConn struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
	closed  bool
}

// NewSafeConn creates a new safe connection wrapper.
func NewSafeConn(conn *websocket.Conn) *SafeConn {
	return &SafeConn{conn: conn}
}

// WriteJSON safely writes JSON to the connection. Writes to closed connections
// are silently ignored.
func (sc *SafeConn) WriteJSON(v interface{}) error {
	sc.writeMu.Lock()
	defer sc.writeMu.Unlock()
	if sc.closed {
		return nil
	}
	return sc.conn.WriteJSON(v)
}

// Close closes the underlying connection.
func (sc *SafeConn) Close() error {
	sc.writeMu.Lock()
	sc.closed = true
	sc.writeMu.Unlock()
	return sc.conn.Close()
}

// handleWebSocket upgrades an editor connection and keeps it registered for
// suggestion events until it disconnects.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Logf("WebSocket upgrade error: %v", err)
		return
	}

	sc := NewSafeConn(conn)
	s.clientsMu.Lock()
	s.clients[sc] = true
	s.clientsMu.Unlock()
	s.logger.Log("Editor client connected.")

	defer func() {
		s.clientsMu.Lock()
		delete(s.clients, sc)
		s.clientsMu.Unlock()
		sc.Close()
		s.logger.Log("Editor client disconnected.")
	}()

	// The bridge does not accept commands over the socket yet; drain until the
	// client goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// broadcast pushes an event to every connected editor client.
func (s *Server) broadcast(v interface{}) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	for conn := range s.clients {
		if err := conn.WriteJSON(v); err != nil {
			s.logger.Logf("WebSocket broadcast error: %v", err)
		}
	}
}
