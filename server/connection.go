package server

import (
	"fmt"
	"log/slog"
	"net"
)

// handleConnection serves exactly one request and closes. Whatever goes
// wrong while reading or parsing, the client still gets the 500 page.
func (s *Server) handleConnection(conn net.Conn) error {
	defer conn.Close()

	req, err := readRequest(newLineReader(conn))
	if err != nil {
		conn.Write(responseInternalError.Bytes())
		return fmt.Errorf("read request: %w", err)
	}

	slog.Info("dispatch", "method", req.Method, "target", req.Target)

	if _, err := conn.Write(s.route(req).Bytes()); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}
