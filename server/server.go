package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
)

// Server is a one-shot HTTP/1.1 origin: one request per connection, no
// keep-alive.
type Server struct {
	Addr   string
	Config Config
}

// ListenAndServe binds Addr and accepts until the listener fails. Each
// connection is handled on its own goroutine; a connection error never
// takes the accept loop down.
func (s *Server) ListenAndServe() error {
	l, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	defer l.Close()

	for {
		conn, err := l.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			slog.Error(fmt.Sprintf("accept error: %s", err))
			continue
		}

		go func() {
			if err := s.handleConnection(conn); err != nil {
				slog.Error(fmt.Sprintf("http error: %s", err))
			}
		}()
	}
}
