// Package httpd binds everything together: a listener, the accept loop,
// and one request-serving session per connection.
package httpd

import (
	"context"
	"net"
	"time"

	"golang.org/x/net/netutil"

	"httphead/internal/server/http"
	"httphead/internal/server/tcp"
)

const (
	DefaultReadDeadline   = 3 * time.Minute
	DefaultWriteDeadline  = 1 * time.Minute
	DefaultHeadTimeout    = 30 * time.Second
	DefaultMaxBodyBytes   = 4 * 1024 * 1024
	DefaultReadBufferSize = 4096
)

// Server reads requests off accepted connections and feeds them to
// Handler. Addr and Handler must be set; everything else falls back to the
// defaults above.
type Server struct {
	Addr    string
	Handler http.Handler

	// HeadTimeout bounds assembling one complete request head, however
	// many reads that takes. ReadDeadline and WriteDeadline bound single
	// transport operations. Negative values disable the corresponding
	// limit.
	HeadTimeout   time.Duration
	ReadDeadline  time.Duration
	WriteDeadline time.Duration

	// MaxConns caps concurrently served connections; 0 means no cap.
	MaxConns int

	MaxBodyBytes   int
	ReadBufferSize int
}

// ListenAndServe binds Addr and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	sock, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}

	return s.Serve(ctx, sock)
}

// Serve accepts from sock until ctx is done. Cancelling closes the
// listener and every live connection, so sessions blocked mid-read unwind
// instead of holding the shutdown.
func (s *Server) Serve(ctx context.Context, sock net.Listener) error {
	if s.MaxConns > 0 {
		sock = netutil.LimitListener(sock, s.MaxConns)
	}

	conns := newConnSet()
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			conns.CloseAll()
		case <-done:
		}
	}()

	return tcp.Run(ctx, sock, func(conn net.Conn) {
		if !conns.Add(conn) {
			_ = conn.Close()

			return
		}
		defer conns.Remove(conn)

		client := tcp.NewClient(conn, s.readDeadline(), s.writeDeadline(), make([]byte, s.readBufferSize()))
		http.New(client, s.Handler, s.headTimeout(), s.maxBodyBytes()).Serve()
	})
}

func (s *Server) headTimeout() time.Duration {
	if s.HeadTimeout == 0 {
		return DefaultHeadTimeout
	}

	return s.HeadTimeout
}

func (s *Server) readDeadline() time.Duration {
	if s.ReadDeadline == 0 {
		return DefaultReadDeadline
	}

	if s.ReadDeadline < 0 {
		return 0
	}

	return s.ReadDeadline
}

func (s *Server) writeDeadline() time.Duration {
	if s.WriteDeadline == 0 {
		return DefaultWriteDeadline
	}

	if s.WriteDeadline < 0 {
		return 0
	}

	return s.WriteDeadline
}

func (s *Server) maxBodyBytes() int {
	if s.MaxBodyBytes <= 0 {
		return DefaultMaxBodyBytes
	}

	return s.MaxBodyBytes
}

func (s *Server) readBufferSize() int {
	if s.ReadBufferSize <= 0 {
		return DefaultReadBufferSize
	}

	return s.ReadBufferSize
}
