package tcp

import (
	"context"
	"errors"
	"log"
	"net"
	"sync"
)

// Run accepts connections off sock until ctx is done, handing each one to
// onConn in a goroutine of its own. The listener is closed on the way out,
// and Run returns only after every handler has finished.
func Run(ctx context.Context, sock net.Listener, onConn func(conn net.Conn)) error {
	wg := new(sync.WaitGroup)
	done := make(chan struct{})
	defer close(done)
	defer func() { _ = sock.Close() }()

	go func() {
		select {
		case <-ctx.Done():
			// the only way to unblock Accept below
			_ = sock.Close()
		case <-done:
		}
	}()

	for {
		conn, err := sock.Accept()
		if err != nil {
			if ctx.Err() != nil {
				wg.Wait()

				return ctx.Err()
			}

			if errors.Is(err, net.ErrClosed) {
				wg.Wait()

				return err
			}

			log.Println("error accepting a connection:", err)
			continue
		}

		wg.Add(1)
		go func() {
			onConn(conn)
			wg.Done()
		}()
	}
}
