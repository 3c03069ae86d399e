package httpd

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"httphead/core/message"
)

func TestServer(t *testing.T) {
	sock, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	server := &Server{
		Handler: func(request *message.Request) *message.Response {
			return &message.Response{Status: message.StatusOK, Body: []byte(request.Target.Path)}
		},
		MaxConns: 4,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	finished := make(chan error, 1)
	go func() { finished <- server.Serve(ctx, sock) }()

	conn, err := net.Dial("tcp", sock.Addr().String())
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()
	require.NoError(t, conn.SetDeadline(time.Now().Add(5*time.Second)))

	_, err = conn.Write([]byte("GET /ping HTTP/1.1\r\nHost: localhost\r\n\r\n"))
	require.NoError(t, err)

	expect := "HTTP/1.1 200 OK\r\ncontent-length: 5\r\n\r\n/ping"
	buff := make([]byte, len(expect))
	_, err = io.ReadFull(conn, buff)
	require.NoError(t, err)
	require.Equal(t, expect, string(buff))

	cancel()

	select {
	case err = <-finished:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("the server did not stop")
	}

	// the shutdown cut our keep-alive connection loose as well
	_, err = conn.Read(make([]byte, 1))
	require.ErrorIs(t, err, io.EOF)
}

func TestListenAndServeBadAddr(t *testing.T) {
	server := &Server{Addr: "127.0.0.1:notaport", Handler: func(*message.Request) *message.Response {
		return nil
	}}

	require.Error(t, server.ListenAndServe(context.Background()))
}
