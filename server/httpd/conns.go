package httpd

import (
	"net"
	"sync"
)

// connSet tracks live connections so a shutdown can cut them all loose.
// Once closed it stays closed, and late arrivals are refused.
type connSet struct {
	mu     sync.Mutex
	conns  map[net.Conn]struct{}
	closed bool
}

func newConnSet() *connSet {
	return &connSet{
		conns: make(map[net.Conn]struct{}),
	}
}

func (c *connSet) Add(conn net.Conn) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}

	c.conns[conn] = struct{}{}

	return true
}

func (c *connSet) Remove(conn net.Conn) {
	c.mu.Lock()
	delete(c.conns, conn)
	c.mu.Unlock()
}

func (c *connSet) CloseAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true

	for conn := range c.conns {
		_ = conn.Close()
	}
}
