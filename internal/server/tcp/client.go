package tcp

import (
	"net"
	"time"
)

type Client interface {
	Write([]byte) error
	Read() ([]byte, error)
	Unread([]byte)
	// SetReadDeadline pins an absolute instant bounding every following
	// Read. The zero time lifts the pin, falling back to the per-read
	// deadline the client was built with.
	SetReadDeadline(t time.Time) error
	Close() error
}

type client struct {
	conn                        net.Conn
	readDeadline, writeDeadline time.Duration
	pin                         time.Time
	buff                        []byte
	unread                      []byte
}

func NewClient(conn net.Conn, rDeadline, wDeadline time.Duration, buff []byte) Client {
	return &client{
		conn:          conn,
		readDeadline:  rDeadline,
		writeDeadline: wDeadline,
		buff:          buff,
	}
}

func (c *client) Write(data []byte) error {
	if c.writeDeadline > 0 {
		if err := c.conn.SetWriteDeadline(time.Now().Add(c.writeDeadline)); err != nil {
			return err
		}
	}

	_, err := c.conn.Write(data)

	return err
}

func (c *client) Read() ([]byte, error) {
	if len(c.unread) > 0 {
		data := c.unread
		c.unread = nil

		return data, nil
	}

	if err := c.conn.SetReadDeadline(c.nextDeadline()); err != nil {
		return nil, err
	}

	n, err := c.conn.Read(c.buff)
	if n > 0 {
		// hand out what arrived; a sticky error shows up again on the
		// next call anyway
		return c.buff[:n], nil
	}

	return nil, err
}

func (c *client) Unread(data []byte) {
	c.unread = data
}

func (c *client) SetReadDeadline(t time.Time) error {
	c.pin = t

	return nil
}

func (c *client) Close() error {
	return c.conn.Close()
}

func (c *client) nextDeadline() time.Time {
	if !c.pin.IsZero() {
		return c.pin
	}

	if c.readDeadline > 0 {
		return time.Now().Add(c.readDeadline)
	}

	return time.Time{}
}
