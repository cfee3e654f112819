package transport

import (
	"io"
	"time"
)

type Client interface {
	Read() ([]byte, error)
}

type deadliner interface {
	SetReadDeadline(time.Time) error
}

type client struct {
	src     io.Reader
	buff    []byte
	timeout time.Duration
}

// NewClient returns a client reading from src into the buffer. If src supports read
// deadlines (as net.Conn does) and timeout is positive, every read is limited by it.
func NewClient(src io.Reader, timeout time.Duration, buff []byte) Client {
	return &client{
		src:     src,
		buff:    buff,
		timeout: timeout,
	}
}

// Read reads data into the internal buffer and returns a piece of it back. The returned
// slice is valid until the next call.
func (c *client) Read() ([]byte, error) {
	if conn, ok := c.src.(deadliner); ok && c.timeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
			return nil, err
		}
	}

	n, err := c.src.Read(c.buff)
	return c.buff[:n], err
}
