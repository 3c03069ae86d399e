/*
Package head reads HTTP/1.1 request heads off a byte stream, taking the
stream exactly as the transport fragments it.

A head, as this package understands it:

	METHOD SP TARGET SP VERSION CRLF    the start line
	NAME ":" VALUE CRLF                 any number of header lines
	CRLF                                the terminating blank line

Reading is incremental: chunks are consumed one by one, and a head cut at
any byte boundary assembles into the same result as the same head arriving
whole. Whatever follows the blank line is not interpreted and is handed
back to the Source via Unread, so the body stays where the caller expects
it.

The package parses and validates; it does not retry, recover or close
connections. Every failure is terminal for the head being read, and the
set of failures is closed: the four sentinel errors plus StartLineError,
HeaderLineError and TooLongError are everything Read can return.
*/
package head

import "time"

// Source is the receiving side of a connection, the way the reader needs
// it.
type Source interface {
	// Read returns the next chunk, blocking until at least one byte is
	// there. The chunk is only valid until the next call.
	Read() ([]byte, error)
	// Unread pushes bytes back, making the next Read return them.
	Unread([]byte)
	// SetReadDeadline bounds every following Read by an absolute instant.
	// The zero time lifts the bound.
	SetReadDeadline(t time.Time) error
}

type options struct {
	completionTimeout time.Duration
}

type Option func(*options)

// WithCompletionTimeout bounds the whole Read call: assembling the
// complete head must fit into d no matter how many chunks it takes, so a
// peer trickling one byte per keep-alive cannot hold the reader for
// longer. Non-positive d means no bound, which is also the default.
func WithCompletionTimeout(d time.Duration) Option {
	return func(o *options) {
		o.completionTimeout = d
	}
}

// RequestHead is everything a request says before its body: the start
// line, the header block in wire order, and the already validated host.
type RequestHead struct {
	Method  Method
	Target  RequestTarget
	Headers Headers
	Host    Host
}

// Read assembles one complete request head from src. Empty lines ahead of
// the start line are skipped. The first violation wins: there is no
// partial result, and whatever was buffered by then is dropped, so after
// an error the only sound move left for the caller is closing the
// connection.
func Read(src Source, opts ...Option) (RequestHead, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.completionTimeout > 0 {
		if err := src.SetReadDeadline(time.Now().Add(o.completionTimeout)); err != nil {
			return RequestHead{}, ErrConnClosed
		}

		// the pin is ours, don't leak it into the caller's reads
		defer func() { _ = src.SetReadDeadline(time.Time{}) }()
	}

	lines := newLineReader(src)

	var (
		line []byte
		err  error
	)

	for {
		line, err = lines.next()
		if err != nil {
			return RequestHead{}, err
		}

		if !isBlank(line) {
			break
		}
	}

	method, target, err := parseRequestLine(line)
	if err != nil {
		return RequestHead{}, err
	}

	var headers Headers

	for {
		line, err = lines.next()
		if err != nil {
			return RequestHead{}, err
		}

		if isBlank(line) {
			break
		}

		header, err := parseHeaderLine(line)
		if err != nil {
			return RequestHead{}, err
		}

		headers = append(headers, header)
	}

	value, found := headers.Lookup("host")
	if !found {
		return RequestHead{}, ErrNoHost
	}

	host, err := ParseHost(value)
	if err != nil {
		return RequestHead{}, err
	}

	if rest := lines.rest(); len(rest) > 0 {
		src.Unread(rest)
	}

	return RequestHead{
		Method:  method,
		Target:  target,
		Headers: headers,
		Host:    host,
	}, nil
}

func isBlank(line []byte) bool {
	return len(line) == len(crlf)
}
