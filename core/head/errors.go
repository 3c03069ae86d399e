package head

import (
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
)

var (
	ErrConnClosed = errors.New("connection was closed before the head was completed")
	ErrTimeout    = errors.New("request head was not completed in time")
	ErrNoHost     = errors.New("no host value is presented")
	ErrBadHost    = errors.New("malformed host value")
)

// StartLineError reports a start line violating the method-target-version
// form. Line holds the offending line verbatim, terminator included.
type StartLineError struct {
	Line string
}

func (e *StartLineError) Error() string {
	return fmt.Sprintf("malformed start line: %q", e.Line)
}

// HeaderLineError reports a header line without a colon in it. Line holds
// the offending line verbatim, terminator included.
type HeaderLineError struct {
	Line string
}

func (e *HeaderLineError) Error() string {
	return fmt.Sprintf("malformed header line: %q", e.Line)
}

// TooLongError reports a line that outgrew MaxLineBytes. Code names the
// exceeded limit, EMSGSIZE for a line.
type TooLongError struct {
	Code syscall.Errno
}

func (e *TooLongError) Error() string {
	return "line is too long: " + e.Code.Error()
}

// readFailure files an error coming out of a Source read under one of the
// two kinds a caller can act on: the deadline firing, or everything else,
// which leaves the connection as good as closed.
func readFailure(err error) error {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return ErrTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}

	return ErrConnClosed
}
