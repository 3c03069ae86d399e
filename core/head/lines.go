package head

import (
	"bytes"
	"syscall"
)

// MaxLineBytes caps the length of a single head line, terminator included.
// It covers the start line and every header line independently, and the
// reader gives up as soon as a line outgrows it, whether or not the
// terminator showed up yet.
const MaxLineBytes = 2048

var crlf = []byte("\r\n")

// lineReader assembles logical crlf-terminated lines out of however the
// transport happened to cut the stream. A lone lf terminates nothing.
type lineReader struct {
	src Source
	buf []byte
	// start is where the current line begins in buf; search is where the
	// terminator scan resumes, so no byte is scanned twice when a crlf
	// arrives split across chunks.
	start  int
	search int
}

func newLineReader(src Source) *lineReader {
	return &lineReader{src: src}
}

// next returns the upcoming line, terminator included, pulling in as many
// chunks as that takes.
func (l *lineReader) next() ([]byte, error) {
	for {
		if i := bytes.Index(l.buf[l.search:], crlf); i != -1 {
			end := l.search + i + len(crlf)
			if end-l.start > MaxLineBytes {
				return nil, &TooLongError{Code: syscall.EMSGSIZE}
			}

			line := l.buf[l.start:end]
			l.start, l.search = end, end

			return line, nil
		}

		if len(l.buf)-l.start > MaxLineBytes {
			return nil, &TooLongError{Code: syscall.EMSGSIZE}
		}

		// everything but the last byte is known to not open a terminator;
		// the last one may be a cr whose lf is still in flight
		if last := len(l.buf) - 1; last > l.search {
			l.search = last
		}

		data, err := l.src.Read()
		if err != nil {
			return nil, readFailure(err)
		}

		l.buf = append(l.buf, data...)
	}
}

// rest returns whatever is buffered beyond the last returned line.
func (l *lineReader) rest() []byte {
	return l.buf[l.start:]
}
