package head

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineReader(t *testing.T) {
	t.Run("line cut at every boundary", func(t *testing.T) {
		for size := 1; size <= len("abc\r\n"); size++ {
			line, err := newLineReader(split("abc\r\n", size)).next()
			require.NoError(t, err, "chunk size %d", size)
			require.Equal(t, "abc\r\n", string(line), "chunk size %d", size)
		}
	})

	t.Run("terminator split between chunks", func(t *testing.T) {
		src := &chunkSource{chunks: [][]byte{[]byte("abc\r"), []byte("\n")}}
		line, err := newLineReader(src).next()
		require.NoError(t, err)
		require.Equal(t, "abc\r\n", string(line))
	})

	t.Run("lone lf terminates nothing", func(t *testing.T) {
		line, err := newLineReader(whole("a\nb\r\n")).next()
		require.NoError(t, err)
		require.Equal(t, "a\nb\r\n", string(line))
	})

	t.Run("lone cr terminates nothing", func(t *testing.T) {
		line, err := newLineReader(whole("a\rb\r\n")).next()
		require.NoError(t, err)
		require.Equal(t, "a\rb\r\n", string(line))
	})

	t.Run("rest holds whatever follows", func(t *testing.T) {
		lines := newLineReader(whole("a\r\nb\r\nrest"))

		line, err := lines.next()
		require.NoError(t, err)
		require.Equal(t, "a\r\n", string(line))

		line, err = lines.next()
		require.NoError(t, err)
		require.Equal(t, "b\r\n", string(line))

		require.Equal(t, "rest", string(lines.rest()))
	})

	t.Run("exactly at the cap", func(t *testing.T) {
		line, err := newLineReader(whole(strings.Repeat("a", MaxLineBytes-2) + "\r\n")).next()
		require.NoError(t, err)
		require.Len(t, line, MaxLineBytes)
	})

	t.Run("one past the cap", func(t *testing.T) {
		_, err := newLineReader(whole(strings.Repeat("a", MaxLineBytes-1) + "\r\n")).next()

		var tooLong *TooLongError
		require.ErrorAs(t, err, &tooLong)
	})

	t.Run("cap fires without a terminator", func(t *testing.T) {
		// failing with ErrConnClosed here would mean the reader asked for
		// more bytes instead of noticing the overrun right away
		src := &chunkSource{chunks: [][]byte{[]byte(strings.Repeat("a", MaxLineBytes+1))}}
		_, err := newLineReader(src).next()

		var tooLong *TooLongError
		require.ErrorAs(t, err, &tooLong)
	})

	t.Run("cap is per line, not per head", func(t *testing.T) {
		long := strings.Repeat("a", MaxLineBytes-2)
		lines := newLineReader(whole(long + "\r\n" + long + "\r\n"))

		for i := 0; i < 2; i++ {
			line, err := lines.next()
			require.NoError(t, err)
			require.Len(t, line, MaxLineBytes)
		}
	})

	t.Run("eof mid line", func(t *testing.T) {
		_, err := newLineReader(whole("abc")).next()
		require.ErrorIs(t, err, ErrConnClosed)
	})

	t.Run("eof before anything", func(t *testing.T) {
		_, err := newLineReader(&chunkSource{}).next()
		require.ErrorIs(t, err, ErrConnClosed)
	})
}
