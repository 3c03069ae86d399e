package head

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHeaderLine(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		header, err := parseHeaderLine([]byte("Content-Type: text/html\r\n"))
		require.NoError(t, err)
		require.Equal(t, Header{Name: "content-type", Value: "text/html"}, header)
	})

	t.Run("value whitespace is trimmed", func(t *testing.T) {
		header, err := parseHeaderLine([]byte("X-Pad: \t padded \t \r\n"))
		require.NoError(t, err)
		require.Equal(t, "padded", header.Value)
	})

	t.Run("name is not trimmed", func(t *testing.T) {
		header, err := parseHeaderLine([]byte(" Host : a\r\n"))
		require.NoError(t, err)
		require.Equal(t, " host ", header.Name)
	})

	t.Run("splits on the first colon only", func(t *testing.T) {
		header, err := parseHeaderLine([]byte("Referer: http://a/b\r\n"))
		require.NoError(t, err)
		require.Equal(t, "http://a/b", header.Value)
	})

	t.Run("empty value", func(t *testing.T) {
		header, err := parseHeaderLine([]byte("X-Empty:\r\n"))
		require.NoError(t, err)
		require.Equal(t, Header{Name: "x-empty", Value: ""}, header)
	})

	t.Run("empty name", func(t *testing.T) {
		// questionable on the wire, but a colon is all that is required
		header, err := parseHeaderLine([]byte(": value\r\n"))
		require.NoError(t, err)
		require.Equal(t, Header{Name: "", Value: "value"}, header)
	})

	t.Run("no colon", func(t *testing.T) {
		_, err := parseHeaderLine([]byte("just words\r\n"))

		var headerLine *HeaderLineError
		require.ErrorAs(t, err, &headerLine)
		require.Equal(t, "just words\r\n", headerLine.Line)
	})
}

func TestHeaders(t *testing.T) {
	headers := Headers{
		{Name: "host", Value: "a"},
		{Name: "x-tag", Value: "one"},
		{Name: "x-tag", Value: "two"},
		{Name: "x-empty", Value: ""},
	}

	t.Run("get folds the queried name", func(t *testing.T) {
		require.Equal(t, "a", headers.Get("Host"))
		require.Equal(t, "a", headers.Get("HOST"))
		require.Equal(t, "", headers.Get("missing"))
	})

	t.Run("lookup tells absent from empty", func(t *testing.T) {
		value, found := headers.Lookup("x-empty")
		require.True(t, found)
		require.Equal(t, "", value)

		_, found = headers.Lookup("missing")
		require.False(t, found)
	})

	t.Run("values in order", func(t *testing.T) {
		require.Equal(t, []string{"one", "two"}, headers.Values("X-Tag"))
		require.Nil(t, headers.Values("missing"))
	})

	t.Run("has", func(t *testing.T) {
		require.True(t, headers.Has("host"))
		require.False(t, headers.Has("host "))
	})

	t.Run("add lowercases the name", func(t *testing.T) {
		added := Headers{}.Add("Location", "/there")
		require.Equal(t, Headers{{Name: "location", Value: "/there"}}, added)
	})

	t.Run("set collapses duplicates", func(t *testing.T) {
		set := Headers{
			{Name: "x-tag", Value: "one"},
			{Name: "accept", Value: "*/*"},
			{Name: "x-tag", Value: "two"},
		}.Set("X-Tag", "three")
		require.Equal(t, Headers{
			{Name: "accept", Value: "*/*"},
			{Name: "x-tag", Value: "three"},
		}, set)
	})

	t.Run("del drops every occurrence", func(t *testing.T) {
		left := Headers{
			{Name: "x-tag", Value: "one"},
			{Name: "accept", Value: "*/*"},
			{Name: "x-tag", Value: "two"},
		}.Del("x-tag")
		require.Equal(t, Headers{{Name: "accept", Value: "*/*"}}, left)
	})
}
