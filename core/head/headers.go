package head

import (
	"bytes"
	"strings"
)

// Header is a single name-value pair. Names are kept lowercased; nothing
// else about the pair is normalized beyond the value's surrounding
// whitespace being dropped.
type Header struct {
	Name  string
	Value string
}

// Headers is a header block in its order of appearance, duplicates and
// all. Lookups fold the case of the queried name; the modifying methods
// return the updated block the way append does.
type Headers []Header

// Get returns the value of the first header with the given name, or "".
func (h Headers) Get(name string) string {
	value, _ := h.Lookup(name)

	return value
}

// Lookup returns the value of the first header with the given name, and
// whether it was there at all. Prefer it over Get whenever an empty value
// and an absent header mean different things.
func (h Headers) Lookup(name string) (string, bool) {
	for i := range h {
		if equalfold(h[i].Name, name) {
			return h[i].Value, true
		}
	}

	return "", false
}

// Values returns the values of every header with the given name, in order.
func (h Headers) Values(name string) []string {
	var values []string

	for i := range h {
		if equalfold(h[i].Name, name) {
			values = append(values, h[i].Value)
		}
	}

	return values
}

func (h Headers) Has(name string) bool {
	_, found := h.Lookup(name)

	return found
}

// Add appends the pair, lowercasing the name.
func (h Headers) Add(name, value string) Headers {
	return append(h, Header{Name: strings.ToLower(name), Value: value})
}

// Set replaces every header with the given name by a single pair, appended
// if there was none.
func (h Headers) Set(name, value string) Headers {
	return h.Del(name).Add(name, value)
}

// Del drops every header with the given name.
func (h Headers) Del(name string) Headers {
	kept := h[:0]

	for i := range h {
		if !equalfold(h[i].Name, name) {
			kept = append(kept, h[i])
		}
	}

	return kept
}

func parseHeaderLine(line []byte) (Header, error) {
	content := line[:len(line)-len(crlf)]

	colon := bytes.IndexByte(content, ':')
	if colon == -1 {
		return Header{}, &HeaderLineError{Line: string(line)}
	}

	return Header{
		// the name is not trimmed: "host " and "host" are different names
		Name:  strings.ToLower(string(content[:colon])),
		Value: trimOWS(string(content[colon+1:])),
	}, nil
}

// trimOWS drops the optional whitespace (space and htab) around a value.
func trimOWS(s string) string {
	return strings.Trim(s, " \t")
}

func equalfold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := 0; i < len(a); i++ {
		if a[i]|0x20 != b[i]|0x20 {
			return false
		}
	}

	return true
}
