package head

import (
	"strconv"
	"strings"
)

// Host is a validated host value. Port is -1 when none was specified,
// which is not the same as port 0.
type Host struct {
	Name string
	Port int
}

// ParseHost validates a host value of the form host[:port], where host
// consists of letters, digits and "-._~" in any amount, and port is a
// decimal number. The name comes back lowercased. The empty string is a
// valid host. ParseHost depends on nothing but its argument and never
// panics, no matter the input.
func ParseHost(s string) (Host, error) {
	name, port := s, -1

	if colon := strings.IndexByte(s, ':'); colon != -1 {
		name = s[:colon]

		p, err := parsePort(s[colon+1:])
		if err != nil {
			return Host{}, err
		}

		port = p
	}

	for i := 0; i < len(name); i++ {
		if !isHostChar(name[i]) {
			return Host{}, ErrBadHost
		}
	}

	return Host{Name: strings.ToLower(name), Port: port}, nil
}

func parsePort(s string) (int, error) {
	if len(s) == 0 {
		return 0, ErrBadHost
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrBadHost
		}
	}

	port, err := strconv.Atoi(s)
	if err != nil {
		// all-digits, so the only way left to fail is overflowing int
		return 0, ErrBadHost
	}

	return port, nil
}

func isHostChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '.' || c == '_' || c == '~':
		return true
	}

	return false
}
