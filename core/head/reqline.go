package head

import "bytes"

// Method is one of the nine known request methods. There is no "other"
// variant: a token outside this list fails the start line instead.
type Method string

const (
	GET     Method = "GET"
	HEAD    Method = "HEAD"
	POST    Method = "POST"
	PUT     Method = "PUT"
	DELETE  Method = "DELETE"
	CONNECT Method = "CONNECT"
	OPTIONS Method = "OPTIONS"
	TRACE   Method = "TRACE"
	PATCH   Method = "PATCH"
)

// ParseMethod matches token against the known methods. The match is exact:
// no case folding, no trimming.
func ParseMethod(token []byte) (Method, bool) {
	// a switch over string(token) doesn't copy
	switch string(token) {
	case "GET":
		return GET, true
	case "HEAD":
		return HEAD, true
	case "POST":
		return POST, true
	case "PUT":
		return PUT, true
	case "DELETE":
		return DELETE, true
	case "CONNECT":
		return CONNECT, true
	case "OPTIONS":
		return OPTIONS, true
	case "TRACE":
		return TRACE, true
	case "PATCH":
		return PATCH, true
	}

	return "", false
}

type TargetForm uint8

const (
	// TargetAbsPath is the origin form: a path starting with a slash, the
	// query string still attached. The other rfc 7230 forms are not
	// produced yet; Form keeps them representable without breaking anyone.
	TargetAbsPath TargetForm = iota + 1
)

type RequestTarget struct {
	Form TargetForm
	Path string
}

func parseRequestLine(line []byte) (Method, RequestTarget, error) {
	content := line[:len(line)-len(crlf)]

	sp1 := bytes.IndexByte(content, ' ')
	if sp1 <= 0 {
		return "", RequestTarget{}, &StartLineError{Line: string(line)}
	}

	sp2 := bytes.IndexByte(content[sp1+1:], ' ')
	if sp2 == -1 {
		return "", RequestTarget{}, &StartLineError{Line: string(line)}
	}

	sp2 += sp1 + 1
	target, version := content[sp1+1:sp2], content[sp2+1:]

	if len(target) == 0 || len(version) == 0 || bytes.IndexByte(version, ' ') != -1 {
		return "", RequestTarget{}, &StartLineError{Line: string(line)}
	}

	method, ok := ParseMethod(content[:sp1])
	if !ok {
		return "", RequestTarget{}, &StartLineError{Line: string(line)}
	}

	if target[0] != '/' {
		return "", RequestTarget{}, &StartLineError{Line: string(line)}
	}

	return method, RequestTarget{Form: TargetAbsPath, Path: string(target)}, nil
}
