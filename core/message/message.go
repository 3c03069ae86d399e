// Package message is the convenience layer over already parsed requests:
// no parsing of its own, just the glue callers keep rewriting otherwise.
package message

import (
	"net/url"
	"strconv"

	"github.com/indigo-web/utils/uf"

	"httphead/core/head"
	"httphead/internal/server/tcp"
)

const (
	StatusOK                          = 200
	StatusSeeOther                    = 303
	StatusBadRequest                  = 400
	StatusNotFound                    = 404
	StatusRequestTimeout              = 408
	StatusPayloadTooLarge             = 413
	StatusRequestHeaderFieldsTooLarge = 431
	StatusInternalServerError         = 500
)

// StatusText returns the reason phrase for the statuses this package
// emits.
func StatusText(status int) string {
	switch status {
	case StatusOK:
		return "OK"
	case StatusSeeOther:
		return "See Other"
	case StatusBadRequest:
		return "Bad Request"
	case StatusNotFound:
		return "Not Found"
	case StatusRequestTimeout:
		return "Request Timeout"
	case StatusPayloadTooLarge:
		return "Payload Too Large"
	case StatusRequestHeaderFieldsTooLarge:
		return "Request Header Fields Too Large"
	case StatusInternalServerError:
		return "Internal Server Error"
	}

	return "Unknown"
}

// Request is a head with its body attached, ready to be handled.
type Request struct {
	Method  head.Method
	Target  head.RequestTarget
	Headers head.Headers
	Host    head.Host
	Body    []byte
}

// Header returns the value of the first header with the given name, or "".
func (r *Request) Header(name string) string {
	return r.Headers.Get(name)
}

// BodyString returns the body as a string without copying it. The string
// aliases the body, so it is valid for as long as the body is.
func (r *Request) BodyString() string {
	return uf.B2S(r.Body)
}

// Form decodes an application/x-www-form-urlencoded body.
func (r *Request) Form() (url.Values, error) {
	return DecodeForm(uf.B2S(r.Body))
}

type Response struct {
	Status  int
	Headers head.Headers
	Body    []byte
}

// Redirect is a see-other response pointing at location.
func Redirect(location string) *Response {
	return &Response{
		Status:  StatusSeeOther,
		Headers: head.Headers{}.Add("location", location),
	}
}

// Encode appends the wire form of the response to buff and returns it. A
// content-length matching the body is always included; header names go out
// the way Headers keeps them, lowercased.
func (r *Response) Encode(buff []byte) []byte {
	buff = append(buff, "HTTP/1.1 "...)
	buff = strconv.AppendInt(buff, int64(r.Status), 10)
	buff = append(buff, ' ')
	buff = append(buff, StatusText(r.Status)...)
	buff = append(buff, '\r', '\n')

	for _, header := range r.Headers {
		buff = append(buff, header.Name...)
		buff = append(buff, ':', ' ')
		buff = append(buff, header.Value...)
		buff = append(buff, '\r', '\n')
	}

	buff = append(buff, "content-length: "...)
	buff = strconv.AppendInt(buff, int64(len(r.Body)), 10)
	buff = append(buff, "\r\n\r\n"...)

	return append(buff, r.Body...)
}

// Send encodes the response into buff and writes it out in one call.
func (r *Response) Send(client tcp.Client, buff []byte) error {
	return client.Write(r.Encode(buff))
}

// EncodeForm encodes values as an application/x-www-form-urlencoded body.
func EncodeForm(values url.Values) []byte {
	return []byte(values.Encode())
}

// DecodeForm is the inverse of EncodeForm.
func DecodeForm(body string) (url.Values, error) {
	return url.ParseQuery(body)
}
