package http

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/indigo-web/utils/arena"

	"httphead/core/head"
	"httphead/core/message"
	"httphead/internal/server/tcp"
)

// Handler turns a request into a response. Returning nil means the handler
// has nothing at this target, and the server answers 404 on its behalf.
type Handler func(*message.Request) *message.Response

type Server struct {
	client      tcp.Client
	handler     Handler
	headTimeout time.Duration
	maxBody     int
	writeBuff   []byte
}

func New(client tcp.Client, handler Handler, headTimeout time.Duration, maxBody int) *Server {
	return &Server{
		client:      client,
		handler:     handler,
		headTimeout: headTimeout,
		maxBody:     maxBody,
		writeBuff:   make([]byte, 0, 1024),
	}
}

// Serve runs the keep-alive loop until the peer leaves, a deadline fires,
// or a request cannot be read. Head reading owns its own failure answers;
// everything past a well-formed head is the handler's business.
func (s *Server) Serve() {
	defer func() { _ = s.client.Close() }()

	for {
		reqHead, err := head.Read(s.client, head.WithCompletionTimeout(s.headTimeout))
		if err != nil {
			s.reject(err)

			return
		}

		request, ok := s.readRequest(reqHead)
		if !ok {
			return
		}

		response := s.handler(request)
		if response == nil {
			response = &message.Response{Status: message.StatusNotFound}
		}

		if err = response.Send(s.client, s.writeBuff[:0]); err != nil {
			return
		}

		if closing(request) {
			return
		}
	}
}

// readRequest attaches the body to the head. Requests declaring a
// transfer-encoding are turned away: framing other than content-length is
// not spoken here.
func (s *Server) readRequest(reqHead head.RequestHead) (*message.Request, bool) {
	request := &message.Request{
		Method:  reqHead.Method,
		Target:  reqHead.Target,
		Headers: reqHead.Headers,
		Host:    reqHead.Host,
	}

	if reqHead.Headers.Has("transfer-encoding") {
		s.respond(message.StatusBadRequest)

		return nil, false
	}

	value, found := reqHead.Headers.Lookup("content-length")
	if !found {
		return request, true
	}

	length, err := strconv.Atoi(value)
	if err != nil || length < 0 {
		s.respond(message.StatusBadRequest)

		return nil, false
	}

	if length == 0 {
		return request, true
	}

	if length > s.maxBody {
		s.respond(message.StatusPayloadTooLarge)

		return nil, false
	}

	body, ok := s.readBody(length)
	if !ok {
		return nil, false
	}

	request.Body = body

	return request, true
}

func (s *Server) readBody(length int) ([]byte, bool) {
	buffer := arena.NewArena[byte](min(length, 4096), length)

	for total := 0; total < length; {
		data, err := s.client.Read()
		if err != nil {
			return nil, false
		}

		if len(data) > length-total {
			s.client.Unread(data[length-total:])
			data = data[:length-total]
		}

		if !buffer.Append(data...) {
			return nil, false
		}

		total += len(data)
	}

	return buffer.Finish(), true
}

func (s *Server) reject(err error) {
	var tooLong *head.TooLongError

	switch {
	case errors.Is(err, head.ErrConnClosed):
		// nobody left to answer
	case errors.Is(err, head.ErrTimeout):
		s.respond(message.StatusRequestTimeout)
	case errors.As(err, &tooLong):
		s.respond(message.StatusRequestHeaderFieldsTooLarge)
	default:
		s.respond(message.StatusBadRequest)
	}
}

func (s *Server) respond(status int) {
	response := message.Response{
		Status:  status,
		Headers: head.Headers{}.Add("connection", "close"),
	}

	_ = response.Send(s.client, s.writeBuff[:0])
}

func closing(request *message.Request) bool {
	return strings.EqualFold(request.Header("connection"), "close")
}
