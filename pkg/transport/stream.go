package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"iter"
	"strings"
	"sync"
	"time"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	attribute "go.opentelemetry.io/otel/attribute"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// StreamState is the lifecycle state of a streaming call
type StreamState int

// Stream is a sequence of chunks decoded from a text/event-stream
// response. Chunks are returned in the order they arrive. A stream is
// consumed by one goroutine; Close may be called from any goroutine.
type Stream[T any] struct {
	sync.Mutex
	state    StreamState
	err      error
	ctx      context.Context
	cancel   context.CancelCauseFunc
	body     io.ReadCloser
	decoder  *Decoder
	current  *T
	count    int
	terminal func(*T) bool
}

// StreamOpt sets an option on a stream
type StreamOpt[T any] func(*Stream[T])

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	StateIdle StreamState = iota
	StateConnecting
	StateStreaming
	StateCompleted
	StateFailed
	StateCancelled
)

// errClosed is the context cause when a stream is closed by its consumer
var errClosed = errors.New("stream closed")

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewStream sends a streaming request and returns once the response headers
// have arrived. A non-2xx response is returned as an *openai.APIError before
// any chunk is read. The time to first byte is bounded by the client timeout
// (or the upload timeout for multipart bodies); reading the stream is not.
func NewStream[T any](ctx context.Context, c *Client, req Request, opts ...StreamOpt[T]) (*Stream[T], error) {
	req.Stream = true
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s := &Stream[T]{state: StateIdle}
	for _, opt := range opts {
		opt(s)
	}
	s.ctx, s.cancel = context.WithCancelCause(ctx)
	s.state = StateConnecting

	// Bound the time to first byte
	var timer *time.Timer
	if timeout := c.timeout(req); timeout > 0 {
		timer = time.AfterFunc(timeout, func() {
			s.cancel(context.DeadlineExceeded)
		})
	}

	// Send the request
	httpreq, err := c.newRequest(s.ctx, req)
	if err != nil {
		s.finish(StateFailed, err)
		return nil, err
	}
	resp, err := c.client.Do(httpreq)
	if timer != nil && !timer.Stop() && err == nil {
		// The deadline fired as the headers arrived
		resp.Body.Close()
		err = context.DeadlineExceeded
	}
	if err != nil {
		err = transportErr(s.ctx, err)
		s.finish(StateFailed, err)
		return nil, err
	}

	// Map non-2xx responses
	if !isSuccess(resp.StatusCode) {
		err := apiError(resp)
		resp.Body.Close()
		s.finish(StateFailed, err)
		return nil, err
	}

	// Start streaming
	s.Lock()
	s.body = resp.Body
	s.decoder = NewDecoder(resp.Body)
	s.state = StateStreaming
	s.Unlock()

	return s, nil
}

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// StreamTerminal sets a predicate which recognises the final chunk of a
// stream which has no end-of-stream sentinel. The chunk is returned, then
// the stream completes.
func StreamTerminal[T any](fn func(*T) bool) StreamOpt[T] {
	return func(s *Stream[T]) {
		s.terminal = fn
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (s StreamState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateStreaming:
		return "streaming"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	case StateCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Terminal reports whether no further chunks can follow
func (s StreamState) Terminal() bool {
	return s == StateCompleted || s == StateFailed || s == StateCancelled
}

// State returns the current state of the stream
func (s *Stream[T]) State() StreamState {
	s.Lock()
	defer s.Unlock()
	return s.state
}

// Err returns the error which failed the stream, or nil if the stream
// completed or was closed by the consumer
func (s *Stream[T]) Err() error {
	s.Lock()
	defer s.Unlock()
	return s.err
}

// Current returns the chunk read by the last successful call to Next
func (s *Stream[T]) Current() *T {
	return s.current
}

// Count returns the number of chunks read
func (s *Stream[T]) Count() int {
	s.Lock()
	defer s.Unlock()
	return s.count
}

// Next blocks until the next chunk has been read and decoded, returning
// false when the stream has ended. Err distinguishes completion from failure.
func (s *Stream[T]) Next() bool {
	s.current = nil
	if s.State() != StateStreaming {
		return false
	}
	for {
		evt, err := s.decoder.Next()
		if err != nil {
			s.readErr(err)
			return false
		}

		// Error events fail the stream
		if evt.Event == "error" || isErrorPayload(evt.Data) {
			s.finish(StateFailed, parseAPIError([]byte(evt.Data)))
			return false
		}

		// The sentinel ends the stream without a chunk
		if evt.Done() {
			s.finish(StateCompleted, nil)
			return false
		}

		// Frames without data carry no chunk
		if strings.TrimSpace(evt.Data) == "" {
			continue
		}

		// Decode the chunk
		var chunk T
		if err := json.Unmarshal([]byte(evt.Data), &chunk); err != nil {
			s.finish(StateFailed, openai.ErrDecode.Wrap(err))
			return false
		} else if err := validate(&chunk); err != nil {
			s.finish(StateFailed, err)
			return false
		}

		// A terminal chunk is returned, and the connection released
		s.current = &chunk
		s.Lock()
		s.count++
		s.Unlock()
		if s.terminal != nil && s.terminal(&chunk) {
			s.finish(StateCompleted, nil)
		}
		return true
	}
}

// Close ends the stream and releases the connection. No further chunks
// are returned after Close, and a stream which had not already ended is
// marked as cancelled without an error.
func (s *Stream[T]) Close() error {
	s.finish(StateCancelled, nil)
	return nil
}

// All returns an iterator over the chunks. A failure is yielded as the
// final element, with a nil chunk. The stream is closed when the iteration
// stops, including when the consumer breaks out of the loop.
func (s *Stream[T]) All() iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		defer s.Close()
		for s.Next() {
			if !yield(s.Current(), nil) {
				return
			}
		}
		if err := s.Err(); err != nil {
			yield(nil, err)
		}
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// readErr ends the stream after the body could not be read. The stream ended
// before any terminal signal, so this is never a successful completion.
func (s *Stream[T]) readErr(err error) {
	cause := context.Cause(s.ctx)
	switch {
	case errors.Is(cause, errClosed):
		s.finish(StateCancelled, nil)
	case errors.Is(cause, context.Canceled):
		s.finish(StateCancelled, openai.ErrTransport.Wrap(cause))
	case cause != nil:
		s.finish(StateFailed, openai.ErrTransport.Wrap(cause))
	case errors.Is(err, io.EOF):
		s.finish(StateFailed, openai.ErrTransport.Wrap(io.ErrUnexpectedEOF))
	default:
		s.finish(StateFailed, openai.ErrTransport.Wrap(err))
	}
}

// finish moves the stream to a terminal state, releasing the connection and
// annotating the caller's span. Only the first call has any effect.
func (s *Stream[T]) finish(state StreamState, err error) {
	s.Lock()
	defer s.Unlock()
	if s.state.Terminal() {
		return
	}
	s.state = state
	s.err = err

	// Release the connection
	if s.cancel != nil {
		s.cancel(errClosed)
	}
	if s.body != nil {
		s.body.Close()
	}

	// Annotate the span of the caller, if any
	if s.ctx != nil {
		span := trace.SpanFromContext(s.ctx)
		span.SetAttributes(
			attribute.Int("openai.stream.chunks", s.count),
			attribute.String("openai.stream.state", state.String()),
		)
		if err != nil {
			span.RecordError(err)
		}
	}
}

// isErrorPayload reports whether the data is an error envelope
func isErrorPayload(data string) bool {
	if !strings.Contains(data, `"error"`) {
		return false
	}
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal([]byte(data), &envelope); err != nil {
		return false
	}
	raw := strings.TrimSpace(string(envelope.Error))
	return strings.HasPrefix(raw, "{")
}
