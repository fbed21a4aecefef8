package transport_test

import (
	"io"
	"strings"
	"testing"
	"time"

	// Packages
	transport "github.com/mutablelogic/go-openai/pkg/transport"
	assert "github.com/stretchr/testify/assert"
)

func readEvents(t *testing.T, input string) ([]*transport.Event, error) {
	t.Helper()
	var events []*transport.Event
	decoder := transport.NewDecoder(strings.NewReader(input))
	for {
		evt, err := decoder.Next()
		if err != nil {
			return events, err
		}
		events = append(events, evt)
	}
}

func Test_sse_001(t *testing.T) {
	// Lines end with LF, CRLF or CR
	assert := assert.New(t)

	events, err := readEvents(t, "data: a\n\ndata: b\r\n\r\ndata: c\r\rdata: [DONE]\n\n")
	assert.ErrorIs(err, io.EOF)
	if assert.Len(events, 4) {
		assert.Equal("a", events[0].Data)
		assert.Equal("b", events[1].Data)
		assert.Equal("c", events[2].Data)
		assert.True(events[3].Done())
		assert.False(events[2].Done())
	}
}

func Test_sse_002(t *testing.T) {
	// Data lines in one frame are joined with newlines
	assert := assert.New(t)

	events, err := readEvents(t, "data: {\"a\":\ndata: 1}\n\n")
	assert.ErrorIs(err, io.EOF)
	if assert.Len(events, 1) {
		assert.Equal("{\"a\":\n1}", events[0].Data)
	}
}

func Test_sse_003(t *testing.T) {
	// Comments are ignored and the other fields are kept
	assert := assert.New(t)

	events, err := readEvents(t, ": keep-alive\nevent: response.output_text.delta\nid: 7\nretry: 1500\ndata: x\n\n")
	assert.ErrorIs(err, io.EOF)
	if assert.Len(events, 1) {
		assert.Equal("response.output_text.delta", events[0].Event)
		assert.Equal("7", events[0].ID)
		assert.Equal(1500*time.Millisecond, events[0].Retry)
		assert.Equal("x", events[0].Data)
	}
}

func Test_sse_004(t *testing.T) {
	// An incomplete trailing frame is dropped
	assert := assert.New(t)

	for _, input := range []string{"data: a\n\ndata: b", "data: a\n\ndata: b\n", "data: a\n\ndata: b\r"} {
		events, err := readEvents(t, input)
		assert.ErrorIs(err, io.EOF)
		if assert.Len(events, 1, "input %q", input) {
			assert.Equal("a", events[0].Data)
		}
	}
}

func Test_sse_005(t *testing.T) {
	// Frames without data are not dispatched, and fields do not carry over
	assert := assert.New(t)

	events, err := readEvents(t, "event: ping\n\ndata: x\n\n\n\ndata:y\n\n")
	assert.ErrorIs(err, io.EOF)
	if assert.Len(events, 2) {
		assert.Equal("", events[0].Event)
		assert.Equal("x", events[0].Data)
		assert.Equal("y", events[1].Data)
	}
}

func Test_sse_006(t *testing.T) {
	// An empty stream has no frames
	assert := assert.New(t)

	events, err := readEvents(t, "")
	assert.ErrorIs(err, io.EOF)
	assert.Empty(events)
}
