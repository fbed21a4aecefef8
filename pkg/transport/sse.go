package transport

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"
	"time"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Event is one complete Server-Sent-Events frame
type Event struct {
	Event string
	Data  string
	ID    string
	Retry time.Duration
}

// Decoder reads frames from a text/event-stream body
type Decoder struct {
	scanner *bufio.Scanner
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Largest line accepted in an event stream. Partial image events
	// carry base64 payloads, so this is generous.
	maxLineSize = 16 << 20

	// Data of the frame which terminates a chat completion stream
	sentinelDone = "[DONE]"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func NewDecoder(r io.Reader) *Decoder {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	scanner.Split(scanLines)
	return &Decoder{scanner: scanner}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Next returns the next complete frame. A frame is complete once the blank
// line which follows it has been read, so trailing data at the end of the
// stream is discarded. Returns io.EOF at the end of the stream, or the error
// from the underlying reader.
func (d *Decoder) Next() (*Event, error) {
	var evt Event
	var data []string
	for d.scanner.Scan() {
		line := d.scanner.Text()
		if line == "" {
			if data != nil {
				evt.Data = strings.Join(data, "\n")
				return &evt, nil
			}
			evt = Event{}
			continue
		}
		if strings.HasPrefix(line, ":") {
			continue
		}
		field, value, _ := strings.Cut(line, ":")
		value = strings.TrimPrefix(value, " ")
		switch field {
		case "event":
			evt.Event = value
		case "data":
			data = append(data, value)
		case "id":
			evt.ID = value
		case "retry":
			if ms, err := strconv.ParseUint(value, 10, 32); err == nil {
				evt.Retry = time.Duration(ms) * time.Millisecond
			}
		}
	}
	if err := d.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// Done reports whether the frame is the end-of-stream sentinel
func (e *Event) Done() bool {
	return strings.TrimSpace(e.Data) == sentinelDone
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// scanLines splits on LF, CRLF or a lone CR. An unterminated line at the end
// of the input is dropped.
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		switch {
		case i+1 < len(data) && data[i+1] == '\n':
			return i + 2, data[:i], nil
		case i+1 < len(data) || atEOF:
			return i + 1, data[:i], nil
		default:
			// Need one more byte to tell CR from CRLF
			return 0, nil, nil
		}
	}
	if atEOF && len(data) > 0 {
		return len(data), nil, nil
	}
	return 0, nil, nil
}
