// Package template assembles strings out of printf style fragments.
package template

import (
	"github.com/nikandfor/hacked/hfmt"
)

// bufferSize - Number of pending bytes after which formatted output is flushed into the materialized buffer
const bufferSize int = 4096

// StreamClosed - Custom error to inform that the stream has been closed
type StreamClosed struct{}

// Error - Used to notify that the stream is closed
func (E StreamClosed) Error() string {
	return "stream closed"
}

// Stream - An append only string builder. Formatted output is first kept pending and becomes part of the
// materialized buffer on Flush, on Value or when the pending output grows beyond bufferSize.
// A Stream is not safe for concurrent use.
type Stream struct {
	buffer  []byte
	pending []byte
	closed  bool
}

// Open - Returns a pointer to a new, empty Stream. Pair it with a call to Close.
func Open() *Stream {
	return &Stream{}
}

// Printf - Appends text formatted according to pattern, with the same verbs, widths and precisions as fmt.Printf
func (S *Stream) Printf(pattern string, args ...any) (err error) {
	if S.closed {
		err = StreamClosed{}
		return
	}

	S.pending = hfmt.Appendf(S.pending, pattern, args...)

	return S.spill()
}

// Write - Appends p as is, making the Stream an io.Writer
func (S *Stream) Write(p []byte) (n int, err error) {
	if S.closed {
		err = StreamClosed{}
		return
	}

	S.pending = append(S.pending, p...)
	n = len(p)
	err = S.spill()

	return
}

// WriteString - Appends s as is
func (S *Stream) WriteString(s string) (n int, err error) {
	if S.closed {
		err = StreamClosed{}
		return
	}

	S.pending = append(S.pending, s...)
	n = len(s)
	err = S.spill()

	return
}

// Flush - Moves all pending output into the materialized buffer
func (S *Stream) Flush() (err error) {
	if S.closed {
		err = StreamClosed{}
		return
	}

	S.buffer = append(S.buffer, S.pending...)
	S.pending = S.pending[:0]

	return
}

// Buffered - Returns the number of bytes written but not yet flushed
func (S *Stream) Buffered() int {
	return len(S.pending)
}

// Value - Flushes the stream and returns the accumulated output
func (S *Stream) Value() (value string, err error) {
	if err = S.Flush(); err != nil {
		return
	}

	value = string(S.buffer)

	return
}

// Close - Releases the buffers, the stream can not be written to after this call
func (S *Stream) Close() (err error) {
	if S.closed {
		err = StreamClosed{}
		return
	}

	S.buffer = nil
	S.pending = nil
	S.closed = true

	return
}

// spill - Flushes when the pending output has outgrown bufferSize
func (S *Stream) spill() error {
	if len(S.pending) < bufferSize {
		return nil
	}

	return S.Flush()
}

// Template - Takes the same arguments as fmt.Sprintf and returns the formatted string, going through a
// short-lived Stream.
func Template(pattern string, args ...any) string {
	s := Open()
	defer func() { _ = s.Close() }()

	_ = s.Printf(pattern, args...)
	value, _ := s.Value()

	return value
}
