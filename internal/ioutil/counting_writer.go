// Package ioutil provides writer helpers used by the rendering code.
package ioutil

import (
	"io"
	"sync"

	"braces.dev/errtrace"
)

// CountingWriter wraps an io.Writer and tracks the total number of bytes written.
// The first write error is sticky: every later write is skipped and reports it again.
type CountingWriter struct {
	w   io.Writer
	num int
	err error
	buf [1]byte
}

// NewCountingWriter creates a new CountingWriter wrapping the given writer.
func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{w: w}
}

func (cw *CountingWriter) record(n int, err error) (int, error) {
	cw.num += n
	if err != nil {
		cw.err = errtrace.Wrap(err)
		return n, cw.err
	}
	return n, nil
}

// Write implements io.Writer and tracks bytes written.
func (cw *CountingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	return cw.record(cw.w.Write(p))
}

// WriteString writes a string and tracks bytes written.
func (cw *CountingWriter) WriteString(s string) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	return cw.record(io.WriteString(cw.w, s))
}

// WriteByte implements io.ByteWriter.
func (cw *CountingWriter) WriteByte(c byte) error {
	if cw.err != nil {
		return cw.err
	}
	if bw, ok := cw.w.(io.ByteWriter); ok {
		err := bw.WriteByte(c)
		if err == nil {
			cw.num++
			return nil
		}
		_, err = cw.record(0, err)
		return err
	}
	cw.buf[0] = c
	_, err := cw.record(cw.w.Write(cw.buf[:]))
	return err
}

// WriteDelimited writes s prefixed with the delimiter c.
func (cw *CountingWriter) WriteDelimited(c byte, s string) *CountingWriter {
	if cw.WriteByte(c) == nil {
		cw.WriteString(s) //nolint:errcheck
	}
	return cw
}

// Call executes a RenderTo-style function and tracks bytes written.
// This is useful for chaining RenderTo calls.
func (cw *CountingWriter) Call(fn func(io.Writer) (int, error)) *CountingWriter {
	if cw.err != nil {
		return cw
	}
	cw.record(fn(cw.w)) //nolint:errcheck
	return cw
}

// Result returns the total number of bytes written and any error encountered.
func (cw *CountingWriter) Result() (num int, err error) {
	return cw.num, cw.err
}

// Count returns the total number of bytes written.
func (cw *CountingWriter) Count() int {
	return cw.num
}

var cntWrtPool = &sync.Pool{
	New: func() any { return &CountingWriter{} },
}

func GetCountingWriter(w io.Writer) *CountingWriter {
	cw := cntWrtPool.Get().(*CountingWriter) //nolint:forcetypeassert
	cw.w = w
	return cw
}

func FreeCountingWriter(cw *CountingWriter) {
	cw.w = nil
	cw.num = 0
	cw.err = nil
	cntWrtPool.Put(cw)
}
