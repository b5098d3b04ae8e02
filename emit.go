package badger

import "io"

// Fprintf writes one trace line to w: the header for site, the message
// rendered from format and args, and a newline. The stream is flushed
// afterwards, if it supports flushing. A nil w is a no-op.
//
// Fprintf never panics, and ignores write errors: tracing must not break the
// caller.
func (t *Tracer) Fprintf(w io.Writer, site CallSite, format string, args ...any) {
	if w == nil {
		return
	}
	defer swallow()

	e := t.begin(w, site)
	defer e.release()

	e.buf.b = appendMessage(e.buf.b[:0], format, args)
	e.putBuffer()
	e.put(newline)
	e.flush()
}

var newline = []byte{'\n'}

// emitter writes the fragments of a single trace line to a stream, and
// mirrors each fragment to the tracer's mirror, if any. Mirroring happens
// regardless of whether the stream write succeeded.
type emitter struct {
	w      io.Writer
	mirror func(string)
	buf    *lineBuffer
}

// begin writes the header for site to w, and returns an emitter ready for the
// rest of the line. The emitter must be released.
func (t *Tracer) begin(w io.Writer, site CallSite) emitter {
	e := emitter{
		w:      w,
		mirror: t.mirror,
		buf:    getLineBuffer(),
	}
	e.buf.b = appendHeader(e.buf.b[:0], t.platform, site, t.platform.IsTerminal(w))
	e.putBuffer()
	return e
}

func (e *emitter) put(p []byte) {
	if len(p) <= 0 {
		return
	}
	_, _ = e.w.Write(p)
	if e.mirror != nil {
		e.mirror(string(p))
	}
}

func (e *emitter) putString(s string) {
	e.buf.b = append(e.buf.b[:0], s...)
	e.putBuffer()
}

func (e *emitter) putBuffer() {
	e.put(e.buf.b)
	e.buf.b = e.buf.b[:0]
}

// flush the stream if it's buffered. Writes to an *os.File are unbuffered and
// already visible to readers, so files aren't synced.
func (e *emitter) flush() {
	if f, ok := e.w.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
}

func (e *emitter) release() {
	putLineBuffer(e.buf)
	e.buf = nil
}

func swallow() {
	_ = recover()
}
