package badger

import (
	"io"
	"os"
	"sync"
)

var defaultTracer = sync.OnceValue(func() *Tracer { return New() })

// Default returns the process-wide tracer used by the package-level functions.
// It's constructed on first use, with default options.
func Default() *Tracer {
	return defaultTracer()
}

// Trace writes a trace line to the current stream, with the call site of the
// caller. The message is rendered from format and args with fmt semantics.
//
//	badger.Trace("begin, arg=[%s]", arg)
//
// produces, by default to stderr,
//
//	2024-01-02 15:04:05:12345(3039):pkg/file.go:42:myFunction: begin, arg=[foo]
func Trace(format string, args ...any) {
	t := Default()
	w := t.Stream()
	if w == nil {
		return
	}
	t.Fprintf(w, Caller(1), format, args...)
}

// TraceArray writes a hex dump of data, with the given caption, to the
// current stream, with the call site of the caller.
func TraceArray(caption string, data []byte) {
	t := Default()
	w := t.Stream()
	if w == nil {
		return
	}
	t.FprintArray(w, Caller(1), caption, data)
}

// StartProfile starts a profile against the current stream, with the call
// site of the caller. Pass the returned stamp to Tick.
//
//	stamp := badger.StartProfile("entering scope")
//	...
//	badger.Tick(&stamp, "step %d", i)
//	...
//	badger.Tick(&stamp, "done")
func StartProfile(format string, args ...any) Stamp {
	t := Default()
	w := t.Stream()
	if w == nil {
		return Stamp{}
	}
	return t.FprofileStart(w, Caller(1), format, args...)
}

// Tick writes a profile tick to the current stream, with the call site of the
// caller, and updates the stamp.
func Tick(stamp *Stamp, format string, args ...any) {
	t := Default()
	w := t.Stream()
	if w == nil {
		return
	}
	t.Fprofile(stamp, w, Caller(1), format, args...)
}

// CurrentStream is a combined getter and setter for the current stream of the
// default tracer. If w is nil, it returns the current stream, which is stderr
// unless it's been set. Otherwise, it sets the current stream to w and
// returns w.
//
//	logfile, _ := os.OpenFile("my.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
//	badger.CurrentStream(logfile)
//	badger.CurrentStream(badger.DirectErrorStream())
func CurrentStream(w io.Writer) io.Writer {
	return Default().CurrentStream(w)
}

// SetCurrentStream sets the current stream of the default tracer. A nil
// writer disables all output from the package-level functions.
func SetCurrentStream(w io.Writer) {
	Default().SetStream(w)
}

// GetCurrentStream returns the current stream of the default tracer.
func GetCurrentStream() io.Writer {
	return Default().Stream()
}

// DefaultTraceFilePath returns the default trace file path of the default
// tracer. See Tracer.DefaultTraceFilePath for details.
func DefaultTraceFilePath() string {
	return Default().DefaultTraceFilePath()
}

// TraceFile returns the trace file at path, opened for appending, via the
// default tracer. See Tracer.TraceFile for details.
func TraceFile(path string) (*os.File, error) {
	return Default().TraceFile(path)
}
