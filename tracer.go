package badger

import (
	"io"
	"os"
	"sync"

	"github.com/peterbourgon/badger/internal/badgerutil"
)

// Tracer holds the state behind trace statements: the platform, the current
// output stream, and the cache of opened trace files. Most programs use the
// package-level functions, which are backed by a default tracer. Programs and
// tests that want isolated state construct their own via New.
//
// A tracer adds no synchronization around stream writes. Concurrent trace
// statements against the same stream may interleave at arbitrary byte
// boundaries, depending on the stream.
type Tracer struct {
	platform Platform
	getenv   func(string) string
	mirror   func(string)
	errors   func() io.Writer

	stream *badgerutil.Lazy[sink]

	tracePath func() string

	filesMtx sync.Mutex
	files    map[string]*os.File
}

// sink boxes the current stream, so that an explicit nil (disabled) is
// distinguishable from "never set".
type sink struct{ w io.Writer }

// Option configures a tracer.
type Option func(*Tracer)

// WithPlatform sets the platform used for timestamps, identity, and terminal
// detection. The default is SystemPlatform.
func WithPlatform(p Platform) Option {
	return func(t *Tracer) { t.platform = p }
}

// WithStream sets the initial current stream. A nil writer disables output.
// By default, the current stream is os.Stderr, resolved on first use.
func WithStream(w io.Writer) Option {
	return func(t *Tracer) { t.stream.Set(sink{w}) }
}

// WithEnv sets the function used to read environment variables when
// computing the default trace file path. The default is os.Getenv.
func WithEnv(getenv func(string) string) Option {
	return func(t *Tracer) { t.getenv = getenv }
}

// WithMirror sets a function which receives a copy of every fragment written
// to a stream. On Windows the default mirrors to the debugger console, on
// other platforms there is no mirror.
func WithMirror(mirror func(string)) Option {
	return func(t *Tracer) { t.mirror = mirror }
}

// WithErrorStream sets the writer which receives the tracer's own failure
// notices, e.g. when a trace file can't be opened. The default is
// DirectErrorStream.
func WithErrorStream(w io.Writer) Option {
	return func(t *Tracer) { t.errors = func() io.Writer { return w } }
}

// New returns a tracer configured by the given options.
func New(options ...Option) *Tracer {
	t := &Tracer{
		platform: SystemPlatform(),
		getenv:   os.Getenv,
		mirror:   debugMirror,
		errors:   DirectErrorStream,
		stream:   badgerutil.NewLazy(func() sink { return sink{os.Stderr} }),
		files:    map[string]*os.File{},
	}
	for _, option := range options {
		option(t)
	}
	t.tracePath = sync.OnceValue(t.defaultTraceFilePath)
	return t
}

// Platform returns the platform used by the tracer.
func (t *Tracer) Platform() Platform {
	return t.platform
}

// Tracef writes a trace line to the current stream. The call site is the
// caller of Tracef.
func (t *Tracer) Tracef(format string, args ...any) {
	w := t.Stream()
	if w == nil {
		return
	}
	t.Fprintf(w, Caller(1), format, args...)
}

// TraceArray writes a hex dump of data, with the given caption, to the
// current stream. The call site is the caller of TraceArray.
func (t *Tracer) TraceArray(caption string, data []byte) {
	w := t.Stream()
	if w == nil {
		return
	}
	t.FprintArray(w, Caller(1), caption, data)
}

// StartProfile starts a profile against the current stream. See
// FprofileStart for details.
func (t *Tracer) StartProfile(format string, args ...any) Stamp {
	w := t.Stream()
	if w == nil {
		return Stamp{}
	}
	return t.FprofileStart(w, Caller(1), format, args...)
}

// Tick writes a profile tick to the current stream. See Fprofile for
// details.
func (t *Tracer) Tick(stamp *Stamp, format string, args ...any) {
	w := t.Stream()
	if w == nil {
		return
	}
	t.Fprofile(stamp, w, Caller(1), format, args...)
}
