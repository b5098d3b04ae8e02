package badger

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"syscall"
)

// Stream returns the current stream. Before any call to SetStream, it's
// os.Stderr, resolved on first read. A nil result means output is disabled.
func (t *Tracer) Stream() io.Writer {
	return t.stream.Get().w
}

// SetStream sets the current stream. A nil writer disables output.
func (t *Tracer) SetStream(w io.Writer) {
	t.stream.Set(sink{w})
}

// CurrentStream is a combined getter and setter. If w is nil, it returns the
// current stream. Otherwise, it sets the current stream to w and returns w.
// Use SetStream to disable output.
func (t *Tracer) CurrentStream(w io.Writer) io.Writer {
	if w == nil {
		return t.Stream()
	}
	t.SetStream(w)
	return w
}

// DirectErrorStream returns a writer bound to file descriptor 2, regardless
// of what os.Stderr currently refers to. It's useful when the host program
// replaces os.Stderr, e.g. to capture it. The same *os.File is returned for
// the life of the process, and it's never closed.
func DirectErrorStream() io.Writer {
	return directStderr()
}

var directStderr = sync.OnceValue(func() *os.File {
	return os.NewFile(uintptr(syscall.Stderr), "/dev/stderr")
})

// TraceFileName is the base name of the default trace file.
const TraceFileName = "badger.debug.trace"

// SessionEnv names the environment variable which, if set, nests the default
// trace file in a per-session subdirectory.
const SessionEnv = "TTY_USERNAME"

// DefaultTraceFilePath returns the path of the default trace file. It's
// computed once per tracer, as $HOME/badger.debug.trace, or, if $TTY_USERNAME
// is set, $HOME/$TTY_USERNAME/badger.debug.trace, where the session directory
// is created if it doesn't exist. On Windows, %TEMP% takes the place of $HOME.
func (t *Tracer) DefaultTraceFilePath() string {
	return t.tracePath()
}

func (t *Tracer) defaultTraceFilePath() string {
	dir := t.getenv(traceDirEnv)
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = home
		} else {
			dir = os.TempDir()
		}
	}

	if session := t.getenv(SessionEnv); session != "" {
		dir = filepath.Join(dir, session)
		if err := os.Mkdir(dir, 0o755); err != nil && !errors.Is(err, fs.ErrExist) {
			fmt.Fprintf(t.errors(), "Failed to create %s\n", dir)
		}
	}

	return filepath.Join(dir, TraceFileName)
}

// TraceFile returns the trace file at path, opened for appending. An empty
// path means the default trace file path. Files are opened at most once per
// path per tracer, and remain open until the tracer is closed. Distinct paths
// produce distinct files.
//
// If the file can't be opened, a notice is written to the tracer's error
// stream, and a nil file is returned along with the error.
func (t *Tracer) TraceFile(path string) (*os.File, error) {
	if path == "" {
		path = t.DefaultTraceFilePath()
	}

	t.filesMtx.Lock()
	defer t.filesMtx.Unlock()

	if f, ok := t.files[path]; ok {
		return f, nil
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		fmt.Fprintf(t.errors(), "Failed to open %s\n", path)
		return nil, fmt.Errorf("open trace file: %w", err)
	}

	t.files[path] = f
	return f, nil
}

// Close every trace file opened by the tracer. If a closed file is the current
// stream, output is disabled.
func (t *Tracer) Close() error {
	t.filesMtx.Lock()
	defer t.filesMtx.Unlock()

	var current io.Writer
	if t.stream.IsSet() {
		current = t.stream.Get().w
	}

	var errs []error
	for path, f := range t.files {
		if w, ok := current.(*os.File); ok && w == f {
			t.stream.Set(sink{})
		}
		if err := f.Close(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
		}
		delete(t.files, path)
	}

	return errors.Join(errs...)
}
