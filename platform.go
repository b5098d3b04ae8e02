package badger

import (
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// Platform captures the process-level capabilities that every trace line
// depends on: identity, time, and terminal detection. Core formatting and
// emission code is written once against this interface. Tests typically
// provide their own implementation, to get a deterministic clock.
type Platform interface {
	// ProcessID should return the OS process identifier. It never changes
	// for the lifetime of the process.
	ProcessID() int

	// ThreadID should return the OS thread identifier of the calling thread,
	// or a fixed sentinel value on platforms without a cheap native query.
	ThreadID() int64

	// Now should return the current time. Implementations which return
	// values with a monotonic clock reading give monotonic profile deltas.
	Now() time.Time

	// IsTerminal should return true only if the writer is an interactive
	// terminal device. Files, pipes, and in-memory buffers are never
	// terminals.
	IsTerminal(w io.Writer) bool
}

// SystemPlatform returns the platform implementation selected at build time.
func SystemPlatform() Platform {
	return systemPlatform{}
}

type systemPlatform struct{}

var _ Platform = systemPlatform{}

var processID = sync.OnceValue(os.Getpid)

func (systemPlatform) ProcessID() int { return processID() }

func (systemPlatform) ThreadID() int64 { return threadID() }

func (systemPlatform) Now() time.Time { return time.Now() }

func (systemPlatform) IsTerminal(w io.Writer) bool {
	if !terminalColors {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// unknownThreadID is reported by platforms where the thread ID can't be
// queried cheaply. Every thread shares it.
const unknownThreadID = 0xA

//
//
//

const timestampLayout = "2006-01-02 15:04:05"

// FormatTimestamp renders t in local time as YYYY-MM-DD HH:MM:SS.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(timestampLayout)
}
