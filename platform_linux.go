//go:build linux

package badger

import "golang.org/x/sys/unix"

const (
	terminalColors = true
	traceDirEnv    = "HOME"
)

func threadID() int64 {
	return int64(unix.Gettid())
}

// Linux has no debugger output channel.
var debugMirror func(string)
