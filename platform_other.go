//go:build !linux && !windows

package badger

const (
	terminalColors = true
	traceDirEnv    = "HOME"
)

func threadID() int64 {
	return unknownThreadID
}

var debugMirror func(string)
