//go:build windows

package badger

import "golang.org/x/sys/windows"

// Console hosts don't reliably interpret ANSI escapes, so colors are never
// used on Windows.
const (
	terminalColors = false
	traceDirEnv    = "TEMP"
)

func threadID() int64 {
	return int64(windows.GetCurrentThreadId())
}

// debugMirror copies every written fragment to the debugger console.
var debugMirror = func(s string) {
	p, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return // s contains a NUL byte
	}
	windows.OutputDebugString(p)
}
