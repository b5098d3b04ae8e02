package badger

import (
	"runtime"
	"strings"
)

// CallSite identifies the source location of a trace statement.
type CallSite struct {
	File     string // last directory and base name, e.g. "pkg/file.go"
	Line     int    //
	Function string // without the package path, e.g. "(*T).Method"
}

// Caller returns a call site from the stack of the calling goroutine.
// A skip of 0 identifies the function which calls Caller, 1 identifies its
// caller, and so on. If the stack can't be walked, a site with "???" file and
// function names is returned.
func Caller(skip int) CallSite {
	var pcs [1]uintptr
	if runtime.Callers(skip+2, pcs[:]) < 1 {
		return CallSite{File: "???", Function: "???"}
	}

	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	site := CallSite{
		File:     pathSuffix(frame.File),
		Line:     frame.Line,
		Function: funcNameOnly(frame.Function),
	}
	if site.File == "" {
		site.File = "???"
	}
	if site.Function == "" {
		site.Function = "???"
	}
	return site
}

func pathSuffix(path string) string {
	const pathSep = "/"
	lastSep := strings.LastIndex(path, pathSep)
	if lastSep == -1 {
		return path
	}
	return path[strings.LastIndex(path[:lastSep], pathSep)+1:]
}

func funcNameOnly(name string) string {
	const pathSep = "/"
	if i := strings.LastIndex(name, pathSep); i != -1 {
		name = name[i+len(pathSep):]
	}
	const pkgSep = "."
	if i := strings.Index(name, pkgSep); i != -1 {
		name = name[i+len(pkgSep):]
	}
	return name
}
