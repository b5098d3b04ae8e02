// Package badger provides trace debugging, also known as printf debugging. It
// requires no setup: import it and litter your code with trace statements.
//
//	func myFunction(arg string) {
//	    badger.Trace("begin, arg=[%s]", arg)
//	    ...
//	}
//
// Each statement writes a single line to the current stream, which is stderr
// by default. The line is prefixed with a header containing a timestamp, the
// process and thread IDs, and the file, line, and function of the statement.
//
//	2024-01-02 15:04:05:12345(3039):pkg/file.go:42:myFunction: begin, arg=[foo]
//
// If the stream is an interactive terminal, the header fields are colored.
//
// This is deliberately not a logging framework. There are no levels, no
// structured fields, and no buffering: every statement is written and flushed
// synchronously. Output is disabled by setting the current stream to nil.
//
// The current stream can be redirected to any writer, including the default
// trace file, which is $HOME/badger.debug.trace.
//
//	f, err := badger.TraceFile(badger.DefaultTraceFilePath())
//	if err == nil {
//	    badger.SetCurrentStream(f)
//	}
//
// Elapsed time can be profiled with StartProfile and Tick. Byte slices can be
// dumped with TraceArray.
//
// The package-level functions use a process-wide default tracer. Programs and
// tests which need isolated state can construct their own Tracer with New.
package badger
