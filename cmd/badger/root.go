package main

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/peterbourgon/badger"
	"github.com/peterbourgon/badger/internal/badgerutil"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffval"
)

type rootConfig struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	logLevel string
	output   string
	file     bool
	direct   bool
	site     string

	debug *log.Logger

	tracer *badger.Tracer
}

func (cfg *rootConfig) registerBaseFlags(fs *ff.FlagSet) {
	fs.AddFlag(ff.FlagConfig{
		ShortName:   'l',
		LongName:    "log",
		Value:       ffval.NewEnum(&cfg.logLevel, "none", "n", "debug", "d"),
		Usage:       "log level: n/none, d/debug",
		Placeholder: "LEVEL",
	})
}

func (cfg *rootConfig) registerOutputFlags(fs *ff.FlagSet) {
	fs.AddFlag(ff.FlagConfig{
		ShortName:   'o',
		LongName:    "output",
		Value:       ffval.NewValue(&cfg.output),
		Usage:       "append to this trace file",
		Placeholder: "PATH",
	})
	fs.AddFlag(ff.FlagConfig{
		ShortName: 'f',
		LongName:  "file",
		Value:     ffval.NewValue(&cfg.file),
		Usage:     "append to the default trace file, see: badger path",
		NoDefault: true,
	})
	fs.AddFlag(ff.FlagConfig{
		LongName:  "direct",
		Value:     ffval.NewValue(&cfg.direct),
		Usage:     "write to file descriptor 2 directly",
		NoDefault: true,
	})
	fs.AddFlag(ff.FlagConfig{
		ShortName:   's',
		LongName:    "site",
		Value:       ffval.NewValue(&cfg.site),
		Usage:       "call site in the header, e.g. \"$0:$LINENO:$FUNCNAME\"",
		Placeholder: "FILE:LINE:FUNC",
	})
}

func (cfg *rootConfig) setup() error {
	var debugdst io.Writer
	switch cfg.logLevel {
	case "n", "none":
		debugdst = io.Discard
	case "d", "debug":
		debugdst = cfg.stderr
	default:
		return fmt.Errorf("invalid log level %q", cfg.logLevel)
	}
	cfg.debug = log.New(debugdst, "[DEBUG] ", log.Lmsgprefix)

	if cfg.output != "" && cfg.file {
		return fmt.Errorf("--output and --file are mutually exclusive")
	}

	cfg.tracer = badger.New(
		badger.WithStream(cfg.stderr),
		badger.WithErrorStream(cfg.stderr),
	)

	return nil
}

// teardown closes any trace files opened by the command, and reports line
// buffer pool usage at debug level.
func (cfg *rootConfig) teardown() {
	if err := cfg.tracer.Close(); err != nil {
		cfg.debug.Printf("close trace files: %v", err)
	}
	cfg.debug.Printf("line buffers: %s", badgerutil.LineBuffers.Stats())
}

// stream returns the destination selected by the output flags.
func (cfg *rootConfig) stream() (io.Writer, error) {
	switch {
	case cfg.output != "", cfg.file:
		f, err := cfg.tracer.TraceFile(cfg.output) // empty means default
		if err != nil {
			return nil, err
		}
		cfg.debug.Printf("output: %s", f.Name())
		return f, nil
	case cfg.direct:
		cfg.debug.Printf("output: direct stderr")
		return badger.DirectErrorStream(), nil
	default:
		return cfg.tracer.Stream(), nil
	}
}

// callSite parses the --site flag. Missing fields are filled in with "-" for
// the file, 0 for the line, and the command name for the function.
func (cfg *rootConfig) callSite(command string) (badger.CallSite, error) {
	site := badger.CallSite{File: "-", Function: command}
	if cfg.site == "" {
		return site, nil
	}

	fields := strings.SplitN(cfg.site, ":", 3)
	if fields[0] != "" {
		site.File = fields[0]
	}
	if len(fields) > 1 && fields[1] != "" {
		line, err := strconv.Atoi(fields[1])
		if err != nil {
			return badger.CallSite{}, fmt.Errorf("invalid site line %q: %w", fields[1], err)
		}
		site.Line = line
	}
	if len(fields) > 2 && fields[2] != "" {
		site.Function = fields[2]
	}

	cfg.debug.Printf("site: %s:%d:%s", site.File, site.Line, site.Function)
	return site, nil
}

// target resolves both the stream and the call site for a command.
func (cfg *rootConfig) target(command string) (io.Writer, badger.CallSite, error) {
	site, err := cfg.callSite(command)
	if err != nil {
		return nil, badger.CallSite{}, err
	}

	w, err := cfg.stream()
	if err != nil {
		return nil, badger.CallSite{}, err
	}

	return w, site, nil
}
