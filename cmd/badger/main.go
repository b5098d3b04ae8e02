// badger is a CLI tool for writing trace lines from shell scripts and other
// programs that can't import package badger directly.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/oklog/run"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

func main() {
	var (
		ctx    = context.Background()
		stdin  = os.Stdin
		stdout = os.Stdout
		stderr = os.Stderr
		args   = os.Args[1:]
	)
	err := exec(ctx, stdin, stdout, stderr, args)
	switch {
	case err == nil, errors.Is(err, context.Canceled), errors.As(err, &(run.SignalError{})):
		os.Exit(0)
	case err != nil:
		fmt.Fprintf(stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func exec(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args []string) (err error) {
	rootConfig := &rootConfig{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}

	rootFlags := ff.NewFlagSet("badger")
	rootConfig.registerBaseFlags(rootFlags)

	outputFlags := ff.NewFlagSet("output").SetParent(rootFlags)
	rootConfig.registerOutputFlags(outputFlags)

	rootCommand := &ff.Command{
		Name:      "badger",
		ShortHelp: "write trace debugging lines",
		Flags:     rootFlags,
	}

	// Config for `badger trace`.
	traceConfig := &traceConfig{rootConfig: rootConfig}
	traceFlags := ff.NewFlagSet("trace").SetParent(outputFlags)
	traceCommand := &ff.Command{
		Name:      "trace",
		Usage:     "badger trace [FLAGS] MESSAGE...",
		ShortHelp: "write a single trace line",
		LongHelp:  "Write the arguments, joined by spaces, as the message of one trace line.",
		Flags:     traceFlags,
		Exec:      traceConfig.Exec,
	}
	rootCommand.Subcommands = append(rootCommand.Subcommands, traceCommand)

	// Config for `badger dump`.
	dumpConfig := &dumpConfig{rootConfig: rootConfig}
	dumpFlags := ff.NewFlagSet("dump").SetParent(outputFlags)
	dumpConfig.register(dumpFlags)
	dumpCommand := &ff.Command{
		Name:      "dump",
		Usage:     "badger dump [FLAGS] [PATH]",
		ShortHelp: "write a hex dump of a file or stdin",
		LongHelp:  "Write the contents of PATH, or stdin if PATH is omitted or '-', as a hex dump.",
		Flags:     dumpFlags,
		Exec:      dumpConfig.Exec,
	}
	rootCommand.Subcommands = append(rootCommand.Subcommands, dumpCommand)

	// Config for `badger profile`.
	profileConfig := &profileConfig{rootConfig: rootConfig}
	profileFlags := ff.NewFlagSet("profile").SetParent(outputFlags)
	profileConfig.register(profileFlags)
	profileCommand := &ff.Command{
		Name:      "profile",
		Usage:     "badger profile [FLAGS] MESSAGE...",
		ShortHelp: "start a profile and write periodic ticks",
		LongHelp:  "Start a profile, and write a tick every interval, until the count is reached or the process is interrupted.",
		Flags:     profileFlags,
		Exec:      profileConfig.Exec,
	}
	rootCommand.Subcommands = append(rootCommand.Subcommands, profileCommand)

	// Config for `badger mark`.
	markConfig := &markConfig{rootConfig: rootConfig}
	markFlags := ff.NewFlagSet("mark").SetParent(outputFlags)
	markCommand := &ff.Command{
		Name:      "mark",
		Usage:     "badger mark [FLAGS] [MESSAGE...]",
		ShortHelp: "write a trace line with a unique marker ID",
		LongHelp:  "Write a trace line containing a fresh ULID, and print the ULID to stdout.",
		Flags:     markFlags,
		Exec:      markConfig.Exec,
	}
	rootCommand.Subcommands = append(rootCommand.Subcommands, markCommand)

	// Config for `badger path`.
	pathConfig := &pathConfig{rootConfig: rootConfig}
	pathFlags := ff.NewFlagSet("path").SetParent(rootFlags)
	pathCommand := &ff.Command{
		Name:      "path",
		ShortHelp: "print the default trace file path",
		Flags:     pathFlags,
		Exec:      pathConfig.Exec,
	}
	rootCommand.Subcommands = append(rootCommand.Subcommands, pathCommand)

	// Print help when appropriate.
	showHelp := true
	defer func() {
		errHelp := errors.Is(err, ff.ErrHelp) || errors.Is(err, ff.ErrNoExec)
		if showHelp || errHelp {
			fmt.Fprintf(stderr, "\n%s\n", ffhelp.Command(rootCommand))
		}
		if errHelp {
			err = nil
		}
	}()

	// Initial parsing.
	if err := rootCommand.Parse(args, ff.WithEnvVarPrefix("BADGER")); err != nil {
		return err
	}

	// Validation and set-up.
	if err := rootConfig.setup(); err != nil {
		return err
	}
	defer rootConfig.teardown()

	// Run errors shouldn't show help by default.
	showHelp = false

	// Run the selected command.
	return rootCommand.Run(ctx)
}
