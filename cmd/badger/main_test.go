package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/oklog/ulid/v2"
)

const header = `\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}:\d+\([0-9a-f]+\):`

func execTest(t *testing.T, stdin string, args ...string) (stdout, stderr string) {
	t.Helper()

	var outbuf, errbuf bytes.Buffer
	if err := exec(context.Background(), strings.NewReader(stdin), &outbuf, &errbuf, args); err != nil {
		t.Fatalf("%v: %v\n%s", args, err, errbuf.String())
	}
	return outbuf.String(), errbuf.String()
}

func assertMatch(t *testing.T, pattern, have string) {
	t.Helper()
	re := regexp.MustCompile(pattern)
	if !re.MatchString(have) {
		t.Errorf("%q doesn't match %s", have, re)
	}
}

func TestTrace(t *testing.T) {
	t.Parallel()

	_, stderr := execTest(t, "", "trace", "hello", "world")
	assertMatch(t, `^`+header+`-:0:trace: hello world\n$`, stderr)

	_, stderr = execTest(t, "", "trace", "--site", "script.sh:12:main", "from", "a", "script")
	assertMatch(t, `^`+header+`script\.sh:12:main: from a script\n$`, stderr)

	_, stderr = execTest(t, "", "trace", "-s", "script.sh", "partial")
	assertMatch(t, `^`+header+`script\.sh:0:trace: partial\n$`, stderr)
}

func TestDebugLog(t *testing.T) {
	t.Parallel()

	_, stderr := execTest(t, "", "-l", "debug", "trace", "x")
	assertMatch(t, `(?m)^`+header+`-:0:trace: x$`, stderr)
	assertMatch(t, `(?m)^\[DEBUG\] line buffers: get=\d+ alloc=\d+ put=\d+ dropped=\d+ outstanding=-?\d+ reuse=\d+\.\d{2}%$`, stderr)

	_, stderr = execTest(t, "", "trace", "x")
	if strings.Contains(stderr, "[DEBUG]") {
		t.Errorf("default log level: want no debug output, have %q", stderr)
	}
}

func TestTeardownCloseError(t *testing.T) {
	t.Parallel()

	var errbuf bytes.Buffer
	cfg := &rootConfig{stderr: &errbuf, logLevel: "debug"}
	if err := cfg.setup(); err != nil {
		t.Fatal(err)
	}

	f, err := cfg.tracer.TraceFile(filepath.Join(t.TempDir(), "out.trace"))
	if err != nil {
		t.Fatal(err)
	}
	f.Close() // the tracer's own close will now fail

	cfg.teardown()
	assertMatch(t, `(?m)^\[DEBUG\] close trace files: .*out\.trace: .*closed`, errbuf.String())
}

func TestTraceInvalidSite(t *testing.T) {
	t.Parallel()

	var outbuf, errbuf bytes.Buffer
	err := exec(context.Background(), strings.NewReader(""), &outbuf, &errbuf, []string{"trace", "--site", "f:x:g", "msg"})
	if err == nil {
		t.Fatalf("want error, have none")
	}
}

func TestTraceOutputFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.trace")
	execTest(t, "", "trace", "-o", path, "first")
	execTest(t, "", "trace", "--output", path, "second")

	buf, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	assertMatch(t, `^`+header+`-:0:trace: first\n`+header+`-:0:trace: second\n$`, string(buf))
}

func TestDump(t *testing.T) {
	t.Parallel()

	_, stderr := execTest(t, "AB\x00", "dump")
	assertMatch(t, `^`+header+`-:0:dump: stdin:\n  0-2 = \[  \.A \.B 00 \]\n$`, stderr)

	path := filepath.Join(t.TempDir(), "data.bin")
	if err := os.WriteFile(path, bytes.Repeat([]byte{0xFF}, 20), 0o644); err != nil {
		t.Fatal(err)
	}

	_, stderr = execTest(t, "", "dump", "-c", "blob", path)
	assertMatch(t, `^`+header+`-:0:dump: blob:\n  0-15 = \[ ( FF){16} \]\n  16-19 = \[ ( FF){4} \]\n$`, stderr)

	_, stderr = execTest(t, "", "dump", "-n", "1", path)
	assertMatch(t, `: `+regexp.QuoteMeta(path)+`:\n  0-0 = \[  FF \]\n$`, stderr)
}

func TestProfile(t *testing.T) {
	t.Parallel()

	_, stderr := execTest(t, "", "profile", "-i", "1ms", "-n", "3", "work")

	lines := strings.Split(strings.TrimSuffix(stderr, "\n"), "\n")
	if want, have := 5, len(lines); want != have {
		t.Fatalf("lines: want %d, have %d: %q", want, have, stderr)
	}
	assertMatch(t, `^`+header+`-:0:profile: \[profile started at \d+\.\d{6}\] work$`, lines[0])
	for i, line := range lines[1:4] {
		assertMatch(t, `^`+header+`-:0:profile: \[passed: \d+ msec, total: \d+ msec\] tick `+string(rune('1'+i))+`$`, line)
	}
	assertMatch(t, `\] done$`, lines[4])
}

func TestMark(t *testing.T) {
	t.Parallel()

	stdout, stderr := execTest(t, "", "mark", "section", "two")

	id, err := ulid.ParseStrict(strings.TrimSpace(stdout))
	if err != nil {
		t.Fatalf("stdout %q: %v", stdout, err)
	}
	assertMatch(t, `^`+header+`-:0:mark: mark `+id.String()+` section two\n$`, stderr)
}

func TestPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("TEMP", dir)
	t.Setenv("TTY_USERNAME", "session")

	stdout, _ := execTest(t, "", "path")
	want := filepath.Join(dir, "session", "badger.debug.trace")
	if !strings.Contains(stdout, want) {
		t.Errorf("stdout %q doesn't contain %q", stdout, want)
	}

	_, stderr := execTest(t, "", "trace", "-f", "to the default file")
	if stderr != "" {
		t.Errorf("stderr: want nothing, have %q", stderr)
	}
	buf, err := os.ReadFile(want)
	if err != nil {
		t.Fatal(err)
	}
	assertMatch(t, `^`+header+`-:0:trace: to the default file\n$`, string(buf))
}

func TestOutputFlagsExclusive(t *testing.T) {
	t.Parallel()

	var outbuf, errbuf bytes.Buffer
	err := exec(context.Background(), strings.NewReader(""), &outbuf, &errbuf, []string{"trace", "-f", "-o", "x", "msg"})
	if err == nil {
		t.Fatalf("want error, have none")
	}
}

func TestHelp(t *testing.T) {
	t.Parallel()

	var outbuf, errbuf bytes.Buffer
	if err := exec(context.Background(), strings.NewReader(""), &outbuf, &errbuf, []string{"--help"}); err != nil {
		t.Fatalf("want no error, have %v", err)
	}
	if !strings.Contains(errbuf.String(), "badger") {
		t.Errorf("help output %q doesn't mention badger", errbuf.String())
	}
}
