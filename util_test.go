package badger_test

import (
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/peterbourgon/badger"
)

func AssertEqual[T any](t *testing.T, want, have T) {
	t.Helper()
	if !cmp.Equal(want, have) {
		t.Fatal(cmp.Diff(want, have))
	}
}

// fakePlatform has a fixed identity and a manually advanced clock.
type fakePlatform struct {
	mtx      sync.Mutex
	pid      int
	tid      int64
	now      time.Time
	terminal bool
}

var _ badger.Platform = (*fakePlatform)(nil)

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		pid: 123,
		tid: 0xABC,
		now: time.Date(2024, time.January, 2, 15, 4, 5, 7000, time.Local),
	}
}

func (p *fakePlatform) ProcessID() int              { return p.pid }
func (p *fakePlatform) ThreadID() int64             { return p.tid }
func (p *fakePlatform) IsTerminal(w io.Writer) bool { return p.terminal }

func (p *fakePlatform) Now() time.Time {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.now
}

func (p *fakePlatform) Advance(d time.Duration) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.now = p.now.Add(d)
}

// lines splits s into newline-terminated lines, without the newlines.
func lines(t *testing.T, s string) []string {
	t.Helper()
	if !strings.HasSuffix(s, "\n") {
		t.Fatalf("output %q doesn't end with a newline", s)
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

var testSite = badger.CallSite{File: "pkg/file.go", Line: 42, Function: "myFunction"}

const testHeader = "2024-01-02 15:04:05:123(abc):pkg/file.go:42:myFunction: "
