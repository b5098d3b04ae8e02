package badger

import (
	"io"
	"strconv"
	"time"
)

// Stamp tracks elapsed time across a sequence of profile ticks. The zero
// value is an uninitialized stamp, which is what a profile started against a
// disabled stream produces. Stamps are plain values owned by the caller,
// typically a local variable in the profiled scope.
type Stamp struct {
	Start time.Time // set once, when the profile starts
	Last  time.Time // updated by every tick
}

// IsZero returns true if the stamp is uninitialized.
func (s Stamp) IsZero() bool {
	return s.Start.IsZero()
}

// FprofileStart starts a profile, and writes a trace line to w of the form
//
//	<header>[profile started at <sec>.<usec>] <message>
//
// The returned stamp should be passed to subsequent calls to Fprofile. If w is
// nil, the zero stamp is returned, and nothing is written.
func (t *Tracer) FprofileStart(w io.Writer, site CallSite, format string, args ...any) (stamp Stamp) {
	if w == nil {
		return Stamp{}
	}

	now := t.platform.Now()
	stamp = Stamp{Start: now, Last: now}

	defer swallow()

	e := t.begin(w, site)
	defer e.release()

	e.buf.b = appendStartMarker(e.buf.b[:0], now)
	e.putBuffer()
	e.buf.b = appendMessage(e.buf.b[:0], format, args)
	e.putBuffer()
	e.put(newline)
	e.flush()

	return stamp
}

// Fprofile writes a trace line to w of the form
//
//	<header>[passed: <ms> msec, total: <ms> msec] <message>
//
// where passed is the time since the previous tick (or the start), and total
// is the time since the start. Both are truncated to whole milliseconds. The
// stamp's Last field is then set to the time of this tick. A zero stamp is
// treated as if it were started by this tick. If w is nil, nothing happens.
func (t *Tracer) Fprofile(stamp *Stamp, w io.Writer, site CallSite, format string, args ...any) {
	if w == nil {
		return
	}
	if stamp == nil {
		stamp = &Stamp{}
	}

	now := t.platform.Now()
	if stamp.IsZero() {
		stamp.Start, stamp.Last = now, now
	}
	defer func() { stamp.Last = now }()

	defer swallow()

	e := t.begin(w, site)
	defer e.release()

	e.buf.b = appendTickMarker(e.buf.b[:0], now.Sub(stamp.Last), now.Sub(stamp.Start))
	e.putBuffer()
	e.buf.b = appendMessage(e.buf.b[:0], format, args)
	e.putBuffer()
	e.put(newline)
	e.flush()
}

func appendStartMarker(dst []byte, start time.Time) []byte {
	usec := start.Nanosecond() / int(time.Microsecond)
	dst = append(dst, "[profile started at "...)
	dst = strconv.AppendInt(dst, start.Unix(), 10)
	dst = append(dst, '.')
	for width := 100000; width > 1 && usec < width; width /= 10 {
		dst = append(dst, '0')
	}
	dst = strconv.AppendInt(dst, int64(usec), 10)
	return append(dst, "] "...)
}

func appendTickMarker(dst []byte, passed, total time.Duration) []byte {
	dst = append(dst, "[passed: "...)
	dst = strconv.AppendInt(dst, wholeMilliseconds(passed), 10)
	dst = append(dst, " msec, total: "...)
	dst = strconv.AppendInt(dst, wholeMilliseconds(total), 10)
	return append(dst, " msec] "...)
}

// wholeMilliseconds truncates d, at microsecond resolution, to milliseconds.
// Negative durations, which a non-monotonic clock can produce, become zero.
func wholeMilliseconds(d time.Duration) int64 {
	if d < 0 {
		return 0
	}
	return d.Microseconds() / 1000
}
