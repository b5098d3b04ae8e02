package badger_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/peterbourgon/badger"
)

func TestFormatMessage(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{name: "literal", format: "hello", want: "hello"},
		{name: "verbs", format: "a=%d b=%q", args: []any{1, "two"}, want: `a=1 b="two"`},
		{name: "empty", format: "", want: ""},
		{name: "long", format: "%s", args: []any{strings.Repeat("x", 4096)}, want: strings.Repeat("x", 4096)},
		{name: "bad verb", format: "%d", args: []any{"s"}, want: "%!d(string=s)"},
		{name: "missing arg", format: "%d %d", args: []any{1}, want: "1 %!d(MISSING)"},
		{name: "nested panic", format: "%v", args: []any{panicStringer{}}, want: badger.FormatErrorMessage},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			AssertEqual(t, tc.want, badger.FormatMessage(tc.format, tc.args...))
		})
	}
}

// panicStringer panics with itself, which fmt can't contain, because it
// panics again while printing the panic value.
type panicStringer struct{}

func (panicStringer) String() string { panic(panicStringer{}) }

var _ fmt.Stringer = panicStringer{}
