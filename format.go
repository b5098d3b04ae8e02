package badger

import (
	"fmt"
	"sync"

	"github.com/peterbourgon/badger/internal/badgerutil"
)

// FormatErrorMessage replaces a message whose formatting panicked.
const FormatErrorMessage = "<format error>"

// FormatMessage renders format and args with fmt semantics. It never panics:
// if formatting fails in a way fmt can't contain, the result is
// FormatErrorMessage.
func FormatMessage(format string, args ...any) string {
	return string(appendMessage(nil, format, args))
}

func appendMessage(dst []byte, format string, args []any) (out []byte) {
	mark := len(dst)
	defer func() {
		if recover() != nil {
			out = append(dst[:mark], FormatErrorMessage...)
		}
	}()
	return fmt.Appendf(dst, format, args...)
}

//
//
//

// lineBuffer holds the bytes of one fragment of a trace line. Buffers are
// pooled, and released before the emitting call returns.
type lineBuffer struct {
	b []byte
}

const (
	initialBufferSize = 256
	maxPooledBuffer   = 64 << 10
)

var lineBufferPool = sync.Pool{
	New: func() any {
		badgerutil.LineBuffers.Allocated()
		return &lineBuffer{b: make([]byte, 0, initialBufferSize)}
	},
}

func getLineBuffer() *lineBuffer {
	badgerutil.LineBuffers.Got()
	lb := lineBufferPool.Get().(*lineBuffer)
	lb.b = lb.b[:0]
	return lb
}

func putLineBuffer(lb *lineBuffer) {
	if cap(lb.b) > maxPooledBuffer {
		badgerutil.LineBuffers.Dropped() // let huge dumps be collected
		return
	}
	badgerutil.LineBuffers.Returned()
	lineBufferPool.Put(lb)
}
