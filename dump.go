package badger

import (
	"io"
	"strconv"
)

// BytesPerRow is the number of bytes rendered in each row of an array dump.
const BytesPerRow = 16

const hexDigits = "0123456789ABCDEF"

// FprintArray writes a hex dump of data to w, beneath a header for site and
// the caption. Each row covers up to BytesPerRow bytes, and is rendered as
//
//	  <first>-<last> = [  .a .b 0A ... ]
//
// where printable ASCII bytes (0x20 through 0x7E) are rendered as a dot and
// the byte itself, and all other bytes as two uppercase hex digits. An empty
// data slice produces no rows. The stream is flushed once, after the final
// row. A nil w is a no-op.
func (t *Tracer) FprintArray(w io.Writer, site CallSite, caption string, data []byte) {
	if w == nil {
		return
	}
	defer swallow()

	e := t.begin(w, site)
	defer e.release()

	e.putString(caption)
	e.putString(":\n")

	for offset := 0; offset < len(data); offset += BytesPerRow {
		end := offset + BytesPerRow
		if end > len(data) {
			end = len(data)
		}
		e.buf.b = AppendDumpRow(e.buf.b[:0], offset, data[offset:end])
		e.putBuffer()
	}

	e.flush()
}

// AppendDumpRow appends one rendered dump row, including the trailing
// newline, to dst. The offset is the position of row[0] in the overall buffer.
func AppendDumpRow(dst []byte, offset int, row []byte) []byte {
	last := offset + len(row) - 1
	if len(row) <= 0 {
		last = offset
	}

	dst = append(dst, ' ', ' ')
	dst = strconv.AppendInt(dst, int64(offset), 10)
	dst = append(dst, '-')
	dst = strconv.AppendInt(dst, int64(last), 10)
	dst = append(dst, " = [ "...)
	for _, c := range row {
		dst = AppendDumpCell(dst, c)
	}
	return append(dst, " ]\n"...)
}

// AppendDumpCell appends the three character rendering of c to dst: a space,
// followed by either a dot and c itself, if c is printable ASCII, or the two
// uppercase hex digits of c.
func AppendDumpCell(dst []byte, c byte) []byte {
	if isPrintable(c) {
		return append(dst, ' ', '.', c)
	}
	return append(dst, ' ', hexDigits[c>>4], hexDigits[c&0x0F])
}

func isPrintable(c byte) bool {
	return c >= 0x20 && c <= 0x7E
}
