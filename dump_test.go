package badger_test

import (
	"bytes"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/peterbourgon/badger"
)

func TestFprintArray(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tr := badger.New(badger.WithPlatform(newFakePlatform()), badger.WithMirror(nil))
	tr.FprintArray(&buf, testSite, "packet", []byte("Hello, world!\x00\x01\xFE\xFFtail"))

	want := testHeader + "packet:\n" +
		"  0-15 = [  .H .e .l .l .o ., .  .w .o .r .l .d .! 00 01 FE ]\n" +
		"  16-20 = [  FF .t .a .i .l ]\n"
	AssertEqual(t, want, buf.String())
}

func TestFprintArrayEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tr := badger.New(badger.WithPlatform(newFakePlatform()), badger.WithMirror(nil))
	tr.FprintArray(&buf, testSite, "nothing", nil)

	AssertEqual(t, testHeader+"nothing:\n", buf.String())
}

func TestFprintArrayFlushesOnce(t *testing.T) {
	t.Parallel()

	w := &countingFlusher{}
	tr := badger.New(badger.WithPlatform(newFakePlatform()), badger.WithMirror(nil))
	tr.FprintArray(w, testSite, "data", make([]byte, 100))

	AssertEqual(t, 1, w.flushes)
}

func TestAppendDumpCell(t *testing.T) {
	t.Parallel()

	for c := 0; c < 256; c++ {
		cell := string(badger.AppendDumpCell(nil, byte(c)))
		if len(cell) != 3 || cell[0] != ' ' {
			t.Fatalf("byte %#02x: bad cell %q", c, cell)
		}
		switch printable := c >= 0x20 && c <= 0x7E; {
		case printable:
			AssertEqual(t, " ."+string(rune(c)), cell)
		default:
			AssertEqual(t, " "+strings.ToUpper(strconv.FormatUint(uint64(c>>4), 16)+strconv.FormatUint(uint64(c&0xF), 16)), cell)
		}
	}
}

func TestDumpRoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	sizes := []int{0, 1, 15, 16, 17, 31, 32, 33, 256, 1000}
	for i := 0; i < 20; i++ {
		sizes = append(sizes, rng.Intn(512))
	}

	tr := badger.New(badger.WithPlatform(newFakePlatform()), badger.WithMirror(nil))
	for _, size := range sizes {
		data := make([]byte, size)
		rng.Read(data)

		var buf bytes.Buffer
		tr.FprintArray(&buf, testSite, "caption", data)

		rows := lines(t, buf.String())[1:]
		AssertEqual(t, (size+badger.BytesPerRow-1)/badger.BytesPerRow, len(rows))
		AssertEqual(t, data, decodeDumpRows(t, rows))
	}
}

// decodeDumpRows parses rendered dump rows back into the bytes they
// represent.
func decodeDumpRows(t *testing.T, rows []string) []byte {
	t.Helper()

	out := []byte{}
	for i, row := range rows {
		prefix := "  " + strconv.Itoa(i*badger.BytesPerRow) + "-"
		if !strings.HasPrefix(row, prefix) {
			t.Fatalf("row %d: %q: missing prefix %q", i, row, prefix)
		}
		end, rest, ok := strings.Cut(row[len(prefix):], " = [ ")
		if !ok {
			t.Fatalf("row %d: %q: missing separator", i, row)
		}
		cells, ok := strings.CutSuffix(rest, " ]")
		if !ok {
			t.Fatalf("row %d: %q: missing terminator", i, row)
		}
		if len(cells)%3 != 0 {
			t.Fatalf("row %d: %q: cells aren't 3 bytes wide", i, row)
		}
		n := len(cells) / 3
		if n <= 0 || n > badger.BytesPerRow {
			t.Fatalf("row %d: %q: %d cells", i, row, n)
		}
		AssertEqual(t, strconv.Itoa(i*badger.BytesPerRow+n-1), end)

		for j := 0; j < len(cells); j += 3 {
			cell := cells[j : j+3]
			if cell[1] == '.' {
				out = append(out, cell[2])
				continue
			}
			b, err := strconv.ParseUint(cell[1:], 16, 8)
			if err != nil {
				t.Fatalf("row %d: cell %q: %v", i, cell, err)
			}
			AssertEqual(t, strings.ToUpper(cell[1:]), cell[1:])
			out = append(out, byte(b))
		}
	}
	return out
}

type countingFlusher struct {
	bytes.Buffer
	flushes int
}

func (w *countingFlusher) Flush() error {
	w.flushes++
	return nil
}
