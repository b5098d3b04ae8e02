package badger

import "strconv"

// SGR foreground codes.
const (
	fgGreen   = 32
	fgYellow  = 33
	fgBlue    = 34
	fgMagenta = 35
	fgCyan    = 36
)

// Header fields are colored in this order: timestamp, pid(tid), file, line,
// function.
var headerColors = [...]int{
	fgMagenta,
	fgYellow,
	fgGreen,
	fgBlue,
	fgCyan,
}

const resetSequence = "\x1b[0m"

// FormatHeader renders the trace header for the given call site, using the
// platform for the timestamp and process identity. The plain form is
//
//	<timestamp>:<pid>(<tid-hex>):<file>:<line>:<function>: <message>
//
// where the message follows the header. If colorize is true, each of the five
// fields is wrapped in an ANSI color sequence of the form ESC[0;<n>m...ESC[0m.
// The header always ends with a colon and a single space.
func FormatHeader(p Platform, site CallSite, colorize bool) string {
	return string(appendHeader(nil, p, site, colorize))
}

func appendHeader(dst []byte, p Platform, site CallSite, colorize bool) []byte {
	dst = beginField(dst, colorize, headerColors[0])
	dst = p.Now().Local().AppendFormat(dst, timestampLayout)
	dst = endField(dst, colorize)
	dst = append(dst, ':')

	dst = beginField(dst, colorize, headerColors[1])
	dst = strconv.AppendInt(dst, int64(p.ProcessID()), 10)
	dst = append(dst, '(')
	dst = strconv.AppendUint(dst, uint64(p.ThreadID()), 16)
	dst = append(dst, ')')
	dst = endField(dst, colorize)
	dst = append(dst, ':')

	dst = beginField(dst, colorize, headerColors[2])
	dst = append(dst, site.File...)
	dst = endField(dst, colorize)
	dst = append(dst, ':')

	dst = beginField(dst, colorize, headerColors[3])
	dst = strconv.AppendInt(dst, int64(site.Line), 10)
	dst = endField(dst, colorize)
	dst = append(dst, ':')

	dst = beginField(dst, colorize, headerColors[4])
	dst = append(dst, site.Function...)
	dst = endField(dst, colorize)

	return append(dst, ':', ' ')
}

func beginField(dst []byte, colorize bool, code int) []byte {
	if !colorize {
		return dst
	}
	dst = append(dst, "\x1b[0;"...)
	dst = strconv.AppendInt(dst, int64(code), 10)
	return append(dst, 'm')
}

func endField(dst []byte, colorize bool) []byte {
	if !colorize {
		return dst
	}
	return append(dst, resetSequence...)
}
