// Package fsio provides the file access layer for rewrite runs: splitting
// files into lines without losing their exact terminators, and writing
// rewritten content back in place.
package fsio

import "bytes"

// Line is one line of a text file together with the terminator it was read
// with. Keeping the terminator out of Text lets rewriters treat the line as
// plain content while JoinLines reassembles the file byte for byte.
type Line struct {
	Text string // content without the terminator
	EOL  string // "\n", "\r\n", or "" for an unterminated final line
}

// SplitLines splits data into terminator-preserving lines. A lone '\r' is
// not a terminator and stays in Text. JoinLines(SplitLines(data)) reproduces
// data exactly, for any input.
func SplitLines(data []byte) []Line {
	var lines []Line
	start := 0
	for i := 0; i < len(data); i++ {
		if data[i] != '\n' {
			continue
		}
		end := i
		eol := "\n"
		if end > start && data[end-1] == '\r' {
			end--
			eol = "\r\n"
		}
		lines = append(lines, Line{Text: string(data[start:end]), EOL: eol})
		start = i + 1
	}
	if start < len(data) {
		lines = append(lines, Line{Text: string(data[start:])})
	}
	return lines
}

// JoinLines reassembles lines into file content.
func JoinLines(lines []Line) []byte {
	var buf bytes.Buffer
	for _, l := range lines {
		buf.WriteString(l.Text)
		buf.WriteString(l.EOL)
	}
	return buf.Bytes()
}
