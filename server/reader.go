package server

import (
	"bufio"
	"errors"
	"io"
)

// Limit lines to 8KB
const maxLineLength = 8 * 1024

var errLineTooLong = errors.New("line too long")

// lineReader reads CRLF-framed text and fixed-length byte runs from a single
// buffered stream, so a body is readable immediately after the header block.
type lineReader struct {
	reader *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &lineReader{reader: br}
}

// readLine returns the next line including its trailing terminator. The
// stream ending before a newline is io.ErrUnexpectedEOF.
func (r *lineReader) readLine() (string, error) {
	var line []byte
	for {
		b, err := r.reader.ReadByte()
		if err == io.EOF {
			return "", io.ErrUnexpectedEOF
		}
		if err != nil {
			return "", err
		}
		line = append(line, b)
		if b == '\n' {
			return string(line), nil
		}
		if len(line) >= maxLineLength {
			return "", errLineTooLong
		}
	}
}

// readFull returns exactly n bytes, draining the buffer before the stream.
func (r *lineReader) readFull(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.reader, buf); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf, nil
}
