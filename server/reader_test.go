package server

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReadLineKeepsTerminator(t *testing.T) {
	r := newLineReader(strings.NewReader("GET / HTTP/1.1\r\nHost: x\r\n"))

	line, err := r.readLine()
	if err != nil {
		t.Fatalf("readLine: %v", err)
	}
	if line != "GET / HTTP/1.1\r\n" {
		t.Errorf("got %q, want %q", line, "GET / HTTP/1.1\r\n")
	}

	line, err = r.readLine()
	if err != nil {
		t.Fatalf("readLine: %v", err)
	}
	if line != "Host: x\r\n" {
		t.Errorf("got %q, want %q", line, "Host: x\r\n")
	}
}

func TestReadLineUnexpectedEOF(t *testing.T) {
	r := newLineReader(strings.NewReader("GET / HTTP/1.1"))
	if _, err := r.readLine(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("got %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestReadLineTooLong(t *testing.T) {
	r := newLineReader(strings.NewReader(strings.Repeat("a", maxLineLength+1) + "\r\n"))
	if _, err := r.readLine(); !errors.Is(err, errLineTooLong) {
		t.Errorf("got %v, want errLineTooLong", err)
	}
}

// A body must be readable right after the blank line, out of the same
// buffer the lines came from.
func TestReadFullAfterReadLine(t *testing.T) {
	r := newLineReader(strings.NewReader("\r\nworldtrailing"))
	if _, err := r.readLine(); err != nil {
		t.Fatalf("readLine: %v", err)
	}

	body, err := r.readFull(5)
	if err != nil {
		t.Fatalf("readFull: %v", err)
	}
	if string(body) != "world" {
		t.Errorf("got %q, want %q", body, "world")
	}
}

func TestReadFullShortRead(t *testing.T) {
	r := newLineReader(strings.NewReader("wor"))
	if _, err := r.readFull(5); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("got %v, want io.ErrUnexpectedEOF", err)
	}
}
