package server

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Refuse declared bodies larger than 100MB
const maxBodySize = 100 * 1024 * 1024

var (
	errBadStartLine     = errors.New("bad start line")
	errUnknownMethod    = errors.New("unknown method")
	errBadHeader        = errors.New("bad header")
	errBadContentLength = errors.New("bad content length")
)

// Method is the closed set of request methods the server understands.
type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

func parseMethod(token string) (Method, error) {
	switch Method(token) {
	case MethodGet, MethodPost:
		return Method(token), nil
	}
	return "", fmt.Errorf("%w: %q", errUnknownMethod, token)
}

// Request is one parsed request message. Body is nil when the request
// declared no Content-Length; a declared length of zero yields an empty,
// non-nil slice.
type Request struct {
	Method Method
	Target string
	Header Header
	Body   []byte
}

func readRequest(r *lineReader) (*Request, error) {
	line, err := r.readLine()
	if err != nil {
		return nil, fmt.Errorf("read start line: %w", err)
	}

	req := new(Request)
	if req.Method, req.Target, err = parseStartLine(line); err != nil {
		return nil, err
	}
	if req.Header, err = readHeaderBlock(r); err != nil {
		return nil, err
	}
	if req.Body, err = readBody(r, req.Header); err != nil {
		return nil, err
	}
	return req, nil
}

// parseStartLine expects `METHOD SP target SP HTTP/1.1 CRLF`. The trailing
// version acts as a sentinel rejecting non-HTTP/1.1 traffic; the prefix is
// split on the first space only, so the target is taken verbatim.
func parseStartLine(line string) (Method, string, error) {
	rest, found := strings.CutSuffix(line, " HTTP/1.1\r\n")
	if !found {
		return "", "", fmt.Errorf("%w: no HTTP/1.1 terminator", errBadStartLine)
	}

	token, target, found := strings.Cut(strings.TrimSpace(rest), " ")
	if !found {
		return "", "", fmt.Errorf("%w: missing method or target", errBadStartLine)
	}

	method, err := parseMethod(token)
	if err != nil {
		return "", "", err
	}
	return method, target, nil
}

// readHeaderBlock collects header lines in order. A line containing at least
// one colon is a header; the first line without one, blank or otherwise,
// ends the block.
func readHeaderBlock(r *lineReader) (Header, error) {
	var headers Header
	for {
		line, err := r.readLine()
		if err != nil {
			return nil, fmt.Errorf("read header line: %w", err)
		}

		name, value, found := strings.Cut(line, ":")
		if !found {
			return headers, nil
		}
		name, value = strings.TrimSpace(name), strings.TrimSpace(value)
		if name == "" || value == "" {
			return nil, fmt.Errorf("%w: empty name or value in %q", errBadHeader, strings.TrimRight(line, "\r\n"))
		}
		headers.Add(name, value)
	}
}

// readBody consumes exactly the number of bytes declared by Content-Length,
// or nothing when no length was declared.
func readBody(r *lineReader, headers Header) ([]byte, error) {
	value, declared := headers.Get("Content-Length")
	if !declared {
		return nil, nil
	}

	n, err := strconv.ParseUint(value, 10, 63)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", errBadContentLength, value)
	}
	if n > maxBodySize {
		return nil, fmt.Errorf("%w: %d bytes over limit", errBadContentLength, n)
	}

	body, err := r.readFull(int(n))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
