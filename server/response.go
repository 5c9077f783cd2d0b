package server

import (
	"bytes"
	"fmt"
	"strconv"
)

// Response is a fully materialized response message.
type Response struct {
	Status int
	Phrase string
	Header Header
	Body   []byte
}

// newContentResponse builds a response carrying a typed body, declaring
// Content-Type and Content-Length.
func newContentResponse(status int, phrase, contentType string, body []byte) *Response {
	var headers Header
	headers.Add("Content-Type", contentType)
	headers.Add("Content-Length", strconv.Itoa(len(body)))
	return &Response{Status: status, Phrase: phrase, Header: headers, Body: body}
}

// newStatusResponse builds the short header-less form the original file
// routes answer with, e.g. `HTTP/1.1 404 Not Found\r\n\r\n404 Not Found`.
func newStatusResponse(status int, phrase string) *Response {
	return &Response{
		Status: status,
		Phrase: phrase,
		Body:   fmt.Appendf(nil, "%d %s", status, phrase),
	}
}

// Bytes assembles the status line, header block and body into one buffer.
func (r *Response) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "HTTP/1.1 %d %s\r\n", r.Status, r.Phrase)
	for _, f := range r.Header {
		fmt.Fprintf(&buf, "%s: %s\r\n", f.Name, f.Value)
	}
	buf.WriteString("\r\n")
	buf.Write(r.Body)
	return buf.Bytes()
}
