package server

import "testing"

func TestContentResponseBytes(t *testing.T) {
	got := string(newContentResponse(200, "OK", "text/plain", []byte("abc")).Bytes())
	want := "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 3\r\n\r\nabc"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStatusResponseBytes(t *testing.T) {
	got := string(newStatusResponse(404, "Not Found").Bytes())
	want := "HTTP/1.1 404 Not Found\r\n\r\n404 Not Found"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCreatedResponseHasEmptyBody(t *testing.T) {
	r := &Response{Status: 201, Phrase: "Created"}
	got := string(r.Bytes())
	want := "HTTP/1.1 201 Created\r\n\r\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
