package server

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

var (
	responseOK            = newStatusResponse(200, "OK")
	responseNotFound      = newStatusResponse(404, "Not Found")
	responseInternalError = newStatusResponse(500, "Internal Server Error")
)

// route maps one request onto a response, first match wins. Dispatch
// failures never escape it: a missing file under GET /files/ is the 404
// page, anything else is the 500 page.
func (s *Server) route(req *Request) *Response {
	switch {
	case req.Method == MethodGet && strings.HasPrefix(req.Target, "/echo/"):
		return newContentResponse(200, "OK", "text/plain", []byte(strings.TrimPrefix(req.Target, "/echo/")))

	case req.Method == MethodPost && strings.HasPrefix(req.Target, "/files/") && req.Body != nil:
		return s.createFile(strings.TrimPrefix(req.Target, "/files/"), req.Body)

	case req.Method == MethodGet && strings.HasPrefix(req.Target, "/files/"):
		return s.serveFile(strings.TrimPrefix(req.Target, "/files/"))

	case req.Method == MethodGet && req.Target == "/user-agent":
		agent, found := req.Header.Get("User-Agent")
		if !found {
			slog.Error("user-agent route without User-Agent header")
			return responseInternalError
		}
		return newContentResponse(200, "OK", "text/plain", []byte(agent))

	case req.Method == MethodGet && req.Target == "/":
		return responseOK
	}
	return responseNotFound
}

func (s *Server) serveFile(name string) *Response {
	if s.Config.Directory == "" {
		return responseNotFound
	}

	contents, err := os.ReadFile(filepath.Join(s.Config.Directory, name))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Error("read file", "name", name, "err", err)
		}
		return responseNotFound
	}
	return newContentResponse(200, "OK", "application/octet-stream", contents)
}

func (s *Server) createFile(name string, body []byte) *Response {
	if s.Config.Directory == "" {
		return responseNotFound
	}

	if err := os.WriteFile(filepath.Join(s.Config.Directory, name), body, 0o644); err != nil {
		slog.Error("write file", "name", name, "err", err)
		return responseInternalError
	}
	return &Response{Status: 201, Phrase: "Created"}
}
