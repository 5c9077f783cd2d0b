package server

// Config is read-only once the server starts; every connection shares it.
type Config struct {
	// Directory backs the /files/ routes. When empty those routes answer
	// 404.
	Directory string
}
