package server

// Field is a single header name/value pair, both trimmed.
type Field struct {
	Name  string
	Value string
}

// Header is an ordered header block. Unlike http.Header it keeps insertion
// order, allows duplicates and compares names case-sensitively.
type Header []Field

func (h *Header) Add(name, value string) {
	*h = append(*h, Field{Name: name, Value: value})
}

// Get returns the first value recorded under name.
func (h Header) Get(name string) (string, bool) {
	for _, f := range h {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}
