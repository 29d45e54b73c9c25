package sections

import "fmt"

// defaultVersion is assumed when a document declares no version.
const defaultVersion = "1"

// Header exposes the document header section with defaulting.
type Header struct {
	values map[string]any
}

// NewHeader creates a Header over the parsed section. A nil map is valid.
func NewHeader(values map[string]any) *Header {
	return &Header{values: values}
}

// Version returns the declared document version, defaulting to "1".
func (h *Header) Version() string {
	return h.lookup("version", defaultVersion)
}

// Name returns the declared document name, defaulting to empty.
func (h *Header) Name() string {
	return h.lookup("name", "")
}

func (h *Header) lookup(key, fallback string) string {
	v, ok := h.values[key]
	if !ok || v == nil {
		return fallback
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
