package openmath

import (
	"bytes"

	"github.com/openmath/go-openmath/om"
)

// Marshal returns the XML encoding of n as a standalone document, with the
// OpenMath namespace declared on the root element.
func Marshal(n om.Any, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, opts...)
	if err := e.Encode(n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses an XML-encoded OpenMath document and returns the tree it
// represents. The root element must carry version="2.0".
func Unmarshal(data []byte, opts ...Option) (om.Any, error) {
	return NewDecoder(bytes.NewReader(data), opts...).Decode()
}
