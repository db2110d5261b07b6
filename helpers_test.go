package openmath_test

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"
)

// parseXML parses a snippet and returns its root element.
func parseXML(t *testing.T, s string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(s))
	root := doc.Root()
	require.NotNil(t, root)
	return root
}

// elementsEqual reports structural XML equivalence: local tag, attributes,
// trimmed text and children, ignoring namespace declarations and prefix
// choices, which are not byte-unique across serializers.
func elementsEqual(e1, e2 *etree.Element) bool {
	if e1.Tag != e2.Tag {
		return false
	}
	if strings.TrimSpace(e1.Text()) != strings.TrimSpace(e2.Text()) {
		return false
	}
	a1, a2 := attrMap(e1), attrMap(e2)
	if len(a1) != len(a2) {
		return false
	}
	for k, v := range a1 {
		if a2[k] != v {
			return false
		}
	}
	c1, c2 := e1.ChildElements(), e2.ChildElements()
	if len(c1) != len(c2) {
		return false
	}
	for i := range c1 {
		if !elementsEqual(c1[i], c2[i]) {
			return false
		}
	}
	return true
}

func attrMap(e *etree.Element) map[string]string {
	m := make(map[string]string, len(e.Attr))
	for _, a := range e.Attr {
		if a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns") {
			continue
		}
		m[a.Key] = a.Value
	}
	return m
}
