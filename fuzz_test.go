package openmath_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	openmath "github.com/openmath/go-openmath"
	"github.com/openmath/go-openmath/om"
)

// FuzzRoundTrip checks that any document the decoder accepts survives an
// encode/decode cycle byte-identically.
func FuzzRoundTrip(f *testing.F) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.om"))
	require.NoError(f, err)
	for _, path := range paths {
		data, err := os.ReadFile(path)
		require.NoError(f, err)
		f.Add(data)
	}

	seeds := []string{
		`<OMOBJ xmlns="http://www.openmath.org/OpenMath" version="2.0"><OMI>1</OMI></OMOBJ>`,
		`<OMOBJ version="2.0"><OMF dec="0.25"/></OMOBJ>`,
		`<OMOBJ version="2.0"><OMSTR>hello</OMSTR></OMOBJ>`,
		`<OMOBJ version="2.0"><OMB>Ew==</OMB></OMOBJ>`,
		`<OMOBJ version="2.0"><OMA><OMS name="plus" cd="arith1"/><OMV name="x"/><OMI>-7</OMI></OMA></OMOBJ>`,
		`<OMOBJ version="2.0"><OMBIND><OMS name="lambda" cd="fns1"/><OMBVAR><OMV name="x"/></OMBVAR><OMV name="x"/></OMBIND></OMOBJ>`,
		`<OMOBJ version="2.0"><OMATTR><OMATP><OMS name="type" cd="ecc"/><OMS name="real" cd="ecc"/></OMATP><OMV name="x"/></OMATTR></OMOBJ>`,
		`<OMOBJ version="2.0"><OME><OMS name="DivisionByZero" cd="aritherror"/><OMV name="x"/></OME></OMOBJ>`,
		`<OMOBJ version="2.0"><OMR href="#n1"/></OMOBJ>`,
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		node, err := openmath.Unmarshal(data)
		if err != nil {
			t.Skip()
		}
		// Only an OMOBJ root re-encodes with the version attribute the
		// decoder insists on; bare element roots are out of scope here.
		if _, ok := node.(*om.Object); !ok {
			t.Skip()
		}

		out1, err := openmath.Marshal(node)
		require.NoError(t, err, "decoded tree must encode: %s", node)

		node2, err := openmath.Unmarshal(out1)
		require.NoError(t, err, "encoded document must decode:\n%s", out1)

		out2, err := openmath.Marshal(node2)
		require.NoError(t, err)
		require.Equal(t, string(out1), string(out2))
	})
}
