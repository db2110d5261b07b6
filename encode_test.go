package openmath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	openmath "github.com/openmath/go-openmath"
	"github.com/openmath/go-openmath/om"
)

func TestEncodeXML(t *testing.T) {
	tests := []struct {
		name string
		node om.Any
		want string
	}{
		{
			"object",
			om.NewObject(om.NewInteger(1)),
			`<om:OMOBJ xmlns:om="http://www.openmath.org/OpenMath" version="2.0"><om:OMI>1</om:OMI></om:OMOBJ>`,
		},
		{
			"reference",
			om.NewReference("#test"),
			`<om:OMR xmlns:om="http://www.openmath.org/OpenMath" href="#test"/>`,
		},
		{
			"integer",
			om.NewInteger(1),
			`<om:OMI xmlns:om="http://www.openmath.org/OpenMath">1</om:OMI>`,
		},
		{
			"negative integer",
			om.NewInteger(-120),
			`<om:OMI xmlns:om="http://www.openmath.org/OpenMath">-120</om:OMI>`,
		},
		{
			"float",
			om.NewFloat(10.0),
			`<om:OMF xmlns:om="http://www.openmath.org/OpenMath" dec="10"/>`,
		},
		{
			"string",
			om.NewString("test"),
			`<om:OMSTR xmlns:om="http://www.openmath.org/OpenMath">test</om:OMSTR>`,
		},
		{
			"null string",
			&om.String{},
			`<om:OMSTR xmlns:om="http://www.openmath.org/OpenMath"/>`,
		},
		{
			"bytes",
			om.NewBytes([]byte{0x13}),
			`<om:OMB xmlns:om="http://www.openmath.org/OpenMath">Ew==</om:OMB>`,
		},
		{
			"symbol",
			om.NewSymbol("hello", "world"),
			`<om:OMS xmlns:om="http://www.openmath.org/OpenMath" name="hello" cd="world"/>`,
		},
		{
			"symbol with cdbase and id",
			&om.Symbol{Name: "plus", CD: "arith1", ID: "p", CDBase: "http://www.openmath.org/cd"},
			`<om:OMS xmlns:om="http://www.openmath.org/OpenMath" name="plus" cd="arith1" id="p" cdbase="http://www.openmath.org/cd"/>`,
		},
		{
			"variable",
			om.NewVariable("x"),
			`<om:OMV xmlns:om="http://www.openmath.org/OpenMath" name="x"/>`,
		},
		{
			"foreign",
			om.NewForeign("something", ""),
			`<om:OMFOREIGN xmlns:om="http://www.openmath.org/OpenMath">something</om:OMFOREIGN>`,
		},
		{
			"application",
			om.NewSymbol("sin", "transc1").Apply(om.NewVariable("x")),
			`<om:OMA xmlns:om="http://www.openmath.org/OpenMath"><om:OMS name="sin" cd="transc1"/><om:OMV name="x"/></om:OMA>`,
		},
		{
			"binding",
			om.NewBinding(
				om.NewSymbol("lambda", "fns1"),
				om.NewBindVariables(om.NewVariable("x")),
				om.NewSymbol("sin", "transc1").Apply(om.NewVariable("x")),
			),
			`<om:OMBIND xmlns:om="http://www.openmath.org/OpenMath"><om:OMS name="lambda" cd="fns1"/><om:OMBVAR><om:OMV name="x"/></om:OMBVAR><om:OMA><om:OMS name="sin" cd="transc1"/><om:OMV name="x"/></om:OMA></om:OMBIND>`,
		},
		{
			"attribution",
			om.NewAttribution(
				om.NewAttributionPairs(om.Pair{Key: om.NewSymbol("type", "ecc"), Value: om.NewSymbol("real", "ecc")}),
				om.NewVariable("x"),
			),
			`<om:OMATTR xmlns:om="http://www.openmath.org/OpenMath"><om:OMATP><om:OMS name="type" cd="ecc"/><om:OMS name="real" cd="ecc"/></om:OMATP><om:OMV name="x"/></om:OMATTR>`,
		},
		{
			"error",
			om.NewError(om.NewSymbol("DivisionByZero", "aritherror"),
				om.NewApplication(om.NewSymbol("divide", "arith1"),
					om.NewVariable("x"),
					om.NewInteger(0))),
			`<om:OME xmlns:om="http://www.openmath.org/OpenMath"><om:OMS name="DivisionByZero" cd="aritherror"/><om:OMA><om:OMS name="divide" cd="arith1"/><om:OMV name="x"/><om:OMI>0</om:OMI></om:OMA></om:OME>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el, err := openmath.EncodeXML(tt.node)
			require.NoError(t, err)
			want := parseXML(t, tt.want)
			require.True(t, elementsEqual(el, want),
				"encoded element does not match expected XML for %s", tt.node)
		})
	}
}

func TestMarshal(t *testing.T) {
	t.Run("default namespace on root", func(t *testing.T) {
		b, err := openmath.Marshal(om.NewInteger(1))
		require.NoError(t, err)
		require.Equal(t, `<OMI xmlns="http://www.openmath.org/OpenMath">1</OMI>`, string(b))
	})

	t.Run("prefixed namespace", func(t *testing.T) {
		b, err := openmath.Marshal(om.NewInteger(1), openmath.Prefix("om"))
		require.NoError(t, err)
		require.Equal(t, `<om:OMI xmlns:om="http://www.openmath.org/OpenMath">1</om:OMI>`, string(b))
	})

	t.Run("prefix reaches descendants", func(t *testing.T) {
		b, err := openmath.Marshal(om.NewObject(om.NewInteger(1)), openmath.Prefix("om"))
		require.NoError(t, err)
		require.Equal(t,
			`<om:OMOBJ version="2.0" xmlns:om="http://www.openmath.org/OpenMath"><om:OMI>1</om:OMI></om:OMOBJ>`,
			string(b))
	})

	t.Run("indented output", func(t *testing.T) {
		b, err := openmath.Marshal(om.NewObject(om.NewInteger(1)), openmath.Indent(2))
		require.NoError(t, err)
		require.Contains(t, string(b), "\n  <OMI>1</OMI>\n")
	})

	t.Run("invalid indent", func(t *testing.T) {
		_, err := openmath.Marshal(om.NewInteger(1), openmath.Indent(-1))
		require.Error(t, err)
		require.Contains(t, err.Error(), "indent spaces cannot be negative")
	})

	t.Run("empty prefix", func(t *testing.T) {
		_, err := openmath.Marshal(om.NewInteger(1), openmath.Prefix(""))
		require.Error(t, err)
	})
}

func TestEncodeErrors(t *testing.T) {
	t.Run("nil node", func(t *testing.T) {
		_, err := openmath.EncodeXML(nil)
		var uv *openmath.UnsupportedVariantError
		require.ErrorAs(t, err, &uv)
	})

	t.Run("typed nil node", func(t *testing.T) {
		var sym *om.Symbol
		_, err := openmath.EncodeXML(sym)
		var uv *openmath.UnsupportedVariantError
		require.ErrorAs(t, err, &uv)
	})

	t.Run("symbol without cd", func(t *testing.T) {
		_, err := openmath.EncodeXML(&om.Symbol{Name: "x"})
		var mf *om.MissingFieldError
		require.ErrorAs(t, err, &mf)
		require.Equal(t, "Symbol", mf.Variant)
		require.Equal(t, "cd", mf.Field)
	})

	t.Run("application without elem", func(t *testing.T) {
		_, err := openmath.EncodeXML(&om.Application{Arguments: []om.Any{om.NewInteger(1)}})
		var mf *om.MissingFieldError
		require.ErrorAs(t, err, &mf)
		require.Equal(t, "elem", mf.Field)
	})

	t.Run("nested failure propagates", func(t *testing.T) {
		_, err := openmath.EncodeXML(om.NewObject(&om.Variable{}))
		var mf *om.MissingFieldError
		require.ErrorAs(t, err, &mf)
		require.Equal(t, "Variable", mf.Variant)
	})
}
