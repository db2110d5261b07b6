package openmath

import "github.com/openmath/go-openmath/om"

// Namespace is the OpenMath XML namespace, declared once on the document
// root and inherited by all descendants.
const Namespace = "http://www.openmath.org/OpenMath"

// kind identifies one entry of the standard element vocabulary. The codec
// dispatches on kinds in both directions.
type kind uint8

const (
	kindObject kind = iota + 1
	kindReference
	kindInteger
	kindFloat
	kindString
	kindBytes
	kindSymbol
	kindVariable
	kindForeign
	kindApplication
	kindAttribution
	kindAttributionPairs
	kindBinding
	kindBindVariables
	kindError
)

// kindTags maps each vocabulary entry to its XML element name.
var kindTags = map[kind]string{
	kindObject:           "OMOBJ",
	kindReference:        "OMR",
	kindInteger:          "OMI",
	kindFloat:            "OMF",
	kindString:           "OMSTR",
	kindBytes:            "OMB",
	kindSymbol:           "OMS",
	kindVariable:         "OMV",
	kindForeign:          "OMFOREIGN",
	kindApplication:      "OMA",
	kindAttribution:      "OMATTR",
	kindAttributionPairs: "OMATP",
	kindBinding:          "OMBIND",
	kindBindVariables:    "OMBVAR",
	kindError:            "OME",
}

// tagKinds is the inverse of kindTags.
var tagKinds = func() map[string]kind {
	m := make(map[string]kind, len(kindTags))
	for k, tag := range kindTags {
		m[tag] = k
	}
	return m
}()

// kindOf returns the vocabulary entry a node encodes to, or 0 for nil.
// An attributed bound variable shares the OMATTR element with Attribution;
// the two are told apart by the binding context on decode.
func kindOf(n om.Any) kind {
	switch n.(type) {
	case *om.Object:
		return kindObject
	case *om.Reference:
		return kindReference
	case *om.Integer:
		return kindInteger
	case *om.Float:
		return kindFloat
	case *om.String:
		return kindString
	case *om.Bytes:
		return kindBytes
	case *om.Symbol:
		return kindSymbol
	case *om.Variable:
		return kindVariable
	case *om.Foreign:
		return kindForeign
	case *om.Application:
		return kindApplication
	case *om.Attribution, *om.AttVar:
		return kindAttribution
	case *om.AttributionPairs:
		return kindAttributionPairs
	case *om.Binding:
		return kindBinding
	case *om.BindVariables:
		return kindBindVariables
	case *om.Error:
		return kindError
	}
	return 0
}
