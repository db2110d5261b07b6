/*
Package openmath implements the OpenMath 2.0 standard for exchanging
mathematical objects: the object model, the XML encoding, and an extensible
converter between OpenMath trees and native Go values.

The object model lives in the om subpackage as a closed family of immutable
tree nodes. This package maps those trees to and from the standard XML
element vocabulary, and converts them to and from Go values.

1. XML Encoding and Decoding

Marshal and Unmarshal translate between nodes and standalone XML documents.
Encoder and Decoder do the same over streams:

	node := om.NewSymbol("sin", "transc1").Apply(om.NewVariable("x"))

	data, err := openmath.Marshal(om.NewObject(node))
	if err != nil {
		// handle error
	}
	// data is an OMOBJ document carrying the application

	tree, err := openmath.Unmarshal(data)
	if err != nil {
		// handle error
	}

Snippet-level conversion without the OMOBJ wrapper is available through
EncodeXML and DecodeXML, which work on XML elements directly. An external
schema validator can be hooked into decoding with WithValidator.

2. Converting Native Values

A Converter translates Go values to OpenMath trees and back through three
registries: ordered native-to-OpenMath rules, per-variant overrides, and
symbol rules keyed by (cdbase, cd, name) with wildcard levels. The package
ships a converter for the basic types wired to the standard content
dictionaries, available as DefaultConverter with package-level shorthands:

	obj, err := openmath.ToOpenMath([]any{int64(1), int64(2)})
	// obj is list1.list applied to two OMI nodes

	val, err := openmath.ToNative(obj)
	// val is []any{int64(1), int64(2)} again

Custom conversions are registered on a Converter instance; a type may also
opt in by implementing the Marshaler interface. Registration is meant to
happen during setup: the registries are not synchronized, and callers that
mutate them concurrently with lookups must add their own locking.
*/
package openmath
