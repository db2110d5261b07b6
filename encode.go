package openmath

import (
	"encoding/base64"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/openmath/go-openmath/om"
)

// Encoder writes OpenMath XML documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes n as an XML document: the node becomes the root element and
// the OpenMath namespace is declared on it, as the default namespace or
// bound to the prefix chosen with Prefix.
func (e *Encoder) Encode(n om.Any) error {
	o, err := applyOptions(e.opts)
	if err != nil {
		return err
	}
	root, err := EncodeXML(n)
	if err != nil {
		return err
	}
	if o.prefix == "" {
		root.CreateAttr("xmlns", Namespace)
	} else {
		applyPrefix(root, o.prefix)
		root.CreateAttr("xmlns:"+o.prefix, Namespace)
	}
	doc := etree.NewDocument()
	doc.SetRoot(root)
	if o.indent > 0 {
		doc.Indent(o.indent)
	}
	_, err = doc.WriteTo(e.w)
	return err
}

// EncodeXML encodes a node as a bare XML element with no namespace
// declaration; Encoder attaches the declaration at the document root.
// It is a pure function over the closed variant set and fails with
// UnsupportedVariantError for anything outside it.
func EncodeXML(n om.Any) (*etree.Element, error) {
	if nilNode(n) {
		return nil, &UnsupportedVariantError{Node: n}
	}
	k := kindOf(n)
	if k == 0 {
		return nil, &UnsupportedVariantError{Node: n}
	}
	el := etree.NewElement(kindTags[k])

	switch x := n.(type) {
	case *om.Object:
		version := x.Version
		if version == "" {
			version = om.Version
		}
		el.CreateAttr("version", version)
		setCommon(el, x.ID, x.CDBase)
		if nilNode(x.Elem) {
			return nil, &om.MissingFieldError{Variant: "Object", Field: "omel"}
		}
		if err := addChild(el, x.Elem); err != nil {
			return nil, err
		}

	case *om.Reference:
		if x.Href == "" {
			return nil, &om.MissingFieldError{Variant: "Reference", Field: "href"}
		}
		el.CreateAttr("href", x.Href)
		setCommon(el, x.ID, "")

	case *om.Integer:
		setCommon(el, x.ID, "")
		el.SetText(strconv.FormatInt(x.Value, 10))

	case *om.Float:
		el.CreateAttr("dec", formatFloat(x.Value))
		setCommon(el, x.ID, "")

	case *om.String:
		setCommon(el, x.ID, "")
		if x.Value != nil {
			el.SetText(*x.Value)
		}

	case *om.Bytes:
		setCommon(el, x.ID, "")
		el.SetText(base64.StdEncoding.EncodeToString(x.Value))

	case *om.Symbol:
		if x.Name == "" {
			return nil, &om.MissingFieldError{Variant: "Symbol", Field: "name"}
		}
		if x.CD == "" {
			return nil, &om.MissingFieldError{Variant: "Symbol", Field: "cd"}
		}
		el.CreateAttr("name", x.Name)
		el.CreateAttr("cd", x.CD)
		setCommon(el, x.ID, x.CDBase)

	case *om.Variable:
		if x.Name == "" {
			return nil, &om.MissingFieldError{Variant: "Variable", Field: "name"}
		}
		el.CreateAttr("name", x.Name)
		setCommon(el, x.ID, "")

	case *om.Foreign:
		if x.Encoding != "" {
			el.CreateAttr("encoding", x.Encoding)
		}
		setCommon(el, x.ID, x.CDBase)
		el.SetText(x.Value)

	case *om.Application:
		setCommon(el, x.ID, x.CDBase)
		if nilNode(x.Elem) {
			return nil, &om.MissingFieldError{Variant: "Application", Field: "elem"}
		}
		if err := addChild(el, x.Elem); err != nil {
			return nil, err
		}
		for _, arg := range x.Arguments {
			if err := addChild(el, arg); err != nil {
				return nil, err
			}
		}

	case *om.Attribution:
		setCommon(el, x.ID, x.CDBase)
		if x.Pairs == nil {
			return nil, &om.MissingFieldError{Variant: "Attribution", Field: "pairs"}
		}
		if nilNode(x.Obj) {
			return nil, &om.MissingFieldError{Variant: "Attribution", Field: "obj"}
		}
		if err := addChild(el, x.Pairs); err != nil {
			return nil, err
		}
		if err := addChild(el, x.Obj); err != nil {
			return nil, err
		}

	case *om.AttributionPairs:
		setCommon(el, x.ID, x.CDBase)
		for _, p := range x.Pairs {
			if p.Key == nil {
				return nil, &om.MissingFieldError{Variant: "AttributionPairs", Field: "key"}
			}
			if nilNode(p.Value) {
				return nil, &om.MissingFieldError{Variant: "AttributionPairs", Field: "value"}
			}
			if err := addChild(el, p.Key); err != nil {
				return nil, err
			}
			if err := addChild(el, p.Value); err != nil {
				return nil, err
			}
		}

	case *om.Binding:
		setCommon(el, x.ID, x.CDBase)
		if nilNode(x.Binder) {
			return nil, &om.MissingFieldError{Variant: "Binding", Field: "binder"}
		}
		if x.Vars == nil {
			return nil, &om.MissingFieldError{Variant: "Binding", Field: "vars"}
		}
		if nilNode(x.Obj) {
			return nil, &om.MissingFieldError{Variant: "Binding", Field: "obj"}
		}
		if err := addChild(el, x.Binder); err != nil {
			return nil, err
		}
		if err := addChild(el, x.Vars); err != nil {
			return nil, err
		}
		if err := addChild(el, x.Obj); err != nil {
			return nil, err
		}

	case *om.BindVariables:
		setCommon(el, x.ID, "")
		for _, v := range x.Vars {
			if err := addChild(el, v); err != nil {
				return nil, err
			}
		}

	case *om.AttVar:
		// Shares the OMATTR element with Attribution; the binding context
		// disambiguates on decode.
		setCommon(el, x.ID, "")
		if x.Pairs == nil {
			return nil, &om.MissingFieldError{Variant: "AttVar", Field: "pairs"}
		}
		if nilNode(x.Obj) {
			return nil, &om.MissingFieldError{Variant: "AttVar", Field: "obj"}
		}
		if err := addChild(el, x.Pairs); err != nil {
			return nil, err
		}
		if err := addChild(el, x.Obj); err != nil {
			return nil, err
		}

	case *om.Error:
		setCommon(el, x.ID, x.CDBase)
		if x.Name == nil {
			return nil, &om.MissingFieldError{Variant: "Error", Field: "name"}
		}
		if err := addChild(el, x.Name); err != nil {
			return nil, err
		}
		for _, p := range x.Params {
			if err := addChild(el, p); err != nil {
				return nil, err
			}
		}
	}

	return el, nil
}

func addChild(parent *etree.Element, n om.Any) error {
	child, err := EncodeXML(n)
	if err != nil {
		return err
	}
	parent.AddChild(child)
	return nil
}

// setCommon emits the inherited id/cdbase attributes, omitting absent ones
// entirely rather than writing empty strings.
func setCommon(el *etree.Element, id, cdbase string) {
	if cdbase != "" {
		el.CreateAttr("cdbase", cdbase)
	}
	if id != "" {
		el.CreateAttr("id", id)
	}
}

// formatFloat renders the dec attribute. The exponent's plus sign is
// dropped, matching the standard's decimal float syntax.
func formatFloat(v float64) string {
	return strings.ReplaceAll(strconv.FormatFloat(v, 'g', -1, 64), "+", "")
}

func applyPrefix(el *etree.Element, prefix string) {
	el.Space = prefix
	for _, child := range el.ChildElements() {
		applyPrefix(child, prefix)
	}
}

// nilNode also catches a typed nil pointer stored in the interface.
func nilNode(n om.Any) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
