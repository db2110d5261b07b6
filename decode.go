package openmath

import (
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/openmath/go-openmath/om"
)

// Validator checks a parsed document against an external schema before the
// decoder builds any tree. The normative RelaxNG schema published by the
// OpenMath society is one such validator; this package only defines the seam.
type Validator interface {
	Validate(doc *etree.Document) error
}

// Decoder reads OpenMath XML documents from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads one XML document from the stream and returns the OpenMath
// tree it represents. The root element must carry version="2.0"; a
// validator supplied with WithValidator runs before tree construction.
//
// Decode either returns a complete tree or an error, never a partial tree.
func (d *Decoder) Decode() (om.Any, error) {
	o, err := applyOptions(d.opts)
	if err != nil {
		return nil, err
	}
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(d.r); err != nil {
		return nil, fmt.Errorf("openmath: reading document: %w", err)
	}
	if o.validator != nil {
		if err := o.validator.Validate(doc); err != nil {
			return nil, &SchemaValidationError{Err: err}
		}
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("openmath: document has no root element")
	}
	if v := root.SelectAttrValue("version", ""); v != om.Version {
		return nil, &UnsupportedVersionError{Version: v}
	}
	return DecodeXML(root)
}

// DecodeXML decodes a single element and its subtree. Unlike Decoder.Decode
// it accepts any vocabulary element as the root, so snippets like a bare
// OMSTR can be decoded directly.
func DecodeXML(el *etree.Element) (om.Any, error) {
	return decodeElement(el, false)
}

// decodeElement mirrors the encoder's structural rules. inBind is set while
// decoding the children of an OMBVAR, where an OMATTR (or, in the legacy
// form, OMATP) element denotes an attributed bound variable rather than an
// attribution.
func decodeElement(el *etree.Element, inBind bool) (om.Any, error) {
	k, ok := tagKinds[el.Tag]
	if !ok {
		return nil, &UnknownTagError{Tag: el.Tag}
	}
	id := el.SelectAttrValue("id", "")
	cdbase := el.SelectAttrValue("cdbase", "")
	children := el.ChildElements()

	switch k {
	case kindObject:
		if len(children) == 0 {
			return nil, &om.MissingFieldError{Variant: "Object", Field: "omel"}
		}
		if len(children) > 1 {
			return nil, &om.TooManyFieldsError{Variant: "Object", Want: 1, Got: len(children)}
		}
		elem, err := decodeElement(children[0], false)
		if err != nil {
			return nil, err
		}
		return &om.Object{
			Elem:    elem,
			Version: el.SelectAttrValue("version", om.Version),
			ID:      id,
			CDBase:  cdbase,
		}, nil

	case kindReference:
		href := el.SelectAttr("href")
		if href == nil {
			return nil, &om.MissingFieldError{Variant: "Reference", Field: "href"}
		}
		return &om.Reference{Href: href.Value, ID: id}, nil

	case kindInteger:
		text := strings.TrimSpace(el.Text())
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("openmath: invalid integer literal %q: %w", text, err)
		}
		return &om.Integer{Value: v, ID: id}, nil

	case kindFloat:
		dec := el.SelectAttr("dec")
		if dec == nil {
			return nil, &om.MissingFieldError{Variant: "Float", Field: "double"}
		}
		v, err := strconv.ParseFloat(dec.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("openmath: invalid float literal %q: %w", dec.Value, err)
		}
		return &om.Float{Value: v, ID: id}, nil

	case kindString:
		// An empty element carries no text node at all; keep the string null
		// rather than inventing an empty one.
		var value *string
		if s := el.Text(); s != "" {
			value = &s
		}
		return &om.String{Value: value, ID: id}, nil

	case kindBytes:
		b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(el.Text()))
		if err != nil {
			return nil, fmt.Errorf("openmath: invalid base64 content: %w", err)
		}
		return &om.Bytes{Value: b, ID: id}, nil

	case kindSymbol:
		name := el.SelectAttr("name")
		if name == nil {
			return nil, &om.MissingFieldError{Variant: "Symbol", Field: "name"}
		}
		cd := el.SelectAttr("cd")
		if cd == nil {
			return nil, &om.MissingFieldError{Variant: "Symbol", Field: "cd"}
		}
		return &om.Symbol{Name: name.Value, CD: cd.Value, ID: id, CDBase: cdbase}, nil

	case kindVariable:
		name := el.SelectAttr("name")
		if name == nil {
			return nil, &om.MissingFieldError{Variant: "Variable", Field: "name"}
		}
		return &om.Variable{Name: name.Value, ID: id}, nil

	case kindForeign:
		return &om.Foreign{
			Value:    el.Text(),
			Encoding: el.SelectAttrValue("encoding", ""),
			ID:       id,
			CDBase:   cdbase,
		}, nil

	case kindApplication:
		if len(children) == 0 {
			return nil, &om.MissingFieldError{Variant: "Application", Field: "elem"}
		}
		elem, err := decodeElement(children[0], false)
		if err != nil {
			return nil, err
		}
		args := make([]om.Any, 0, len(children)-1)
		for _, c := range children[1:] {
			arg, err := decodeElement(c, false)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		return &om.Application{Elem: elem, Arguments: args, ID: id, CDBase: cdbase}, nil

	case kindAttribution:
		if inBind {
			return decodeAttVar(el, children, id)
		}
		if len(children) < 2 {
			return nil, &om.MissingFieldError{Variant: "Attribution", Field: "obj"}
		}
		if len(children) > 2 {
			return nil, &om.TooManyFieldsError{Variant: "Attribution", Want: 2, Got: len(children)}
		}
		pairs, err := decodePairs(children[0])
		if err != nil {
			return nil, err
		}
		obj, err := decodeElement(children[1], false)
		if err != nil {
			return nil, err
		}
		return &om.Attribution{Pairs: pairs, Obj: obj, ID: id, CDBase: cdbase}, nil

	case kindAttributionPairs:
		if inBind {
			// Legacy form: some producers wrap attributed bound variables
			// in OMATP instead of OMATTR.
			return decodeAttVar(el, children, id)
		}
		if len(children)%2 != 0 {
			return nil, &om.TooManyFieldsError{
				Variant: "AttributionPairs", Want: len(children) - 1, Got: len(children),
			}
		}
		pairs := make([]om.Pair, 0, len(children)/2)
		for i := 0; i < len(children); i += 2 {
			keyNode, err := decodeElement(children[i], false)
			if err != nil {
				return nil, err
			}
			key, ok := keyNode.(*om.Symbol)
			if !ok {
				return nil, fmt.Errorf("openmath: attribution key must be OMS, got %s", children[i].Tag)
			}
			value, err := decodeElement(children[i+1], false)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, om.Pair{Key: key, Value: value})
		}
		return &om.AttributionPairs{Pairs: pairs, ID: id, CDBase: cdbase}, nil

	case kindBinding:
		if len(children) < 3 {
			return nil, &om.MissingFieldError{Variant: "Binding", Field: bindingField(len(children))}
		}
		if len(children) > 3 {
			return nil, &om.TooManyFieldsError{Variant: "Binding", Want: 3, Got: len(children)}
		}
		binder, err := decodeElement(children[0], false)
		if err != nil {
			return nil, err
		}
		varsNode, err := decodeElement(children[1], false)
		if err != nil {
			return nil, err
		}
		vars, ok := varsNode.(*om.BindVariables)
		if !ok {
			return nil, fmt.Errorf("openmath: binding variables must be OMBVAR, got %s", children[1].Tag)
		}
		obj, err := decodeElement(children[2], false)
		if err != nil {
			return nil, err
		}
		return &om.Binding{Binder: binder, Vars: vars, Obj: obj, ID: id, CDBase: cdbase}, nil

	case kindBindVariables:
		vars := make([]om.BoundVariable, 0, len(children))
		for _, c := range children {
			node, err := decodeElement(c, true)
			if err != nil {
				return nil, err
			}
			bv, ok := node.(om.BoundVariable)
			if !ok {
				return nil, fmt.Errorf("openmath: bound variable must be OMV or an attributed variable, got %s", c.Tag)
			}
			vars = append(vars, bv)
		}
		return &om.BindVariables{Vars: vars, ID: id}, nil

	case kindError:
		if len(children) == 0 {
			return nil, &om.MissingFieldError{Variant: "Error", Field: "name"}
		}
		nameNode, err := decodeElement(children[0], false)
		if err != nil {
			return nil, err
		}
		name, ok := nameNode.(*om.Symbol)
		if !ok {
			return nil, fmt.Errorf("openmath: error name must be OMS, got %s", children[0].Tag)
		}
		params := make([]om.Any, 0, len(children)-1)
		for _, c := range children[1:] {
			p, err := decodeElement(c, false)
			if err != nil {
				return nil, err
			}
			params = append(params, p)
		}
		return &om.Error{Name: name, Params: params, ID: id, CDBase: cdbase}, nil
	}

	return nil, &UnknownTagError{Tag: el.Tag}
}

func decodeAttVar(el *etree.Element, children []*etree.Element, id string) (om.Any, error) {
	if len(children) < 2 {
		return nil, &om.MissingFieldError{Variant: "AttVar", Field: "obj"}
	}
	if len(children) > 2 {
		return nil, &om.TooManyFieldsError{Variant: "AttVar", Want: 2, Got: len(children)}
	}
	pairs, err := decodePairs(children[0])
	if err != nil {
		return nil, err
	}
	// The attributed object may itself be an attributed variable.
	obj, err := decodeElement(children[1], true)
	if err != nil {
		return nil, err
	}
	return &om.AttVar{Pairs: pairs, Obj: obj, ID: id}, nil
}

func decodePairs(el *etree.Element) (*om.AttributionPairs, error) {
	node, err := decodeElement(el, false)
	if err != nil {
		return nil, err
	}
	pairs, ok := node.(*om.AttributionPairs)
	if !ok {
		return nil, fmt.Errorf("openmath: attribution pairs must be OMATP, got %s", el.Tag)
	}
	return pairs, nil
}

func bindingField(got int) string {
	switch got {
	case 0:
		return "binder"
	case 1:
		return "vars"
	default:
		return "obj"
	}
}
