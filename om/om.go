// Package om defines the OpenMath 2.0 object model: a closed family of
// immutable tree nodes representing mathematical expressions.
//
// Nodes are plain structs and may be built either with struct literals or
// with the New* constructors. Nothing in this module mutates a node after
// construction; concurrent readers may share trees freely.
//
// The optional attributes every variant may carry are inlined as plain
// fields: ID (structure-sharing identifier) and, where the standard allows
// it, CDBase (content-dictionary base URI). An empty string means the
// attribute is absent. CDBase inheritance from enclosing nodes is a
// convention between applications; this package never resolves it.
package om

import "fmt"

// Version is the only OpenMath version this object model represents.
const Version = "2.0"

// Any is the interface implemented by every OpenMath node.
type Any interface {
	fmt.Stringer
	// Apply builds an Application with this node as the applied element.
	Apply(args ...Any) *Application
	node()
}

// BoundVariable is the subset of nodes allowed inside BindVariables:
// a plain Variable or an attributed AttVar.
type BoundVariable interface {
	Any
	boundVariable()
}

// Object is the OMOBJ wrapper around a single expression. Its Version is
// always "2.0"; the decoder rejects anything else.
type Object struct {
	Elem    Any
	Version string
	ID      string
	CDBase  string
}

// Reference is a logical back-reference (OMR) to a node carrying the
// matching ID. Resolving it is the application's responsibility.
type Reference struct {
	Href string
	ID   string
}

// Integer is an OpenMath integer (OMI).
type Integer struct {
	Value int64
	ID    string
}

// Float is an OpenMath double (OMF).
type Float struct {
	Value float64
	ID    string
}

// String is an OpenMath string (OMSTR). Value is a pointer so that an
// absent string stays distinguishable from an empty one.
type String struct {
	Value *string
	ID    string
}

// Bytes is an OpenMath byte sequence (OMB).
type Bytes struct {
	Value []byte
	ID    string
}

// Symbol identifies a content-dictionary symbol (OMS) by (CDBase, CD, Name).
type Symbol struct {
	Name   string
	CD     string
	ID     string
	CDBase string
}

// Variable is an OpenMath variable (OMV).
type Variable struct {
	Name string
	ID   string
}

// Foreign is the escape hatch for non-OpenMath payloads (OMFOREIGN).
type Foreign struct {
	Value    string
	Encoding string
	ID       string
	CDBase   string
}

// Application applies Elem to Arguments in order (OMA). Argument position
// is semantically significant.
type Application struct {
	Elem      Any
	Arguments []Any
	ID        string
	CDBase    string
}

// Attribution decorates Obj with a list of key/value pairs (OMATTR).
type Attribution struct {
	Pairs *AttributionPairs
	Obj   Any
	ID    string
	CDBase string
}

// Pair is a single attribution entry. Keys need not be unique within an
// AttributionPairs list.
type Pair struct {
	Key   *Symbol
	Value Any
}

// AttributionPairs is an ordered key/value list (OMATP).
type AttributionPairs struct {
	Pairs  []Pair
	ID     string
	CDBase string
}

// Binding is a variable-binding construct such as a lambda (OMBIND).
type Binding struct {
	Binder Any
	Vars   *BindVariables
	Obj    Any
	ID     string
	CDBase string
}

// BindVariables is the ordered list of variables bound by a Binding (OMBVAR).
type BindVariables struct {
	Vars []BoundVariable
	ID   string
}

// AttVar is an attributed bound variable.
type AttVar struct {
	Pairs *AttributionPairs
	Obj   Any
	ID    string
}

// Error is an OpenMath error object (OME).
type Error struct {
	Name   *Symbol
	Params []Any
	ID     string
	CDBase string
}

// NewObject wraps elem in an OMOBJ carrier with Version set to "2.0".
func NewObject(elem Any) *Object { return &Object{Elem: elem, Version: Version} }

// NewReference builds a reference to the node carrying id href.
func NewReference(href string) *Reference { return &Reference{Href: href} }

// NewInteger builds an integer node.
func NewInteger(v int64) *Integer { return &Integer{Value: v} }

// NewFloat builds a double node.
func NewFloat(v float64) *Float { return &Float{Value: v} }

// NewString builds a (non-null) string node.
func NewString(s string) *String { return &String{Value: &s} }

// NewBytes builds a byte-sequence node.
func NewBytes(b []byte) *Bytes { return &Bytes{Value: b} }

// NewSymbol builds a symbol node without a cdbase.
func NewSymbol(name, cd string) *Symbol { return &Symbol{Name: name, CD: cd} }

// NewVariable builds a variable node.
func NewVariable(name string) *Variable { return &Variable{Name: name} }

// NewForeign builds a foreign node. encoding may be empty.
func NewForeign(value, encoding string) *Foreign {
	return &Foreign{Value: value, Encoding: encoding}
}

// NewApplication applies elem to args.
func NewApplication(elem Any, args ...Any) *Application {
	return &Application{Elem: elem, Arguments: args}
}

// NewAttribution decorates obj with pairs.
func NewAttribution(pairs *AttributionPairs, obj Any) *Attribution {
	return &Attribution{Pairs: pairs, Obj: obj}
}

// NewAttributionPairs builds an ordered key/value list.
func NewAttributionPairs(pairs ...Pair) *AttributionPairs {
	return &AttributionPairs{Pairs: pairs}
}

// NewBinding builds a binding of vars in obj under binder.
func NewBinding(binder Any, vars *BindVariables, obj Any) *Binding {
	return &Binding{Binder: binder, Vars: vars, Obj: obj}
}

// NewBindVariables builds the bound-variable list of a Binding.
func NewBindVariables(vars ...BoundVariable) *BindVariables {
	return &BindVariables{Vars: vars}
}

// NewAttVar builds an attributed bound variable.
func NewAttVar(pairs *AttributionPairs, obj Any) *AttVar {
	return &AttVar{Pairs: pairs, Obj: obj}
}

// NewError builds an error node.
func NewError(name *Symbol, params ...Any) *Error {
	return &Error{Name: name, Params: params}
}

func (*Object) node()           {}
func (*Reference) node()        {}
func (*Integer) node()          {}
func (*Float) node()            {}
func (*String) node()           {}
func (*Bytes) node()            {}
func (*Symbol) node()           {}
func (*Variable) node()         {}
func (*Foreign) node()          {}
func (*Application) node()      {}
func (*Attribution) node()      {}
func (*AttributionPairs) node() {}
func (*Binding) node()          {}
func (*BindVariables) node()    {}
func (*AttVar) node()           {}
func (*Error) node()            {}

func (*Variable) boundVariable() {}
func (*AttVar) boundVariable()   {}

func (n *Object) Apply(args ...Any) *Application           { return NewApplication(n, args...) }
func (n *Reference) Apply(args ...Any) *Application        { return NewApplication(n, args...) }
func (n *Integer) Apply(args ...Any) *Application          { return NewApplication(n, args...) }
func (n *Float) Apply(args ...Any) *Application            { return NewApplication(n, args...) }
func (n *String) Apply(args ...Any) *Application           { return NewApplication(n, args...) }
func (n *Bytes) Apply(args ...Any) *Application            { return NewApplication(n, args...) }
func (n *Symbol) Apply(args ...Any) *Application           { return NewApplication(n, args...) }
func (n *Variable) Apply(args ...Any) *Application         { return NewApplication(n, args...) }
func (n *Foreign) Apply(args ...Any) *Application          { return NewApplication(n, args...) }
func (n *Application) Apply(args ...Any) *Application      { return NewApplication(n, args...) }
func (n *Attribution) Apply(args ...Any) *Application      { return NewApplication(n, args...) }
func (n *AttributionPairs) Apply(args ...Any) *Application { return NewApplication(n, args...) }
func (n *Binding) Apply(args ...Any) *Application          { return NewApplication(n, args...) }
func (n *BindVariables) Apply(args ...Any) *Application    { return NewApplication(n, args...) }
func (n *AttVar) Apply(args ...Any) *Application           { return NewApplication(n, args...) }
func (n *Error) Apply(args ...Any) *Application            { return NewApplication(n, args...) }
