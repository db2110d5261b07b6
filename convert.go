package openmath

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/openmath/go-openmath/om"
)

// Marshaler is the interface implemented by values that can describe their
// own OpenMath form. A Converter consults it only after its registered
// native-to-OpenMath rules are exhausted.
type Marshaler interface {
	MarshalOpenMath() (om.Any, error)
}

// ToOpenMathFunc converts a native value to an OpenMath node. Returning
// ErrCannotConvert (possibly wrapped) tells the Converter to fall through
// to the next applicable rule; any other error aborts the conversion.
type ToOpenMathFunc func(v any) (om.Any, error)

// ToNativeFunc converts an OpenMath node to a native value.
type ToNativeFunc func(n om.Any) (any, error)

// Applier is a native callable. When ToNative resolves the head of an
// Application to an Applier, it converts the arguments and invokes it.
type Applier func(args ...any) (any, error)

type toOpenMathRule struct {
	guard reflect.Type // nil matches any value
	fn    ToOpenMathFunc
}

type symbolKey struct {
	cdbase, cd, name string
}

type cdKey struct {
	cdbase, cd string
}

// Converter translates between native Go values and OpenMath trees through
// three registries: an ordered list of native-to-OpenMath rules (resolved
// newest first), per-variant overrides, and symbol rules with four
// specificity levels.
//
// Registration is expected to happen during setup. The registries are not
// synchronized; callers that must mutate them concurrently with lookups
// need their own locking.
type Converter struct {
	toOM     []toOpenMathRule
	variants map[reflect.Type]ToNativeFunc

	symbols        map[symbolKey]any
	symbolCDs      map[cdKey]func(name string) (any, error)
	symbolBases    map[string]func(cd, name string) (any, error)
	symbolFallback func(cdbase, cd, name string) (any, error)
}

// NewConverter returns a Converter with no conversions registered.
func NewConverter() *Converter {
	return &Converter{
		variants:    make(map[reflect.Type]ToNativeFunc),
		symbols:     make(map[symbolKey]any),
		symbolCDs:   make(map[cdKey]func(string) (any, error)),
		symbolBases: make(map[string]func(string, string) (any, error)),
	}
}

// RegisterToOpenMath registers a native-to-OpenMath rule. guard must be nil
// (the rule applies to every value) or a reflect.Type the value must be
// assignable to. conv must be an om.Any, which the rule returns as a
// constant, or a conversion function.
//
// Rules are tried from the most recently registered to the oldest; a rule
// that returns ErrCannotConvert is skipped and resolution continues.
func (c *Converter) RegisterToOpenMath(guard any, conv any) error {
	var gt reflect.Type
	switch g := guard.(type) {
	case nil:
	case reflect.Type:
		gt = g
	default:
		return fmt.Errorf("%w, found %T", ErrInvalidTypeGuard, guard)
	}

	var fn ToOpenMathFunc
	switch cv := conv.(type) {
	case ToOpenMathFunc:
		fn = cv
	case func(any) (om.Any, error):
		fn = cv
	case om.Any:
		fn = func(any) (om.Any, error) { return cv, nil }
	default:
		return fmt.Errorf("%w, found %T", ErrInvalidConverter, conv)
	}

	c.toOM = append(c.toOM, toOpenMathRule{guard: gt, fn: fn})
	return nil
}

// RegisterToNative registers an override for the concrete variant of proto,
// checked before any symbol-based resolution in ToNative.
func (c *Converter) RegisterToNative(proto om.Any, fn ToNativeFunc) {
	c.variants[reflect.TypeOf(proto)] = fn
}

// RegisterSymbol registers value as the conversion of the exact symbol
// (cdbase, cd, name).
func (c *Converter) RegisterSymbol(cdbase, cd, name string, value any) {
	c.symbols[symbolKey{cdbase, cd, name}] = value
}

// RegisterSymbolCD registers a conversion for every symbol in (cdbase, cd);
// the handler receives the symbol's name.
func (c *Converter) RegisterSymbolCD(cdbase, cd string, fn func(name string) (any, error)) {
	c.symbolCDs[cdKey{cdbase, cd}] = fn
}

// RegisterSymbolCDBase registers a conversion for every symbol under
// cdbase; the handler receives the symbol's cd and name.
func (c *Converter) RegisterSymbolCDBase(cdbase string, fn func(cd, name string) (any, error)) {
	c.symbolBases[cdbase] = fn
}

// RegisterSymbolFallback registers a conversion for any symbol no more
// specific rule covers; the handler receives all three keys.
func (c *Converter) RegisterSymbolFallback(fn func(cdbase, cd, name string) (any, error)) {
	c.symbolFallback = fn
}

// ToOpenMath converts a native value to an OpenMath node. Rules are tried
// newest first; rules whose guard does not match the value or that signal
// ErrCannotConvert are skipped. When the rules are exhausted, a value
// implementing Marshaler converts itself. Otherwise ToOpenMath fails with
// a NoConversionError.
func (c *Converter) ToOpenMath(v any) (om.Any, error) {
	rt := reflect.TypeOf(v)
	for i := len(c.toOM) - 1; i >= 0; i-- {
		rule := c.toOM[i]
		if rule.guard != nil && (rt == nil || !rt.AssignableTo(rule.guard)) {
			continue
		}
		n, err := rule.fn(v)
		if err != nil {
			if errors.Is(err, ErrCannotConvert) {
				continue
			}
			return nil, err
		}
		return n, nil
	}
	if m, ok := v.(Marshaler); ok {
		return m.MarshalOpenMath()
	}
	return nil, &NoConversionError{Value: v}
}

// ToNative converts an OpenMath node to a native value. A variant override
// wins unconditionally. An Object is unwrapped to its payload. A Symbol
// resolves through the symbol registries from
// the most to the least specific level. An Application whose head resolves
// to an Applier is invoked on its recursively converted arguments. Anything
// else fails with a NoConversionError.
func (c *Converter) ToNative(n om.Any) (any, error) {
	if n == nil {
		return nil, &NoConversionError{}
	}
	if fn, ok := c.variants[reflect.TypeOf(n)]; ok {
		return fn(n)
	}
	switch t := n.(type) {
	case *om.Object:
		return c.ToNative(t.Elem)
	case *om.Symbol:
		return c.lookupSymbol(t.CDBase, t.CD, t.Name)
	case *om.Application:
		head, err := c.ToNative(t.Elem)
		if err != nil {
			return nil, err
		}
		apply, ok := head.(Applier)
		if !ok {
			return nil, &NoConversionError{Node: n}
		}
		args := make([]any, len(t.Arguments))
		for i, arg := range t.Arguments {
			if args[i], err = c.ToNative(arg); err != nil {
				return nil, err
			}
		}
		return apply(args...)
	}
	return nil, &NoConversionError{Node: n}
}

func (c *Converter) lookupSymbol(cdbase, cd, name string) (any, error) {
	if v, ok := c.symbols[symbolKey{cdbase, cd, name}]; ok {
		return v, nil
	}
	if fn, ok := c.symbolCDs[cdKey{cdbase, cd}]; ok {
		return fn(name)
	}
	if fn, ok := c.symbolBases[cdbase]; ok {
		return fn(cd, name)
	}
	if c.symbolFallback != nil {
		return c.symbolFallback(cdbase, cd, name)
	}
	return nil, &NoConversionError{CDBase: cdbase, CD: cd, Name: name}
}
