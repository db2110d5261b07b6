package openmath

import (
	"errors"
	"fmt"

	"github.com/openmath/go-openmath/om"
)

// ErrCannotConvert signals that a registered native-to-OpenMath rule does
// not apply to the value it was handed. Converter.ToOpenMath absorbs it and
// moves on to the next rule; it never escapes to callers.
var ErrCannotConvert = errors.New("openmath: rule cannot convert value")

// ErrInvalidTypeGuard reports a type guard that is neither nil nor a
// reflect.Type, rejected at registration time.
var ErrInvalidTypeGuard = errors.New("openmath: type guard must be nil or a reflect.Type")

// ErrInvalidConverter reports a conversion rule that is neither an OpenMath
// node nor a conversion function, rejected at registration time.
var ErrInvalidConverter = errors.New("openmath: converter must be an om.Any or a conversion function")

// UnknownTagError reports an XML element whose tag is not part of the
// OpenMath vocabulary.
type UnknownTagError struct {
	Tag string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("openmath: unknown element tag %q", e.Tag)
}

// UnsupportedVersionError reports a top-level document whose version
// attribute is not "2.0".
type UnsupportedVersionError struct {
	Version string
}

func (e *UnsupportedVersionError) Error() string {
	if e.Version == "" {
		return "openmath: document carries no version, only OpenMath 2.0 is supported"
	}
	return fmt.Sprintf("openmath: unsupported OpenMath version %q, only 2.0 is supported", e.Version)
}

// SchemaValidationError wraps the failure reported by a Validator supplied
// with WithValidator. The decoder raises it before building any tree.
type SchemaValidationError struct {
	Err error
}

func (e *SchemaValidationError) Error() string {
	return "openmath: document failed schema validation: " + e.Err.Error()
}

func (e *SchemaValidationError) Unwrap() error { return e.Err }

// UnsupportedVariantError reports an attempt to encode something outside the
// closed node family, such as a nil node.
type UnsupportedVariantError struct {
	Node om.Any
}

func (e *UnsupportedVariantError) Error() string {
	if e.Node == nil {
		return "openmath: cannot encode nil node"
	}
	return fmt.Sprintf("openmath: cannot encode node of type %T", e.Node)
}

// NoConversionError is the terminal failure of both converter directions:
// no registered rule produced a result. For a failed symbol lookup the three
// lookup keys are carried as structured fields, any of which may be empty.
type NoConversionError struct {
	// Value is set when a native value had no applicable rule.
	Value any
	// Node is set when an OpenMath node had no applicable rule.
	Node om.Any
	// CDBase, CD and Name are set when a symbol lookup found no entry.
	CDBase, CD, Name string
}

func (e *NoConversionError) Error() string {
	switch {
	case e.Node != nil:
		return fmt.Sprintf("openmath: cannot convert node of type %T to a native value", e.Node)
	case e.CD != "" || e.Name != "" || e.CDBase != "":
		return fmt.Sprintf("openmath: no conversion registered for symbol %s?%s?%s", e.CDBase, e.CD, e.Name)
	default:
		return fmt.Sprintf("openmath: cannot convert %#v to OpenMath", e.Value)
	}
}

// UnsupportedRangeError reports an integer range whose step is not 1, which
// has no OpenMath interval representation.
type UnsupportedRangeError struct {
	Step int64
}

func (e *UnsupportedRangeError) Error() string {
	return fmt.Sprintf("openmath: cannot convert range with step %d, only step 1 is supported", e.Step)
}
