package openmath

import (
	"fmt"
	"math"
	"reflect"

	"github.com/openmath/go-openmath/om"
)

// StandardCDBase is the base URI of the content dictionaries published by
// the OpenMath society; the basic conversions are registered under it.
const StandardCDBase = "http://www.openmath.org/cd"

// IntegerRange is a contiguous integer range, half-open like a counting
// loop: Start, Start+Step, ... up to but excluding Stop. Only unit-step
// ranges have an OpenMath representation (interval1.integer_interval).
type IntegerRange struct {
	Start int64
	Stop  int64
	Step  int64
}

// DefaultConverter converts the basic Go types in both directions. The
// package-level ToOpenMath and ToNative delegate to it.
var DefaultConverter = NewBasicConverter()

// ToOpenMath converts a native value using the DefaultConverter.
func ToOpenMath(v any) (om.Any, error) { return DefaultConverter.ToOpenMath(v) }

// ToNative converts an OpenMath node using the DefaultConverter.
func ToNative(n om.Any) (any, error) { return DefaultConverter.ToNative(n) }

var emptyStruct = reflect.TypeOf(struct{}{})

// NewBasicConverter returns a Converter covering the basic types: booleans,
// integers, floats (positive infinity maps to nums1.infinity), complex
// numbers, strings, byte sequences, lists, sets represented as
// map[K]struct{}, and unit-step IntegerRanges.
func NewBasicConverter() *Converter {
	c := NewConverter()

	sym := func(name, cd string) *om.Symbol {
		return &om.Symbol{Name: name, CD: cd, CDBase: StandardCDBase}
	}

	// OpenMath to native: standard symbols.
	c.RegisterSymbol(StandardCDBase, "nums1", "infinity", math.Inf(1))
	c.RegisterSymbol(StandardCDBase, "logic1", "true", true)
	c.RegisterSymbol(StandardCDBase, "logic1", "false", false)
	c.RegisterSymbol(StandardCDBase, "set1", "emptyset", map[any]struct{}{})
	c.RegisterSymbol(StandardCDBase, "set1", "set", Applier(func(args ...any) (any, error) {
		s := make(map[any]struct{}, len(args))
		for _, a := range args {
			s[a] = struct{}{}
		}
		return s, nil
	}))
	c.RegisterSymbol(StandardCDBase, "list1", "list", Applier(func(args ...any) (any, error) {
		return append([]any{}, args...), nil
	}))
	c.RegisterSymbol(StandardCDBase, "complex1", "complex_cartesian", Applier(complexCartesian))
	c.RegisterSymbol(StandardCDBase, "interval1", "integer_interval", Applier(integerInterval))

	// OpenMath to native: literal variants.
	c.RegisterToNative(&om.Integer{}, func(n om.Any) (any, error) {
		return n.(*om.Integer).Value, nil
	})
	c.RegisterToNative(&om.Float{}, func(n om.Any) (any, error) {
		return n.(*om.Float).Value, nil
	})
	c.RegisterToNative(&om.String{}, func(n om.Any) (any, error) {
		if v := n.(*om.String).Value; v != nil {
			return *v, nil
		}
		return "", nil
	})
	c.RegisterToNative(&om.Bytes{}, func(n om.Any) (any, error) {
		return n.(*om.Bytes).Value, nil
	})

	// Native to OpenMath. Resolution is newest first, so later registrations
	// take precedence: the boolean rule must come after the integer rule,
	// and the list rule leaves []byte to the byte-sequence rule.
	must := func(guard, conv any) {
		if err := c.RegisterToOpenMath(guard, conv); err != nil {
			panic(err)
		}
	}

	must(nil, func(v any) (om.Any, error) {
		switch i := v.(type) {
		case int:
			return om.NewInteger(int64(i)), nil
		case int8:
			return om.NewInteger(int64(i)), nil
		case int16:
			return om.NewInteger(int64(i)), nil
		case int32:
			return om.NewInteger(int64(i)), nil
		case int64:
			return om.NewInteger(i), nil
		case uint8:
			return om.NewInteger(int64(i)), nil
		case uint16:
			return om.NewInteger(int64(i)), nil
		case uint32:
			return om.NewInteger(int64(i)), nil
		case uint:
			if uint64(i) > math.MaxInt64 {
				return nil, fmt.Errorf("openmath: cannot convert uint %d (overflows int64)", i)
			}
			return om.NewInteger(int64(i)), nil
		case uint64:
			if i > math.MaxInt64 {
				return nil, fmt.Errorf("openmath: cannot convert uint64 %d (overflows int64)", i)
			}
			return om.NewInteger(int64(i)), nil
		}
		return nil, ErrCannotConvert
	})

	must(reflect.TypeOf(""), func(v any) (om.Any, error) {
		return om.NewString(v.(string)), nil
	})

	must(reflect.TypeOf([]byte(nil)), func(v any) (om.Any, error) {
		return om.NewBytes(v.([]byte)), nil
	})

	must(reflect.TypeOf(false), func(v any) (om.Any, error) {
		if v.(bool) {
			return sym("true", "logic1"), nil
		}
		return sym("false", "logic1"), nil
	})

	must(nil, func(v any) (om.Any, error) {
		var f float64
		switch x := v.(type) {
		case float32:
			f = float64(x)
		case float64:
			f = x
		default:
			return nil, ErrCannotConvert
		}
		if math.IsInf(f, 1) {
			return sym("infinity", "nums1"), nil
		}
		return om.NewFloat(f), nil
	})

	must(nil, func(v any) (om.Any, error) {
		var x complex128
		switch z := v.(type) {
		case complex64:
			x = complex128(z)
		case complex128:
			x = z
		default:
			return nil, ErrCannotConvert
		}
		re, err := c.ToOpenMath(real(x))
		if err != nil {
			return nil, err
		}
		im, err := c.ToOpenMath(imag(x))
		if err != nil {
			return nil, err
		}
		return sym("complex_cartesian", "complex1").Apply(re, im), nil
	})

	must(nil, func(v any) (om.Any, error) {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil, ErrCannotConvert
		}
		if _, isBytes := v.([]byte); isBytes {
			return nil, ErrCannotConvert
		}
		args := make([]om.Any, rv.Len())
		for i := range args {
			elem, err := c.ToOpenMath(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			args[i] = elem
		}
		return sym("list", "list1").Apply(args...), nil
	})

	must(nil, func(v any) (om.Any, error) {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Map || rv.Type().Elem() != emptyStruct {
			return nil, ErrCannotConvert
		}
		if rv.Len() == 0 {
			return sym("emptyset", "set1"), nil
		}
		// Iteration order of the native set is not semantically significant.
		args := make([]om.Any, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			elem, err := c.ToOpenMath(iter.Key().Interface())
			if err != nil {
				return nil, err
			}
			args = append(args, elem)
		}
		return sym("set", "set1").Apply(args...), nil
	})

	must(reflect.TypeOf(IntegerRange{}), func(v any) (om.Any, error) {
		r := v.(IntegerRange)
		if r.Step != 1 {
			return nil, &UnsupportedRangeError{Step: r.Step}
		}
		return sym("integer_interval", "interval1").Apply(
			om.NewInteger(r.Start),
			om.NewInteger(r.Stop-1),
		), nil
	})

	return c
}

// complexCartesian rebuilds a complex number from the two converted real
// arguments of complex1.complex_cartesian.
func complexCartesian(args ...any) (any, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("openmath: complex_cartesian takes 2 arguments, got %d", len(args))
	}
	re, err := asFloat(args[0])
	if err != nil {
		return nil, err
	}
	im, err := asFloat(args[1])
	if err != nil {
		return nil, err
	}
	return complex(re, im), nil
}

// integerInterval rebuilds an IntegerRange from the inclusive bounds of
// interval1.integer_interval.
func integerInterval(args ...any) (any, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("openmath: integer_interval takes 2 arguments, got %d", len(args))
	}
	lo, lok := args[0].(int64)
	hi, hok := args[1].(int64)
	if !lok || !hok {
		return nil, fmt.Errorf("openmath: integer_interval bounds must be integers, got %T and %T", args[0], args[1])
	}
	return IntegerRange{Start: lo, Stop: hi + 1, Step: 1}, nil
}

func asFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int64:
		return float64(x), nil
	}
	return 0, fmt.Errorf("openmath: expected a numeric argument, got %T", v)
}
