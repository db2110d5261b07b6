package om

import "reflect"

// Equal reports whether a and b are structurally equal: same variant and
// recursively equal field values. Absent optional attributes only compare
// equal to absent ones.
func Equal(a, b Any) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	switch x := a.(type) {
	case *Object:
		y, ok := b.(*Object)
		return ok && x.Version == y.Version && x.ID == y.ID && x.CDBase == y.CDBase &&
			Equal(x.Elem, y.Elem)
	case *Reference:
		y, ok := b.(*Reference)
		return ok && x.Href == y.Href && x.ID == y.ID
	case *Integer:
		y, ok := b.(*Integer)
		return ok && x.Value == y.Value && x.ID == y.ID
	case *Float:
		y, ok := b.(*Float)
		return ok && x.Value == y.Value && x.ID == y.ID
	case *String:
		y, ok := b.(*String)
		if !ok || x.ID != y.ID {
			return false
		}
		if x.Value == nil || y.Value == nil {
			return x.Value == y.Value
		}
		return *x.Value == *y.Value
	case *Bytes:
		y, ok := b.(*Bytes)
		if !ok || x.ID != y.ID || len(x.Value) != len(y.Value) {
			return false
		}
		for i := range x.Value {
			if x.Value[i] != y.Value[i] {
				return false
			}
		}
		return true
	case *Symbol:
		y, ok := b.(*Symbol)
		return ok && x.Name == y.Name && x.CD == y.CD && x.ID == y.ID && x.CDBase == y.CDBase
	case *Variable:
		y, ok := b.(*Variable)
		return ok && x.Name == y.Name && x.ID == y.ID
	case *Foreign:
		y, ok := b.(*Foreign)
		return ok && x.Value == y.Value && x.Encoding == y.Encoding &&
			x.ID == y.ID && x.CDBase == y.CDBase
	case *Application:
		y, ok := b.(*Application)
		return ok && x.ID == y.ID && x.CDBase == y.CDBase &&
			Equal(x.Elem, y.Elem) && equalSeq(x.Arguments, y.Arguments)
	case *Attribution:
		y, ok := b.(*Attribution)
		return ok && x.ID == y.ID && x.CDBase == y.CDBase &&
			Equal(x.Pairs, y.Pairs) && Equal(x.Obj, y.Obj)
	case *AttributionPairs:
		y, ok := b.(*AttributionPairs)
		return ok && x.ID == y.ID && x.CDBase == y.CDBase && equalPairs(x.Pairs, y.Pairs)
	case *Binding:
		y, ok := b.(*Binding)
		return ok && x.ID == y.ID && x.CDBase == y.CDBase &&
			Equal(x.Binder, y.Binder) && Equal(x.Vars, y.Vars) && Equal(x.Obj, y.Obj)
	case *BindVariables:
		y, ok := b.(*BindVariables)
		if !ok || x.ID != y.ID || len(x.Vars) != len(y.Vars) {
			return false
		}
		for i := range x.Vars {
			if !Equal(x.Vars[i], y.Vars[i]) {
				return false
			}
		}
		return true
	case *AttVar:
		y, ok := b.(*AttVar)
		return ok && x.ID == y.ID && Equal(x.Pairs, y.Pairs) && Equal(x.Obj, y.Obj)
	case *Error:
		y, ok := b.(*Error)
		return ok && x.ID == y.ID && x.CDBase == y.CDBase &&
			Equal(x.Name, y.Name) && equalSeq(x.Params, y.Params)
	}
	return false
}

func equalSeq(a, b []Any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalPairs(a, b []Pair) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i].Key, b[i].Key) || !Equal(a[i].Value, b[i].Value) {
			return false
		}
	}
	return true
}

// isNil also catches a typed nil pointer stored in the interface.
func isNil(n Any) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
