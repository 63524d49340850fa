package value

import "reflect"

// Equality is the outcome of comparing a value against an arbitrary other one.
type Equality int

const (
	// Incomparable means the receiver does not know how to compare itself with
	// the other value. The caller should try the reflected comparison.
	Incomparable Equality = iota
	NotEq
	Eq
)

func (e Equality) String() string {
	switch e {
	case Eq:
		return "equal"
	case NotEq:
		return "not equal"
	default:
		return "incomparable"
	}
}

// Comparer is implemented by values that decide equality themselves.
type Comparer interface {
	Compare(other any) Equality
}

// Of collapses a boolean into an Equality.
func Of(equal bool) Equality {
	if equal {
		return Eq
	}
	return NotEq
}

// Equal reports whether a and b are equal. If a is a Comparer it is asked
// first; when it answers Incomparable, b is asked the reflected question.
// Two Incomparable answers mean the values differ.
func Equal(a, b any) bool {
	if c, ok := a.(Comparer); ok {
		if r := c.Compare(b); r != Incomparable {
			return r == Eq
		}
		if c, ok := b.(Comparer); ok {
			return c.Compare(a) == Eq
		}
		return false
	}
	if c, ok := b.(Comparer); ok {
		return c.Compare(a) == Eq
	}
	return primitiveEqual(a, b)
}

func primitiveEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	return equalValues(reflect.ValueOf(a), reflect.ValueOf(b))
}

// equalValues walks a and b in lockstep. Nested Comparers are consulted
// through Equal; everything else follows ==, except that slices, maps and
// structs holding them compare by content. Hash walks values the same way.
func equalValues(a, b reflect.Value) bool {
	if a.CanInterface() && b.CanInterface() {
		x, y := a.Interface(), b.Interface()
		_, cx := x.(Comparer)
		_, cy := y.(Comparer)
		if cx || cy {
			return Equal(x, y)
		}
	}
	if a.Type() != b.Type() {
		return false
	}
	switch a.Kind() {
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() == b.Uint()
	case reflect.Float32, reflect.Float64:
		return a.Float() == b.Float()
	case reflect.Complex64, reflect.Complex128:
		return a.Complex() == b.Complex()
	case reflect.String:
		return a.String() == b.String()
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	case reflect.Func:
		return a.IsNil() && b.IsNil()
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		return equalValues(a.Elem(), b.Elem())
	case reflect.Slice:
		if a.IsNil() != b.IsNil() {
			return false
		}
		fallthrough
	case reflect.Array:
		if a.Len() != b.Len() {
			return false
		}
		for i := range a.Len() {
			if !equalValues(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := range a.NumField() {
			if !equalValues(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		if a.IsNil() != b.IsNil() || a.Len() != b.Len() {
			return false
		}
		it := a.MapRange()
		for it.Next() {
			w := b.MapIndex(it.Key())
			if !w.IsValid() || !equalValues(it.Value(), w) {
				return false
			}
		}
		return true
	}
	return false
}
