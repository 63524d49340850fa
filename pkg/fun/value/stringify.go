package value

import (
	"encoding"
	"fmt"
)

// Stringify renders one value. Containers apply the same Stringify to each of
// their elements.
type Stringify func(any) string

// Str is the plain display form, as printed by %v.
func Str(v any) string {
	return fmt.Sprint(v)
}

// Repr is the debug form, as printed by %#v.
func Repr(v any) string {
	return fmt.Sprintf("%#v", v)
}

// Text is the text-encoding form. It prefers encoding.TextMarshaler and falls
// back to Str.
func Text(v any) string {
	if m, ok := v.(encoding.TextMarshaler); ok {
		if b, err := m.MarshalText(); err == nil {
			return string(b)
		}
	}
	return Str(v)
}
