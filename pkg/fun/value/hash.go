package value

import (
	"math"
	"reflect"

	"github.com/xiaq/persistent/hash"
)

// Hasher wraps the Hash method.
type Hasher interface {
	// Hash computes the hash code of the receiver.
	Hash() uint32
}

// Hash returns the 32-bit hash of a value. Values that are Equal hash to the
// same code. Hasher implementations are used as is; scalars are hashed by
// content and pointers by address. Slices, arrays and structs fold their
// elements, and maps sum their entries so that iteration order is irrelevant.
func Hash(v any) uint32 {
	switch v := v.(type) {
	case nil:
		return 0
	case Hasher:
		return v.Hash()
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		return hash.String(v)
	case int:
		return uint64Hash(uint64(v))
	case int64:
		return uint64Hash(uint64(v))
	case uint64:
		return uint64Hash(v)
	case float64:
		return floatHash(v)
	}
	return hashValue(reflect.ValueOf(v))
}

func hashValue(rv reflect.Value) uint32 {
	if rv.CanInterface() {
		if h, ok := rv.Interface().(Hasher); ok {
			return h.Hash()
		}
	}
	switch rv.Kind() {
	case reflect.Bool:
		return Hash(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64Hash(uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uint64Hash(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return floatHash(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		return hash.DJB(floatHash(real(c)), floatHash(imag(c)))
	case reflect.String:
		return hash.String(rv.String())
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return hash.Pointer(rv.UnsafePointer())
	case reflect.Interface:
		if rv.IsNil() {
			return 0
		}
		return hashValue(rv.Elem())
	case reflect.Slice, reflect.Array:
		h := hash.DJBInit
		for i := range rv.Len() {
			h = hash.DJBCombine(h, hashValue(rv.Index(i)))
		}
		return h
	case reflect.Struct:
		h := hash.DJBInit
		for i := range rv.NumField() {
			h = hash.DJBCombine(h, hashValue(rv.Field(i)))
		}
		return h
	case reflect.Map:
		var sum uint32
		it := rv.MapRange()
		for it.Next() {
			sum += hash.DJB(hashValue(it.Key()), hashValue(it.Value()))
		}
		return hash.DJB(uint32(rv.Len()), sum)
	}
	// funcs are never equal unless both nil
	return 0
}

func uint64Hash(u uint64) uint32 {
	return hash.DJB(uint32(u>>32), uint32(u))
}

func floatHash(f float64) uint32 {
	if f == 0 {
		// -0 == +0
		f = 0
	}
	return uint64Hash(math.Float64bits(f))
}
