package normalize

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
)

// Falsy reports whether a value should be elided from the joined output
// instead of being interpolated. The set deliberately replicates the falsy
// values of the calling convention this pipeline originated with: nil (and
// typed nil pointers, maps, slices, and the like), the empty string, false,
// numeric zero of any builtin kind, and NaN.
//
// Note the consequence: a literal 0 or "" never renders. Callers that want a
// zero in the output pass it pre-converted ("0" is truthy).
func Falsy(v any) bool {
	if v == nil {
		return true
	}
	switch x := v.(type) {
	case string:
		return x == ""
	case bool:
		return !x
	case int:
		return x == 0
	case int8:
		return x == 0
	case int16:
		return x == 0
	case int32:
		return x == 0
	case int64:
		return x == 0
	case uint:
		return x == 0
	case uint8:
		return x == 0
	case uint16:
		return x == 0
	case uint32:
		return x == 0
	case uint64:
		return x == 0
	case uintptr:
		return x == 0
	case float32:
		return x == 0 || math.IsNaN(float64(x))
	case float64:
		return x == 0 || math.IsNaN(x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Stringify converts a truthy value to its natural string representation.
// Strings pass through, errors and fmt.Stringer use their own rendering, and
// encoding.TextMarshaler gives values a fallible conversion hook whose error
// surfaces to the caller. Everything else falls back to fmt formatting.
func Stringify(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case error:
		return x.Error(), nil
	case fmt.Stringer:
		return x.String(), nil
	case encoding.TextMarshaler:
		text, err := x.MarshalText()
		if err != nil {
			return "", fmt.Errorf("normalize: convert value: %w", err)
		}
		return string(text), nil
	}
	return fmt.Sprintf("%v", v), nil
}
