package param

import (
	"github.com/avicd/go-utilx/refx"
	"reflect"
)

// AsString coerces a parameter value to its string form. Null values
// stringify to the empty string.
func AsString(val any) string {
	if val == nil {
		return ""
	}
	return refx.AsString(val)
}

func AsBool(val any) bool {
	if val == nil {
		return false
	}
	return refx.AsBool(val)
}

func AsInt(val any) int {
	if val == nil {
		return 0
	}
	return int(refx.AsInt(val))
}

// ListOf unpacks a slice or array value into []any. Byte slices count as
// scalar strings, not lists.
func ListOf(val any) ([]any, bool) {
	if val == nil {
		return nil, false
	}
	rv := reflect.ValueOf(val)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

func IsList(val any) bool {
	_, ok := ListOf(val)
	return ok
}
