// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

import (
	"reflect"
	"sync"
)

// shapes caches pointerShaped results by type.
var shapes sync.Map // reflect.Type -> bool

// pointerShaped reports whether every word of T holds a pointer.
// The arena's backing memory is scanned by the collector as pointer words,
// so only such types may be placed there.
func pointerShaped[T any]() bool {
	t := reflect.TypeFor[T]()
	if v, ok := shapes.Load(t); ok {
		return v.(bool)
	}
	ok := pointerWords(t)
	shapes.Store(t, ok)
	return ok
}

// pointerWords reports whether t is a non-empty sequence of pointer words
// with no scalar or padding bytes in between.
func pointerWords(t reflect.Type) bool {
	if t.Size() == 0 || t.Size()%ptrSize != 0 {
		return false
	}
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Func,
		reflect.Map, reflect.Chan, reflect.Interface:
		return true
	case reflect.Array:
		return pointerWords(t.Elem())
	case reflect.Struct:
		var off uintptr
		for i := range t.NumField() {
			f := t.Field(i)
			if f.Type.Size() == 0 {
				continue
			}
			if f.Offset != off || !pointerWords(f.Type) {
				return false
			}
			off += f.Type.Size()
		}
		return off == t.Size()
	default:
		return false
	}
}
