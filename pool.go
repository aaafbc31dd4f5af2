// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

import "sync"

// Default-sized storages are recycled between delegates. A storage handed
// back must be empty of live values; ReleaseStorage zeroes it before reuse.

var storagePool = sync.Pool{New: func() any { return NewStackStorage(DefaultCapacity, DefaultAlign) }}

// AcquireStorage returns an empty StackStorage of DefaultCapacity and
// DefaultAlign.
func AcquireStorage() *StackStorage {
	return storagePool.Get().(*StackStorage)
}

// ReleaseStorage resets s and returns it to the pool. Storages of any other
// geometry are dropped. s must not be used afterwards.
func ReleaseStorage(s *StackStorage) {
	if s == nil || s.size != DefaultCapacity || s.align != DefaultAlign {
		return
	}
	s.Reset()
	storagePool.Put(s)
}
