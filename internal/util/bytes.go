package util

import (
	"math"
	"sync"
)

var bytesPool = &sync.Pool{
	New: func() any {
		b := make([]byte, 0, 64)
		return &b
	},
}

// GetBytes returns an empty byte slice from the pool.
func GetBytes() *[]byte {
	return bytesPool.Get().(*[]byte) //nolint:forcetypeassert
}

// FreeBytes returns the slice to the pool.
// Oversized slices are dropped.
func FreeBytes(b *[]byte) {
	if cap(*b) > math.MaxUint16 {
		return
	}
	*b = (*b)[:0]
	bytesPool.Put(b)
}
