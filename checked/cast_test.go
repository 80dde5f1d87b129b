package checked

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCast(t *testing.T) {
	t.Run("Identity", func(t *testing.T) {
		got, ok := Cast[uint8](uint8(7))
		assert.True(t, ok)
		assert.Equal(t, uint8(7), got)
	})
	t.Run("Widen", func(t *testing.T) {
		got, ok := Cast[int64](int8(-5))
		assert.True(t, ok)
		assert.Equal(t, int64(-5), got)
	})
	t.Run("NarrowFits", func(t *testing.T) {
		got, ok := Cast[uint8](int16(255))
		assert.True(t, ok)
		assert.Equal(t, uint8(255), got)
	})
	t.Run("NarrowOverflow", func(t *testing.T) {
		_, ok := Cast[uint8](int16(300))
		assert.False(t, ok)
	})
	t.Run("NegativeToUnsigned", func(t *testing.T) {
		_, ok := Cast[uint8](int8(-1))
		assert.False(t, ok)

		_, ok = Cast[uint64](int32(-1))
		assert.False(t, ok)
	})
	t.Run("UnsignedMaxToSigned", func(t *testing.T) {
		_, ok := Cast[int8](uint8(255))
		assert.False(t, ok)

		_, ok = Cast[int64](uint64(math.MaxUint64))
		assert.False(t, ok)
	})
	t.Run("SignedBoundaries", func(t *testing.T) {
		got, ok := Cast[int32](int64(math.MaxInt32))
		assert.True(t, ok)
		assert.Equal(t, int32(math.MaxInt32), got)

		_, ok = Cast[int32](int64(math.MaxInt32) + 1)
		assert.False(t, ok)

		got, ok = Cast[int32](int64(math.MinInt32))
		assert.True(t, ok)
		assert.Equal(t, int32(math.MinInt32), got)

		_, ok = Cast[int32](int64(math.MinInt32) - 1)
		assert.False(t, ok)
	})
}
