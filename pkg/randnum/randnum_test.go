package randnum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/gatrack/pkg/randnum"
)

func TestUint32(t *testing.T) {
	t.Parallel()

	seen := make(map[uint32]struct{}, 64)
	for range 64 {
		seen[randnum.Uint32()] = struct{}{}
	}
	// 64 draws from 2^32 values colliding more than once is practically impossible.
	assert.GreaterOrEqual(t, len(seen), 63)
}
