package gf_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/pss/pkg/math/gf"
)

func TestRandomIsAlwaysInRange(t *testing.T) {
	f, err := gf.Init(5)
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		e, err := f.Random(rand.Reader)
		require.NoError(t, err)
		assert.Less(t, uint32(e), f.Order())
	}
}

func TestRandomPropagatesShortReadError(t *testing.T) {
	f, err := gf.Init(16)
	require.NoError(t, err)

	_, err = f.Random(bytes.NewReader([]byte{1}))
	assert.Error(t, err)
}

func TestRandomConsumesExactlyNumBytes(t *testing.T) {
	f, err := gf.Init(9)
	require.NoError(t, err)

	r := bytes.NewReader([]byte{0xFF, 0xFF, 0xAA})
	e, err := f.Random(r)
	require.NoError(t, err)
	assert.Less(t, uint32(e), f.Order())
	assert.Equal(t, 1, r.Len(), "Random should consume NumBytes() bytes and leave the rest")
}
