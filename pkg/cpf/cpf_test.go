package cpf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("accepts checksum-valid CPF", func(t *testing.T) {
		c, err := Parse("52998224725")
		require.NoError(t, err)
		assert.Equal(t, "52998224725", c.Canonical())
	})

	t.Run("sanitizes punctuation and whitespace", func(t *testing.T) {
		c, err := Parse(" 529.982.247-25 ")
		require.NoError(t, err)
		assert.Equal(t, "52998224725", c.Canonical())
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := Parse("5299822472")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalid))
	})

	t.Run("rejects repeated digit sequences", func(t *testing.T) {
		// "11111111111" passes the naive checksum, so it needs its own rule.
		_, err := Parse("11111111111")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalid))
	})

	t.Run("rejects checksum mismatch", func(t *testing.T) {
		_, err := Parse("52998224724")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalid))
	})

	t.Run("rejects non-numeric garbage", func(t *testing.T) {
		_, err := Parse("not-a-cpf")
		require.Error(t, err)
	})
}

func TestDerivedForms(t *testing.T) {
	c, err := Parse("52998224725")
	require.NoError(t, err)

	assert.Equal(t, "529.982.247-25", c.Formatted())
	assert.Equal(t, "529.982.***-**", c.Masked())
	assert.Equal(t, c.Masked(), c.String(), "String must never expose the full ID")
}

func TestHash(t *testing.T) {
	a, err := Parse("52998224725")
	require.NoError(t, err)
	b, err := Parse("529.982.247-25")
	require.NoError(t, err)

	assert.Equal(t, a.Hash("salt"), b.Hash("salt"), "equal CPFs hash equally")
	assert.NotEqual(t, a.Hash("salt-1"), a.Hash("salt-2"), "salt changes the hash")
	assert.Len(t, a.Hash("salt"), 64)
	assert.NotContains(t, a.Hash("salt"), "52998224725")
}

func TestEqual(t *testing.T) {
	a, _ := Parse("52998224725")
	b, _ := Parse("529.982.247-25")
	assert.True(t, a.Equal(b))

	var zero CPF
	assert.True(t, zero.IsZero())
	assert.False(t, a.Equal(zero))
}
