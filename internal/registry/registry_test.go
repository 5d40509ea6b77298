package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseOthersSkipsSelf(t *testing.T) {
	reg := New()

	closed := make(map[string]int)
	a := reg.Register(func() { closed["a"]++ })
	b := reg.Register(func() { closed["b"]++ })
	c := reg.Register(func() { closed["c"]++ })
	require.Equal(t, 3, reg.Count())

	reg.CloseOthers(a)

	assert.Equal(t, 0, closed["a"])
	assert.Equal(t, 1, closed["b"])
	assert.Equal(t, 1, closed["c"])

	_ = b
	_ = c
}

func TestDeregister(t *testing.T) {
	reg := New()

	closed := 0
	a := reg.Register(func() {})
	b := reg.Register(func() { closed++ })

	reg.Deregister(b)
	reg.CloseOthers(a)

	assert.Equal(t, 0, closed)
	assert.Equal(t, 1, reg.Count())
}

func TestRegisterGeneratesUniqueIDs(t *testing.T) {
	reg := New()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := reg.Register(nil)
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestCloseOthersToleratesNilCallbacks(t *testing.T) {
	reg := New()

	a := reg.Register(nil)
	reg.Register(nil)

	assert.NotPanics(t, func() { reg.CloseOthers(a) })
}
