package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryTokenStore(t *testing.T) {
	store := NewMemoryTokenStore()

	_, ok := store.Get("g1")
	assert.False(t, ok)

	store.Put("g1", Authorization{Token: "a", Colour: ColourBlack, Issued: time.Now()})
	auth, ok := store.Get("g1")
	assert.True(t, ok)
	assert.Equal(t, "a", auth.Token)

	// a new put replaces the live record, killing the old token
	store.Put("g1", Authorization{Token: "b", Colour: ColourBlue, Issued: time.Now()})
	auth, _ = store.Get("g1")
	assert.Equal(t, "b", auth.Token)
	assert.Equal(t, ColourBlue, auth.Colour)

	store.Remove("g1")
	_, ok = store.Get("g1")
	assert.False(t, ok)
}

func TestMemoryTokenStoreKeysAreIndependent(t *testing.T) {
	store := NewMemoryTokenStore()
	store.Put("g1", Authorization{Token: "a"})
	store.Put("g2", Authorization{Token: "b"})

	store.Remove("g1")

	auth, ok := store.Get("g2")
	assert.True(t, ok)
	assert.Equal(t, "b", auth.Token)
}
