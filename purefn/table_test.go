package purefn_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/on-the-ground/xform_go/purefn"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrie_BasicUsage(t *testing.T) {
	trie := purefn.NewTrie[string](4)

	trie.Store([]purefn.Key{"a", "b", "c"}, "final")

	val, ok := trie.Load([]purefn.Key{"a", "b", "c"})
	require.True(t, ok)
	assert.Equal(t, "final", val)

	_, ok = trie.Load([]purefn.Key{"a", "b", "x"})
	assert.False(t, ok)

	_, ok = trie.Load([]purefn.Key{"a", "b"})
	assert.False(t, ok, "an inner node is not a value")

	trie.Store([]purefn.Key{"a", "b", "c"}, "updated")
	val, ok = trie.Load([]purefn.Key{"a", "b", "c"})
	require.True(t, ok)
	assert.Equal(t, "updated", val)
}

func TestTrie_RotatesGenerations(t *testing.T) {
	trie := purefn.NewTrie[int](1)

	trie.Store([]purefn.Key{"a"}, 1)
	trie.Store([]purefn.Key{"b"}, 2)

	// "a" moved to the old generation but is still served.
	v, ok := trie.Load([]purefn.Key{"a"})
	require.True(t, ok)
	assert.Equal(t, 1, v)

	trie.Store([]purefn.Key{"c"}, 3)

	_, ok = trie.Load([]purefn.Key{"a"})
	assert.False(t, ok)
	v, ok = trie.Load([]purefn.Key{"b"})
	require.True(t, ok)
	assert.Equal(t, 2, v)
	v, ok = trie.Load([]purefn.Key{"c"})
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 1, trie.Len())
}

func TestTrie_ZeroSizePanics(t *testing.T) {
	assert.Panics(t, func() { purefn.NewTrie[int](0) })
}

func TestTrie_EmptyKeysPanics(t *testing.T) {
	trie := purefn.NewTrie[int](2)
	assert.Panics(t, func() { trie.Load([]purefn.Key{}) })
	assert.Panics(t, func() { trie.Store(nil, 1) })
}

func TestTrie_ConcurrentStoreAndLoad(t *testing.T) {
	trie := purefn.NewTrie[int](1024)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			keys := []purefn.Key{"worker", fmt.Sprint(i)}
			trie.Store(keys, i)
			v, ok := trie.Load(keys)
			assert.True(t, ok)
			assert.Equal(t, i, v)
		}(i)
	}
	wg.Wait()
}

func TestTrie_NilInterfaceValueIsHit(t *testing.T) {
	trie := purefn.NewTrie[error](2)
	trie.Store([]purefn.Key{"ok"}, nil)

	v, ok := trie.Load([]purefn.Key{"ok"})
	assert.True(t, ok)
	assert.Nil(t, v)
}
