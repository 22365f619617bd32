package purefn

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// ComparableOrStringer documents what a tableized argument must be.
type ComparableOrStringer = any

// Key is one level of a table path.
type Key = any

// StringerKey is the key derived from a fmt.Stringer argument.
type StringerKey uint64

// Table stores results by argument path.
type Table[O any] interface {
	Load(keys []Key) (O, bool)
	Store(keys []Key, value O)
}

func tableKey(arg ComparableOrStringer) Key {
	if stringer, ok := arg.(fmt.Stringer); ok {
		return StringerKey(xxhash.Sum64String(stringer.String()))
	}
	return arg
}

// argOf asserts a stored argument back to I. A nil arg becomes the zero I,
// which only happens when I is an interface type.
func argOf[I any](arg ComparableOrStringer) I {
	if arg == nil {
		var zero I
		return zero
	}
	return arg.(I)
}

func tableKeys(args []ComparableOrStringer) []Key {
	keys := make([]Key, len(args))
	for i, arg := range args {
		keys[i] = tableKey(arg)
	}
	return keys
}

// Trie is a bounded Table made of nested sync.Maps, one level per argument.
// It holds two generations; once the live one exceeds maxSize entries it
// becomes the old one and the previous old generation is dropped.
type Trie[O any] struct {
	mu      sync.Mutex
	gens    [2]atomic.Pointer[sync.Map]
	head    atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
}

var _ Table[int] = (*Trie[int])(nil)

func NewTrie[O any](maxSize uint32) *Trie[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	t := &Trie[O]{maxSize: maxSize}
	t.gens[0].Store(&sync.Map{})
	t.gens[1].Store(&sync.Map{})
	return t
}

func (t *Trie[O]) Load(keys []Key) (O, bool) {
	head := t.head.Load()
	for _, idx := range [2]uint32{head, 1 - head} {
		if v, ok := lookup(t.gens[idx].Load(), keys); ok {
			// a nil interface result is a hit, not a miss
			if v == nil {
				var zero O
				return zero, true
			}
			if o, ok := v.(O); ok {
				return o, true
			}
		}
	}
	var zero O
	return zero, false
}

func (t *Trie[O]) Store(keys []Key, value O) {
	if t.size.Add(1) > t.maxSize {
		t.rotate()
	}
	m, k := traverse(t.gens[t.head.Load()].Load(), keys)
	m.Store(k, value)
}

// Len reports the number of stores into the live generation.
func (t *Trie[O]) Len() int {
	return int(t.size.Load())
}

func (t *Trie[O]) rotate() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.size.Load() <= t.maxSize {
		return
	}
	next := 1 - t.head.Load()
	t.gens[next].Store(&sync.Map{})
	t.head.Store(next)
	t.size.Store(1)
}

func lookup(m *sync.Map, keys []Key) (any, bool) {
	if len(keys) == 0 {
		panic("lookup: empty keys")
	}
	for _, k := range keys[:len(keys)-1] {
		v, ok := m.Load(k)
		if !ok {
			return nil, false
		}
		if m, ok = v.(*sync.Map); !ok {
			return nil, false
		}
	}
	return m.Load(keys[len(keys)-1])
}

func traverse(m *sync.Map, keys []Key) (*sync.Map, Key) {
	if len(keys) == 0 {
		panic("traverse: empty keys")
	}
	for _, k := range keys[:len(keys)-1] {
		v, ok := m.Load(k)
		if !ok {
			v, _ = m.LoadOrStore(k, &sync.Map{})
		}
		m = v.(*sync.Map)
	}
	return m, keys[len(keys)-1]
}
