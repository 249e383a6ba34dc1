// Package cache provides a fixed-capacity transposition table mapping 64-bit
// state signatures to associated values, using bounded quadratic probing.
//
// Two kinds of collisions occur (chessprogramming.org/Transposition_Table):
//
//   - Type-1 (key collision): two distinct states share the same 64-bit
//     signature. Lookups then yield a false positive. This is inherent to
//     hashing a state space into 64 bits and is accepted.
//   - Type-2 (index collision): two distinct signatures map to the same probe
//     slot. This is detected by comparing the stored signature while probing
//     and never corrupts data, it only costs extra probes.
package cache

import "unsafe"

// Probe parameters. A lookup or insertion touches at most `retries` slots,
// advancing by c1*k + c2*k^2 on the k-th retry.
const (
	retries = 8
	c1      = 1
	c2      = 2
)

type slot[V any] struct {
	key   uint64
	value V
}

// Table is a fixed-capacity open-addressing transposition table. Capacity is
// chosen at construction, never grows, and must be a power of two so slot
// indices can be masked instead of reduced modulo.
//
// A signature of zero marks an empty slot, so zero is excluded from the key
// space: inserting it is a no-op and looking it up always misses. Route raw
// state hashes through Mix to keep a legitimate zero hash addressable.
//
// A Table is not safe for concurrent mutation; confine each instance to one
// search session.
type Table[V any] struct {
	slots  []slot[V]
	mask   uint64
	size   int
	policy ReplacePolicy[V]

	probes uint64
	hits   uint64
	misses uint64
}

// New creates a table with the given number of slots and the always-replace
// policy. It panics unless slots is a power of two; passing anything else is
// a programming error, not a recoverable condition.
func New[V any](slots int) *Table[V] {
	return NewWithPolicy[V](slots, AlwaysReplace[V]{})
}

// NewWithPolicy is New with an explicit replacement policy.
func NewWithPolicy[V any](slots int, policy ReplacePolicy[V]) *Table[V] {
	if slots <= 0 || slots&(slots-1) != 0 {
		panic("cache: slot count must be a power of two")
	}
	return &Table[V]{
		slots:  make([]slot[V], slots),
		mask:   uint64(slots) - 1,
		policy: policy,
	}
}

// Get looks up a signature and returns the stored value if present.
//
// A miss means either the key was never inserted, it was dropped on probe
// exhaustion, or it was overwritten by a type-1 collision; the table offers
// no way to tell these apart and callers must treat them identically. A hit
// proves signature equality only, not logical state equality.
func (t *Table[V]) Get(key uint64) (V, bool) {
	var zero V
	if key == 0 { // reserved for empty slots
		return zero, false
	}

	i := key & t.mask
	for k := uint64(1); k <= retries; k++ {
		t.probes++
		s := &t.slots[i]
		if s.key == key {
			t.hits++
			return s.value, true
		}
		if s.key == 0 {
			// Insertion never probes past an empty slot, so the key
			// cannot be stored further along the sequence.
			t.misses++
			return zero, false
		}
		i = (i + c1*k + c2*k*k) & t.mask
	}

	// Every slot in the probe sequence is occupied by a foreign signature.
	// Insertion gives up after the same number of attempts, so the key is
	// not in the table.
	t.misses++
	return zero, false
}

// Put inserts a signature/value pair. If the signature is already stored, the
// replacement policy decides whether its value is overwritten, and the prior
// value is returned with existed == true. If the probe sequence is exhausted
// without finding the key or an empty slot, the entry is silently dropped:
// cost stays bounded by the retry limit at the price of a lower hit rate as
// the table fills.
func (t *Table[V]) Put(key uint64, value V) (prev V, existed bool) {
	var zero V
	if key == 0 { // reserved for empty slots
		return zero, false
	}

	i := key & t.mask
	for k := uint64(1); k <= retries; k++ {
		t.probes++
		s := &t.slots[i]
		if s.key == key {
			prev = s.value
			if t.policy.Replace(prev, value) {
				s.value = value
			}
			return prev, true
		}
		if s.key == 0 {
			s.key = key
			s.value = value
			t.size++
			return zero, false
		}
		i = (i + c1*k + c2*k*k) & t.mask
	}

	return zero, false
}

// Contains reports whether the signature is currently stored.
func (t *Table[V]) Contains(key uint64) bool {
	_, ok := t.Get(key)
	return ok
}

// Size returns the number of occupied slots.
func (t *Table[V]) Size() int {
	return t.size
}

// Capacity returns the fixed slot count.
func (t *Table[V]) Capacity() int {
	return len(t.slots)
}

// LoadFactor returns size divided by capacity.
func (t *Table[V]) LoadFactor() float64 {
	return float64(t.size) / float64(len(t.slots))
}

// MemoryFootprint returns the approximate size of the slot array in bytes.
func (t *Table[V]) MemoryFootprint() uintptr {
	return uintptr(len(t.slots)) * unsafe.Sizeof(t.slots[0])
}

// Probes returns the total number of slots inspected by Get and Put calls.
func (t *Table[V]) Probes() uint64 {
	return t.probes
}

// Hits returns the number of successful lookups.
func (t *Table[V]) Hits() uint64 {
	return t.hits
}

// Misses returns the number of failed lookups.
func (t *Table[V]) Misses() uint64 {
	return t.misses
}

// Clear empties all slots and resets the counters. Capacity is unchanged.
func (t *Table[V]) Clear() {
	for i := range t.slots {
		t.slots[i] = slot[V]{}
	}
	t.size = 0
	t.probes, t.hits, t.misses = 0, 0, 0
}
