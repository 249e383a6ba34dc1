package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPanicsOnNonPowerOfTwo(t *testing.T) {
	require.Panics(t, func() { New[uint64](100) },
		"Construction must fail for a non-power-of-two slot count")
	require.Panics(t, func() { New[uint64](0) },
		"Construction must fail for zero slots")
	require.Panics(t, func() { New[uint64](-8) },
		"Construction must fail for a negative slot count")

	table := New[uint64](128)
	require.Equal(t, 128, table.Capacity())
	require.Equal(t, 0, table.Size())
	require.Equal(t, 0.0, table.LoadFactor())
}

func TestPutThenGet(t *testing.T) {
	table := New[uint64](1 << 10)

	prev, existed := table.Put(42, 7)
	require.False(t, existed, "First insertion must not report a previous value")
	require.Zero(t, prev)
	require.Equal(t, 1, table.Size())

	got, ok := table.Get(42)
	require.True(t, ok)
	require.Equal(t, uint64(7), got)

	// Always-replace: the last written value wins.
	prev, existed = table.Put(42, 9)
	require.True(t, existed, "Re-insertion must report the key existed")
	require.Equal(t, uint64(7), prev, "Re-insertion must return the replaced value")
	require.Equal(t, 1, table.Size(), "Re-insertion must not grow the table")

	got, ok = table.Get(42)
	require.True(t, ok)
	require.Equal(t, uint64(9), got)
}

func TestDistinctKeysAtLowLoad(t *testing.T) {
	table := New[uint64](1 << 12)

	// Well-distributed distinct keys at low load factor must all be
	// retrievable with their exact last-written values.
	for i := uint64(1); i <= 512; i++ {
		table.Put(Mix(i), i*10)
	}
	for i := uint64(1); i <= 512; i++ {
		got, ok := table.Get(Mix(i))
		require.True(t, ok, "key %d should be present", i)
		require.Equal(t, i*10, got)
	}
	require.Equal(t, 512, table.Size())
	require.InDelta(t, 512.0/4096.0, table.LoadFactor(), 1e-9)
}

func TestZeroKeyExclusion(t *testing.T) {
	table := New[uint64](64)

	prev, existed := table.Put(0, 123)
	require.False(t, existed, "Inserting signature 0 must be a no-op")
	require.Zero(t, prev)
	require.Equal(t, 0, table.Size())

	_, ok := table.Get(0)
	require.False(t, ok, "Signature 0 must never be reported as present")
}

func TestBoundedProbing(t *testing.T) {
	const capacity = 16
	table := New[uint64](capacity)

	// Keys sharing the same probe origin exercise the full retry sequence.
	colliding := make([]uint64, 0, 24)
	for i := uint64(1); i <= 24; i++ {
		colliding = append(colliding, i*capacity+3)
	}

	for _, key := range colliding {
		before := table.Probes()
		table.Put(key, key)
		require.LessOrEqual(t, table.Probes()-before, uint64(retries),
			"Put must not probe more than %d slots", retries)
	}

	// The probe region is saturated: at most `retries` of the colliding
	// keys can have been stored, the rest were silently dropped.
	require.LessOrEqual(t, table.Size(), retries)

	for _, key := range colliding {
		before := table.Probes()
		table.Get(key)
		require.LessOrEqual(t, table.Probes()-before, uint64(retries),
			"Get must not probe more than %d slots", retries)
	}

	// Dropped insertions are not an error: the key is simply absent.
	before := table.Probes()
	_, ok := table.Get(25*capacity + 3)
	require.False(t, ok)
	require.LessOrEqual(t, table.Probes()-before, uint64(retries))
}

func TestGetIsIdempotent(t *testing.T) {
	table := New[uint64](64)
	table.Put(11, 1)
	table.Put(22, 2)

	v1, ok1 := table.Get(11)
	v2, ok2 := table.Get(11)
	require.Equal(t, ok1, ok2, "Repeated lookups must agree")
	require.Equal(t, v1, v2, "Repeated lookups must agree")

	_, miss1 := table.Get(33)
	_, miss2 := table.Get(33)
	require.Equal(t, miss1, miss2, "Repeated misses must agree")
}

func TestKeepExistingPolicy(t *testing.T) {
	table := NewWithPolicy[string](32, KeepExisting[string]{})

	table.Put(5, "first")
	prev, existed := table.Put(5, "second")
	require.True(t, existed)
	require.Equal(t, "first", prev)

	got, ok := table.Get(5)
	require.True(t, ok)
	require.Equal(t, "first", got, "KeepExisting must preserve the stored value")
}

func TestHitMissCounters(t *testing.T) {
	table := New[int](64)
	table.Put(7, 70)

	table.Get(7)
	table.Get(7)
	table.Get(8)
	require.Equal(t, uint64(2), table.Hits())
	require.Equal(t, uint64(1), table.Misses())

	table.Clear()
	require.Equal(t, 0, table.Size())
	require.Equal(t, uint64(0), table.Hits())
	_, ok := table.Get(7)
	require.False(t, ok, "Clear must empty all slots")
}

func TestMemoryFootprint(t *testing.T) {
	table := New[uint64](1 << 8)
	// A slot holds the 8-byte signature plus the value payload.
	require.Equal(t, uintptr(1<<8)*16, table.MemoryFootprint())
}

func TestMix(t *testing.T) {
	require.Equal(t, uint64(mixSentinel), Mix(0),
		"Mix must remap zero so every state gets a non-zero table key")
	require.NotZero(t, Mix(mixSentinel))

	// Distinct inputs stay distinct (SplitMix64 is a bijection).
	seen := make(map[uint64]struct{})
	for i := uint64(0); i < 1000; i++ {
		m := Mix(i)
		_, dup := seen[m]
		require.False(t, dup, "Mix must not collide on input %d", i)
		seen[m] = struct{}{}
	}
}
