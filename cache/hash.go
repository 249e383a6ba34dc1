package cache

// mixSentinel replaces the single fixed point Mix would otherwise send to
// zero, keeping the zero signature reserved for empty slots.
const mixSentinel = 0x9e3779b97f4a7c15

// Mix redistributes a raw state hash with the SplitMix64 finalizer, breaking
// up clustering when game hashes are poorly distributed in their low bits.
//
// SplitMix64 is a bijection whose only zero output comes from a zero input,
// which Mix remaps to a fixed non-zero sentinel. Feeding table keys through
// Mix therefore guarantees a non-zero key for every state, including one
// whose raw hash happens to be exactly zero; such a state merely shares its
// key with the one raw hash that mixes to the sentinel, an ordinary type-1
// collision.
func Mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		return mixSentinel
	}
	return x
}
