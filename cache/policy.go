package cache

// ReplacePolicy decides whether an insertion for an already-stored signature
// overwrites the stored value. The probe logic is independent of the policy,
// so priority-aware schemes (depth-preferred, aging) can be added without
// touching the table itself.
type ReplacePolicy[V any] interface {
	Replace(stored, incoming V) bool
}

// AlwaysReplace overwrites unconditionally: the newest value wins. This is
// the default policy and the cheapest one, appropriate when recomputing a
// dropped entry is inexpensive relative to tracking entry priorities.
type AlwaysReplace[V any] struct{}

func (AlwaysReplace[V]) Replace(_, _ V) bool {
	return true
}

// KeepExisting never overwrites: the first value stored for a signature
// survives. Useful when earlier entries are known to be more expensive to
// recompute than later ones.
type KeepExisting[V any] struct{}

func (KeepExisting[V]) Replace(_, _ V) bool {
	return false
}
