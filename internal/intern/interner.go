// Package intern deduplicates strings destined for a VIM string pool before
// it is emitted. It follows the hash-then-verify approach of
// github.com/arloliu/mebo's internal/hash and internal/collision packages:
// an xxHash64 digest narrows the lookup, and an exact string compare
// resolves the rare digest collision rather than silently merging two
// distinct strings.
package intern

import "github.com/cespare/xxhash/v2"

// Interner accumulates unique strings in first-seen order and hands back a
// stable 0-based index for each one, suitable for VIM's string-pool
// references (scene.go, entities.go).
type Interner struct {
	byHash map[uint64][]int // hash -> indices of pool entries with that hash
	pool   []string
}

// New creates an empty Interner.
func New() *Interner {
	return &Interner{byHash: make(map[uint64][]int)}
}

// Intern returns the 0-based index of s in the pool, appending it if it
// hasn't been seen before.
func (in *Interner) Intern(s string) int {
	h := xxhash.Sum64String(s)
	for _, idx := range in.byHash[h] {
		if in.pool[idx] == s {
			return idx
		}
	}

	idx := len(in.pool)
	in.pool = append(in.pool, s)
	in.byHash[h] = append(in.byHash[h], idx)
	return idx
}

// Strings returns the pool in insertion order.
func (in *Interner) Strings() []string {
	return in.pool
}

// Len returns the number of unique strings interned so far.
func (in *Interner) Len() int {
	return len(in.pool)
}
