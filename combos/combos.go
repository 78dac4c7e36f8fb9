// Package combos precomputes the distinct-digit combinations available to
// Kakuro runs. For a run of L cells with target sum S, the library yields
// every sorted tuple of L distinct digits in 1..9 summing to S. An empty set
// proves the run unsatisfiable; the union of usable digits prunes candidates
// during search.
package combos

import (
	"sync"
	"sync/atomic"
)

// MinSum returns the smallest sum a run of the given length can reach:
// 1+2+...+L.
func MinSum(length int) int {
	return length * (length + 1) / 2
}

// MaxSum returns the largest sum a run of the given length can reach:
// the L largest digits in 1..9.
func MaxSum(length int) int {
	return length*9 - length*(length-1)/2
}

type key struct {
	length int
	sum    int
}

type entry struct {
	tuples [][]int
	mask   uint16
}

// Library memoizes combination sets per (length, sum) pair. The result is a
// pure function of the pair, so lazy per-pair computation and any computation
// order yield identical sets. Safe for concurrent use.
type Library struct {
	mu     sync.RWMutex
	cache  map[key]*entry
	hits   atomic.Int64
	misses atomic.Int64
}

// NewLibrary creates an empty combination library.
func NewLibrary() *Library {
	return &Library{cache: make(map[key]*entry)}
}

// Combinations returns every sorted ascending tuple of `length` distinct
// digits in 1..9 summing to `sum`, in lexicographic order. The returned
// slices are shared; callers must not mutate them.
func (l *Library) Combinations(length, sum int) [][]int {
	return l.lookup(length, sum).tuples
}

// DigitMask returns the union of digits appearing in any combination for the
// pair, as a bitmask with bit d set for digit d. A zero mask means the pair
// is unsatisfiable.
func (l *Library) DigitMask(length, sum int) uint16 {
	return l.lookup(length, sum).mask
}

// Feasible reports whether at least one combination exists for the pair.
func (l *Library) Feasible(length, sum int) bool {
	if length < 1 || length > 9 || sum < MinSum(length) || sum > MaxSum(length) {
		return false
	}
	return len(l.lookup(length, sum).tuples) > 0
}

// Stats reports cache hit/miss counters.
func (l *Library) Stats() (hits, misses int64) {
	return l.hits.Load(), l.misses.Load()
}

func (l *Library) lookup(length, sum int) *entry {
	k := key{length: length, sum: sum}

	l.mu.RLock()
	e, ok := l.cache[k]
	l.mu.RUnlock()
	if ok {
		l.hits.Add(1)
		return e
	}

	e = compute(length, sum)

	l.mu.Lock()
	// Another goroutine may have raced us; the computed sets are identical
	// either way, so last write wins.
	l.cache[k] = e
	l.mu.Unlock()
	l.misses.Add(1)
	return e
}

func compute(length, sum int) *entry {
	e := &entry{}
	if length < 1 || length > 9 {
		return e
	}
	enumerate(length, sum, 1, nil, e)
	return e
}

// enumerate extends the partial tuple with digits >= next, keeping digits
// strictly ascending so each combination is generated exactly once.
func enumerate(remaining, sum, next int, partial []int, e *entry) {
	if remaining == 0 {
		if sum != 0 {
			return
		}
		tuple := make([]int, len(partial))
		copy(tuple, partial)
		e.tuples = append(e.tuples, tuple)
		for _, d := range tuple {
			e.mask |= 1 << uint(d)
		}
		return
	}
	for d := next; d <= 9; d++ {
		// Remaining digits are strictly ascending from d, so the reachable
		// sums are bounded below by d..d+remaining-1 and above by the top
		// `remaining` digits.
		low := remaining*d + remaining*(remaining-1)/2
		if low > sum {
			break
		}
		high := remaining*9 - remaining*(remaining-1)/2
		if high < sum {
			continue
		}
		enumerate(remaining-1, sum-d, d+1, append(partial, d), e)
	}
}
