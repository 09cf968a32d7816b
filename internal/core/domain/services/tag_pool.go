package services

import (
	"errors"
	"sort"
	"sync"

	"laundrytrack/internal/core/domain/model/kernel"
)

var (
	// ErrPoolExhausted is returned by Acquire when no tag is available.
	// Order creation on the NFC path must abort before persisting anything
	// when it sees this error.
	ErrPoolExhausted = errors.New("tag pool exhausted")

	// ErrTagUnknown is returned when a tag outside the provisioned universe
	// is released or reserved. The pool only manages tags it was seeded with.
	ErrTagUnknown = errors.New("tag does not belong to the pool universe")
)

// TagPool owns the finite universe of physical NFC tag identifiers and tracks
// which of them are currently bound to in-progress orders.
//
// The pool is process-wide shared mutable state accessed by every concurrent
// request handler, so all mutations go through a mutex: two concurrent Acquire
// calls can never hand out the same tag, and Release never double-counts.
// The backing containers are never exposed to callers.
//
// Invariant: the available set and the set of bound tags are disjoint and
// together always form the full seeded universe.
//
// Example usage:
//
//	pool := services.NewTagPool(universe)
//	tag, err := pool.Acquire()
//	if errors.Is(err, services.ErrPoolExhausted) {
//	    // reject the order creation, nothing was persisted
//	}
//	// ... bind tag to an order; on completion:
//	_ = pool.Release(tag)
type TagPool struct {
	mu sync.Mutex

	// universe holds every provisioned tag, keyed by string form
	universe map[string]kernel.TagID

	// available holds the string forms of tags not currently bound
	available map[string]struct{}
}

// NewTagPool creates a pool seeded with the given tag universe.
// All tags start available; duplicates in the slice collapse to one entry.
// Tags bound to persisted in-progress orders should be marked with Reserve
// during startup rehydration.
func NewTagPool(universe []kernel.TagID) *TagPool {
	pool := &TagPool{
		universe:  make(map[string]kernel.TagID, len(universe)),
		available: make(map[string]struct{}, len(universe)),
	}
	for _, tag := range universe {
		if tag.Validate() != nil {
			continue
		}
		pool.universe[tag.String()] = tag
		pool.available[tag.String()] = struct{}{}
	}
	return pool
}

// Acquire removes and returns one tag from the available set.
//
// The choice is deterministic (lexicographically smallest available tag) so
// behavior is reproducible in tests and during facility audits.
//
// Returns:
//   - the acquired tag on success
//   - ErrPoolExhausted when the available set is empty; pool state is unchanged
func (p *TagPool) Acquire() (kernel.TagID, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.available) == 0 {
		return kernel.TagID{}, ErrPoolExhausted
	}

	keys := make([]string, 0, len(p.available))
	for key := range p.available {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	chosen := keys[0]
	delete(p.available, chosen)
	return p.universe[chosen], nil
}

// Release returns a tag to the available set.
//
// Release is idempotent: releasing a tag that is already available is a no-op,
// not an error, so a repeated completion cannot double-count a tag. Tags from
// outside the seeded universe are rejected with ErrTagUnknown.
func (p *TagPool) Release(tag kernel.TagID) error {
	if err := tag.Validate(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.universe[tag.String()]; !ok {
		return ErrTagUnknown
	}

	p.available[tag.String()] = struct{}{}
	return nil
}

// Reserve marks a universe tag as bound without going through Acquire.
// Used during startup rehydration for tags referenced by persisted
// non-completed orders. Reserving an already-bound tag is a no-op.
func (p *TagPool) Reserve(tag kernel.TagID) error {
	if err := tag.Validate(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.universe[tag.String()]; !ok {
		return ErrTagUnknown
	}

	delete(p.available, tag.String())
	return nil
}

// IsAvailable reports whether the given tag is currently in the available set.
// Used by the reconciliation job to detect completed orders whose tag was
// never returned.
func (p *TagPool) IsAvailable(tag kernel.TagID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, ok := p.available[tag.String()]
	return ok
}

// AvailableCount returns the number of tags currently available.
func (p *TagPool) AvailableCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.available)
}

// Snapshot returns the currently available tags, sorted by string form.
// The result is a copy; mutating it does not affect the pool.
func (p *TagPool) Snapshot() []kernel.TagID {
	p.mu.Lock()
	defer p.mu.Unlock()

	keys := make([]string, 0, len(p.available))
	for key := range p.available {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	tags := make([]kernel.TagID, 0, len(keys))
	for _, key := range keys {
		tags = append(tags, p.universe[key])
	}
	return tags
}
