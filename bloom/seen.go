// Package bloom provides a probabilistic seen-URL set backed by a Bloom
// filter, used to skip already harvested pages without holding every URL
// in memory.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// SeenSet records URLs that have already been processed. It is safe for
// concurrent use. Membership answers may be false positives (a URL
// reported seen that never was), never false negatives.
type SeenSet struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewSeenSet creates a SeenSet sized for n expected URLs with the given
// false positive rate.
func NewSeenSet(n uint, fpRate float64) *SeenSet {
	return &SeenSet{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Mark records a URL as seen.
func (s *SeenSet) Mark(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.f.AddString(url)
}

// Seen reports whether the URL may have been marked before.
func (s *SeenSet) Seen(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.TestString(url)
}

// MarkIfNew marks the URL and reports whether it was new. Concurrent
// workers racing on the same URL see at most one true result.
func (s *SeenSet) MarkIfNew(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.f.TestOrAddString(url)
}

// Count returns the approximate number of URLs marked so far.
func (s *SeenSet) Count() uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return uint(s.f.ApproximatedSize())
}
