// Package bloom provides a probabilistic seen-set for crawl URL
// deduplication.
package bloom

import (
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// SeenSet tracks visited URLs during a recursive page load. URL fragments
// are stripped before membership checks, so URLs that differ only by
// fragment count as a single page. False positives are possible (a page
// may be skipped that was never visited); false negatives are not, so no
// page is ever fetched twice. Safe for concurrent use.
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

// MarkSeen records the URL and reports whether it was new. A false return
// means the URL was already seen (or collided) and should be skipped.
func (s *SeenSet) MarkSeen(url string) bool {
	url = canonical(url)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.f.TestString(url) {
		return false
	}
	s.f.AddString(url)
	return true
}

// Seen returns true if the URL might have been marked already.
func (s *SeenSet) Seen(url string) bool {
	url = canonical(url)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.TestString(url)
}

// EstimatedCount returns the approximate number of URLs marked.
func (s *SeenSet) EstimatedCount() uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return uint(s.f.ApproximatedSize())
}

func canonical(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		url = url[:idx]
	}
	return url
}
