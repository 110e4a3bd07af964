package dict

import (
	"context"
	"strings"
	"sync"
)

// CachedChecker remembers every verdict of the underlying checker for
// the lifetime of the process. Entries are never evicted; the set of
// words a player tries in one sitting stays small.
//
// Errors are not cached, so a word that failed because the network was
// down gets retried on the next submission.
type CachedChecker struct {
	inner Checker

	mu       sync.Mutex
	verdicts map[string]bool
}

// NewCachedChecker wraps inner with a verdict cache.
func NewCachedChecker(inner Checker) *CachedChecker {
	return &CachedChecker{
		inner:    inner,
		verdicts: make(map[string]bool),
	}
}

// Check returns the cached verdict if one exists, otherwise consults
// the underlying checker and caches its answer.
func (c *CachedChecker) Check(ctx context.Context, word string) (bool, error) {
	key := strings.ToLower(word)

	c.mu.Lock()
	verdict, ok := c.verdicts[key]
	c.mu.Unlock()
	if ok {
		return verdict, nil
	}

	verdict, err := c.inner.Check(ctx, word)
	if err != nil {
		return false, err
	}

	c.mu.Lock()
	c.verdicts[key] = verdict
	c.mu.Unlock()
	return verdict, nil
}

// Size returns the number of cached verdicts.
func (c *CachedChecker) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.verdicts)
}
