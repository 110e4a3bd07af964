// Package dict answers the single question "is this a real word".
//
// The game core never calls a checker directly; the platform layer
// resolves submissions through one and feeds the verdict back in.
package dict

import (
	"context"
	"time"
)

// Checker reports whether a word exists in the dictionary.
// An error means the answer could not be obtained; callers treat
// that the same as "not a word".
type Checker interface {
	Check(ctx context.Context, word string) (bool, error)
}

// NewChecker builds the standard checker stack: the HTTP dictionary
// behind a verdict cache, or the embedded word list when offline.
func NewChecker(endpoint string, timeout time.Duration, offline bool) Checker {
	if offline || endpoint == "" {
		return NewCachedChecker(NewEmbeddedWordList())
	}
	return NewCachedChecker(NewHTTPChecker(endpoint, timeout))
}

// CheckerFunc adapts a plain function to the Checker interface.
type CheckerFunc func(ctx context.Context, word string) (bool, error)

// Check calls f.
func (f CheckerFunc) Check(ctx context.Context, word string) (bool, error) {
	return f(ctx, word)
}
