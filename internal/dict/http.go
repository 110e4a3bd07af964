package dict

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// HTTPChecker asks a dictionary HTTP API whether a word exists.
// A 200 response means yes, a 404 means no. Any other status or a
// transport failure is reported as an error so the caller can fail
// closed.
type HTTPChecker struct {
	endpoint string
	client   *http.Client
}

// NewHTTPChecker builds a checker against the given endpoint, which
// has the word appended to it per lookup.
func NewHTTPChecker(endpoint string, timeout time.Duration) *HTTPChecker {
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}
	return &HTTPChecker{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Check looks the word up. The word is lowercased before the request
// since the API only knows lowercase entries.
func (c *HTTPChecker) Check(ctx context.Context, word string) (bool, error) {
	url := c.endpoint + strings.ToLower(word)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("build dictionary request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Warn("Dictionary lookup failed", "word", word, "error", err)
		return false, fmt.Errorf("dictionary lookup: %w", err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	io.Copy(io.Discard, resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		log.Warn("Dictionary returned unexpected status", "word", word, "status", resp.StatusCode)
		return false, fmt.Errorf("dictionary status %d", resp.StatusCode)
	}
}
