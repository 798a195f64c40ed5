package storage

import "context"

// PhotoStore persists a captured label photo and yields a publicly
// resolvable URL for it. Implementations write each photo exactly once
// under a generated key; no retries.
type PhotoStore interface {
	Upload(ctx context.Context, data []byte, mimeType string) (string, error)
}
