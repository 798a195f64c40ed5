package extraction

import (
	"context"
	"encoding/json"
)

// Result carries the model's textual output plus the complete upstream
// payload as an opaque blob for audit. Text may be empty; the normalizer
// treats that as an extraction miss, not an error.
type Result struct {
	Text string
	Raw  json.RawMessage
}

// LabelExtractor invokes a vision model against a label photo. One call
// per request, no retries, no fallback model.
type LabelExtractor interface {
	Extract(ctx context.Context, image []byte, mimeType string) (*Result, error)
}
