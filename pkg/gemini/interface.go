package gemini

import "context"

// Extractor is the slice of the client the event domain depends on.
// Implementations are safe for concurrent use.
type Extractor interface {
	// ExtractFromImage returns the raw model text for a flyer image.
	ExtractFromImage(ctx context.Context, mimeType, imageBase64 string) (string, error)

	// Model returns the model being used
	Model() string
}

var _ Extractor = (*Client)(nil)
