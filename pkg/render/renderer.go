package render

import "context"

// Renderer converts a Page view model into a byte representation (HTML,
// plain text, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, page Page) ([]byte, error)
}
