package render

import (
	"context"

	"github.com/goliatone/go-signup/pkg/model"
)

// Renderer converts the current sign-up form state into a byte representation
// (HTML for browsers, a serialized submission for terminals).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, state model.FormState, options RenderOptions) ([]byte, error)
}
