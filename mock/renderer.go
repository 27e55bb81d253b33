// Package mock provides test doubles for blockmark interfaces using function fields.
package mock

import (
	"io"

	"github.com/fwojciec/blockmark"
)

var _ blockmark.Renderer = (*Renderer)(nil)

// Renderer is a test double for blockmark.Renderer.
// Set RenderFn before calling Render.
type Renderer struct {
	RenderFn func(w io.Writer, t blockmark.Token) error
}

// Render delegates to RenderFn.
func (r *Renderer) Render(w io.Writer, t blockmark.Token) error {
	return r.RenderFn(w, t)
}
