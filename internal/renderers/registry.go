package renderers

import (
	"context"

	"github.com/dejo1307/objcskel/internal/skeleton"
)

// Renderer produces an output document from an extracted skeleton.
type Renderer interface {
	// Name returns the renderer identifier (e.g. "outline").
	Name() string
	// Render projects the skeleton into a document. It must not modify file.
	Render(ctx context.Context, file *skeleton.File) (skeleton.Artifact, error)
}

// Registry holds registered renderers.
type Registry struct {
	renderers []Renderer
}

// NewRegistry creates a new renderer registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a renderer to the registry.
func (r *Registry) Register(rnd Renderer) {
	r.renderers = append(r.renderers, rnd)
}

// Get returns the renderer with the given name, or nil if not found.
func (r *Registry) Get(name string) Renderer {
	for _, rnd := range r.renderers {
		if rnd.Name() == name {
			return rnd
		}
	}
	return nil
}
