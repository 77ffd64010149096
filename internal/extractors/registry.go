package extractors

import (
	"context"

	"github.com/dejo1307/objcskel/internal/skeleton"
)

// Extractor turns Objective-C source text into a declaration skeleton.
type Extractor interface {
	// Name returns the extractor identifier (e.g. "regex").
	Name() string
	// Extract scans already-decoded source text. path is recorded on the
	// result and is never opened.
	Extract(ctx context.Context, path, src string) (*skeleton.File, error)
}

// Registry holds registered extractors.
type Registry struct {
	extractors []Extractor
}

// NewRegistry creates a new extractor registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds an extractor to the registry.
func (r *Registry) Register(e Extractor) {
	r.extractors = append(r.extractors, e)
}

// Get returns the extractor with the given name, or nil if not found.
func (r *Registry) Get(name string) Extractor {
	for _, e := range r.extractors {
		if e.Name() == name {
			return e
		}
	}
	return nil
}

// Select returns the extractor with the given name, falling back to the
// first registered one when the name is empty or unknown.
func (r *Registry) Select(name string) Extractor {
	if e := r.Get(name); e != nil {
		return e
	}
	if len(r.extractors) == 0 {
		return nil
	}
	return r.extractors[0]
}
