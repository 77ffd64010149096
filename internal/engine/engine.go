package engine

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/dejo1307/objcskel/internal/config"
	"github.com/dejo1307/objcskel/internal/extractors"
	"github.com/dejo1307/objcskel/internal/extractors/objcextractor"
	"github.com/dejo1307/objcskel/internal/renderers"
	"github.com/dejo1307/objcskel/internal/renderers/outline"
	"github.com/dejo1307/objcskel/internal/renderers/symbolmap"
	"github.com/dejo1307/objcskel/internal/skeleton"
)

// Engine orchestrates the summarize pipeline: read -> decode -> extract -> render.
// It holds no per-file state; every call works on its own copy of the source.
type Engine struct {
	cfg        *config.Config
	extractors *extractors.Registry
	renderers  *renderers.Registry
}

// New creates a new Engine with the given config.
// Extractors and renderers must be registered after creation.
func New(cfg *config.Config) (*Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("engine: nil config")
	}
	return &Engine{
		cfg:        cfg,
		extractors: extractors.NewRegistry(),
		renderers:  renderers.NewRegistry(),
	}, nil
}

// NewStandard creates an Engine with the regex extractor and the outline and
// symbol map renderers registered from cfg.
func NewStandard(cfg *config.Config) (*Engine, error) {
	eng, err := New(cfg)
	if err != nil {
		return nil, err
	}
	eng.RegisterExtractor(objcextractor.New(cfg.RootType))
	eng.RegisterRenderer(outline.New(cfg.Output.Header, cfg.Output.Indent))
	eng.RegisterRenderer(symbolmap.New(cfg.Map.IncludeProperties, cfg.Map.Indent))
	return eng, nil
}

// RegisterExtractor adds an extractor to the engine.
func (e *Engine) RegisterExtractor(ext extractors.Extractor) {
	e.extractors.Register(ext)
}

// RegisterRenderer adds a renderer to the engine.
func (e *Engine) RegisterRenderer(rnd renderers.Renderer) {
	e.renderers.Register(rnd)
}

// Decode converts raw file bytes to text, replacing invalid UTF-8 sequences
// with U+FFFD and dropping a leading byte-order mark. It never fails.
func Decode(data []byte) string {
	return strings.TrimPrefix(strings.ToValidUTF8(string(data), "\uFFFD"), "\uFEFF")
}

// Load reads path fully and extracts its skeleton. With allowMissing set, a
// nonexistent file yields an empty skeleton instead of an error.
func (e *Engine) Load(ctx context.Context, path string, allowMissing bool) (*skeleton.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if allowMissing && errors.Is(err, fs.ErrNotExist) {
			log.Printf("[engine] %s not found, using empty skeleton", path)
			return &skeleton.File{Path: path}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if !objcextractor.IsObjCFile(path) {
		log.Printf("[engine] %s does not look like Objective-C, scanning anyway", path)
	}
	return e.Extract(ctx, path, data)
}

// Extract runs the configured extractor over already-read file content.
func (e *Engine) Extract(ctx context.Context, path string, data []byte) (*skeleton.File, error) {
	ext := e.extractors.Select(e.cfg.Extractor)
	if ext == nil {
		return nil, fmt.Errorf("no extractor registered")
	}
	if ext.Name() != e.cfg.Extractor {
		log.Printf("[engine] extractor %q not registered, using %s", e.cfg.Extractor, ext.Name())
	}

	file, err := ext.Extract(ctx, path, Decode(data))
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", path, err)
	}
	return file, nil
}

// Render runs the named renderer over file.
func (e *Engine) Render(ctx context.Context, name string, file *skeleton.File) (skeleton.Artifact, error) {
	rnd := e.renderers.Get(name)
	if rnd == nil {
		return skeleton.Artifact{}, fmt.Errorf("renderer %q not registered", name)
	}
	return e.render(ctx, rnd, file)
}

func (e *Engine) render(ctx context.Context, rnd renderers.Renderer, file *skeleton.File) (skeleton.Artifact, error) {
	a, err := rnd.Render(ctx, file)
	if err != nil {
		return skeleton.Artifact{}, fmt.Errorf("rendering %s: %w", rnd.Name(), err)
	}
	log.Printf("[engine] rendered %s for %s (%d bytes)", rnd.Name(), file.Path, len(a.Content))
	return a, nil
}

// Outline returns the outline document for path. A missing file is an error
// wrapping fs.ErrNotExist.
func (e *Engine) Outline(ctx context.Context, path string) ([]byte, error) {
	file, err := e.Load(ctx, path, false)
	if err != nil {
		return nil, err
	}
	a, err := e.Render(ctx, outline.Name, file)
	if err != nil {
		return nil, err
	}
	return a.Content, nil
}

// SymbolMap returns the symbol map document for path. A missing file is not
// an error: it yields a map with the path and no symbols.
func (e *Engine) SymbolMap(ctx context.Context, path string) ([]byte, error) {
	file, err := e.Load(ctx, path, true)
	if err != nil {
		return nil, err
	}
	a, err := e.Render(ctx, symbolmap.Name, file)
	if err != nil {
		return nil, err
	}
	return a.Content, nil
}

// SymbolMapWithProperties is SymbolMap with map.include_properties replaced
// by includeProperties for this call only.
func (e *Engine) SymbolMapWithProperties(ctx context.Context, path string, includeProperties bool) ([]byte, error) {
	file, err := e.Load(ctx, path, true)
	if err != nil {
		return nil, err
	}
	a, err := e.render(ctx, symbolmap.New(includeProperties, e.cfg.Map.Indent), file)
	if err != nil {
		return nil, err
	}
	return a.Content, nil
}
