package symbolmap

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"

	"github.com/dejo1307/objcskel/internal/skeleton"
)

// Name is the renderer identifier.
const Name = "symbol_map"

// SymbolMapRenderer flattens a skeleton into a line-ordered JSON symbol list.
type SymbolMapRenderer struct {
	includeProperties bool
	indent            string
}

// New creates a SymbolMapRenderer. Properties are emitted as symbols only
// when includeProperties is set.
func New(includeProperties bool, indent string) *SymbolMapRenderer {
	if indent == "" {
		indent = "  "
	}
	return &SymbolMapRenderer{includeProperties: includeProperties, indent: indent}
}

func (r *SymbolMapRenderer) Name() string {
	return Name
}

// Render encodes Build(file) as indented JSON.
func (r *SymbolMapRenderer) Render(ctx context.Context, file *skeleton.File) (skeleton.Artifact, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", r.indent)
	if err := enc.Encode(Build(file, r.includeProperties)); err != nil {
		return skeleton.Artifact{}, fmt.Errorf("encoding symbol map for %s: %w", file.Path, err)
	}
	return skeleton.Artifact{
		Name:    Name,
		Content: buf.Bytes(),
		Type:    "application/json",
	}, nil
}

// Build returns every block and method of file, plus properties when
// requested, sorted by line. Symbols on the same line keep discovery order:
// interface-keyword blocks, protocols, implementation-keyword blocks,
// properties, methods. Instance variables are never emitted.
func Build(file *skeleton.File, includeProperties bool) *skeleton.SymbolMap {
	symbols := make([]skeleton.Symbol, 0, len(file.Blocks)+len(file.Methods)+len(file.Properties))

	for _, keyword := range []string{skeleton.KindInterface, skeleton.KindProtocol, skeleton.KindImplementation} {
		for _, b := range file.Blocks {
			if blockKeyword(b) != keyword {
				continue
			}
			symbols = append(symbols, skeleton.Symbol{Name: blockName(b), Type: b.Kind, Line: b.StartLine})
		}
	}

	if includeProperties {
		for _, p := range file.Properties {
			symbols = append(symbols, skeleton.Symbol{Name: PropertyName(p), Type: skeleton.SymbolProperty, Line: p.Line})
		}
	}

	for _, m := range file.Methods {
		symbols = append(symbols, skeleton.Symbol{Name: m.Sigil + m.Signature, Type: skeleton.SymbolMethod, Line: m.Line})
	}

	sort.SliceStable(symbols, func(i, j int) bool {
		return symbols[i].Line < symbols[j].Line
	})

	return &skeleton.SymbolMap{FilePath: file.Path, Symbols: symbols}
}

// blockKeyword returns the opener keyword a block was discovered under.
func blockKeyword(b skeleton.Block) string {
	if b.Kind == skeleton.KindCategory {
		return b.Keyword
	}
	return b.Kind
}

func blockName(b skeleton.Block) string {
	if b.Kind == skeleton.KindCategory {
		return fmt.Sprintf("%s (%s)", b.Name, b.Category)
	}
	return b.Name
}

var (
	blockPropertyRe = regexp.MustCompile(`\(\s*\^\s*(\w+)\s*\)`)
	lastIdentRe     = regexp.MustCompile(`(\w+)\W*$`)
)

// PropertyName extracts the declared identifier from a property declaration,
// e.g. "name" from "NSString *name" and "handler" from "void (^handler)(int)".
func PropertyName(p skeleton.Property) string {
	if m := blockPropertyRe.FindStringSubmatch(p.Declaration); m != nil {
		return m[1]
	}
	if m := lastIdentRe.FindStringSubmatch(p.Declaration); m != nil {
		return m[1]
	}
	return p.Declaration
}
