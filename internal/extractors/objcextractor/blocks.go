package objcextractor

import (
	"sort"

	"github.com/dejo1307/objcskel/internal/skeleton"
)

// resolveBlocks turns openers into blocks. Each block ends at the first
// bare @end after its opener, regardless of nesting. Without one the block
// is degenerate: EndLine == StartLine and it can never contain anything.
func resolveBlocks(src string, openers []opener, closers []int, rootType string) []skeleton.Block {
	blocks := make([]skeleton.Block, 0, len(openers))
	for _, o := range openers {
		end := o.line
		if i := sort.SearchInts(closers, o.line+1); i < len(closers) {
			end = closers[i]
		}

		b := skeleton.Block{
			Kind:      o.kind,
			Keyword:   o.keyword,
			Name:      o.name,
			Protocols: o.protocols,
			Category:  o.category,
			StartLine: o.line,
			EndLine:   end,
			Fields:    fieldsFor(src, o),
		}
		if o.kind == skeleton.KindInterface {
			b.Supertype = o.supertype
			if b.Supertype == "" {
				b.Supertype = rootType
			}
		}
		blocks = append(blocks, b)
	}
	return blocks
}

// owner returns the index of the block that owns a declaration on line, or
// -1. Ranges may overlap on malformed input (two openers before one @end);
// blocks are visited in source order and the last containing block wins,
// so the opener nearest above the declaration owns it.
func owner(blocks []skeleton.Block, line int) int {
	idx := -1
	for i := range blocks {
		if blocks[i].Contains(line) {
			idx = i
		}
	}
	return idx
}

// assignMembers attaches each method and property to at most one block.
func assignMembers(blocks []skeleton.Block, methods []skeleton.Method, properties []skeleton.Property) {
	for _, p := range properties {
		if i := owner(blocks, p.Line); i >= 0 {
			blocks[i].Properties = append(blocks[i].Properties, p)
		}
	}
	for _, m := range methods {
		if i := owner(blocks, m.Line); i >= 0 {
			blocks[i].Methods = append(blocks[i].Methods, m)
		}
	}
}
