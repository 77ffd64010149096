package objcextractor

import (
	"strings"

	"github.com/dejo1307/objcskel/internal/skeleton"
)

// opener is a block-opener hit produced by the line classifier.
type opener struct {
	kind      string
	keyword   string
	name      string
	supertype string // empty when not written in the source
	protocols []string
	category  string
	line      int // 1-based
	headerEnd int // byte offset in src just past the matched header
}

// scan is the raw output of the line classifier.
type scan struct {
	methods    []skeleton.Method
	properties []skeleton.Property
	openers    []opener
	closers    []int // 1-based lines holding a bare @end, ascending
}

// classify scans src line by line and records every declaration hit.
// Matching is purely lexical: a method-shaped line inside a method body is
// still reported as a method.
func classify(src string) scan {
	var s scan
	offset := 0
	for i, raw := range strings.Split(src, "\n") {
		lineNum := i + 1
		lineStart := offset
		offset += len(raw) + 1

		line := strings.TrimSuffix(raw, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isCommentOrDirective(trimmed) {
			continue
		}

		if trimmed == "@end" {
			s.closers = append(s.closers, lineNum)
			continue
		}

		if m := methodRe.FindStringSubmatch(line); m != nil {
			s.methods = append(s.methods, skeleton.Method{
				Sigil:      m[1],
				ReturnType: strings.TrimSpace(m[2]),
				Signature:  strings.TrimSpace(m[3]),
				Line:       lineNum,
			})
			continue
		}

		if m := propertyRe.FindStringSubmatch(line); m != nil {
			s.properties = append(s.properties, skeleton.Property{
				Attributes:  m[1],
				Declaration: strings.TrimSpace(m[2]),
				Line:        lineNum,
			})
			continue
		}

		if o, ok := matchOpener(trimmed); ok {
			o.line = lineNum
			o.headerEnd = lineStart + strings.Index(line, trimmed) + o.headerEnd
			s.openers = append(s.openers, o)
		}
	}
	return s
}

// isCommentOrDirective reports whether a trimmed line is a comment or a
// preprocessor directive.
func isCommentOrDirective(trimmed string) bool {
	return strings.HasPrefix(trimmed, "//") ||
		strings.HasPrefix(trimmed, "#") ||
		strings.HasPrefix(trimmed, "/*") ||
		strings.HasPrefix(trimmed, "*")
}

// matchOpener recognizes the four block-opener forms on a trimmed line.
// The returned headerEnd is relative to the trimmed line.
func matchOpener(trimmed string) (opener, bool) {
	if !strings.HasPrefix(trimmed, "@") {
		return opener{}, false
	}

	// Category form first: "@interface Foo (Bar)" must not be read as a
	// plain interface without a supertype.
	if m := categoryRe.FindStringSubmatchIndex(trimmed); m != nil {
		return opener{
			kind:      skeleton.KindCategory,
			keyword:   trimmed[m[2]:m[3]],
			name:      trimmed[m[4]:m[5]],
			category:  strings.TrimSpace(trimmed[m[6]:m[7]]),
			headerEnd: m[1],
		}, true
	}

	if m := interfaceRe.FindStringSubmatchIndex(trimmed); m != nil {
		o := opener{
			kind:      skeleton.KindInterface,
			keyword:   skeleton.KindInterface,
			name:      trimmed[m[2]:m[3]],
			headerEnd: m[1],
		}
		if m[4] >= 0 {
			o.supertype = trimmed[m[4]:m[5]]
		}
		if m[6] >= 0 {
			o.protocols = splitProtocols(trimmed[m[6]:m[7]])
		}
		return o, true
	}

	if m := implementationRe.FindStringSubmatchIndex(trimmed); m != nil {
		return opener{
			kind:      skeleton.KindImplementation,
			keyword:   skeleton.KindImplementation,
			name:      trimmed[m[2]:m[3]],
			headerEnd: m[1],
		}, true
	}

	if m := protocolRe.FindStringSubmatchIndex(trimmed); m != nil {
		rest := strings.TrimSpace(trimmed[m[1]:])
		// "@protocol Foo;" and "@protocol A, B;" are forward declarations.
		if strings.HasPrefix(rest, ";") || strings.HasPrefix(rest, ",") {
			return opener{}, false
		}
		return opener{
			kind:      skeleton.KindProtocol,
			keyword:   skeleton.KindProtocol,
			name:      trimmed[m[2]:m[3]],
			headerEnd: m[1],
		}, true
	}

	return opener{}, false
}

// splitProtocols turns "A, B ,C" into [A B C].
func splitProtocols(list string) []string {
	var out []string
	for _, p := range strings.Split(list, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
