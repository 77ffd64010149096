package objcextractor

import (
	"strings"

	"github.com/dejo1307/objcskel/internal/skeleton"
)

// fieldBody returns the text between the opening brace that directly
// follows a block header and the first closing brace after it. Whitespace
// and comments may sit between the header and the brace. Nested braces
// inside the field block are not supported.
func fieldBody(rest string) (string, bool) {
	for {
		rest = strings.TrimLeft(rest, " \t\r\n")
		switch {
		case strings.HasPrefix(rest, "//"):
			nl := strings.IndexByte(rest, '\n')
			if nl < 0 {
				return "", false
			}
			rest = rest[nl+1:]
		case strings.HasPrefix(rest, "/*"):
			end := strings.Index(rest[2:], "*/")
			if end < 0 {
				return "", false
			}
			rest = rest[2+end+2:]
		case strings.HasPrefix(rest, "{"):
			end := strings.IndexByte(rest, '}')
			if end < 0 {
				return "", false
			}
			return rest[1:end], true
		default:
			return "", false
		}
	}
}

// extractFields applies the field pattern to each line of a field body.
func extractFields(body string) []skeleton.Field {
	var fields []skeleton.Field
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isCommentOrDirective(trimmed) {
			continue
		}
		trimmed = strings.TrimSpace(visibilityRe.ReplaceAllString(trimmed, ""))

		m := fieldRe.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		typ := m[1]
		if m[2] != "" {
			typ += " *"
		}
		fields = append(fields, skeleton.Field{Type: typ, Name: m[3]})
	}
	return fields
}

// fieldsFor locates and parses the field block of an opener, if any.
// Protocols never carry instance variables.
func fieldsFor(src string, o opener) []skeleton.Field {
	if o.kind == skeleton.KindProtocol || o.headerEnd > len(src) {
		return nil
	}
	body, ok := fieldBody(src[o.headerEnd:])
	if !ok {
		return nil
	}
	return extractFields(body)
}
