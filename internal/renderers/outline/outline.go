package outline

import (
	"context"
	"fmt"
	"strings"

	"github.com/dejo1307/objcskel/internal/skeleton"
)

// Name is the renderer identifier.
const Name = "outline"

// OutlineRenderer reproduces the declaration structure of a file with all
// method bodies elided. Every emitted declaration is preceded by a comment
// carrying its original line number.
type OutlineRenderer struct {
	header bool
	indent string
}

// New creates an OutlineRenderer. An empty indent defaults to two spaces.
func New(header bool, indent string) *OutlineRenderer {
	if indent == "" {
		indent = "  "
	}
	return &OutlineRenderer{header: header, indent: indent}
}

func (r *OutlineRenderer) Name() string {
	return Name
}

// Render emits blocks in source order. A degenerate block renders as its
// header immediately followed by @end, so the output is never unterminated.
func (r *OutlineRenderer) Render(ctx context.Context, file *skeleton.File) (skeleton.Artifact, error) {
	var sb strings.Builder

	if r.header {
		sb.WriteString("// Objective-C Structure Summary\n")
		sb.WriteString(fmt.Sprintf("// File: %s\n", file.Path))
		sb.WriteString("// " + strings.Repeat("─", 41) + "\n\n")
	}

	for _, b := range file.Blocks {
		r.renderBlock(&sb, b)
	}

	return skeleton.Artifact{
		Name:    Name,
		Content: []byte(sb.String()),
		Type:    "text/x-objective-c",
	}, nil
}

func (r *OutlineRenderer) renderBlock(sb *strings.Builder, b skeleton.Block) {
	sb.WriteString(fmt.Sprintf("// Line: %d\n", b.StartLine))
	sb.WriteString(HeaderLine(b))

	if len(b.Fields) > 0 {
		sb.WriteString(" {\n")
		for _, f := range b.Fields {
			sb.WriteString(r.indent + FieldLine(f) + "\n")
		}
		sb.WriteString("}")
	}
	sb.WriteString("\n")

	for _, p := range b.Properties {
		sb.WriteString(fmt.Sprintf("%s// Line: %d\n", r.indent, p.Line))
		sb.WriteString(r.indent + PropertyLine(p) + "\n")
	}
	for _, m := range b.Methods {
		sb.WriteString(fmt.Sprintf("%s// Line: %d\n", r.indent, m.Line))
		sb.WriteString(r.indent + MethodLine(m) + "\n")
	}

	sb.WriteString("@end\n\n")
}

// HeaderLine reconstructs the opener line of a block.
func HeaderLine(b skeleton.Block) string {
	switch b.Kind {
	case skeleton.KindInterface:
		line := fmt.Sprintf("@interface %s : %s", b.Name, b.Supertype)
		if len(b.Protocols) > 0 {
			line += " <" + strings.Join(b.Protocols, ", ") + ">"
		}
		return line
	case skeleton.KindCategory:
		category := b.Category
		if category == "" {
			category = "anonymous"
		}
		return fmt.Sprintf("@%s %s (Category: %s)", b.Keyword, b.Name, category)
	default:
		return fmt.Sprintf("@%s %s", b.Kind, b.Name)
	}
}

// PropertyLine renders a property declaration.
func PropertyLine(p skeleton.Property) string {
	if p.Attributes == "" {
		return fmt.Sprintf("@property %s;", p.Declaration)
	}
	return fmt.Sprintf("@property %s %s;", p.Attributes, p.Declaration)
}

// MethodLine renders a method signature as a declaration.
func MethodLine(m skeleton.Method) string {
	return fmt.Sprintf("%s (%s)%s;", m.Sigil, m.ReturnType, m.Signature)
}

// FieldLine renders an instance variable.
func FieldLine(f skeleton.Field) string {
	if strings.HasSuffix(f.Type, "*") {
		return f.Type + f.Name + ";"
	}
	return f.Type + " " + f.Name + ";"
}
