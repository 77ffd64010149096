package skeleton

// Method is a method signature found on a single source line.
type Method struct {
	Sigil      string `json:"sigil"`       // "-" for instance methods, "+" for class methods
	ReturnType string `json:"return_type"` // text inside the leading parentheses
	Signature  string `json:"signature"`   // selector and parameters, unparsed
	Line       int    `json:"line"`
}

// Property is an @property declaration.
type Property struct {
	Attributes  string `json:"attributes,omitempty"` // e.g. "(nonatomic, strong)", empty when absent
	Declaration string `json:"declaration"`          // e.g. "NSString *name"
	Line        int    `json:"line"`
}

// Field is an instance variable declared in the brace block following a block opener.
type Field struct {
	Type string `json:"type"` // e.g. "NSString *" or "int"
	Name string `json:"name"`
}

// Block kind constants.
const (
	KindInterface      = "interface"
	KindImplementation = "implementation"
	KindProtocol       = "protocol"
	KindCategory       = "category"
)

// Symbol kind constants used only by the symbol map.
const (
	SymbolMethod   = "method"
	SymbolProperty = "property"
)

// Block is a top-level declaration region delimited by an opener and @end.
type Block struct {
	Kind      string   `json:"kind"`
	Keyword   string   `json:"keyword"` // "interface" or "implementation" for categories, otherwise equal to Kind
	Name      string   `json:"name"`
	Supertype string   `json:"supertype,omitempty"`
	Protocols []string `json:"protocols,omitempty"`
	Category  string   `json:"category,omitempty"`
	StartLine int      `json:"start_line"`
	EndLine   int      `json:"end_line"` // equals StartLine when no @end was found

	Fields     []Field    `json:"fields,omitempty"`
	Properties []Property `json:"properties,omitempty"`
	Methods    []Method   `json:"methods,omitempty"`
}

// Terminated reports whether a closer was found for the block.
func (b Block) Terminated() bool {
	return b.EndLine > b.StartLine
}

// Contains reports whether line lies strictly inside the block.
func (b Block) Contains(line int) bool {
	return b.StartLine < line && line < b.EndLine
}

// File is the extracted skeleton of one source file.
type File struct {
	Path       string     `json:"path"`
	Blocks     []Block    `json:"blocks"`
	Methods    []Method   `json:"methods"`
	Properties []Property `json:"properties"`
}

// Symbol is one entry of the flattened symbol map.
type Symbol struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Line int    `json:"line"`
}

// SymbolMap is the map-mode document.
type SymbolMap struct {
	FilePath string   `json:"filePath"`
	Symbols  []Symbol `json:"symbols"`
}

// Artifact represents a rendered output document.
type Artifact struct {
	Name    string `json:"name"` // e.g. "outline", "symbol_map"
	Content []byte `json:"-"`
	Type    string `json:"type"` // MIME type hint
}
