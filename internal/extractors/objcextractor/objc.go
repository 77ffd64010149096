package objcextractor

import (
	"context"
	"log"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/dejo1307/objcskel/internal/skeleton"
)

// DefaultRootType is the supertype assumed for interfaces declared without one.
const DefaultRootType = "NSObject"

// ObjCExtractor extracts declaration skeletons from Objective-C source using
// line-based regex parsing. Block ownership is decided by line ranges only;
// there is no brace tracking outside instance-variable blocks.
type ObjCExtractor struct {
	rootType string
}

// New creates a new ObjCExtractor. An empty rootType means DefaultRootType.
func New(rootType string) *ObjCExtractor {
	if rootType == "" {
		rootType = DefaultRootType
	}
	return &ObjCExtractor{rootType: rootType}
}

func (e *ObjCExtractor) Name() string {
	return "regex"
}

// Extract classifies src, resolves block ranges and assigns members to blocks.
// It never fails on unfamiliar syntax; unmatched lines are simply skipped.
func (e *ObjCExtractor) Extract(ctx context.Context, path, src string) (*skeleton.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := classify(src)
	blocks := resolveBlocks(src, s.openers, s.closers, e.rootType)
	assignMembers(blocks, s.methods, s.properties)

	for _, b := range blocks {
		if !b.Terminated() {
			log.Printf("[objc-extractor] %s:%d: @%s %s has no @end", path, b.StartLine, b.Keyword, b.Name)
		}
	}
	log.Printf("[objc-extractor] %s: %d blocks, %d methods, %d properties",
		path, len(blocks), len(s.methods), len(s.properties))

	return &skeleton.File{
		Path:       path,
		Blocks:     blocks,
		Methods:    s.methods,
		Properties: s.properties,
	}, nil
}

// IsObjCFile reports whether the path has an Objective-C source or header extension.
func IsObjCFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".h", ".m", ".mm":
		return true
	}
	return false
}

// --- Regex patterns ---

var (
	// Method signatures: "- (void)doThing;" or "+ (instancetype)foo:(int)x {".
	methodRe = regexp.MustCompile(`^\s*([+-])\s*\(([^)]+)\)\s*([^{;]+?)(?:\s*\{|\s*;)`)

	// Property declarations with an optional attribute list.
	propertyRe = regexp.MustCompile(`^\s*@property\s*(\([^)]*\))?\s*([^;]+);`)

	// Block openers, matched against the trimmed line. Type parameters
	// ("@interface Box<T> : NSObject") are only recognized before a
	// supertype; a bare "<...>" after the name is a protocol list.
	categoryRe       = regexp.MustCompile(`^@(interface|implementation)\s+(\w+)\s*\(([^)]*)\)`)
	interfaceRe      = regexp.MustCompile(`^@interface\s+(\w+)(?:(?:\s*<[^>]*>)?\s*:\s*(\w+))?(?:\s*<([^>]+)>)?`)
	implementationRe = regexp.MustCompile(`^@implementation\s+(\w+)`)
	protocolRe       = regexp.MustCompile(`^@protocol\s+(\w+)`)

	// Instance variables: "NSString *_name;", "NSString* _name;", "int count;".
	fieldRe      = regexp.MustCompile(`^(\w+)(?:\s*(\*)\s*|\s+)(\w+)\s*;`)
	visibilityRe = regexp.MustCompile(`^@(?:private|protected|public|package)\b`)
)
