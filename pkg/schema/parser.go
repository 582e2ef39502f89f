package schema

import (
	"context"
	"path/filepath"
	"strings"
)

// Parser decodes schema documents of one file format.
type Parser interface {
	// Parse decodes content into a Document.
	Parse(ctx context.Context, content []byte) (*Document, error)

	// SupportsFileExtension reports whether the parser handles ext.
	// The extension may or may not include a leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil when
// the format is not supported.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}
