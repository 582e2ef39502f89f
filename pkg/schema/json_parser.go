package schema

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// JSONParser implements the Parser interface for JSON schema files.
type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse decodes a JSON document. Unknown fields are rejected so typos in
// rule keys do not pass silently.
func (p *JSONParser) Parse(ctx context.Context, content []byte) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	if len(doc.Targets) == 0 {
		return nil, ErrEmptyDocument
	}
	return &doc, nil
}

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}
