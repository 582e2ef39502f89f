package schema

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported schema file format")
	ErrReadingFile       = errors.New("failed to read schema file")
	ErrFailedToParseJSON = errors.New("failed to parse JSON schema")
	ErrFailedToParseYAML = errors.New("failed to parse YAML schema")
	ErrParsingCancelled  = errors.New("schema parsing cancelled")
	ErrEmptyDocument     = errors.New("schema document declares no targets")
	ErrInvalidSchema     = errors.New("invalid schema")
)
