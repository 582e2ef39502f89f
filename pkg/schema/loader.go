package schema

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrymomot/constraints/pkg/logger"
)

// Loader reads schema files from disk.
type Loader struct {
	logger *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets the logger used to report loaded files. Nil is ignored.
func WithLogger(l *slog.Logger) LoaderOption {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// NewLoader creates a Loader that logs nowhere unless WithLogger is given.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{logger: logger.Discard()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFile reads and parses the schema file at path, choosing the parser by
// file extension.
func (l *Loader) LoadFile(ctx context.Context, path string) (*Document, error) {
	parser := NewParserForFile(path)
	if parser == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	start := time.Now()
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadingFile, err)
	}

	doc, err := parser.Parse(ctx, content)
	if err != nil {
		l.logger.ErrorContext(ctx, "failed to load schema", logger.Schema(path), logger.Error(err))
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	l.logger.DebugContext(ctx, "schema loaded",
		logger.Schema(path),
		slog.Int("targets", len(doc.Targets)),
		slog.Int("rules", doc.RuleCount()),
		logger.Duration(time.Since(start)),
	)
	return doc, nil
}

// Load parses a schema read from r with the given parser.
func (l *Loader) Load(ctx context.Context, r io.Reader, parser Parser) (*Document, error) {
	if parser == nil {
		return nil, ErrUnsupportedFormat
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrReadingFile, err)
	}
	return parser.Parse(ctx, content)
}

// LoadFile reads a schema file without logging.
func LoadFile(ctx context.Context, path string) (*Document, error) {
	return NewLoader().LoadFile(ctx, path)
}
