package cli

import (
	"context"
	"errors"

	"github.com/dmitrymomot/constraints/pkg/schema"
	"github.com/dmitrymomot/constraints/pkg/validator"
)

var ErrNoSchema = errors.New("no schema file: pass --schema or set CONSTRAINTS_SCHEMA")

// loadRegistry reads the configured schema file and builds its registry.
func (a *app) loadRegistry(ctx context.Context) (*validator.Registry, error) {
	if a.cfg.SchemaPath == "" {
		return nil, ErrNoSchema
	}
	doc, err := schema.NewLoader(schema.WithLogger(a.log)).LoadFile(ctx, a.cfg.SchemaPath)
	if err != nil {
		return nil, err
	}
	return doc.Build()
}
