package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/constraints/pkg/validator"
)

var ErrInvalidDocument = errors.New("invalid document")

// readDocument reads the document to validate from path, or from stdin when
// path is empty or "-". JSON files are decoded with encoding/json; everything
// else, stdin included, goes through the YAML decoder, which also accepts JSON.
func readDocument(path string, stdin io.Reader) (validator.Map, error) {
	var (
		content []byte
		err     error
	)
	if path == "" || path == "-" {
		content, err = io.ReadAll(stdin)
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	var doc map[string]any
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(content, &doc)
	} else {
		err = yaml.Unmarshal(content, &doc)
	}
	if err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: document is empty or not an object", ErrInvalidDocument)
	}
	return validator.Map(doc), nil
}
