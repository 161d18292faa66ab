// Package validation wraps the JSON Schema engine behind a single call:
// validate a raw document against a named embedded schema and get back the
// engine's error strings.
package validation

import (
	"embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// Validate checks document against the named schema. A nil, empty slice
// means the document is valid. A non-nil error means the check itself could
// not run (unknown schema, document is not JSON at all).
func Validate(document []byte, schema string) ([]string, error) {
	raw, err := schemaFS.ReadFile("schemas/" + schema + ".schema.json")
	if err != nil {
		return nil, fmt.Errorf("unknown schema %q: %w", schema, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(raw),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return msgs, nil
}
