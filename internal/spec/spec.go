// Package spec publishes the deck definition contract in the two forms
// callers discover it by: the natural-language specification document and a
// machine-readable JSON Schema.
package spec

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

// Text is the Slides.com Define API specification document.
//
//go:embed spec.md
var Text string

// SchemaJSON returns the canonical JSON encoding of the deck schema. The
// output is identical on every call.
func SchemaJSON() (string, error) {
	b, err := json.Marshal(DeckSchema())
	if err != nil {
		return "", fmt.Errorf("marshal deck schema: %w", err)
	}
	return string(b), nil
}
