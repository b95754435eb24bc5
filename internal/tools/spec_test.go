package tools

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestGetSpecification(t *testing.T) {
	result, _, err := handleGetSpecification(context.Background(), nil, GetSpecificationArgs{})
	if err != nil {
		t.Fatalf("handleGetSpecification failed: %v", err)
	}

	texts := resultTexts(t, result)
	if len(texts) != 2 {
		t.Fatalf("expected spec text and schema, got %d contents", len(texts))
	}
	if !strings.Contains(texts[0], "Slides.com Define API") {
		t.Errorf("first content should be the spec document: %q", texts[0][:60])
	}

	var schema map[string]any
	if err := json.Unmarshal([]byte(texts[1]), &schema); err != nil {
		t.Fatalf("second content should be the JSON schema: %v", err)
	}
}

func TestGetSpecificationIsIdempotent(t *testing.T) {
	first, _, err := handleGetSpecification(context.Background(), nil, GetSpecificationArgs{})
	if err != nil {
		t.Fatalf("handleGetSpecification failed: %v", err)
	}
	second, _, err := handleGetSpecification(context.Background(), nil, GetSpecificationArgs{})
	if err != nil {
		t.Fatalf("handleGetSpecification failed: %v", err)
	}

	a, b := resultTexts(t, first), resultTexts(t, second)
	if len(a) != len(b) {
		t.Fatalf("content count changed between calls: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("content %d differs between calls", i)
		}
	}
}
