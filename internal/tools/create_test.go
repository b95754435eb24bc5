package tools

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/epicweb-dev/slides-mcp/internal/token"
)

func testBase(t *testing.T) *url.URL {
	t.Helper()
	u, err := url.Parse("https://slides-mcp.example.com")
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func resultTexts(t *testing.T, result *mcp.CallToolResult) []string {
	t.Helper()
	if result == nil {
		t.Fatal("expected a tool result")
	}
	texts := make([]string, 0, len(result.Content))
	for _, c := range result.Content {
		tc, ok := c.(*mcp.TextContent)
		if !ok {
			t.Fatalf("expected text content, got %T", c)
		}
		texts = append(texts, tc.Text)
	}
	return texts
}

func TestCreatePresentationValidDeck(t *testing.T) {
	args := CreatePresentationArgs{Deck: map[string]any{
		"title":  "My Deck",
		"slides": []any{map[string]any{"html": "<h1>Slide 1</h1>"}},
	}}

	result, _, err := handleCreatePresentation(args, testBase(t))
	if err != nil {
		t.Fatalf("handleCreatePresentation failed: %v", err)
	}

	texts := resultTexts(t, result)
	if len(texts) != 2 {
		t.Fatalf("expected instructions and a URL, got %d contents", len(texts))
	}
	if !strings.Contains(texts[0], "form") {
		t.Errorf("instructions should describe the hand-off form: %q", texts[0])
	}

	u, err := url.Parse(texts[1])
	if err != nil {
		t.Fatalf("second content is not a URL: %v", err)
	}
	if u.Host != "slides-mcp.example.com" || u.Path != HandoffPath {
		t.Errorf("unexpected hand-off URL: %s", u)
	}

	decoded, err := token.Decode(u.Query().Get("deck"))
	if err != nil {
		t.Fatalf("deck parameter does not decode: %v", err)
	}
	var round map[string]any
	if err := json.Unmarshal([]byte(decoded), &round); err != nil {
		t.Fatalf("decoded deck is not JSON: %v", err)
	}
	if round["title"] != "My Deck" {
		t.Errorf("title = %v, want My Deck", round["title"])
	}
	slides := round["slides"].([]any)
	first := slides[0].(map[string]any)
	if first["html"] != "<h1>Slide 1</h1>" {
		t.Errorf("first slide html = %v", first["html"])
	}
	// Normalization materialized the canvas defaults.
	if round["width"].(float64) != 960 {
		t.Errorf("width = %v, want 960", round["width"])
	}
}

func TestCreatePresentationKeepsBasePathPrefix(t *testing.T) {
	base, err := url.Parse("https://proxy.example.com/slides")
	if err != nil {
		t.Fatal(err)
	}
	args := CreatePresentationArgs{Deck: map[string]any{
		"title":  "Mounted",
		"slides": []any{map[string]any{"markdown": "# hi"}},
	}}

	result, _, err := handleCreatePresentation(args, base)
	if err != nil {
		t.Fatalf("handleCreatePresentation failed: %v", err)
	}

	texts := resultTexts(t, result)
	u, err := url.Parse(texts[1])
	if err != nil {
		t.Fatalf("second content is not a URL: %v", err)
	}
	if u.Path != "/slides"+HandoffPath {
		t.Errorf("hand-off path = %q, want %q", u.Path, "/slides"+HandoffPath)
	}
}

func TestCreatePresentationInvalidDeck(t *testing.T) {
	args := CreatePresentationArgs{Deck: map[string]any{
		"slides": []any{},
	}}

	result, _, err := handleCreatePresentation(args, testBase(t))
	if err != nil {
		t.Fatalf("validation failures should be reported, not raised: %v", err)
	}

	texts := resultTexts(t, result)
	if len(texts) != 1 {
		t.Fatalf("expected a single report, got %d contents", len(texts))
	}
	if !strings.Contains(texts[0], "title") {
		t.Errorf("report should name the missing title: %q", texts[0])
	}
}

func TestCreatePresentationWithoutBaseURL(t *testing.T) {
	args := CreatePresentationArgs{Deck: map[string]any{
		"title":  "My Deck",
		"slides": []any{map[string]any{"html": "<h1>ok</h1>"}},
	}}

	_, _, err := handleCreatePresentation(args, nil)
	if err == nil {
		t.Fatal("a missing base URL is a deployment bug and should fail the call")
	}
	if !strings.Contains(err.Error(), "base URL") {
		t.Errorf("error should point at the base URL configuration: %v", err)
	}
}
