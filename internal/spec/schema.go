package spec

import (
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/epicweb-dev/slides-mcp/internal/deck"
)

// DeckSchema builds the JSON Schema describing a deck document. Objects are
// open: properties beyond the documented set are allowed everywhere and
// passed through to slides.com untouched. Every subschema is a fresh value;
// Resolve requires the document to form a tree, so no *Schema may appear in
// two places.
func DeckSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Schema:      "https://json-schema.org/draft/2020-12/schema",
		Type:        "object",
		Description: "A slides.com deck definition.",
		Required:    []string{"title", "slides"},
		Properties: map[string]*jsonschema.Schema{
			"title":               {Type: "string", Description: "The title of the presentation."},
			"description":         {Type: "string", Description: "Short description of the presentation."},
			"width":               {Type: "integer", Description: "Presentation width in pixels (default: 960)."},
			"height":              {Type: "integer", Description: "Presentation height in pixels (default: 700)."},
			"visibility":          enum(deck.Visibilities, "Who can see the deck."),
			"auto-slide-interval": {Type: "integer", Description: "Auto-slide interval in ms (default: 0 = no autosliding)."},
			"slide-number":        {Type: "boolean", Description: "Show slide numbers (default: false)."},
			"loop":                {Type: "boolean", Description: "Loop from last to first slide (default: false)."},
			"css":                 {Type: "string", Description: "Additional CSS (Pro/Team only)."},
			"theme-id":            {Type: "string", Description: "ID of a custom theme (Team only)."},
			"theme-color":         enum(deck.ThemeColors, "Presentation color scheme."),
			"theme-font":          enum(deck.ThemeFonts, "Presentation font."),
			"transition":          enum(deck.Transitions, "Slide transition style."),
			"slides": {
				Type:        "array",
				Description: "Array of slide objects, or nested arrays of slide objects for vertical stacks.",
				Items: &jsonschema.Schema{
					AnyOf: []*jsonschema.Schema{
						slideSchema(),
						{Type: "array", Description: "A vertical stack of slides.", Items: slideSchema()},
					},
				},
			},
		},
	}
}

func slideSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "object",
		Description: "One presentation page.",
		Properties: map[string]*jsonschema.Schema{
			"id":               {Type: "string", Description: "Unique identifier (alphanumeric, dashes, underscores)."},
			"background-color": {Type: "string", Description: "CSS color value for the background."},
			"background-image": {Type: "string", Description: "URL to a background image (JPG, PNG, GIF, SVG)."},
			"background-size":  enum(deck.BackgroundSizes, "Background scaling mode (default: cover)."),
			"notes":            {Type: "string", Description: "Speaker notes (max 10,000 chars)."},
			"html":             {Type: "string", Description: "Custom HTML content for the slide."},
			"markdown":         {Type: "string", Description: "Markdown content for the slide."},
			"blocks": {
				Type:        "array",
				Description: "Content blocks for editor-friendly slides.",
				Items:       blockSchema(),
			},
		},
	}
}

// commonBlockProps returns the shared block attributes, built fresh per
// variant so no subschema value is shared between branches.
func commonBlockProps() map[string]*jsonschema.Schema {
	return map[string]*jsonschema.Schema{
		"type":               enum(deck.BlockTypes, "The block kind."),
		"x":                  {Type: "integer", Description: "Horizontal position in px."},
		"y":                  {Type: "integer", Description: "Vertical position in px."},
		"width":              {Type: "integer", Description: "Width in px."},
		"height":             {Type: "integer", Description: "Height in px."},
		"class":              {Type: "string", Description: "CSS class name."},
		"data":               {Type: "object", Description: "Key-value pairs for data attributes."},
		"animation-type":     enum(deck.AnimationTypes, "Entrance/exit animation."),
		"animation-trigger":  enum(deck.AnimationTriggers, "Event that starts the animation."),
		"animation-duration": {Type: "number", Description: "Animation duration in seconds."},
		"animation-delay":    {Type: "number", Description: "Animation delay in seconds."},
	}
}

func blockSchema() *jsonschema.Schema {
	variant := func(required []string, extra map[string]*jsonschema.Schema) *jsonschema.Schema {
		props := commonBlockProps()
		for k, v := range extra {
			props[k] = v
		}
		return &jsonschema.Schema{Type: "object", Required: required, Properties: props}
	}

	return &jsonschema.Schema{
		AnyOf: []*jsonschema.Schema{
			variant([]string{"type", "value"}, map[string]*jsonschema.Schema{
				"value":     {Type: "string", Description: "Text content."},
				"format":    enum(deck.TextFormats, "Text format."),
				"align":     enum(deck.TextAlignments, "Text alignment."),
				"padding":   {Type: "integer", Description: "Padding in px."},
				"color":     {Type: "string", Description: "Text color (CSS format)."},
				"font-size": {Type: "string", Description: "Font size as percent, e.g. 150%."},
			}),
			variant([]string{"type", "value"}, map[string]*jsonschema.Schema{
				"value": {Type: "string", Description: "Image URL (JPG, PNG, GIF, SVG)."},
			}),
			variant([]string{"type", "value"}, map[string]*jsonschema.Schema{
				"value": {Type: "string", Description: "HTTPS URL to embed."},
			}),
			variant([]string{"type", "value"}, map[string]*jsonschema.Schema{
				"value":        {Type: "string", Description: "Source code."},
				"language":     {Type: "string", Description: "Language tag for highlighting."},
				"word-wrap":    {Type: "boolean", Description: "Wrap long lines."},
				"line-numbers": {Types: []string{"boolean", "string"}, Description: "Show line numbers, or the lines to highlight, e.g. \"3,8-10\"."},
				"theme":        enum(deck.CodeThemes, "Syntax highlighting theme."),
			}),
			variant([]string{"type"}, map[string]*jsonschema.Schema{
				"data": {
					Type:        "array",
					Description: "2-D array of cell values.",
					Items:       &jsonschema.Schema{Type: "array"},
				},
				"html":         {Type: "string", Description: "Raw table HTML; takes precedence over data."},
				"padding":      {Type: "integer", Description: "Cell padding in px."},
				"text-color":   {Type: "string", Description: "Cell text color."},
				"border-width": {Type: "integer", Description: "Border width in px."},
				"border-color": {Type: "string", Description: "Border color."},
			}),
		},
	}
}

func enum(values []string, description string) *jsonschema.Schema {
	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return &jsonschema.Schema{Type: "string", Enum: vals, Description: description}
}
