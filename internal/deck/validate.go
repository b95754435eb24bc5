package deck

import (
	"fmt"
	"math"
	"strings"
)

// Validate checks a loosely-typed deck document against the deck contract.
// On success it returns a normalized Deck: documented defaults applied,
// declared integers coerced, enum values confirmed against their closed
// sets, and any undocumented properties preserved. On failure it returns a
// *ValidationError listing every violation found, each with a path into the
// document. There is no partial success.
func Validate(doc map[string]any) (*Deck, error) {
	v := &validator{}
	d := v.deck(doc)
	if len(v.errs) > 0 {
		return nil, &ValidationError{Errors: v.errs}
	}
	return d, nil
}

type validator struct {
	errs []FieldError
}

func (v *validator) fail(path, format string, args ...any) {
	v.errs = append(v.errs, FieldError{Path: path, Message: fmt.Sprintf(format, args...)})
}

var deckKeys = []string{
	"title", "description", "width", "height", "visibility",
	"auto-slide-interval", "slide-number", "loop", "css", "theme-id",
	"theme-color", "theme-font", "transition", "slides",
}

func (v *validator) deck(doc map[string]any) *Deck {
	d := &Deck{Width: DefaultWidth, Height: DefaultHeight}
	if doc == nil {
		v.fail("", "expected a deck object")
		return d
	}

	if raw, ok := doc["title"]; !ok {
		v.fail("title", "required property is missing (expected string)")
	} else if s, ok := raw.(string); !ok {
		v.fail("title", "expected string, got %s", typeName(raw))
	} else {
		d.Title = s
	}

	d.Description = v.optString(doc, "", "description")
	if n := v.optInt(doc, "", "width"); n != nil {
		d.Width = *n
	}
	if n := v.optInt(doc, "", "height"); n != nil {
		d.Height = *n
	}
	d.Visibility = v.optEnum(doc, "", "visibility", Visibilities)
	if n := v.optInt(doc, "", "auto-slide-interval"); n != nil {
		d.AutoSlideInterval = *n
	}
	if b := v.optBool(doc, "", "slide-number"); b != nil {
		d.SlideNumber = *b
	}
	if b := v.optBool(doc, "", "loop"); b != nil {
		d.Loop = *b
	}
	d.CSS = v.optString(doc, "", "css")
	d.ThemeID = v.optString(doc, "", "theme-id")
	d.ThemeColor = v.optEnum(doc, "", "theme-color", ThemeColors)
	d.ThemeFont = v.optEnum(doc, "", "theme-font", ThemeFonts)
	d.Transition = v.optEnum(doc, "", "transition", Transitions)

	if raw, ok := doc["slides"]; !ok {
		v.fail("slides", "required property is missing (expected array)")
	} else if arr, ok := raw.([]any); !ok {
		v.fail("slides", "expected array, got %s", typeName(raw))
	} else {
		d.Slides = make([]SlideEntry, 0, len(arr))
		for i, entry := range arr {
			d.Slides = append(d.Slides, v.slideEntry(entry, fmt.Sprintf("slides[%d]", i)))
		}
	}

	d.Extra = extras(doc, deckKeys)
	return d
}

// slideEntry validates one position of the slides array: a slide object or
// a vertical stack. Stack elements are plain slides; deeper nesting is
// rejected.
func (v *validator) slideEntry(entry any, path string) SlideEntry {
	switch t := entry.(type) {
	case map[string]any:
		return SlideEntry{Slide: v.slide(t, path)}
	case []any:
		stack := make([]*Slide, 0, len(t))
		for j, el := range t {
			elPath := fmt.Sprintf("%s[%d]", path, j)
			m, ok := el.(map[string]any)
			if !ok {
				v.fail(elPath, "expected a slide object, got %s", typeName(el))
				continue
			}
			stack = append(stack, v.slide(m, elPath))
		}
		return SlideEntry{Stack: stack}
	default:
		v.fail(path, "expected a slide object or a vertical stack (array of slides), got %s", typeName(entry))
		return SlideEntry{}
	}
}

var slideKeys = []string{
	"id", "background-color", "background-image", "background-size",
	"notes", "html", "markdown", "blocks",
}

func (v *validator) slide(m map[string]any, path string) *Slide {
	s := &Slide{}
	s.ID = v.optString(m, path, "id")
	s.BackgroundColor = v.optString(m, path, "background-color")
	s.BackgroundImage = v.optString(m, path, "background-image")
	s.BackgroundSize = v.optEnum(m, path, "background-size", BackgroundSizes)
	s.Notes = v.optString(m, path, "notes")
	s.HTML = v.optString(m, path, "html")
	s.Markdown = v.optString(m, path, "markdown")

	if raw, ok := m["blocks"]; ok {
		if arr, ok := raw.([]any); !ok {
			v.fail(joinPath(path, "blocks"), "expected array, got %s", typeName(raw))
		} else {
			s.Blocks = make([]Block, 0, len(arr))
			for i, el := range arr {
				if b := v.block(el, fmt.Sprintf("%s[%d]", joinPath(path, "blocks"), i)); b != nil {
					s.Blocks = append(s.Blocks, b)
				}
			}
		}
	}

	s.Extra = extras(m, slideKeys)
	return s
}

var commonBlockKeys = []string{
	"type", "x", "y", "width", "height", "class", "data", "animation-type",
	"animation-trigger", "animation-duration", "animation-delay",
}

// block dispatches on the type discriminant. It returns nil when the entry
// is not a block object or carries an unrecognized type.
func (v *validator) block(raw any, path string) Block {
	m, ok := raw.(map[string]any)
	if !ok {
		v.fail(path, "expected a block object, got %s", typeName(raw))
		return nil
	}

	typRaw, ok := m["type"]
	if !ok {
		v.fail(joinPath(path, "type"), "required property is missing (expected one of %s)", strings.Join(BlockTypes, ", "))
		return nil
	}
	typ, ok := typRaw.(string)
	if !ok {
		v.fail(joinPath(path, "type"), "expected string, got %s", typeName(typRaw))
		return nil
	}

	switch typ {
	case "text":
		return v.textBlock(m, path)
	case "image":
		return v.imageBlock(m, path)
	case "iframe":
		return v.iframeBlock(m, path)
	case "code":
		return v.codeBlock(m, path)
	case "table":
		return v.tableBlock(m, path)
	default:
		v.fail(joinPath(path, "type"), "unrecognized block type %q (expected one of %s)", typ, strings.Join(BlockTypes, ", "))
		return nil
	}
}

// blockCommon reads the attributes shared by every block variant. The table
// variant reads its own "data" (a 2-D cell array) instead of the common
// data-attributes map, so it passes dataAttrs=false.
func (v *validator) blockCommon(m map[string]any, path string, dataAttrs bool) BlockCommon {
	c := BlockCommon{}
	c.X = v.optInt(m, path, "x")
	c.Y = v.optInt(m, path, "y")
	c.Width = v.optInt(m, path, "width")
	c.Height = v.optInt(m, path, "height")
	c.Class = v.optString(m, path, "class")
	if dataAttrs {
		if raw, ok := m["data"]; ok {
			if rec, ok := raw.(map[string]any); !ok {
				v.fail(joinPath(path, "data"), "expected object, got %s", typeName(raw))
			} else {
				c.Data = rec
			}
		}
	}
	c.AnimationType = v.optEnum(m, path, "animation-type", AnimationTypes)
	c.AnimationTrigger = v.optEnum(m, path, "animation-trigger", AnimationTriggers)
	c.AnimationDuration = v.optNumber(m, path, "animation-duration")
	c.AnimationDelay = v.optNumber(m, path, "animation-delay")
	return c
}

func (v *validator) textBlock(m map[string]any, path string) Block {
	b := &TextBlock{Type: "text", BlockCommon: v.blockCommon(m, path, true)}
	b.Value = v.requiredString(m, path, "value")
	b.Format = v.optEnum(m, path, "format", TextFormats)
	b.Align = v.optEnum(m, path, "align", TextAlignments)
	b.Padding = v.optInt(m, path, "padding")
	b.Color = v.optString(m, path, "color")
	b.FontSize = v.optString(m, path, "font-size")
	b.Extra = extras(m, commonBlockKeys, "value", "format", "align", "padding", "color", "font-size")
	return b
}

func (v *validator) imageBlock(m map[string]any, path string) Block {
	b := &ImageBlock{Type: "image", BlockCommon: v.blockCommon(m, path, true)}
	b.Value = v.requiredString(m, path, "value")
	b.Extra = extras(m, commonBlockKeys, "value")
	return b
}

func (v *validator) iframeBlock(m map[string]any, path string) Block {
	b := &IframeBlock{Type: "iframe", BlockCommon: v.blockCommon(m, path, true)}
	b.Value = v.requiredString(m, path, "value")
	b.Extra = extras(m, commonBlockKeys, "value")
	return b
}

func (v *validator) codeBlock(m map[string]any, path string) Block {
	b := &CodeBlock{Type: "code", BlockCommon: v.blockCommon(m, path, true)}
	b.Value = v.requiredString(m, path, "value")
	b.Language = v.optString(m, path, "language")
	b.WordWrap = v.optBool(m, path, "word-wrap")
	if raw, ok := m["line-numbers"]; ok {
		switch raw.(type) {
		case bool, string:
			b.LineNumbers = raw
		default:
			v.fail(joinPath(path, "line-numbers"), "expected boolean or string, got %s", typeName(raw))
		}
	}
	b.Theme = v.optEnum(m, path, "theme", CodeThemes)
	b.Extra = extras(m, commonBlockKeys, "value", "language", "word-wrap", "line-numbers", "theme")
	return b
}

func (v *validator) tableBlock(m map[string]any, path string) Block {
	b := &TableBlock{Type: "table", BlockCommon: v.blockCommon(m, path, false)}
	if raw, ok := m["data"]; ok {
		if arr, ok := raw.([]any); !ok {
			v.fail(joinPath(path, "data"), "expected array of arrays, got %s", typeName(raw))
		} else {
			rows := make([][]any, 0, len(arr))
			for i, r := range arr {
				row, ok := r.([]any)
				if !ok {
					v.fail(fmt.Sprintf("%s[%d]", joinPath(path, "data"), i), "expected array, got %s", typeName(r))
					continue
				}
				rows = append(rows, row)
			}
			b.Data = rows
		}
	}
	b.HTML = v.optString(m, path, "html")
	b.Padding = v.optInt(m, path, "padding")
	b.TextColor = v.optString(m, path, "text-color")
	b.BorderWidth = v.optInt(m, path, "border-width")
	b.BorderColor = v.optString(m, path, "border-color")
	b.Extra = extras(m, commonBlockKeys, "html", "padding", "text-color", "border-width", "border-color")
	return b
}

// --- field readers ---

func (v *validator) requiredString(m map[string]any, path, key string) string {
	raw, ok := m[key]
	if !ok {
		v.fail(joinPath(path, key), "required property is missing (expected string)")
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		v.fail(joinPath(path, key), "expected string, got %s", typeName(raw))
		return ""
	}
	return s
}

func (v *validator) optString(m map[string]any, path, key string) string {
	raw, ok := m[key]
	if !ok {
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		v.fail(joinPath(path, key), "expected string, got %s", typeName(raw))
		return ""
	}
	return s
}

func (v *validator) optEnum(m map[string]any, path, key string, allowed []string) string {
	raw, ok := m[key]
	if !ok {
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		v.fail(joinPath(path, key), "expected string, got %s", typeName(raw))
		return ""
	}
	for _, a := range allowed {
		if s == a {
			return s
		}
	}
	v.fail(joinPath(path, key), "must be one of %s, got %q", strings.Join(allowed, ", "), s)
	return ""
}

func (v *validator) optInt(m map[string]any, path, key string) *int {
	raw, ok := m[key]
	if !ok {
		return nil
	}
	n, ok := intFrom(raw)
	if !ok {
		v.fail(joinPath(path, key), "expected integer, got %s", typeName(raw))
		return nil
	}
	return &n
}

func (v *validator) optNumber(m map[string]any, path, key string) *float64 {
	raw, ok := m[key]
	if !ok {
		return nil
	}
	f, ok := floatFrom(raw)
	if !ok {
		v.fail(joinPath(path, key), "expected number, got %s", typeName(raw))
		return nil
	}
	return &f
}

func (v *validator) optBool(m map[string]any, path, key string) *bool {
	raw, ok := m[key]
	if !ok {
		return nil
	}
	b, ok := raw.(bool)
	if !ok {
		v.fail(joinPath(path, key), "expected boolean, got %s", typeName(raw))
		return nil
	}
	return &b
}

// --- helpers ---

func joinPath(base, key string) string {
	if base == "" {
		return key
	}
	return base + "." + key
}

// extras returns a copy of m without the listed known keys, or nil when
// nothing undocumented is present.
func extras(m map[string]any, known []string, more ...string) map[string]any {
	var out map[string]any
	for k, val := range m {
		if containsKey(known, k) || containsKey(more, k) {
			continue
		}
		if out == nil {
			out = make(map[string]any)
		}
		out[k] = val
	}
	return out
}

func containsKey(keys []string, k string) bool {
	for _, key := range keys {
		if key == k {
			return true
		}
	}
	return false
}

func intFrom(raw any) (int, bool) {
	switch n := raw.(type) {
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}
	case int:
		return n, true
	case int64:
		return int(n), true
	}
	return 0, false
}

func floatFrom(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func typeName(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", raw)
	}
}
