// Package deck defines the slides.com deck document model and its validator.
//
// A deck arrives as a loosely-typed JSON object. Validate checks it against
// the deck contract and returns a normalized Deck whose canonical form is its
// encoding/json serialization. Unknown keys on any object are preserved, not
// stripped, so documents using properties this package doesn't know about
// survive the round trip to slides.com unchanged.
package deck

import "encoding/json"

// Default canvas dimensions applied when a deck omits width/height.
const (
	DefaultWidth  = 960
	DefaultHeight = 700
)

// Deck is the top-level presentation document.
type Deck struct {
	Title             string       `json:"title"`
	Description       string       `json:"description,omitempty"`
	Width             int          `json:"width"`
	Height            int          `json:"height"`
	Visibility        string       `json:"visibility,omitempty"`
	AutoSlideInterval int          `json:"auto-slide-interval"`
	SlideNumber       bool         `json:"slide-number"`
	Loop              bool         `json:"loop"`
	CSS               string       `json:"css,omitempty"`
	ThemeID           string       `json:"theme-id,omitempty"`
	ThemeColor        string       `json:"theme-color,omitempty"`
	ThemeFont         string       `json:"theme-font,omitempty"`
	Transition        string       `json:"transition,omitempty"`
	Slides            []SlideEntry `json:"slides"`

	// Extra holds properties outside the documented contract.
	Extra map[string]any `json:"-"`
}

// MarshalJSON serializes the deck including any extra properties.
func (d *Deck) MarshalJSON() ([]byte, error) {
	type alias Deck
	return marshalWithExtra((*alias)(d), d.Extra)
}

// SlideEntry is one position in a deck's slides array: either a single
// slide or a vertical stack of slides. Exactly one of the two fields is
// set; stacks never nest.
type SlideEntry struct {
	Slide *Slide
	Stack []*Slide
}

// IsStack reports whether the entry is a vertical stack.
func (e SlideEntry) IsStack() bool { return e.Stack != nil }

func (e SlideEntry) MarshalJSON() ([]byte, error) {
	if e.Stack != nil {
		return json.Marshal(e.Stack)
	}
	return json.Marshal(e.Slide)
}

// Slide is a single presentation page. At most one of HTML, Markdown or
// Blocks is normally used for content, though the contract does not forbid
// combining them.
type Slide struct {
	ID              string         `json:"id,omitempty"`
	BackgroundColor string         `json:"background-color,omitempty"`
	BackgroundImage string         `json:"background-image,omitempty"`
	BackgroundSize  string         `json:"background-size,omitempty"`
	Notes           string         `json:"notes,omitempty"`
	HTML            string         `json:"html,omitempty"`
	Markdown        string         `json:"markdown,omitempty"`
	Blocks          []Block        `json:"blocks,omitempty"`
	Extra           map[string]any `json:"-"`
}

func (s *Slide) MarshalJSON() ([]byte, error) {
	type alias Slide
	return marshalWithExtra((*alias)(s), s.Extra)
}

// Block is one content element within a slide, discriminated by its type
// tag. The concrete types are TextBlock, ImageBlock, IframeBlock, CodeBlock
// and TableBlock.
type Block interface {
	// BlockType returns the block's discriminant tag.
	BlockType() string
}

// BlockCommon carries the positional and animation attributes shared by
// every block variant.
type BlockCommon struct {
	X                 *int           `json:"x,omitempty"`
	Y                 *int           `json:"y,omitempty"`
	Width             *int           `json:"width,omitempty"`
	Height            *int           `json:"height,omitempty"`
	Class             string         `json:"class,omitempty"`
	Data              map[string]any `json:"data,omitempty"`
	AnimationType     string         `json:"animation-type,omitempty"`
	AnimationTrigger  string         `json:"animation-trigger,omitempty"`
	AnimationDuration *float64       `json:"animation-duration,omitempty"`
	AnimationDelay    *float64       `json:"animation-delay,omitempty"`
}

// TextBlock renders a run of text.
type TextBlock struct {
	Type string `json:"type"`
	BlockCommon
	Value    string         `json:"value"`
	Format   string         `json:"format,omitempty"`
	Align    string         `json:"align,omitempty"`
	Padding  *int           `json:"padding,omitempty"`
	Color    string         `json:"color,omitempty"`
	FontSize string         `json:"font-size,omitempty"`
	Extra    map[string]any `json:"-"`
}

func (b *TextBlock) BlockType() string { return "text" }

func (b *TextBlock) MarshalJSON() ([]byte, error) {
	type alias TextBlock
	return marshalWithExtra((*alias)(b), b.Extra)
}

// ImageBlock embeds an image by URL.
type ImageBlock struct {
	Type string `json:"type"`
	BlockCommon
	Value string         `json:"value"`
	Extra map[string]any `json:"-"`
}

func (b *ImageBlock) BlockType() string { return "image" }

func (b *ImageBlock) MarshalJSON() ([]byte, error) {
	type alias ImageBlock
	return marshalWithExtra((*alias)(b), b.Extra)
}

// IframeBlock embeds an external page by HTTPS URL.
type IframeBlock struct {
	Type string `json:"type"`
	BlockCommon
	Value string         `json:"value"`
	Extra map[string]any `json:"-"`
}

func (b *IframeBlock) BlockType() string { return "iframe" }

func (b *IframeBlock) MarshalJSON() ([]byte, error) {
	type alias IframeBlock
	return marshalWithExtra((*alias)(b), b.Extra)
}

// CodeBlock renders highlighted source code. LineNumbers is either a bool
// or a string naming the lines to highlight (e.g. "3,8-10").
type CodeBlock struct {
	Type string `json:"type"`
	BlockCommon
	Value       string         `json:"value"`
	Language    string         `json:"language,omitempty"`
	WordWrap    *bool          `json:"word-wrap,omitempty"`
	LineNumbers any            `json:"line-numbers,omitempty"`
	Theme       string         `json:"theme,omitempty"`
	Extra       map[string]any `json:"-"`
}

func (b *CodeBlock) BlockType() string { return "code" }

func (b *CodeBlock) MarshalJSON() ([]byte, error) {
	type alias CodeBlock
	return marshalWithExtra((*alias)(b), b.Extra)
}

// TableBlock renders tabular data. Its Data (a 2-D array of cells) shadows
// the common data-attributes map; when both Data and HTML are present the
// HTML takes precedence on the slides.com side.
type TableBlock struct {
	Type string `json:"type"`
	BlockCommon
	Data        [][]any        `json:"data,omitempty"`
	HTML        string         `json:"html,omitempty"`
	Padding     *int           `json:"padding,omitempty"`
	TextColor   string         `json:"text-color,omitempty"`
	BorderWidth *int           `json:"border-width,omitempty"`
	BorderColor string         `json:"border-color,omitempty"`
	Extra       map[string]any `json:"-"`
}

func (b *TableBlock) BlockType() string { return "table" }

func (b *TableBlock) MarshalJSON() ([]byte, error) {
	type alias TableBlock
	return marshalWithExtra((*alias)(b), b.Extra)
}

// marshalWithExtra marshals v and merges extra properties into the result.
// Declared fields win on key collision. With no extras the struct encoding
// is returned as-is; with extras the object is re-encoded as a map, which
// sorts keys but stays deterministic.
func marshalWithExtra(v any, extra map[string]any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return b, nil
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	for k, val := range extra {
		if _, ok := m[k]; !ok {
			m[k] = val
		}
	}
	return json.Marshal(m)
}
