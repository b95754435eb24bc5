package deck

// Closed value sets for the deck contract's enum-typed properties. Order
// matches the slides.com define API documentation and is the order reported
// in validation messages and in the published JSON Schema.

// Visibilities are the audiences a deck can be published to.
var Visibilities = []string{"all", "self", "team"}

// ThemeColors are the built-in presentation color schemes.
var ThemeColors = []string{"white-blue", "black-blue"}

// ThemeFonts are the built-in presentation fonts.
var ThemeFonts = []string{
	"montserrat", "asul", "helvetica", "josefine", "league", "merriweather",
	"news", "opensans", "overpass", "palatino", "quicksand", "sketch",
}

// Transitions are the slide transition styles.
var Transitions = []string{"slide", "none", "fade", "concave", "convex"}

// BackgroundSizes are the slide background scaling modes.
var BackgroundSizes = []string{"cover", "contain"}

// BlockTypes are the recognized block discriminant tags.
var BlockTypes = []string{"text", "image", "iframe", "code", "table"}

// TextFormats are the text block formats.
var TextFormats = []string{"h1", "h2", "h3", "p", "pre"}

// TextAlignments are the text block alignments.
var TextAlignments = []string{"left", "center", "right", "justify"}

// CodeThemes are the syntax highlighting themes for code blocks.
var CodeThemes = []string{
	"monokai", "a11y-dark", "a11y-light", "ascetic", "darcula", "far",
	"github-gist", "ir-black", "obsidian", "seti", "solarized-dark",
	"solarized-light", "sunburst", "tomorrow", "xcode", "zenburn",
}

// AnimationTypes are the block entrance/exit animations.
var AnimationTypes = []string{
	"fade-in", "fade-out", "slide-up", "slide-down", "slide-right",
	"slide-left", "scale-up", "scale-down",
}

// AnimationTriggers are the events that start a block animation.
var AnimationTriggers = []string{"auto", "click", "hover"}
