package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/epicweb-dev/slides-mcp/internal/deck"
	"github.com/epicweb-dev/slides-mcp/internal/token"
)

// HandoffPath is where the generated link points; the HTTP layer serves the
// auto-submitting form there.
const HandoffPath = "/create-presentation"

const createDescription = `
Create a new presentation with slides.com providing the deck definition (see the spec document and schema from get_slides_specification before calling this tool). If the deck is valid, a URL will be returned which can be used to actually perform the slides creation for the user.

- Take special care to make certain the colors used are accessible (dark text for light backgrounds, light text for dark backgrounds, shadows where appropriate, etc.).
- Create an attractive theme and color palette and be consistent with it throughout the presentation.
- Take advantage of vertical stacks for subtopics.
- Prefer using ` + "`markdown`" + ` over ` + "`blocks`" + ` or ` + "`html`" + `.
- Take advantage of speaker notes. Limit the amount of text on a slide.
`

const handoffInstructions = `Upon opening the URL below, the user will be presented with a form that will allow them to create a new presentation with the deck definition you have provided. Submitting this form will open slides.com and if the user is happy, they can save the presentation to their account.`

// CreatePresentationArgs defines the arguments for the
// create_slides_presentation tool.
type CreatePresentationArgs struct {
	Deck map[string]any `json:"deck" jsonschema:"The deck definition that matches the spec document. This will be validated and any errors will be returned."`
}

// RegisterCreatePresentation registers the create_slides_presentation tool
// with the MCP server. base is the externally reachable address the hand-off
// link is built against; passing nil defers the failure to call time as a
// configuration error.
func RegisterCreatePresentation(server *mcp.Server, base *url.URL) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_slides_presentation",
		Description: strings.TrimSpace(createDescription),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args CreatePresentationArgs) (*mcp.CallToolResult, any, error) {
		return handleCreatePresentation(args, base)
	})
}

func handleCreatePresentation(args CreatePresentationArgs, base *url.URL) (*mcp.CallToolResult, any, error) {
	if base == nil {
		// Deployment bug, not a bad document. Fail the call outright so it
		// is never mistaken for a validation problem the caller could fix.
		return nil, nil, errors.New("server base URL is not configured; cannot build a hand-off link")
	}

	d, err := deck.Validate(args.Deck)
	if err != nil {
		var verr *deck.ValidationError
		if errors.As(err, &verr) {
			// Surfaced as result text so the caller can correct the deck
			// and retry.
			return textResult(verr.Error()), nil, nil
		}
		return nil, nil, err
	}

	payload, err := json.Marshal(d)
	if err != nil {
		return nil, nil, fmt.Errorf("serialize deck: %w", err)
	}
	tok, err := token.Encode(string(payload))
	if err != nil {
		return nil, nil, err
	}

	// JoinPath keeps any mount prefix on the base URL (e.g. a reverse proxy
	// serving us under /slides).
	u := base.JoinPath(HandoffPath)
	q := url.Values{}
	q.Set("deck", tok)
	u.RawQuery = q.Encode()

	return textResult(handoffInstructions, u.String()), nil, nil
}
