// Package tools exposes the slides tool surface: one tool to discover the
// deck definition contract and one to validate a deck and package it into a
// hand-off URL.
package tools

import (
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `
You are an expert presentation designer. Use this tool to manage presentations with slides.com.

Typically when the user asks you to create a presentation, you will first want to get the spec document to understand the deck definition. Then you can use the create_slides_presentation tool to create the presentation.
`

// NewServer builds an MCP server with both slides tools registered. The
// base URL is where the hand-off page is reachable by the user's browser;
// it is threaded through explicitly so concurrent requests on different
// hosts never see each other's addresses. A nil base leaves
// create_slides_presentation registered but failing with a configuration
// error, which keeps a misdeployment loudly visible instead of minting
// broken links.
func NewServer(base *url.URL) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "SlidesMCP",
		Version: "1.0.0",
	}, &mcp.ServerOptions{
		Instructions: strings.TrimSpace(serverInstructions),
	})

	RegisterGetSpecification(server)
	RegisterCreatePresentation(server, base)

	return server
}
