package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/epicweb-dev/slides-mcp/internal/spec"
)

// GetSpecificationArgs is empty: the tool takes no parameters.
type GetSpecificationArgs struct{}

// RegisterGetSpecification registers the get_slides_specification tool with
// the MCP server.
func RegisterGetSpecification(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_slides_specification",
		Description: "Retrieve the spec document and JSON schema for creating slides with slides.com",
	}, handleGetSpecification)
}

func handleGetSpecification(ctx context.Context, req *mcp.CallToolRequest, args GetSpecificationArgs) (*mcp.CallToolResult, any, error) {
	schemaJSON, err := spec.SchemaJSON()
	if err != nil {
		return nil, nil, err
	}
	return textResult(spec.Text, schemaJSON), nil, nil
}
