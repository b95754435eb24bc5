package tools

import "github.com/modelcontextprotocol/go-sdk/mcp"

// textResult builds a tool result from one text content block per argument.
func textResult(texts ...string) *mcp.CallToolResult {
	content := make([]mcp.Content, len(texts))
	for i, t := range texts {
		content[i] = &mcp.TextContent{Text: t}
	}
	return &mcp.CallToolResult{Content: content}
}
