package tools

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/roveo/memberdoc/membertitle"
	"github.com/roveo/memberdoc/reflection"
)

// MemberTitleInput is the input schema for the member_title tool
type MemberTitleInput struct {
	Name          string `json:"name" jsonschema_description:"Display name of the documented member (e.g., 'parse', 'Options')."`
	Kind          string `json:"kind" jsonschema_description:"Entity kind, one of: project, module, namespace, enum, enum_member, variable, function, class, interface, constructor, property, method, call_signature, index_signature, accessor, type_alias, type_literal, reference."`
	StickToParent bool   `json:"stick_to_parent,omitempty" jsonschema_description:"Merge the heading with the parent's heading instead of nesting under it."`
	ParentName    string `json:"parent_name,omitempty" jsonschema_description:"Name of the enclosing entity. Module names are quoted identifiers, e.g. '\"core\"'."`
	ParentKind    string `json:"parent_kind,omitempty" jsonschema_description:"Kind of the enclosing entity. Required when parent_name is set."`
}

// MemberTitleTool creates the member_title MCP tool
func MemberTitleTool() *mcp.Tool {
	kinds := make([]string, 0, len(reflection.Kinds()))
	for _, k := range reflection.Kinds() {
		kinds = append(kinds, k.String())
	}
	return &mcp.Tool{
		Name: "member_title",
		Description: "Render the Markdown heading line of a documented member in a reference manual. " +
			"Decides heading depth and the anchor id from the member's kind and its parent. " +
			"Known kinds: " + strings.Join(kinds, ", ") + ".",
	}
}

// MemberTitleHandler handles the member_title tool invocation
func MemberTitleHandler(cfg *Config) func(context.Context, *mcp.CallToolRequest, MemberTitleInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input MemberTitleInput) (*mcp.CallToolResult, any, error) {
		entity, err := descriptorFromInput(input)
		if err != nil {
			return nil, nil, err
		}

		output := membertitle.Format(entity)
		if output == "" {
			output = cfg.emptyText()
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: output},
			},
		}, nil, nil
	}
}
