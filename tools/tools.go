// Package tools provides the MCP tool that renders member headings.
package tools

import (
	"fmt"

	"github.com/roveo/memberdoc/reflection"
)

// DefaultEmptyText is returned to MCP clients for a suppressed heading
const DefaultEmptyText = "(suppressed)"

// Config holds server-wide configuration for tools
type Config struct {
	EmptyText string // Placeholder text for suppressed headings ("" = DefaultEmptyText)
}

func (c *Config) emptyText() string {
	if c == nil || c.EmptyText == "" {
		return DefaultEmptyText
	}
	return c.EmptyText
}

// descriptorFromInput builds and validates a descriptor from flat tool input
func descriptorFromInput(input MemberTitleInput) (*reflection.Descriptor, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	kind, err := reflection.ParseKind(input.Kind)
	if err != nil {
		return nil, err
	}

	d := &reflection.Descriptor{
		Name:          input.Name,
		Kind:          kind,
		StickToParent: input.StickToParent,
	}

	if input.ParentName != "" || input.ParentKind != "" {
		parentKind, err := reflection.ParseKind(input.ParentKind)
		if err != nil {
			return nil, fmt.Errorf("parent: %w", err)
		}
		d.Parent = &reflection.Descriptor{Name: input.ParentName, Kind: parentKind}
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
