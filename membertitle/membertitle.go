// Package membertitle decides the heading line of a documented member in a
// generated reference manual.
package membertitle

import (
	"github.com/roveo/memberdoc/heading"
	"github.com/roveo/memberdoc/reflection"
)

const (
	moduleDepth  = 2 // members declared directly in a module
	defaultDepth = 3
)

// CoreModule is how the host names the core module: a quoted identifier.
const CoreModule = `"core"`

// coreTypesLabel groups type-level members of the core module
const coreTypesLabel = "Types"

// Heading decides the depth and label for entity.
// Returns false when the host renders the entity inline without a heading.
func Heading(entity *reflection.Descriptor) (heading.Title, bool) {
	if entity.ParentIs(reflection.Enum) {
		return heading.Title{}, false
	}

	title := heading.Title{Depth: defaultDepth, Name: entity.Name}
	if entity.StickToParent || !entity.HasParent() {
		return title, true
	}

	if entity.ParentIs(reflection.Module) {
		title.Depth = depthInModule(entity.Kind)
	}

	title.Label = entity.Parent.Name
	if entity.Parent.Name == CoreModule {
		title.Label = ""
		if title.Depth == defaultDepth {
			title.Label = coreTypesLabel
		}
	}

	return title, true
}

// depthInModule returns the heading depth of a member declared in a module.
func depthInModule(kind reflection.Kind) int {
	switch kind {
	case reflection.TypeAlias:
		return defaultDepth
	default:
		return moduleDepth
	}
}

// Format renders the heading line for entity, or "" when it is suppressed.
func Format(entity *reflection.Descriptor) string {
	title, ok := Heading(entity)
	if !ok {
		return ""
	}
	return title.String()
}
