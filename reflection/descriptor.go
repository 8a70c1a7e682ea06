package reflection

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// MaxParentDepth bounds the parent chain accepted by Validate.
const MaxParentDepth = 64

var (
	ErrUnknownKind   = errors.New("unknown entity kind")
	ErrMissingName   = errors.New("entity name is required")
	ErrParentTooDeep = errors.New("parent chain too deep")
)

// Descriptor is the read-only metadata of one documented entity
type Descriptor struct {
	Name          string      `json:"name"`
	Kind          Kind        `json:"kind"`
	Parent        *Descriptor `json:"parent,omitempty"`
	StickToParent bool        `json:"stickToParent,omitempty"`
}

// HasParent reports whether the entity is nested in another one
func (d *Descriptor) HasParent() bool { return d.Parent != nil }

// ParentIs reports whether the parent exists and has kind k
func (d *Descriptor) ParentIs(k Kind) bool {
	return d.Parent != nil && d.Parent.Kind == k
}

// Validate checks the descriptor and its parent chain once, at the boundary
// between the host and the formatter.
func (d *Descriptor) Validate() error {
	depth := 0
	for cur := d; cur != nil; cur = cur.Parent {
		if depth > MaxParentDepth {
			return fmt.Errorf("%w: more than %d levels", ErrParentTooDeep, MaxParentDepth)
		}
		if cur.Name == "" {
			return ErrMissingName
		}
		if !cur.Kind.Valid() {
			return fmt.Errorf("entity %q: %w: %q", cur.Name, ErrUnknownKind, cur.Kind)
		}
		depth++
	}
	return nil
}

// Decode reads a single JSON descriptor from r and validates it.
func Decode(r io.Reader) (*Descriptor, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var d Descriptor
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to decode descriptor: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}
