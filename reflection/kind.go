// Package reflection describes documented program entities as a
// documentation host hands them over: a name, a kind, and the enclosing entity.
package reflection

import "fmt"

// Kind identifies what sort of program construct an entity is.
// The set is closed; Parse rejects anything else.
type Kind string

const (
	Project        Kind = "project"
	Module         Kind = "module"
	Namespace      Kind = "namespace"
	Enum           Kind = "enum"
	EnumMember     Kind = "enum_member"
	Variable       Kind = "variable"
	Function       Kind = "function"
	Class          Kind = "class"
	Interface      Kind = "interface"
	Constructor    Kind = "constructor"
	Property       Kind = "property"
	Method         Kind = "method"
	CallSignature  Kind = "call_signature"
	IndexSignature Kind = "index_signature"
	Accessor       Kind = "accessor"
	TypeAlias      Kind = "type_alias"
	TypeLiteral    Kind = "type_literal"
	Reference      Kind = "reference"
)

var kinds = []Kind{
	Project, Module, Namespace, Enum, EnumMember, Variable, Function, Class,
	Interface, Constructor, Property, Method, CallSignature, IndexSignature,
	Accessor, TypeAlias, TypeLiteral, Reference,
}

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	for _, known := range kinds {
		if k == known {
			return true
		}
	}
	return false
}

// ParseKind converts a wire string into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// UnmarshalText makes Kind decode strictly from JSON strings.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func (k Kind) String() string { return string(k) }
