package membertitle

import (
	"testing"

	"github.com/roveo/memberdoc/heading"
	"github.com/roveo/memberdoc/reflection"
)

func child(name string, kind reflection.Kind, parent *reflection.Descriptor) *reflection.Descriptor {
	return &reflection.Descriptor{Name: name, Kind: kind, Parent: parent}
}

func TestFormat(t *testing.T) {
	bar := &reflection.Descriptor{Name: "Bar", Kind: reflection.Module}
	core := &reflection.Descriptor{Name: CoreModule, Kind: reflection.Module}
	bareCore := &reflection.Descriptor{Name: "core", Kind: reflection.Module}
	class := &reflection.Descriptor{Name: "Server", Kind: reflection.Class}
	coreClass := &reflection.Descriptor{Name: CoreModule, Kind: reflection.Namespace}
	enum := &reflection.Descriptor{Name: "Color", Kind: reflection.Enum}

	tests := []struct {
		name   string
		entity *reflection.Descriptor
		want   string
	}{
		{"no parent", child("Foo", reflection.Function, nil), "### Foo"},
		{"no parent type alias", child("Foo", reflection.TypeAlias, nil), "### Foo"},
		{"module parent", child("Foo", reflection.Function, bar), `## <--{"id" : "Bar"}--> Foo`},
		{"module parent type alias", child("Foo", reflection.TypeAlias, bar), `### <--{"id" : "Bar"}--> Foo`},
		{"core module", child("Foo", reflection.Function, core), "## Foo"},
		{"core module type alias", child("Foo", reflection.TypeAlias, core), `### <--{"id" : "Types"}--> Foo`},
		{"unquoted core is an ordinary name", child("Foo", reflection.Function, bareCore), `## <--{"id" : "core"}--> Foo`},
		{"class parent", child("start", reflection.Method, class), `### <--{"id" : "Server"}--> start`},
		{"core non-module parent", child("Foo", reflection.Property, coreClass), `### <--{"id" : "Types"}--> Foo`},
		{"enum parent", child("Red", reflection.EnumMember, enum), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.entity); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatEnumParentAlwaysSuppressed(t *testing.T) {
	enum := &reflection.Descriptor{Name: "Color", Kind: reflection.Enum}

	for _, kind := range reflection.Kinds() {
		for _, stick := range []bool{false, true} {
			entity := child("Red", kind, enum)
			entity.StickToParent = stick
			if got := Format(entity); got != "" {
				t.Errorf("kind %s stick=%v: expected empty heading, got %q", kind, stick, got)
			}
			if _, ok := Heading(entity); ok {
				t.Errorf("kind %s stick=%v: expected Heading to report suppression", kind, stick)
			}
		}
	}
}

func TestFormatStickToParent(t *testing.T) {
	parents := []*reflection.Descriptor{
		nil,
		{Name: "Bar", Kind: reflection.Module},
		{Name: CoreModule, Kind: reflection.Module},
		{Name: "Server", Kind: reflection.Class},
	}

	for _, parent := range parents {
		for _, kind := range reflection.Kinds() {
			entity := child("Foo", kind, parent)
			entity.StickToParent = true
			if got := Format(entity); got != "### Foo" {
				t.Errorf("kind %s parent %v: expected '### Foo', got %q", kind, parent, got)
			}
		}
	}
}

func TestFormatModuleDepth(t *testing.T) {
	bar := &reflection.Descriptor{Name: "Bar", Kind: reflection.Module}

	for _, kind := range reflection.Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			title, ok := heading.Parse(Format(child("Foo", kind, bar)))
			if !ok {
				t.Fatal("expected a heading")
			}

			want := 2
			if kind == reflection.TypeAlias {
				want = 3
			}
			if title.Depth != want {
				t.Errorf("expected depth %d, got %d", want, title.Depth)
			}
			if title.Label != "Bar" {
				t.Errorf("expected label from parent name, got %q", title.Label)
			}
			if title.Name != "Foo" {
				t.Errorf("expected name 'Foo', got %q", title.Name)
			}
		})
	}
}

func TestFormatLabelNeverFromOwnName(t *testing.T) {
	entity := child(CoreModule, reflection.TypeAlias, nil)
	if got := Format(entity); got != `### "core"` {
		t.Errorf("expected no label without a parent, got %q", got)
	}
}

func TestFormatIsPure(t *testing.T) {
	parent := &reflection.Descriptor{Name: "Bar", Kind: reflection.Module}
	entity := child("Foo", reflection.Function, parent)
	before := *entity
	beforeParent := *parent

	first := Format(entity)
	second := Format(entity)

	if first != second {
		t.Errorf("expected identical output, got %q and %q", first, second)
	}
	if *entity != before || *parent != beforeParent {
		t.Error("Format mutated its input")
	}
}

func TestFormatConcurrent(t *testing.T) {
	parent := &reflection.Descriptor{Name: CoreModule, Kind: reflection.Module}
	entity := child("Foo", reflection.TypeAlias, parent)
	want := Format(entity)

	done := make(chan string)
	for i := 0; i < 16; i++ {
		go func() { done <- Format(entity) }()
	}
	for i := 0; i < 16; i++ {
		if got := <-done; got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}

func TestHeading(t *testing.T) {
	core := &reflection.Descriptor{Name: CoreModule, Kind: reflection.Module}

	title, ok := Heading(child("Foo", reflection.Function, core))
	if !ok {
		t.Fatal("expected a heading")
	}
	want := heading.Title{Depth: 2, Name: "Foo"}
	if title != want {
		t.Errorf("Heading() = %+v, want %+v", title, want)
	}
}
