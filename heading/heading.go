// Package heading renders and recognizes Markdown heading lines carrying an
// optional inline anchor annotation of the form <--{"id" : "label"}-->.
package heading

import (
	"fmt"
	"strings"
)

// Marker is the character repeated to express heading depth
const Marker = "#"

// MaxDepth is the deepest heading Markdown supports
const MaxDepth = 6

const (
	anchorOpen  = `<--{"id" : "`
	anchorClose = `"}-->`
)

// Title is a heading before rendering
type Title struct {
	Depth int    // number of markers, 1-6
	Label string // anchor id, empty for none
	Name  string // heading text
}

// Prefix returns depth repetitions of Marker
func Prefix(depth int) string {
	return strings.Repeat(Marker, depth)
}

// Anchor returns the inline annotation that carries label as an id
func Anchor(label string) string {
	return anchorOpen + label + anchorClose
}

// String renders the heading, joining prefix, anchor and name with single spaces.
func (t Title) String() string {
	parts := []string{Prefix(t.Depth)}
	if t.Label != "" {
		parts = append(parts, Anchor(t.Label))
	}
	parts = append(parts, t.Name)
	return strings.Join(parts, " ")
}

// Parse recognizes a rendered heading line.
// Returns false if the line is not a heading.
func Parse(line string) (Title, bool) {
	trimmed := strings.TrimLeft(line, " \t")

	if !strings.HasPrefix(trimmed, Marker) {
		return Title{}, false
	}

	// Count consecutive markers
	depth := 0
	for _, ch := range trimmed {
		if string(ch) != Marker {
			break
		}
		depth++
	}
	if depth > MaxDepth {
		return Title{}, false
	}

	// Must have space after the markers (or be just markers at end of line)
	rest := trimmed[depth:]
	if len(rest) > 0 && rest[0] != ' ' && rest[0] != '\t' {
		return Title{}, false
	}
	text := strings.TrimSpace(rest)

	// Closing sequence: ## Heading ##
	text = strings.TrimRight(text, Marker)
	text = strings.TrimSpace(text)

	var label string
	if strings.HasPrefix(text, anchorOpen) {
		end := strings.Index(text, anchorClose)
		if end < 0 {
			return Title{}, false
		}
		label = text[len(anchorOpen):end]
		text = strings.TrimSpace(text[end+len(anchorClose):])
	}

	return Title{Depth: depth, Label: label, Name: text}, true
}

// Explain is a one-line diagnostic summary of t
func (t Title) Explain() string {
	return fmt.Sprintf("depth=%d label=%q name=%q", t.Depth, t.Label, t.Name)
}
