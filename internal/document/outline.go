package document

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Heading is one entry of a document outline.
type Heading struct {
	Level int
	Text  string
}

// String renders the heading the way it appears in markdown source.
func (h Heading) String() string {
	return fmt.Sprintf("%s %s", strings.Repeat("#", h.Level), h.Text)
}

var outlineParser = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

// Outline parses the markdown into an AST and returns its headings in order.
// Headings inside fenced code are not reported.
func Outline(raw string) []Heading {
	content := []byte(raw)
	if len(content) == 0 {
		return nil
	}

	doc := outlineParser.Parser().Parse(text.NewReader(content))

	var headings []Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		headings = append(headings, Heading{
			Level: heading.Level,
			Text:  extractTextFromNode(heading, content),
		})
		return ast.WalkSkipChildren, nil
	})

	return headings
}

// extractTextFromNode extracts text content from a node and its children.
func extractTextFromNode(n ast.Node, content []byte) string {
	var textBuilder strings.Builder

	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch v := node.(type) {
		case *ast.Text:
			textBuilder.Write(v.Segment.Value(content))
		case *ast.String:
			textBuilder.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(textBuilder.String())
}
