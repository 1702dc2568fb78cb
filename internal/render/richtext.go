// richtext.go provides the goldmark-backed rich text renderer.
package render

import (
	"bytes"
	"context"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// mdParser is a pre-configured goldmark instance with GFM table extension.
var mdParser = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

// RichText renders a markup snippet into an HTML fragment. Implementations
// must be safe for sequential reuse; the renderer calls them once per body,
// field value, and tag chip, strictly in document order.
type RichText interface {
	Render(ctx context.Context, markup, sourcePath string) (string, error)
}

// Goldmark is the markdown-backed RichText implementation. The sourcePath
// argument is accepted for interface symmetry with link-aware collaborators
// and is not used for plain markdown conversion.
type Goldmark struct{}

// Render converts markup to an HTML fragment.
func (Goldmark) Render(_ context.Context, markup, _ string) (string, error) {
	var buf bytes.Buffer
	if err := mdParser.Convert([]byte(markup), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
