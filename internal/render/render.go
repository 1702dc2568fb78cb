// Package render turns parsed infobox documents into a two-column HTML
// layout: the body text alongside a titled attribute panel.
package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/open-cli-collective/infobox-cli/pkg/infobox"
)

// LinkResolver locates link targets referenced from a document.
type LinkResolver interface {
	// ResolveLink returns a handle for ref as seen from sourcePath, or
	// ok=false when no matching file exists.
	ResolveLink(ref, sourcePath string) (handle string, ok bool)
	// ResourcePath converts a resolved handle into a displayable source.
	ResourcePath(handle string) string
}

// Renderer walks a parsed Document and builds the infobox layout into a
// Container. It holds no per-render state; each call parses its own source
// and renders it in a single sequential pass.
type Renderer struct {
	RichText RichText
	Links    LinkResolver

	// Caption overrides the dialect's default panel caption for blocks
	// that do not name their own title. Empty keeps the default.
	Caption string
}

// Render parses source and renders it into container. It never fails:
// any error or panic raised during the pass discards partial output and
// leaves a single error node in its place.
func (r *Renderer) Render(ctx context.Context, source, sourcePath string, container Container) {
	defer func() {
		if rec := recover(); rec != nil {
			renderError(container, fmt.Sprintf("%v", rec))
		}
	}()

	doc := infobox.Parse(source)
	if err := r.renderDocument(ctx, doc, sourcePath, container); err != nil {
		renderError(container, err.Error())
	}
}

// renderError replaces whatever was rendered so far with one error node.
func renderError(container Container, msg string) {
	container.Empty()
	container.Child("div", "infobox-error").SetText("infobox: " + msg)
}

func (r *Renderer) renderDocument(ctx context.Context, doc *infobox.Document, sourcePath string, container Container) error {
	root := container.Child("div", "infobox-block")

	body := root.Child("div", "infobox-content")
	if doc.Body != "" {
		markup, err := r.RichText.Render(ctx, doc.Body, sourcePath)
		if err != nil {
			return err
		}
		body.AppendHTML(markup)
	}

	title := doc.Title
	if title == infobox.DefaultTitle && r.Caption != "" {
		title = r.Caption
	}

	panel := root.Child("div", "infobox-panel")
	panel.Child("div", "infobox-title").SetText(title)

	if doc.ImageRef != "" {
		r.renderImage(panel, doc.ImageRef, sourcePath)
	}

	for _, field := range doc.Fields {
		if err := r.renderField(ctx, field, sourcePath, panel); err != nil {
			return err
		}
	}
	return nil
}

// renderImage resolves the reference and appends either an img element or a
// textual placeholder. A missing target is not an error.
func (r *Renderer) renderImage(panel Container, ref, sourcePath string) {
	handle, ok := r.Links.ResolveLink(ref, sourcePath)
	if !ok {
		panel.Child("div", "infobox-image-missing").SetText("image not found: " + ref)
		return
	}
	img := panel.Child("img", "infobox-image")
	img.SetAttr("src", r.Links.ResourcePath(handle))
	img.SetAttr("alt", ref)
}

func (r *Renderer) renderField(ctx context.Context, field infobox.Field, sourcePath string, panel Container) error {
	switch field.Kind {
	case infobox.FieldSection:
		panel.Child("div", "infobox-row infobox-section").SetText(field.Label)

	case infobox.FieldAttribute:
		row := panel.Child("div", "infobox-row")
		row.Child("div", "infobox-label").SetText(field.Label)
		markup, err := r.RichText.Render(ctx, field.Value, sourcePath)
		if err != nil {
			return err
		}
		row.Child("div", "infobox-value").AppendHTML(markup)

	case infobox.FieldTag:
		row := panel.Child("div", "infobox-row")
		row.Child("div", "infobox-label").SetText(field.Label)
		cell := row.Child("div", "infobox-value infobox-tags")
		for _, tag := range infobox.SplitTags(field.Value) {
			markup, err := r.RichText.Render(ctx, tag, sourcePath)
			if err != nil {
				return err
			}
			cell.Child("span", "infobox-tag").AppendHTML(unwrapParagraph(markup))
		}
	}
	return nil
}

// unwrapParagraph strips a single enclosing <p> from a rendered fragment so
// a tag chip's markup is inlined directly in its span. Fragments with more
// than one paragraph are left alone.
func unwrapParagraph(markup string) string {
	trimmed := strings.TrimSpace(markup)
	if !strings.HasPrefix(trimmed, "<p>") || !strings.HasSuffix(trimmed, "</p>") {
		return markup
	}
	inner := trimmed[len("<p>") : len(trimmed)-len("</p>")]
	if strings.Contains(inner, "</p>") {
		return markup
	}
	return inner
}
