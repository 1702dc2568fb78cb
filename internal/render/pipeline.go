// pipeline.go renders whole markdown documents, splicing rendered infobox
// panels in place of their fenced source blocks.
package render

import (
	"bytes"
	"context"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// fencePattern matches a fenced code block tagged with the infobox language.
var fencePattern = regexp.MustCompile("(?ms)^```infobox[ \t]*\n(.*?)^```[ \t]*$")

// blockPlaceholder marks where a rendered panel is inserted after goldmark
// processing. The format survives markdown conversion untouched.
const (
	blockPlaceholderPrefix = "IBXBLOCK"
	blockPlaceholderSuffix = "END"
)

// Block is one fenced infobox block found in a markdown document.
type Block struct {
	Source string // raw block content between the fences
	Line   int    // 1-based line of the opening fence
}

// FindBlocks returns the infobox blocks of a markdown document in order.
func FindBlocks(doc string) []Block {
	var blocks []Block
	for _, m := range fencePattern.FindAllStringSubmatchIndex(doc, -1) {
		blocks = append(blocks, Block{
			Source: doc[m[2]:m[3]],
			Line:   strings.Count(doc[:m[0]], "\n") + 1,
		})
	}
	return blocks
}

// Page renders a whole markdown document to an HTML page. Each fenced
// infobox block is replaced with a placeholder, the remaining markdown is
// converted with goldmark, and the placeholders are then substituted with
// the rendered panels. sheet may be nil to skip stylesheet injection.
func (r *Renderer) Page(ctx context.Context, doc, sourcePath string, sheet *Stylesheet) (string, error) {
	processed, panels := r.replaceBlocks(ctx, doc, sourcePath)

	var buf bytes.Buffer
	if err := mdParser.Convert([]byte(processed), &buf); err != nil {
		return "", err
	}
	body := restorePanels(buf.String(), panels)

	page := NewElement("html", "")
	head := page.ChildElement("head", "")
	head.ChildElement("meta", "").SetAttr("charset", "utf-8")
	head.Child("title", "").SetText(strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath)))
	if sheet != nil {
		sheet.EnsureInstalled(head)
	}
	page.Child("body", "").AppendHTML(body)

	return "<!DOCTYPE html>\n" + page.HTML() + "\n", nil
}

// replaceBlocks swaps each fenced infobox block for a placeholder marker and
// renders the block's panel HTML. Render never fails, so a malformed block
// still produces output (its error node).
func (r *Renderer) replaceBlocks(ctx context.Context, doc, sourcePath string) (string, []string) {
	var panels []string
	processed := fencePattern.ReplaceAllStringFunc(doc, func(match string) string {
		source := fencePattern.FindStringSubmatch(match)[1]
		holder := NewElement("div", "")
		r.Render(ctx, source, sourcePath, holder)

		id := len(panels)
		panels = append(panels, holder.InnerHTML())
		return blockPlaceholderPrefix + strconv.Itoa(id) + blockPlaceholderSuffix
	})
	return processed, panels
}

// restorePanels substitutes placeholder markers with panel HTML. goldmark
// wraps a lone placeholder in <p> tags, so that form is handled first.
func restorePanels(html string, panels []string) string {
	for id, panel := range panels {
		placeholder := blockPlaceholderPrefix + strconv.Itoa(id) + blockPlaceholderSuffix
		wrapped := "<p>" + placeholder + "</p>"
		if strings.Contains(html, wrapped) {
			html = strings.Replace(html, wrapped, panel, 1)
		} else {
			html = strings.Replace(html, placeholder, panel, 1)
		}
	}
	return html
}
