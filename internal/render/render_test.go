package render

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRichText echoes markup wrapped the way goldmark wraps a paragraph.
type fakeRichText struct{}

func (fakeRichText) Render(_ context.Context, markup, _ string) (string, error) {
	return "<p>" + markup + "</p>\n", nil
}

// failingRichText simulates a collaborator defect.
type failingRichText struct{}

func (failingRichText) Render(_ context.Context, _, _ string) (string, error) {
	return "", errors.New("renderer exploded")
}

// mapResolver resolves references from a fixed map.
type mapResolver map[string]string

func (m mapResolver) ResolveLink(ref, _ string) (string, bool) {
	handle, ok := m[ref]
	return handle, ok
}

func (m mapResolver) ResourcePath(handle string) string {
	return "assets/" + handle
}

// panickyResolver simulates a programming defect in a collaborator.
type panickyResolver struct{}

func (panickyResolver) ResolveLink(_, _ string) (string, bool) { panic("resolver bug") }
func (panickyResolver) ResourcePath(_ string) string           { panic("resolver bug") }

func newTestRenderer() *Renderer {
	return &Renderer{
		RichText: fakeRichText{},
		Links:    mapResolver{"portrait.png": "portrait.png"},
	}
}

func TestRender_PanelLayout(t *testing.T) {
	src := "---正文---\nBody text.\n---Character---\n![[portrait.png]]\n===Basics===\n+ Name: **Ed**\n- Traits: brave, stubborn\n"

	out := NewElement("div", "")
	newTestRenderer().Render(context.Background(), src, "note.md", out)
	html := out.HTML()

	assert.Contains(t, html, `<div class="infobox-content"><p>Body text.</p>`)
	assert.Contains(t, html, `<div class="infobox-title">Character</div>`)
	assert.Contains(t, html, `<img class="infobox-image" src="assets/portrait.png" alt="portrait.png"/>`)
	assert.Contains(t, html, `<div class="infobox-row infobox-section">Basics</div>`)
	assert.Contains(t, html, `<div class="infobox-label">Name</div>`)
	assert.Contains(t, html, "<p>**Ed**</p>")
}

func TestRender_TagChipsUnwrapped(t *testing.T) {
	out := NewElement("div", "")
	newTestRenderer().Render(context.Background(), "- Traits: brave, stubborn", "note.md", out)
	html := out.HTML()

	// Each chip's paragraph wrapper is stripped so the markup is inline.
	assert.Contains(t, html, `<span class="infobox-tag">brave</span>`)
	assert.Contains(t, html, `<span class="infobox-tag">stubborn</span>`)
	assert.NotContains(t, html, "<span class=\"infobox-tag\"><p>")
}

func TestRender_FieldOrderMatchesSource(t *testing.T) {
	src := "- B: 1\n+ A: 2\n- B: 3"
	out := NewElement("div", "")
	newTestRenderer().Render(context.Background(), src, "note.md", out)
	html := out.HTML()

	first := strings.Index(html, ">B<")
	second := strings.Index(html, ">A<")
	third := strings.LastIndex(html, ">B<")
	require.True(t, first >= 0 && second >= 0 && third >= 0)
	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestRender_MissingImagePlaceholder(t *testing.T) {
	out := NewElement("div", "")
	newTestRenderer().Render(context.Background(), "![[nope.png]]", "note.md", out)
	html := out.HTML()

	assert.Contains(t, html, "image not found: nope.png")
	assert.NotContains(t, html, "<img")
	assert.NotContains(t, html, "infobox-error")
}

func TestRender_DefaultTitleWithoutDelimiter(t *testing.T) {
	out := NewElement("div", "")
	newTestRenderer().Render(context.Background(), "- A: 1", "note.md", out)
	assert.Contains(t, out.HTML(), `<div class="infobox-title">基本信息</div>`)
}

func TestRender_CaptionOverridesDefaultTitleOnly(t *testing.T) {
	r := newTestRenderer()
	r.Caption = "Info"

	out := NewElement("div", "")
	r.Render(context.Background(), "- A: 1", "note.md", out)
	assert.Contains(t, out.HTML(), `<div class="infobox-title">Info</div>`)

	out = NewElement("div", "")
	r.Render(context.Background(), "body\n---Named---\n- A: 1", "note.md", out)
	assert.Contains(t, out.HTML(), `<div class="infobox-title">Named</div>`)
}

func TestRender_ErrorLeavesSingleErrorNode(t *testing.T) {
	r := &Renderer{RichText: failingRichText{}, Links: mapResolver{}}
	out := NewElement("div", "")
	r.Render(context.Background(), "+ A: 1\n+ B: 2", "note.md", out)

	// Partial rows are discarded, one error node remains.
	children := out.Children()
	require.Len(t, children, 1)
	assert.Equal(t, "infobox-error", children[0].Class)
	assert.Contains(t, children[0].Text(), "renderer exploded")
	assert.NotContains(t, out.HTML(), "infobox-row")
}

func TestRender_PanicIsRecovered(t *testing.T) {
	r := &Renderer{RichText: fakeRichText{}, Links: panickyResolver{}}
	out := NewElement("div", "")

	assert.NotPanics(t, func() {
		r.Render(context.Background(), "![[pic.png]]", "note.md", out)
	})

	children := out.Children()
	require.Len(t, children, 1)
	assert.Equal(t, "infobox-error", children[0].Class)
	assert.Contains(t, children[0].Text(), "resolver bug")
}

func TestGoldmark_RendersMarkdown(t *testing.T) {
	html, err := Goldmark{}.Render(context.Background(), "**bold** text", "note.md")
	require.NoError(t, err)
	assert.Contains(t, html, "<strong>bold</strong>")
}

func TestUnwrapParagraph(t *testing.T) {
	assert.Equal(t, "<em>a</em>", unwrapParagraph("<p><em>a</em></p>\n"))
	assert.Equal(t, "plain", unwrapParagraph("plain"))
	// Multi-paragraph fragments are left intact.
	multi := "<p>a</p>\n<p>b</p>\n"
	assert.Equal(t, multi, unwrapParagraph(multi))
}
