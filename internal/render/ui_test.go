package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElement_HTML(t *testing.T) {
	root := NewElement("div", "outer")
	root.Child("span", "inner").SetText("hi")
	assert.Equal(t, `<div class="outer"><span class="inner">hi</span></div>`, root.HTML())
}

func TestElement_TextIsEscaped(t *testing.T) {
	e := NewElement("div", "")
	e.SetText(`<b> & "quote"`)
	assert.Equal(t, `<div>&lt;b&gt; &amp; &#34;quote&#34;</div>`, e.HTML())
}

func TestElement_AppendHTMLIsVerbatim(t *testing.T) {
	e := NewElement("div", "")
	e.AppendHTML("<p>raw</p>")
	assert.Equal(t, "<div><p>raw</p></div>", e.HTML())
}

func TestElement_SetAttrOverwrites(t *testing.T) {
	e := NewElement("img", "")
	e.SetAttr("src", "a.png")
	e.SetAttr("src", "b.png")
	assert.Equal(t, "b.png", e.Attr("src"))
	assert.Equal(t, `<img src="b.png"/>`, e.HTML())
}

func TestElement_SetTextReplacesContent(t *testing.T) {
	e := NewElement("div", "")
	e.Child("span", "")
	e.SetText("only text")
	assert.Equal(t, "<div>only text</div>", e.HTML())
	assert.Empty(t, e.Children())
}

func TestElement_Empty(t *testing.T) {
	e := NewElement("div", "")
	e.Child("span", "")
	e.AppendHTML("<p>x</p>")
	e.Empty()
	assert.Equal(t, "<div></div>", e.HTML())
}

func TestElement_FindAndRemoveByID(t *testing.T) {
	root := NewElement("html", "")
	head := root.ChildElement("head", "")
	link := head.ChildElement("link", "")
	link.SetAttr("id", "the-link")

	found := root.FindByID("the-link")
	require.NotNil(t, found)
	assert.Equal(t, "link", found.Tag)

	assert.True(t, root.RemoveByID("the-link"))
	assert.Nil(t, root.FindByID("the-link"))
	assert.False(t, root.RemoveByID("the-link"))
}

func TestElement_InnerHTML(t *testing.T) {
	e := NewElement("div", "wrap")
	e.Child("span", "").SetText("a")
	e.AppendHTML("<i>b</i>")
	assert.Equal(t, "<span>a</span><i>b</i>", e.InnerHTML())
}
