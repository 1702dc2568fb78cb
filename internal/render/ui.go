// ui.go provides the minimal element tree the renderer builds into.
package render

import (
	"html"
	"strings"
)

// Container is the output surface the renderer needs: nested elements, text,
// attributes, and pre-rendered HTML. Keeping the renderer behind this
// interface means documents can be rendered headless in tests, with no
// display toolkit anywhere near the parser or the IR.
type Container interface {
	// Child appends a nested element and returns it. class may be empty.
	Child(tag, class string) Container
	// SetText replaces the element's content with escaped text.
	SetText(text string)
	// SetAttr sets an attribute, overwriting any previous value.
	SetAttr(key, value string)
	// AppendHTML appends pre-rendered HTML markup verbatim.
	AppendHTML(markup string)
	// Empty removes all of the element's content.
	Empty()
}

// Element is the in-memory HTML implementation of Container.
type Element struct {
	Tag   string
	Class string

	attrs []attribute
	kids  []node
}

type attribute struct {
	key, value string
}

// node is one content item of an element: a child element, an escaped text
// run, or a raw HTML run.
type node struct {
	elem *Element
	text string
	raw  string
}

// voidTags render without a closing tag.
var voidTags = map[string]bool{
	"br":   true,
	"hr":   true,
	"img":  true,
	"link": true,
	"meta": true,
}

// NewElement creates a detached element.
func NewElement(tag, class string) *Element {
	return &Element{Tag: tag, Class: class}
}

// Child implements Container.
func (e *Element) Child(tag, class string) Container {
	return e.ChildElement(tag, class)
}

// ChildElement is Child with a concrete return type, for callers that need
// to keep walking the tree.
func (e *Element) ChildElement(tag, class string) *Element {
	child := NewElement(tag, class)
	e.kids = append(e.kids, node{elem: child})
	return child
}

// SetText implements Container.
func (e *Element) SetText(text string) {
	e.kids = []node{{text: text}}
}

// SetAttr implements Container.
func (e *Element) SetAttr(key, value string) {
	for i := range e.attrs {
		if e.attrs[i].key == key {
			e.attrs[i].value = value
			return
		}
	}
	e.attrs = append(e.attrs, attribute{key: key, value: value})
}

// AppendHTML implements Container.
func (e *Element) AppendHTML(markup string) {
	e.kids = append(e.kids, node{raw: markup})
}

// Empty implements Container.
func (e *Element) Empty() {
	e.kids = nil
}

// Attr returns the value of an attribute, or "" when unset.
func (e *Element) Attr(key string) string {
	for _, a := range e.attrs {
		if a.key == key {
			return a.value
		}
	}
	return ""
}

// Children returns the element's child elements in order, skipping text and
// raw HTML runs.
func (e *Element) Children() []*Element {
	var children []*Element
	for _, k := range e.kids {
		if k.elem != nil {
			children = append(children, k.elem)
		}
	}
	return children
}

// Text returns the concatenated text runs of the element, not recursing
// into children.
func (e *Element) Text() string {
	var sb strings.Builder
	for _, k := range e.kids {
		sb.WriteString(k.text)
	}
	return sb.String()
}

// FindByID returns the first element in the subtree whose id attribute
// matches, or nil.
func (e *Element) FindByID(id string) *Element {
	if e.Attr("id") == id {
		return e
	}
	for _, k := range e.kids {
		if k.elem == nil {
			continue
		}
		if found := k.elem.FindByID(id); found != nil {
			return found
		}
	}
	return nil
}

// RemoveByID removes the first direct or nested child element whose id
// attribute matches. Reports whether anything was removed.
func (e *Element) RemoveByID(id string) bool {
	for i, k := range e.kids {
		if k.elem == nil {
			continue
		}
		if k.elem.Attr("id") == id {
			e.kids = append(e.kids[:i], e.kids[i+1:]...)
			return true
		}
		if k.elem.RemoveByID(id) {
			return true
		}
	}
	return false
}

// InnerHTML serializes the element's content without its own tag.
func (e *Element) InnerHTML() string {
	var sb strings.Builder
	for _, k := range e.kids {
		switch {
		case k.elem != nil:
			k.elem.write(&sb)
		case k.raw != "":
			sb.WriteString(k.raw)
		default:
			sb.WriteString(html.EscapeString(k.text))
		}
	}
	return sb.String()
}

// HTML serializes the element and its subtree.
func (e *Element) HTML() string {
	var sb strings.Builder
	e.write(&sb)
	return sb.String()
}

func (e *Element) write(sb *strings.Builder) {
	sb.WriteString("<")
	sb.WriteString(e.Tag)
	if e.Class != "" {
		sb.WriteString(` class="`)
		sb.WriteString(html.EscapeString(e.Class))
		sb.WriteString(`"`)
	}
	for _, a := range e.attrs {
		sb.WriteString(" ")
		sb.WriteString(a.key)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(a.value))
		sb.WriteString(`"`)
	}
	if voidTags[e.Tag] {
		sb.WriteString("/>")
		return
	}
	sb.WriteString(">")
	for _, k := range e.kids {
		switch {
		case k.elem != nil:
			k.elem.write(sb)
		case k.raw != "":
			sb.WriteString(k.raw)
		default:
			sb.WriteString(html.EscapeString(k.text))
		}
	}
	sb.WriteString("</")
	sb.WriteString(e.Tag)
	sb.WriteString(">")
}
