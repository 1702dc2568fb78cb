// Package infobox parses a compact infobox markup dialect into a structured
// document model: free-form body text plus a titled attribute panel with an
// optional image, grouped sections, tag lists, and rich-text attributes.
package infobox

// DefaultTitle is the panel caption used when the source names none.
const DefaultTitle = "基本信息"

// FieldKind discriminates the row types an attribute block can produce.
type FieldKind int

const (
	FieldSection   FieldKind = iota // grouping header, no value
	FieldTag                        // comma-separated multi-value list
	FieldAttribute                  // single rich-text value
)

// String returns the lowercase kind name.
func (k FieldKind) String() string {
	switch k {
	case FieldSection:
		return "section"
	case FieldTag:
		return "tag"
	case FieldAttribute:
		return "attribute"
	}
	return "unknown"
}

// Field is one row-producing unit parsed from the attribute block.
type Field struct {
	Kind  FieldKind
	Label string // section title for FieldSection, field label otherwise
	Value string // raw value text, empty for FieldSection
}

// Document is the parse result for one infobox source block.
type Document struct {
	Body     string  // free-form markup, may be empty
	Title    string  // panel caption, never empty
	ImageRef string  // raw image link target, "" when the block has none
	Fields   []Field // source order, labels not deduplicated
}

// Parse builds a Document from raw infobox source. It is a pure function of
// its input and never fails: malformed lines are dropped, not reported.
func Parse(source string) *Document {
	body, title, attrBlock := Split(source)
	imageRef, fields := ParseLines(attrBlock)
	return &Document{
		Body:     body,
		Title:    title,
		ImageRef: imageRef,
		Fields:   fields,
	}
}
