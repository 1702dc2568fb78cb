// parser.go classifies attribute block lines into fields.
package infobox

import "strings"

const (
	tagPrefix       = "-"
	attributePrefix = "+"
	imageOpen       = "![["
	imageClose      = "]]"
	sectionSentinel = "==="
	labelSeparator  = ":"
)

// ParseLines walks the attribute block line by line and classifies each
// non-blank trimmed line, first match wins:
//
//  1. ![[ref]] covering the whole line records the image reference,
//  2. ===Title=== covering the whole line emits a section header,
//  3. the tag prefix emits a Tag field when a label separator is present,
//  4. the attribute prefix does the same for an Attribute field,
//  5. everything else is ignored.
//
// Only the first image line counts; later ones are dropped. Prefixed lines
// without a separator produce nothing. ParseLines never fails on malformed
// input, it degrades by omission.
func ParseLines(attrBlock string) (imageRef string, fields []Field) {
	for _, raw := range strings.Split(attrBlock, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, imageOpen) && strings.HasSuffix(line, imageClose):
			if imageRef == "" {
				imageRef = strings.TrimSpace(line[len(imageOpen) : len(line)-len(imageClose)])
			}

		case len(line) > 2*len(sectionSentinel) &&
			strings.HasPrefix(line, sectionSentinel) && strings.HasSuffix(line, sectionSentinel):
			title := line[len(sectionSentinel) : len(line)-len(sectionSentinel)]
			fields = append(fields, Field{Kind: FieldSection, Label: strings.TrimSpace(title)})

		case strings.HasPrefix(line, tagPrefix):
			if f, ok := labeledField(FieldTag, line[len(tagPrefix):]); ok {
				fields = append(fields, f)
			}

		case strings.HasPrefix(line, attributePrefix):
			if f, ok := labeledField(FieldAttribute, line[len(attributePrefix):]); ok {
				fields = append(fields, f)
			}
		}
	}
	return imageRef, fields
}

// labeledField splits rest on the first label separator. The label cannot
// contain the separator; the value may, so the remainder is kept whole.
// ok is false when rest has no separator at all.
func labeledField(kind FieldKind, rest string) (Field, bool) {
	label, value, found := strings.Cut(strings.TrimSpace(rest), labelSeparator)
	if !found {
		return Field{}, false
	}
	return Field{
		Kind:  kind,
		Label: strings.TrimSpace(label),
		Value: strings.TrimSpace(value),
	}, true
}
