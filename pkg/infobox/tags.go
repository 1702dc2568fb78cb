// tags.go splits a Tag field value into individual tag strings.
package infobox

import "strings"

// SplitTags splits a raw tag value on ASCII or full-width commas, trimming
// each piece and dropping empties. Order and duplicates are preserved. An
// empty value yields nil.
func SplitTags(value string) []string {
	var tags []string
	for _, piece := range strings.FieldsFunc(value, isTagSeparator) {
		if p := strings.TrimSpace(piece); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

func isTagSeparator(r rune) bool {
	return r == ',' || r == '，'
}
