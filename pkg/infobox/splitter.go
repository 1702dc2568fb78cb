// splitter.go splits raw infobox source into body, title, and attribute block.
package infobox

import (
	"regexp"
	"strings"
)

// delimiterPattern matches a whole line of the form ---label--- with three or
// more dashes on each side and a non-empty label. Only surrounding spaces and
// tabs are allowed on the line; a trailing \r keeps CRLF documents working.
var delimiterPattern = regexp.MustCompile(`(?m)^[ \t]*-{3,}(.+?)-{3,}[ \t\r]*$`)

// bodyMarker is the delimiter label that promotes the following segment to
// body text instead of treating the label as the panel title.
const bodyMarker = "正文"

// Split divides source into free-form body text, the panel title, and the raw
// attribute block. Delimiter lines are ---label--- lines; how the segments
// around them are assigned depends on where the first delimiter sits:
//
//   - no delimiter at all: the whole source is the attribute block,
//   - first label is the body marker: the next segment is the body, and a
//     second delimiter (if any) supplies title and attribute block,
//   - anything else: text before the delimiter is the body, the label is the
//     title, and the segment after it is the attribute block.
//
// Later delimiters beyond the ones consumed above are discarded. All returned
// segments are trimmed, and a blank title falls back to DefaultTitle.
func Split(source string) (body, title, attrBlock string) {
	title = DefaultTitle
	segments, labels := splitDelimited(source)

	switch {
	case len(labels) == 0:
		attrBlock = strings.TrimSpace(source)

	case strings.TrimSpace(labels[0]) == bodyMarker:
		body = strings.TrimSpace(segments[1])
		if len(labels) > 1 {
			if t := strings.TrimSpace(labels[1]); t != "" {
				title = t
			}
			attrBlock = strings.TrimSpace(segments[2])
		}

	default:
		body = strings.TrimSpace(segments[0])
		if t := strings.TrimSpace(labels[0]); t != "" {
			title = t
		}
		attrBlock = strings.TrimSpace(segments[1])
	}

	return body, title, attrBlock
}

// splitDelimited splits source on delimiter lines, keeping the captured
// labels. len(segments) is always len(labels)+1; segments[i] precedes
// labels[i] and the final segment follows the last delimiter.
func splitDelimited(source string) (segments, labels []string) {
	matches := delimiterPattern.FindAllStringSubmatchIndex(source, -1)
	prev := 0
	for _, m := range matches {
		segments = append(segments, source[prev:m[0]])
		labels = append(labels, source[m[2]:m[3]])
		prev = m[1]
	}
	segments = append(segments, source[prev:])
	return segments, labels
}
