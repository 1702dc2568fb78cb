package infobox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTags_ASCIIComma(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitTags("a, b,  c"))
}

func TestSplitTags_FullWidthComma(t *testing.T) {
	assert.Equal(t, []string{"勇敢", "固执"}, SplitTags("勇敢，固执"))
}

func TestSplitTags_MixedSeparators(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitTags("a，b, c"))
}

func TestSplitTags_EmptyPiecesDropped(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitTags(",a,, ,b,"))
}

func TestSplitTags_DuplicatesPreserved(t *testing.T) {
	assert.Equal(t, []string{"a", "a", "b"}, SplitTags("a, a, b"))
}

func TestSplitTags_Empty(t *testing.T) {
	assert.Empty(t, SplitTags(""))
	assert.Empty(t, SplitTags("  ,  "))
}
