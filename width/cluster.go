package width

import "github.com/rivo/uniseg"

// Cluster describes one grapheme cluster found by Segment: its byte range
// within the original string, how many codepoints it contains, and its
// column width.
type Cluster struct {
	Start, End int // byte offsets into the segmented string, End exclusive
	Runes      int // codepoint count, including combiners/joiners/modifiers
	Width      int // column width per ClusterWidth
}

// Iterator walks a string one grapheme cluster at a time.
type Iterator struct {
	gr  *uniseg.Graphemes
	pos int
}

// Segment returns an Iterator over the grapheme clusters of s. Callers must
// never index s by codepoint directly; Segment is the only supported way to
// walk cluster boundaries, so combining marks are never split from their
// base.
func Segment(s string) *Iterator {
	return &Iterator{gr: uniseg.NewGraphemes(s)}
}

// Next advances to the next cluster, returning false when the string is
// exhausted.
func (it *Iterator) Next() bool {
	return it.gr.Next()
}

// Cluster returns the current cluster's description. Valid only after a
// call to Next that returned true.
func (it *Iterator) Cluster() Cluster {
	str := it.gr.Str()
	start, end := it.gr.Positions()
	return Cluster{
		Start: start,
		End:   end,
		Runes: len([]rune(str)),
		Width: ClusterWidth(str),
	}
}

// Str returns the raw bytes of the current cluster.
func (it *Iterator) Str() string {
	return it.gr.Str()
}
