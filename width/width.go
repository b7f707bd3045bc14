// Package width classifies Unicode codepoints and grapheme clusters by
// terminal column width and segments byte streams into clusters.
//
// It is the oracle every cell-mutating operation in package row consults:
// width decisions never happen twice, and never happen differently, in two
// places.
package width

import (
	"unicode"

	"github.com/rivo/uniseg"
	"github.com/unilibs/uniwidth"
)

// RuneWidth returns the terminal column width of a single codepoint: 0, 1,
// or 2. It does not account for combining marks, ZWJ fusion, or variation
// selectors attached to the rune — use ClusterWidth for a full cluster.
func RuneWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// StringWidth returns the total column width of s, grouping s into grapheme
// clusters first so combining marks, ZWJ sequences, and variation selectors
// are accounted for once per cluster rather than once per rune.
func StringWidth(s string) int {
	if s == "" {
		return 0
	}
	if !containsComplexUnicode(s) {
		return uniwidth.StringWidth(s)
	}
	total := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		total += ClusterWidth(gr.Str())
	}
	return total
}

// ClusterWidth returns the column width of one grapheme cluster per the
// contract in spec §4.1: the width of the cluster's base codepoint, except
// that a variation selector directly after the base (U+FE0F emoji
// presentation, U+FE0E text presentation) hands the width decision to
// uniwidth.StringWidth over the whole cluster. An emoji modifier does not
// change the width: a modifier sequence takes its base's width, so a
// narrow base stays at width 1.
func ClusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}

	runes := []rune(cluster)
	first := runes[0]

	if len(runes) == 1 {
		return uniwidth.RuneWidth(first)
	}

	if isZeroWidthBase(first) {
		return 0
	}

	if second := runes[1]; second == 0xFE0E || second == 0xFE0F {
		return uniwidth.StringWidth(cluster)
	}

	// ZWJ sequences and emoji-modifier sequences take the width of the
	// leading (base) codepoint; combining marks never add width.
	return uniwidth.RuneWidth(first)
}

// containsComplexUnicode reports whether s contains any codepoint that
// requires grapheme-cluster segmentation to width correctly: ZWJ, variation
// selectors, emoji modifiers, or combining marks. Plain ASCII/CJK/simple
// emoji never need the uniseg pass.
func containsComplexUnicode(s string) bool {
	for _, r := range s {
		if r == 0x200D {
			return true
		}
		if r >= 0xFE00 && r <= 0xFE0F {
			return true
		}
		if r >= 0x1F3FB && r <= 0x1F3FF {
			return true
		}
		if unicode.In(r, unicode.Mn, unicode.Me, unicode.Mc) {
			return true
		}
	}
	return false
}

func isZeroWidthBase(r rune) bool {
	if unicode.In(r, unicode.Mn, unicode.Me, unicode.Mc, unicode.Cf) {
		return true
	}
	return r == '\u200B' || r == '\uFEFF'
}

// IsCombiner reports whether r is a non-spacing combining mark that must
// attach to the preceding base cluster rather than start a new one.
func IsCombiner(r rune) bool {
	return unicode.In(r, unicode.Mn, unicode.Me, unicode.Mc)
}

// IsZWJ reports whether r is the zero-width joiner (U+200D), which fuses
// adjacent emoji clusters into one.
func IsZWJ(r rune) bool {
	return r == 0x200D
}

// IsVariationSelector reports whether r is a variation selector
// (U+FE00–U+FE0F), which changes the presentation (and possibly the width)
// of the preceding base codepoint without occupying its own column.
func IsVariationSelector(r rune) bool {
	return r >= 0xFE00 && r <= 0xFE0F
}

// IsEmojiModifier reports whether r is a Fitzpatrick skin-tone emoji
// modifier (U+1F3FB–U+1F3FF).
func IsEmojiModifier(r rune) bool {
	return r >= 0x1F3FB && r <= 0x1F3FF
}
