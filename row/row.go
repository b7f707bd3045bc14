// Package row implements the logical terminal row: a UTF-8 buffer of
// grapheme clusters plus a coalesced run-length encoding of per-column
// attributes, and every mutating operation the emulator needs (append,
// replace, insert, remove, erase, resize, substr, split/merge/remove of a
// single cluster).
//
// Columns are the unit every public method addresses in; clusters (not
// bytes, not runes) are the atomic unit of the stored text, and no
// operation ever splits a cluster's base from its combining marks except
// SplitChar, per spec §3.1.
package row

import (
	"bytes"
	"sort"

	"github.com/xtermgo/xtermcore/cellattr"
	"github.com/xtermgo/xtermcore/width"
)

// run is one attribute range in column space: [start, end] inclusive. A run
// is only ever stored when its attrs differ from the zero value —
// cellattr.Attributes{} *is* the implicit default fill spec §3.3 describes,
// so "no run covers this column" and "a run with zero attrs covers this
// column" are the same state and are never both represented.
type run struct {
	start, end int
	attrs      cellattr.Attributes
}

// Row is the row data model described in spec §3.3.
type Row struct {
	buf      []byte
	columns  int
	clusters int
	ranges   []run
}

// New returns an empty row.
func New() *Row {
	return &Row{}
}

// Columns returns the total column count.
func (r *Row) Columns() int { return r.columns }

// Clusters returns the cluster count, independent of bytes and columns.
func (r *Row) Clusters() int { return r.clusters }

// RangeCount returns the number of stored attribute runs (for tests and
// diagnostics).
func (r *Row) RangeCount() int { return len(r.ranges) }

// String implements fmt.Stringer, returning the row's full text.
func (r *Row) String() string { return string(r.buf) }

// Clone returns an independent copy of r.
func (r *Row) Clone() *Row {
	c := &Row{
		buf:      append([]byte(nil), r.buf...),
		columns:  r.columns,
		clusters: r.clusters,
		ranges:   append([]run(nil), r.ranges...),
	}
	return c
}

// clusterSpan describes one stored cluster's byte and column extents, as
// found by scan.
type clusterSpan struct {
	byteStart, byteEnd int // byteEnd exclusive
	colStart, colEnd   int // inclusive; for a zero-width cluster colEnd == colStart-1
	width              int
}

// scan walks the row's clusters from scratch. It is the single source of
// truth every column-addressed operation below uses to translate a column
// into a byte range; this mirrors the linear scan spec §3.5 documents for
// updateCursor, generalized to every op that needs it.
func (r *Row) scan() []clusterSpan {
	if len(r.buf) == 0 {
		return nil
	}
	spans := make([]clusterSpan, 0, r.clusters)
	col := 0
	it := width.Segment(string(r.buf))
	for it.Next() {
		c := it.Cluster()
		spans = append(spans, clusterSpan{
			byteStart: c.Start,
			byteEnd:   c.End,
			colStart:  col,
			colEnd:    col + c.Width - 1,
			width:     c.Width,
		})
		col += c.Width
	}
	return spans
}

func blanks(n int) []byte {
	if n <= 0 {
		return nil
	}
	return bytes.Repeat([]byte{' '}, n)
}

// --- attribute run bookkeeping -------------------------------------------

// paintRange sets columns [start, end] (inclusive) to attrs, splitting or
// trimming any overlapping existing runs, then coalesces. Passing the zero
// Attributes clears the span back to the implicit default.
func (r *Row) paintRange(start, end int, attrs cellattr.Attributes) {
	if start > end {
		return
	}
	out := make([]run, 0, len(r.ranges)+2)
	for _, rn := range r.ranges {
		if rn.end < start || rn.start > end {
			out = append(out, rn)
			continue
		}
		if rn.start < start {
			out = append(out, run{rn.start, start - 1, rn.attrs})
		}
		if rn.end > end {
			out = append(out, run{end + 1, rn.end, rn.attrs})
		}
	}
	if !(attrs == cellattr.Attributes{}) {
		out = append(out, run{start, end, attrs})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].start < out[j].start })
	r.ranges = out
	r.coalesce()
}

// coalesce merges adjacent runs that share identical attrs, per spec §3.3:
// "Ranges NEVER touch if their attributes are equal".
func (r *Row) coalesce() {
	if len(r.ranges) < 2 {
		return
	}
	out := r.ranges[:1]
	for _, rn := range r.ranges[1:] {
		last := &out[len(out)-1]
		if last.attrs == rn.attrs && last.end+1 == rn.start {
			last.end = rn.end
		} else {
			out = append(out, rn)
		}
	}
	r.ranges = out
}

// shiftRanges applies the range-mutation rule of spec §4.2: a mutation at
// column k with delta d shifts every range with start > k by d, shrinks a
// range with start <= k < end by clamping end += d, and deletes ranges that
// become empty.
func (r *Row) shiftRanges(k, delta int) {
	out := make([]run, 0, len(r.ranges))
	for _, rn := range r.ranges {
		switch {
		case rn.start > k:
			rn.start += delta
			rn.end += delta
		case rn.start <= k && k < rn.end:
			rn.end += delta
		}
		if rn.end >= rn.start {
			out = append(out, rn)
		}
	}
	r.ranges = out
	r.coalesce()
}

// truncateRanges drops or trims ranges beyond newColumns.
func (r *Row) truncateRanges(newColumns int) {
	out := make([]run, 0, len(r.ranges))
	for _, rn := range r.ranges {
		if rn.start >= newColumns {
			continue
		}
		if rn.end >= newColumns {
			rn.end = newColumns - 1
		}
		out = append(out, rn)
	}
	r.ranges = out
}

// attrsAt returns the attributes in effect at col, or the zero value if col
// is not covered by any run.
func (r *Row) attrsAt(col int) cellattr.Attributes {
	for _, rn := range r.ranges {
		if col >= rn.start && col <= rn.end {
			return rn.attrs
		}
	}
	return cellattr.Attributes{}
}

// --- mutators --------------------------------------------------------------

// appendCluster appends one cluster of the given width to the tail of the
// row, independent of whether it originated from Append or from internal
// padding.
func (r *Row) appendCluster(attrs cellattr.Attributes, cluster string, w int) {
	start := r.columns
	r.buf = append(r.buf, cluster...)
	r.clusters++
	r.columns += w
	switch w {
	case 2:
		r.paintRange(start, start+1, attrs.WithFlag(cellattr.DblWidthChar))
	case 1:
		r.paintRange(start, start, attrs)
	}
}

// Append appends one cluster (a base codepoint of the given column width)
// to the end of the row, per spec §4.2. Width must be 1 or 2.
func (r *Row) Append(attrs cellattr.Attributes, cp rune, w int) {
	if w != 1 && w != 2 {
		w = 1
	}
	r.appendCluster(attrs, string(cp), w)
}

// AppendCombiner attaches a combining mark, joiner, or variation selector to
// the most recently appended cluster, per spec §3.1/§3.4: combiners are
// always attached to the preceding base cluster and never become standalone
// cluster heads. It is only valid immediately after Append (or another
// AppendCombiner) wrote the cluster it should attach to. AppendCombinerAt
// uses it when the addressed column is at or past the end of the row.
func (r *Row) AppendCombiner(cp rune) {
	r.buf = append(r.buf, string(cp)...)
}

// AppendCombinerAt attaches a combining mark, joiner, or variation selector
// to whichever cluster currently occupies col, per spec §3.1/§3.4: a
// combiner is always bundled into its preceding base cluster's bytes and
// never becomes a standalone cluster. If col addresses the end of the row
// (no cluster there yet), this behaves like AppendCombiner on the most
// recently appended cluster.
func (r *Row) AppendCombinerAt(col int, cp rune) {
	if col >= r.columns {
		r.AppendCombiner(cp)
		return
	}
	for _, sp := range r.scan() {
		if col >= sp.colStart && col <= sp.colEnd {
			rebuilt := append([]byte{}, r.buf[:sp.byteEnd]...)
			rebuilt = append(rebuilt, string(cp)...)
			rebuilt = append(rebuilt, r.buf[sp.byteEnd:]...)
			r.buf = rebuilt
			return
		}
	}
}

// padTo appends default-attribute blank columns until the row reaches col
// columns.
func (r *Row) padTo(col int) {
	for r.columns < col {
		r.appendCluster(cellattr.Attributes{}, " ", 1)
	}
}

// alignedSpan expands [loStart, loEnd] to the smallest column range that
// does not cut any cluster in half, returning the aligned column bounds and
// the corresponding byte range.
func (r *Row) alignedSpan(spans []clusterSpan, loStart, loEnd int) (colStart, colEnd, byteStart, byteEnd int) {
	colStart, colEnd = loStart, loEnd
	for changed := true; changed; {
		changed = false
		for _, sp := range spans {
			if sp.width == 0 || sp.colEnd < colStart || sp.colStart > colEnd {
				continue
			}
			if sp.colStart < colStart {
				colStart = sp.colStart
				changed = true
			}
			if sp.colEnd > colEnd {
				colEnd = sp.colEnd
				changed = true
			}
		}
	}
	byteStart, byteEnd = -1, -1
	for _, sp := range spans {
		if sp.width == 0 || sp.colEnd < colStart || sp.colStart > colEnd {
			continue
		}
		if byteStart == -1 || sp.byteStart < byteStart {
			byteStart = sp.byteStart
		}
		if sp.byteEnd > byteEnd {
			byteEnd = sp.byteEnd
		}
	}
	if byteStart == -1 {
		byteStart, byteEnd = 0, 0
	}
	return
}

// Replace overwrites the row starting at column x with one cluster of
// width w, per spec §4.2: writing a double-width cluster over single-width
// content consumes two columns (and two clusters if present); writing a
// single-width cluster into the right half of a double-width cluster turns
// the other half into a blank; columns are preserved by padding.
func (r *Row) Replace(x int, attrs cellattr.Attributes, cp rune, w int) {
	if w != 1 && w != 2 {
		w = 1
	}
	if x < 0 {
		return
	}
	if x >= r.columns {
		r.padTo(x)
		r.appendCluster(attrs, string(cp), w)
		return
	}

	endCol := x + w - 1
	spans := r.scan()
	colStart, colEnd, byteStart, byteEnd := r.alignedSpan(spans, x, endCol)

	oldClusterCount := 0
	for _, sp := range spans {
		if sp.width > 0 && sp.colStart >= colStart && sp.colEnd <= colEnd {
			oldClusterCount++
		}
	}

	var newBuf []byte
	newBuf = append(newBuf, blanks(x-colStart)...)
	newBuf = append(newBuf, string(cp)...)
	newBuf = append(newBuf, blanks(colEnd-endCol)...)

	rebuilt := append([]byte{}, r.buf[:byteStart]...)
	rebuilt = append(rebuilt, newBuf...)
	rebuilt = append(rebuilt, r.buf[byteEnd:]...)
	r.buf = rebuilt

	newClusterCount := (x - colStart) + 1 + (colEnd - endCol)
	r.clusters += newClusterCount - oldClusterCount

	r.paintRange(colStart, colEnd, cellattr.Attributes{})
	if w == 2 {
		r.paintRange(x, x+1, attrs.WithFlag(cellattr.DblWidthChar))
	} else {
		r.paintRange(x, x, attrs)
	}
}

// splitSpan converts the cluster described by sp into as many single-width
// blank clusters as it occupied, clearing any DblWidthChar marker on the
// run that covered it. A zero-width cluster is removed and contributes no
// blank column — see the Open Question decision in SPEC_FULL.md §10.
func (r *Row) splitSpan(sp clusterSpan) {
	if sp.width <= 0 {
		r.buf = append(r.buf[:sp.byteStart], r.buf[sp.byteEnd:]...)
		r.clusters--
		return
	}
	attrs := r.attrsAt(sp.colStart).WithoutFlag(cellattr.DblWidthChar)

	rebuilt := append([]byte{}, r.buf[:sp.byteStart]...)
	rebuilt = append(rebuilt, blanks(sp.width)...)
	rebuilt = append(rebuilt, r.buf[sp.byteEnd:]...)
	r.buf = rebuilt
	r.clusters += sp.width - 1

	r.paintRange(sp.colStart, sp.colEnd, attrs)
}

// SplitChar converts the cluster at column col into as many single-width
// blank clusters as it occupied. Used by Erase/Remove/Insert to clear a
// double-width cluster before cutting through one of its halves.
func (r *Row) SplitChar(col int) {
	for _, sp := range r.scan() {
		if col >= sp.colStart && col <= sp.colEnd {
			r.splitSpan(sp)
			return
		}
	}
}

// MergeChars removes the cluster at column col (and, since combiners are
// always already bundled into their base cluster in this row model, any
// trailing combiners that were part of it) without changing columns — the
// caller is responsible for compensating columns, per spec §4.2.
func (r *Row) MergeChars(col int) {
	for _, sp := range r.scan() {
		if (sp.width > 0 && col >= sp.colStart && col <= sp.colEnd) ||
			(sp.width <= 0 && sp.colStart == col) {
			r.buf = append(r.buf[:sp.byteStart], r.buf[sp.byteEnd:]...)
			r.clusters--
			return
		}
	}
}

// RemoveChar removes the cluster at column col entirely, decrementing
// clusters by one and columns by the cluster's width.
func (r *Row) RemoveChar(col int) {
	for _, sp := range r.scan() {
		if col >= sp.colStart && col <= sp.colEnd {
			r.buf = append(r.buf[:sp.byteStart], r.buf[sp.byteEnd:]...)
			r.clusters--
			r.columns -= sp.width
			return
		}
	}
}

// Insert inserts one blank single-width column at col, per spec §4.2. If
// col falls within a double-width cluster, that cluster becomes two blanks
// first (clearing the run's DblWidthChar marker); ranges entirely after col
// shift by one; a run straddling col splits.
func (r *Row) Insert(col int) {
	if col < 0 {
		col = 0
	}
	if col > r.columns {
		col = r.columns
	}
	for _, sp := range r.scan() {
		if sp.width == 2 && col == sp.colStart+1 {
			r.splitSpan(sp)
			break
		}
	}

	bytePos := len(r.buf)
	for _, sp := range r.scan() {
		if sp.colStart == col {
			bytePos = sp.byteStart
			break
		}
	}

	rebuilt := append([]byte{}, r.buf[:bytePos]...)
	rebuilt = append(rebuilt, ' ')
	rebuilt = append(rebuilt, r.buf[bytePos:]...)
	r.buf = rebuilt
	r.clusters++
	r.columns++
	r.shiftRanges(col, 1)
}

// Remove removes one column at col, per spec §4.2. If col addresses either
// half of a double-width cluster, that cluster is split into independent
// blanks first so only a true single column is ever removed, and no
// half-width orphan can persist (spec §3.4).
func (r *Row) Remove(col int) {
	if col < 0 || col >= r.columns {
		return
	}
	for _, sp := range r.scan() {
		if sp.width == 2 && col >= sp.colStart && col <= sp.colEnd {
			r.splitSpan(sp)
			break
		}
	}
	r.RemoveChar(col)
	r.shiftRanges(col, -1)
}

// Erase replaces columns [start, end) with default-attribute blanks, per
// spec §4.2. Double-width clusters straddling either boundary are split
// first so the erase never leaves a half-width orphan.
func (r *Row) Erase(start, end int) {
	if end > r.columns {
		end = r.columns
	}
	if start < 0 {
		start = 0
	}
	if start >= end {
		return
	}

	for _, sp := range r.scan() {
		if sp.width == 2 && sp.colStart < start && sp.colEnd >= start {
			r.splitSpan(sp)
			break
		}
	}
	for _, sp := range r.scan() {
		if sp.width == 2 && sp.colStart < end && sp.colEnd >= end {
			r.splitSpan(sp)
			break
		}
	}

	spans := r.scan()
	byteLo, byteHi := len(r.buf), 0
	count := 0
	for _, sp := range spans {
		if sp.colStart >= start && sp.colEnd < end && sp.colEnd >= sp.colStart {
			if sp.byteStart < byteLo {
				byteLo = sp.byteStart
			}
			if sp.byteEnd > byteHi {
				byteHi = sp.byteEnd
			}
			count++
		}
	}
	if count > 0 {
		rebuilt := append([]byte{}, r.buf[:byteLo]...)
		rebuilt = append(rebuilt, blanks(end-start)...)
		rebuilt = append(rebuilt, r.buf[byteHi:]...)
		r.buf = rebuilt
		r.clusters += (end - start) - count
	}
	r.paintRange(start, end-1, cellattr.Attributes{})
}

// Resize truncates or extends the row to newColumns, per spec §4.2.
// Truncation that would sever a double-width cluster converts its left
// half to a blank (by splitting it first, then dropping the orphaned
// right-half blank along with everything past newColumns).
func (r *Row) Resize(newColumns int) {
	if newColumns < 0 {
		newColumns = 0
	}
	if newColumns == r.columns {
		return
	}
	if newColumns > r.columns {
		r.padTo(newColumns)
		return
	}

	for _, sp := range r.scan() {
		if sp.width == 2 && sp.colStart < newColumns && sp.colEnd >= newColumns {
			r.splitSpan(sp)
			break
		}
	}

	spans := r.scan()
	byteCut := len(r.buf)
	clustersCut := 0
	for _, sp := range spans {
		if sp.colStart >= newColumns {
			if sp.byteStart < byteCut {
				byteCut = sp.byteStart
			}
			clustersCut++
		}
	}
	r.buf = r.buf[:byteCut]
	r.clusters -= clustersCut
	r.columns = newColumns
	r.truncateRanges(newColumns)
}

// Substr returns the UTF-8 bytes of clusters whose columns intersect
// [start, end). It never splits a cluster: a cluster whose left column is
// start-1 (i.e. start falls on its right half) is excluded; a cluster
// starting exactly at end (i.e. end falls on its left half) is included.
// With no end argument, end defaults to r.Columns().
func (r *Row) Substr(start int, end ...int) string {
	e := r.columns
	if len(end) > 0 {
		e = end[0]
	}
	if e > r.columns {
		e = r.columns
	}
	if start < 0 {
		start = 0
	}
	if start >= e {
		return ""
	}

	byteLo, byteHi := -1, 0
	for _, sp := range r.scan() {
		if sp.width == 0 {
			continue
		}
		include := sp.colStart < e && sp.colEnd >= start
		if sp.width == 2 && start == sp.colStart+1 {
			include = false
		}
		if sp.width == 2 && sp.colStart == e {
			include = true
		}
		if !include {
			continue
		}
		if byteLo == -1 {
			byteLo = sp.byteStart
		}
		byteHi = sp.byteEnd
	}
	if byteLo == -1 {
		return ""
	}
	return string(r.buf[byteLo:byteHi])
}
