package row

import (
	"testing"

	"github.com/xtermgo/xtermcore/cellattr"
)

func TestAppendTracksColumnsAndClusters(t *testing.T) {
	r := New()
	r.Append(cellattr.Attributes{}, 'a', 1)
	r.Append(cellattr.Attributes{}, 'b', 1)
	r.Append(cellattr.Attributes{}, '世', 2)
	r.Append(cellattr.Attributes{}, 'c', 1)

	if r.Columns() != 5 {
		t.Errorf("Columns() = %d, want 5", r.Columns())
	}
	if r.Clusters() != 4 {
		t.Errorf("Clusters() = %d, want 4", r.Clusters())
	}
	if got, want := r.Substr(0, 5), "ab世c"; got != want {
		t.Errorf("Substr(0,5) = %q, want %q", got, want)
	}
}

func TestAppendCombinerAtAttachesToClusterInPlace(t *testing.T) {
	r := New()
	r.Append(cellattr.Attributes{}, 'a', 1)
	r.Append(cellattr.Attributes{}, 'e', 1)
	r.Append(cellattr.Attributes{}, 'c', 1)

	r.AppendCombinerAt(1, '́') // combining acute accent onto "e"

	if r.Columns() != 3 {
		t.Fatalf("Columns() = %d, want 3 (combiner must not add a column)", r.Columns())
	}
	if r.Clusters() != 3 {
		t.Fatalf("Clusters() = %d, want 3 (combiner must not add a cluster)", r.Clusters())
	}
	if got, want := r.String(), "aéc"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAppendCombinerAtEndActsLikeAppendCombiner(t *testing.T) {
	r := New()
	r.Append(cellattr.Attributes{}, 'e', 1)
	r.AppendCombinerAt(r.Columns(), '́')

	if got, want := r.String(), "é"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if r.Columns() != 1 {
		t.Errorf("Columns() = %d, want 1", r.Columns())
	}
}

func TestAppendDoubleWidthRunCoversBothColumns(t *testing.T) {
	r := New()
	r.Append(cellattr.Attributes{}, '世', 2)

	if r.RangeCount() != 1 {
		t.Fatalf("RangeCount() = %d, want 1", r.RangeCount())
	}
	left := r.attrsAt(0)
	right := r.attrsAt(1)
	if !left.Equal(right) {
		t.Fatalf("left/right half attrs differ: %+v vs %+v", left, right)
	}
	if !left.Flags.Has(cellattr.DblWidthChar) {
		t.Fatalf("expected DblWidthChar set on double-width run")
	}
}

func TestRemoveSplitsDoubleWidthLeftHalf(t *testing.T) {
	r := New()
	r.Append(cellattr.Attributes{}, 'a', 1)
	r.Append(cellattr.Attributes{}, '世', 2)
	r.AppendCombiner(0x0301) // attach a combiner to '世' to match the scenario's 2-combiner cluster
	r.AppendCombiner(0x0301)
	r.Append(cellattr.Attributes{}, 'c', 1)

	if r.Columns() != 4 || r.Clusters() != 3 {
		t.Fatalf("setup: Columns=%d Clusters=%d, want 4,3", r.Columns(), r.Clusters())
	}

	r.Remove(1)

	if r.Columns() != 3 {
		t.Errorf("Columns() = %d, want 3", r.Columns())
	}
	if r.Clusters() != 3 {
		t.Errorf("Clusters() = %d, want 3", r.Clusters())
	}
	if got, want := r.Substr(0, 3), "a c"; got != want {
		t.Errorf("Substr(0,3) = %q, want %q", got, want)
	}
}

func TestEraseClearsExactlyCoveredRun(t *testing.T) {
	r := New()
	r.Append(cellattr.Attributes{}, 'a', 1)
	r.Append(cellattr.Attributes{}, 'b', 1)
	r.Append(cellattr.Attributes{}, 'c', 1)
	attrs := cellattr.Attributes{Flags: cellattr.Bold}
	r.paintRange(0, 0, attrs)

	if r.RangeCount() != 1 {
		t.Fatalf("setup: RangeCount() = %d, want 1", r.RangeCount())
	}

	r.Erase(0, 1)

	if got, want := r.String(), " bc"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if r.RangeCount() != 0 {
		t.Errorf("RangeCount() = %d, want 0", r.RangeCount())
	}
}

func TestSplitCharClearsDoubleWidthFlag(t *testing.T) {
	r := New()
	r.Append(cellattr.Attributes{}, 'a', 1)
	r.Append(cellattr.Attributes{Flags: cellattr.Bold}, '世', 2)
	r.Append(cellattr.Attributes{}, 'c', 1)

	r.SplitChar(1)

	if got, want := r.String(), "a  c"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if r.Columns() != 4 {
		t.Errorf("Columns() = %d, want 4", r.Columns())
	}
	if r.Clusters() != 4 {
		t.Errorf("Clusters() = %d, want 4", r.Clusters())
	}
	for _, rn := range r.ranges {
		if rn.attrs.Flags.Has(cellattr.DblWidthChar) {
			t.Fatalf("DblWidthChar flag survived split: %+v", rn)
		}
	}
	bold := r.attrsAt(1)
	if !bold.Flags.Has(cellattr.Bold) {
		t.Errorf("expected Bold preserved across split, got %+v", bold)
	}
}

func TestInsertSplitsStraddledDoubleWidthCluster(t *testing.T) {
	r := New()
	r.Append(cellattr.Attributes{}, 'a', 1)
	r.Append(cellattr.Attributes{}, '世', 2)
	r.Append(cellattr.Attributes{}, 'c', 1)

	r.Insert(2) // column 2 is the right half of '世'

	// the split turns '世' into two single-width blanks, then a new blank is
	// inserted at column 2 (between the two halves)
	if got, want := r.String(), "a   c"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if r.Columns() != 5 {
		t.Errorf("Columns() = %d, want 5", r.Columns())
	}
}

func TestResizeTruncatesAndPads(t *testing.T) {
	r := New()
	r.Append(cellattr.Attributes{}, 'a', 1)
	r.Append(cellattr.Attributes{}, 'b', 1)
	r.Append(cellattr.Attributes{}, 'c', 1)

	r.Resize(2)
	if got, want := r.String(), "ab"; got != want {
		t.Errorf("String() after shrink = %q, want %q", got, want)
	}

	r.Resize(4)
	if got, want := r.String(), "ab  "; got != want {
		t.Errorf("String() after grow = %q, want %q", got, want)
	}
	if r.Columns() != 4 {
		t.Errorf("Columns() = %d, want 4", r.Columns())
	}
}

func TestResizeSplitsDoubleWidthAtBoundary(t *testing.T) {
	r := New()
	r.Append(cellattr.Attributes{}, 'a', 1)
	r.Append(cellattr.Attributes{}, '世', 2)

	r.Resize(2) // cuts '世' in half: only its left column survives, as a blank

	if got, want := r.String(), "a "; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if r.Clusters() != 2 {
		t.Errorf("Clusters() = %d, want 2", r.Clusters())
	}
}

func TestReplaceOverwritesSingleWidthWithDoubleWidth(t *testing.T) {
	r := New()
	r.Append(cellattr.Attributes{}, 'a', 1)
	r.Append(cellattr.Attributes{}, 'b', 1)
	r.Append(cellattr.Attributes{}, 'c', 1)

	r.Replace(1, cellattr.Attributes{}, '世', 2)

	if got, want := r.String(), "a世"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if r.Columns() != 3 {
		t.Errorf("Columns() = %d, want 3", r.Columns())
	}
	left := r.attrsAt(1)
	if !left.Flags.Has(cellattr.DblWidthChar) {
		t.Errorf("expected DblWidthChar on replaced run")
	}
}

func TestReplacePastEndPadsWithBlanks(t *testing.T) {
	r := New()
	r.Append(cellattr.Attributes{}, 'a', 1)

	r.Replace(3, cellattr.Attributes{}, 'x', 1)

	if got, want := r.String(), "a  x"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSubstrExcludesRightHalfStartAndIncludesLeftHalfEnd(t *testing.T) {
	r := New()
	r.Append(cellattr.Attributes{}, 'a', 1)
	r.Append(cellattr.Attributes{}, '世', 2)
	r.Append(cellattr.Attributes{}, 'c', 1)

	// start=2 lands on the right half of '世' -> excluded
	if got, want := r.Substr(2, 4), "c"; got != want {
		t.Errorf("Substr(2,4) = %q, want %q", got, want)
	}
	// end=1 lands on the left half of '世' -> included whole
	if got, want := r.Substr(0, 1), "a世"; got != want {
		t.Errorf("Substr(0,1) = %q, want %q", got, want)
	}
	if got, want := r.Substr(0, 2), "a世"; got != want {
		t.Errorf("Substr(0,2) = %q, want %q", got, want)
	}
}

func TestInsertShiftsRangesAfterInsertionPoint(t *testing.T) {
	r := New()
	for i := 0; i < 5; i++ {
		r.Append(cellattr.Attributes{}, 'x', 1)
	}
	attrs := cellattr.Attributes{Flags: cellattr.Underline}
	r.paintRange(3, 4, attrs)

	r.Insert(0)

	if got := r.attrsAt(4); !got.Flags.Has(cellattr.Underline) {
		t.Errorf("expected run shifted to start at column 4, got attrs %+v at 4", got)
	}
	if got := r.attrsAt(3); got.Flags.Has(cellattr.Underline) {
		t.Errorf("column 3 should no longer carry the shifted run")
	}
}

func TestRemoveShrinksStraddlingRange(t *testing.T) {
	r := New()
	for i := 0; i < 5; i++ {
		r.Append(cellattr.Attributes{}, 'x', 1)
	}
	attrs := cellattr.Attributes{Flags: cellattr.Underline}
	r.paintRange(1, 3, attrs)

	r.Remove(2)

	if r.Columns() != 4 {
		t.Fatalf("Columns() = %d, want 4", r.Columns())
	}
	if got := r.attrsAt(1); !got.Flags.Has(cellattr.Underline) {
		t.Errorf("expected underline to survive at column 1")
	}
	if got := r.attrsAt(2); !got.Flags.Has(cellattr.Underline) {
		t.Errorf("expected underline to survive (shifted) at column 2")
	}
	if got := r.attrsAt(3); got.Flags.Has(cellattr.Underline) {
		t.Errorf("expected range to have shrunk by one column")
	}
}
