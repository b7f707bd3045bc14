package width

import "testing"

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want int
	}{
		{"ascii letter", 'a', 1},
		{"ascii digit", '0', 1},
		{"control NUL", 0x00, 0},
		{"control tab", '\t', 0},
		{"DEL", 0x7F, 0},
		{"CJK", '世', 2},
		{"emoji", '😀', 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RuneWidth(tt.r); got != tt.want {
				t.Errorf("RuneWidth(%U) = %d, want %d", tt.r, got, tt.want)
			}
		})
	}
}

func TestClusterWidth(t *testing.T) {
	tests := []struct {
		name    string
		cluster string
		want    int
	}{
		{"ascii", "a", 1},
		{"simple emoji", "😀", 2},
		{"combining acute", "é", 1},
		{"emoji + modifier", "👋\U0001F3FB", 2},
		{"zwj family", "👨‍👩‍👧", 2},
		{"lone combiner", "́", 0},
		{"text presentation selector narrows wide emoji", "☀︎", 1},
		{"emoji presentation selector widens narrow base", "#️", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClusterWidth(tt.cluster); got != tt.want {
				t.Errorf("ClusterWidth(%q) = %d, want %d", tt.cluster, got, tt.want)
			}
		})
	}
}

func TestStringWidth(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "Hello", 5},
		{"cjk", "こんにちは", 10},
		{"mixed combining", "Café", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StringWidth(tt.s); got != tt.want {
				t.Errorf("StringWidth(%q) = %d, want %d", tt.s, got, tt.want)
			}
		})
	}
}

func TestSegment(t *testing.T) {
	it := Segment("a😀b")
	var clusters []string
	for it.Next() {
		clusters = append(clusters, it.Str())
	}
	want := []string{"a", "😀", "b"}
	if len(clusters) != len(want) {
		t.Fatalf("got %d clusters, want %d", len(clusters), len(want))
	}
	for i := range want {
		if clusters[i] != want[i] {
			t.Errorf("cluster %d = %q, want %q", i, clusters[i], want[i])
		}
	}
}

func TestIsCombiner(t *testing.T) {
	if !IsCombiner(0x0300) {
		t.Error("expected combining grave to be a combiner")
	}
	if IsCombiner('a') {
		t.Error("expected ascii letter not to be a combiner")
	}
}
