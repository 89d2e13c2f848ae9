package mapreduce

import (
	"reflect"
	"testing"
)

func TestAlphabetical(t *testing.T) {
	counts := map[string]int{"dog": 2, "cat": 2, "bird": 1, "Zebra": 3, "10": 1}

	got := Alphabetical(counts)
	want := []WordCount{
		{"10", 1},
		{"Zebra", 3},
		{"bird", 1},
		{"cat", 2},
		{"dog", 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Alphabetical() = %v, want %v", got, want)
	}

	for i := 1; i < len(got); i++ {
		if got[i-1].Word > got[i].Word {
			t.Errorf("entries %d and %d out of order: %q > %q", i-1, i, got[i-1].Word, got[i].Word)
		}
	}
}

func TestByFrequency(t *testing.T) {
	counts := map[string]int{"cat": 2, "dog": 2, "bird": 1}

	got := ByFrequency(counts)
	want := []WordCount{
		{"cat", 2},
		{"dog", 2},
		{"bird", 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ByFrequency() = %v, want %v", got, want)
	}
}

func TestByFrequency_NonIncreasing(t *testing.T) {
	counts := map[string]int{}
	for i, w := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		counts[w] = (i * 7) % 5
	}
	counts["z"] = 1

	got := ByFrequency(counts)
	if len(got) != len(counts) {
		t.Fatalf("ByFrequency() returned %d entries, want %d", len(got), len(counts))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Count < got[i].Count {
			t.Errorf("entries %d and %d out of order: %d < %d", i-1, i, got[i-1].Count, got[i].Count)
		}
		if got[i-1].Count == got[i].Count && got[i-1].Word > got[i].Word {
			t.Errorf("tie at %d not ordered by word: %q > %q", i, got[i-1].Word, got[i].Word)
		}
	}
}

func TestViews_SameTotal(t *testing.T) {
	counts := map[string]int{"pHello": 1, "World": 1, "Hello": 1, "p": 1, "x": 9}

	sum := func(entries []WordCount) int {
		total := 0
		for _, e := range entries {
			total += e.Count
		}
		return total
	}

	if a, f := sum(Alphabetical(counts)), sum(ByFrequency(counts)); a != f || a != Total(counts) {
		t.Errorf("alphabetical sum = %d, frequency sum = %d, total = %d", a, f, Total(counts))
	}
}

func TestTopKeywords(t *testing.T) {
	counts := map[string]int{"cat": 2, "dog": 2, "bird": 1}

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{name: "fewer than available", n: 2, want: []string{"cat:2", "dog:2"}},
		{name: "more than available", n: 10, want: []string{"cat:2", "dog:2", "bird:1"}},
		{name: "zero", n: 0, want: []string{}},
		{name: "negative", n: -1, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TopKeywords(counts, tt.n)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TopKeywords(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}
