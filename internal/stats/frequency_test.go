package stats

import (
	"reflect"
	"testing"
)

func TestRankFrequencies(t *testing.T) {
	got := rankFrequencies(map[string]int{"bb": 2, "aa": 2, "cc": 3, "dd": 1, "Bb": 2})
	want := []Frequency{{"cc", 3}, {"bb", 2}, {"aa", 2}, {"Bb", 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rankFrequencies = %+v, want %+v", got, want)
	}
}

func TestAddWords(t *testing.T) {
	counts := map[string]int{}
	addWords(counts, "<i>Hello, hello!</i> I'm 42 years-old")
	addWords(counts, "Hello\nthere")

	want := map[string]int{"Hello": 2, "hello": 1, "I'm": 1, "years": 1, "old": 1, "there": 1}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("counts = %v, want %v", counts, want)
	}
}

func TestAddWordsSpacedItalic(t *testing.T) {
	counts := map[string]int{}
	addWords(counts, "< i >Something here</ i >")
	if counts["i"] != 0 || counts["Something"] != 1 || counts["here"] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestAddLines(t *testing.T) {
	counts := map[string]int{}
	addLines(counts, "Yes. Come here!")
	addLines(counts, "- Yes...\n- Come here?")
	addLines(counts, "Yes")

	if counts["Come here"] != 2 {
		t.Errorf("Come here = %d", counts["Come here"])
	}
	if _, ok := counts["Yes"]; ok {
		t.Errorf("single word line inserted: %v", counts)
	}
	if _, ok := counts[""]; ok {
		t.Errorf("empty line inserted: %v", counts)
	}
}

func TestRenderFrequencies(t *testing.T) {
	if got := renderFrequencies(nil, "Nothing found"); got != "Nothing found\n" {
		t.Errorf("empty = %q", got)
	}
	got := renderFrequencies([]Frequency{{"b", 3}, {"a", 2}}, "x")
	if got != "3: b\n2: a\n\n" {
		t.Errorf("render = %q", got)
	}
}
