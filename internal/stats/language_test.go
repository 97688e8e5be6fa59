package stats

import (
	"testing"

	"github.com/patrickprogramme/substats/internal/subtitles"
)

func TestDetectLanguage(t *testing.T) {
	entries := []subtitles.Entry{
		{Text: "<i>This is a simple English sentence</i>"},
		{Text: "written to check that the detector\nrecognizes the language of the subtitles."},
	}
	lang, ok := DetectLanguage(entries)
	if !ok {
		t.Fatal("no language detected")
	}
	if lang.Name != "English" {
		t.Errorf("Name = %q, want English", lang.Name)
	}

	if _, ok := DetectLanguage([]subtitles.Entry{{Text: "  "}, {Text: "<i></i>"}}); ok {
		t.Error("empty text should not detect a language")
	}
}
