package model

import (
	"testing"
	"time"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"srt", FormatSRT, false},
		{".SRT", FormatSRT, false},
		{"webvtt", FormatVTT, false},
		{"json", FormatJSON3, false},
		{"dfxp", FormatTTML, false},
		{"sup", "", true},
		{"", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseFormat(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseFormat(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	if f, ok := FormatFromPath("/tmp/movie.en.ass"); !ok || f != FormatASS {
		t.Errorf("FormatFromPath(.ass) = %q, %v", f, ok)
	}
	if _, ok := FormatFromPath("notes.txt"); ok {
		t.Errorf("txt ne doit pas être reconnu comme sous-titre")
	}
	if _, ok := FormatFromPath("noext"); ok {
		t.Errorf("fichier sans extension ne doit pas être reconnu")
	}
}

func TestTimeCodeDisplayString(t *testing.T) {
	tests := []struct {
		in   TimeCode
		want string
	}{
		{0, "00:00:00,000"},
		{1500, "00:00:01,500"},
		{3723004, "01:02:03,004"},
		{TimeCodeFromDuration(26 * time.Hour), "26:00:00,000"},
		{-250, "-00:00:00,250"},
	}
	for _, tc := range tests {
		if got := tc.in.DisplayString(); got != tc.want {
			t.Errorf("DisplayString(%v) = %q, want %q", float64(tc.in), got, tc.want)
		}
	}
}
