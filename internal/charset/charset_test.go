package charset

import (
	"bytes"
	"testing"
)

func TestToUTF8(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"empty", nil, ""},
		{"ascii", []byte("hello world"), "hello world"},
		{"utf8 bom", append([]byte{0xef, 0xbb, 0xbf}, []byte("héllo")...), "héllo"},
		{"utf8 plain", []byte("déjà vu"), "déjà vu"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := ToUTF8(tt.in)
			if err != nil {
				t.Fatalf("ToUTF8: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeRoundTripLatin1(t *testing.T) {
	enc, err := Encode("café", "ISO-8859-1")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(enc, []byte{'c', 'a', 'f', 0xe9}) {
		t.Fatalf("unexpected bytes %v", enc)
	}
}

func TestEncodeUTF8Passthrough(t *testing.T) {
	for _, name := range []string{"", "utf-8", "UTF8"} {
		got, err := Encode("é", name)
		if err != nil || string(got) != "é" {
			t.Errorf("Encode(%q) = %q, %v", name, got, err)
		}
	}
}

func TestSupported(t *testing.T) {
	if !Supported("windows-1252") {
		t.Error("windows-1252 should be supported")
	}
	if Supported("no-such-charset") {
		t.Error("unknown charset reported as supported")
	}
}

func TestToUTF8Windows1252(t *testing.T) {
	src, err := Encode("Il était une fois une crème brûlée très célèbre, préparée à l'hôtel du théâtre.\nÇa s'est passé à Noël, près de la forêt.", "windows-1252")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, name, err := ToUTF8(src)
	if err != nil {
		t.Fatalf("ToUTF8: %v", err)
	}
	if name == "UTF-8" {
		t.Fatalf("windows-1252 input detected as UTF-8")
	}
	if !bytes.Contains(got, []byte("crème brûlée")) {
		t.Errorf("decoded text %q", got)
	}
}

func TestEncodeReplacesUnsupported(t *testing.T) {
	got, err := Encode("a♪b", "windows-1252")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(got) != 3 || got[0] != 'a' || got[2] != 'b' {
		t.Errorf("Encode = %q, want 3 bytes with a substitute in the middle", got)
	}
}
