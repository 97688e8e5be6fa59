package stats

import "testing"

func TestStripFontTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single", `<font color=red>Hi</font> there`, "Hi. there"},
		{"case insensitive", `<FONT color=red>Hi</font>`, "Hi."},
		{"malformed second tag", `<font color=red>Hi</font> x <font color=blue oops`, "Hi</font> x <font color=blue oops"},
		{"malformed first tag", `<font color=red Hi`, `<font color=red Hi`},
		{"no tag", "plain", "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFontTags(tt.in); got != tt.want {
				t.Errorf("stripFontTags(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripStyleTags(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"<i>Hi", "<i>Hi"}, // moins de 8 caractères : inchangé
		{"<i>Hello there</i>", "Hello there."},
		{`'"Quoted" words here'`, "Quoted words here"},
		{"<B>Bold text</B> <u>under</u>", "Bold text. under."},
	}
	for _, tt := range tests {
		if got := stripStyleTags(tt.in); got != tt.want {
			t.Errorf("stripStyleTags(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRemoveSSATags(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`{\an8}Top`, "Top"},
		{`{\i1}a{\i0} b`, "a b"},
		{`{\an8 unclosed`, `{\an8 unclosed`},
		{"{not ssa}", "{not ssa}"},
	}
	for _, tt := range tests {
		if got := RemoveSSATags(tt.in); got != tt.want {
			t.Errorf("RemoveSSATags(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFixInvalidItalicTags(t *testing.T) {
	if got := FixInvalidItalicTags("< i >Hi< / I >"); got != "<i>Hi</i>" {
		t.Errorf("got %q", got)
	}
}

func TestRemoveHTMLTags(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`<font color="red">x</font>`, "x"},
		{"a < b > c", "a < b > c"},
		{`{\an8}<i>x</i>`, "x"},
	}
	for _, tt := range tests {
		if got := RemoveHTMLTags(tt.in, true); got != tt.want {
			t.Errorf("RemoveHTMLTags(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
