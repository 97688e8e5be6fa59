package clipboard

import (
	"errors"
	"testing"
)

type memClipboard struct {
	text string
	err  error
}

func (m *memClipboard) ReadAll() (string, error) { return m.text, m.err }

func (m *memClipboard) WriteAll(text string) error {
	m.text = text
	return m.err
}

func TestWriteAllEmpty(t *testing.T) {
	if err := WriteAll(""); !errors.Is(err, ErrEmptyText) {
		t.Errorf("WriteAll(\"\") = %v, want ErrEmptyText", err)
	}
}

func TestEquals(t *testing.T) {
	tests := []struct {
		name string
		clip *memClipboard
		text string
		want bool
	}{
		{"same", &memClipboard{text: "a\nb"}, "a\nb", true},
		{"crlf", &memClipboard{text: "a\r\nb"}, "a\nb", true},
		{"bom", &memClipboard{text: "\ufeffa"}, "a", true},
		{"different", &memClipboard{text: "x"}, "y", false},
		{"read error", &memClipboard{text: "a", err: errors.New("boom")}, "a", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equals(tt.clip, tt.text); got != tt.want {
				t.Errorf("Equals = %v, want %v", got, tt.want)
			}
		})
	}
}
