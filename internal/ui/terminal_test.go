package ui

import (
	"bytes"
	"testing"
)

func TestTerminalOutputs(t *testing.T) {
	tests := []struct {
		name    string
		call    func(Interface)
		wantOut string
		wantErr string
	}{
		{
			name:    "report keeps text",
			call:    func(u Interface) { u.PrintReport(testContext(t), []byte("a\nb\n")) },
			wantOut: "a\nb\n",
		},
		{
			name:    "report gets final newline",
			call:    func(u Interface) { u.PrintReport(testContext(t), []byte("a")) },
			wantOut: "a\n",
		},
		{
			name:    "empty report",
			call:    func(u Interface) { u.PrintReport(testContext(t), nil) },
			wantOut: "",
		},
		{
			name:    "info on err",
			call:    func(u Interface) { u.PrintInfo(testContext(t), "exporté\n") },
			wantErr: "exporté\n",
		},
		{
			name:    "error prefix",
			call:    func(u Interface) { u.PrintError(testContext(t), "boom") },
			wantErr: "❌ boom\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			tt.call(NewWriters(&out, &errOut))
			if out.String() != tt.wantOut {
				t.Errorf("out = %q, want %q", out.String(), tt.wantOut)
			}
			if errOut.String() != tt.wantErr {
				t.Errorf("err = %q, want %q", errOut.String(), tt.wantErr)
			}
		})
	}
}
