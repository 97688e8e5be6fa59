package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

type terminalUI struct {
	mu  sync.Mutex
	out io.Writer
	err io.Writer
}

// NewTerminal écrit sur stdout / stderr.
func NewTerminal() Interface {
	return NewWriters(os.Stdout, os.Stderr)
}

// NewWriters permet de rediriger les sorties (tests, commande watch).
func NewWriters(out, errOut io.Writer) Interface {
	return &terminalUI{out: out, err: errOut}
}

func (t *terminalUI) PrintReport(ctx context.Context, report []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.out.Write(report)
	if len(report) > 0 && report[len(report)-1] != '\n' {
		io.WriteString(t.out, "\n")
	}
}

func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.err, strings.TrimRight(s, "\n"))
}

func (t *terminalUI) PrintError(ctx context.Context, s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.err, "❌ "+strings.TrimRight(s, "\n"))
}
