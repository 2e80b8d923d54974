package ui

import (
	"fmt"
	"io"
	"sync"
)

// Progress serializes output from parallel workers and tracks completion
// with a [n/total] counter.
type Progress struct {
	out   io.Writer
	total int

	mu   sync.Mutex
	done int
}

// NewProgress creates a progress tracker for total tasks.
func NewProgress(out io.Writer, total int) *Progress {
	return &Progress{out: out, total: total}
}

// Done marks one task as completed and prints the counter with a label.
func (p *Progress) Done(label string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	_, _ = fmt.Fprintf(p.out, "[%d/%d] %s\n", p.done, p.total, label)
}

// Log prints an informational line without advancing the counter.
func (p *Progress) Log(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}
