package platform

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/sahaara/core/internal/ports"
)

// TerminalNotifier renders toast-style notifications on a writer. Writes are
// serialized because the deferred follow-up notification arrives from a
// timer goroutine.
type TerminalNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

// NewTerminalNotifier creates a notifier writing to out.
func NewTerminalNotifier(out io.Writer) *TerminalNotifier {
	return &TerminalNotifier{out: out}
}

func (n *TerminalNotifier) Notify(note ports.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	marker := "•"
	if note.Destructive {
		marker = "✗"
	}
	if note.Description != "" {
		fmt.Fprintf(n.out, "%s %s — %s\n", marker, note.Title, note.Description)
		return
	}
	fmt.Fprintf(n.out, "%s %s\n", marker, note.Title)
}

// TerminalConfirmer asks a blocking yes/no question on the terminal. Only an
// explicit yes answer counts as consent.
type TerminalConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalConfirmer creates a confirmer reading answers from in.
func NewTerminalConfirmer(in io.Reader, out io.Writer) *TerminalConfirmer {
	return &TerminalConfirmer{in: bufio.NewReader(in), out: out}
}

func (c *TerminalConfirmer) Confirm(message string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", message)
	line, err := c.in.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

var (
	_ ports.Notifier  = (*TerminalNotifier)(nil)
	_ ports.Confirmer = (*TerminalConfirmer)(nil)
)
