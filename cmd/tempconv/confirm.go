package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"tempconv/internal/history"

	"github.com/spf13/cobra"
)

// promptConfirmer asks on the terminal; only "y" or "yes" confirms.
type promptConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func newPromptConfirmer(in io.Reader, out io.Writer) *promptConfirmer {
	return &promptConfirmer{in: bufio.NewReader(in), out: out}
}

func (p *promptConfirmer) Confirm(message string) bool {
	fmt.Fprintf(p.out, "%s [y/N]: ", message)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(p.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// confirmerFor honours --yes and otherwise prompts on the command's streams.
func confirmerFor(cmd *cobra.Command) history.Confirmer {
	if assumeYes {
		return history.Always
	}
	return newPromptConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())
}
