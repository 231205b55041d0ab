package agegate

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// PromptTerminal asks the age question on a terminal and answers the gate.
// It fails with ErrConfirmationRequired when in is not interactive.
func (c *Coordinator) PromptTerminal(in *os.File, out io.Writer) (bool, error) {
	if adult, ok := c.Adult(); ok && adult {
		return true, nil
	}
	if !term.IsTerminal(int(in.Fd())) {
		return false, ErrConfirmationRequired
	}

	var answer bool
	c.Request(func(adult bool) tea.Cmd {
		answer = adult
		return nil
	})

	fmt.Fprint(out, "This search includes adult content. Are you 18 or older? [y/N]: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read input: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		c.Respond(true)
	default:
		c.Respond(false)
	}
	return answer, nil
}
