package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/ramsdell/agum/unify"
)

const usage = `Enter one equation per line, for example: 2x + y = 3z
A term is a sum of signed factors; a factor is an optional integer
coefficient followed by a variable, the literal 0, or a parenthesized term.

  :? or :help    print this message
  :quit or :q    exit (end-of-input also exits)
`

var errStyle = color.New(color.FgRed, color.Bold)

// Shell reads equations line by line and prints, for each, the equation,
// its most general unifier, and its most general matcher (or "no solution").
type Shell struct {
	in          io.Reader
	out         io.Writer
	interactive bool
}

// New builds a shell over the given streams. The prompt and banner appear
// only when in is a terminal.
func New(in io.Reader, out io.Writer) *Shell {
	interactive := false
	if f, ok := in.(*os.File); ok {
		fd := f.Fd()
		interactive = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	if !interactive {
		color.NoColor = true
	}
	return &Shell{in: in, out: out, interactive: interactive}
}

// Run processes lines until :quit or end-of-input. The returned error is
// non-nil only when reading the input stream fails.
func (s *Shell) Run() error {
	if s.interactive {
		fmt.Fprintln(s.out, "agum: unification and matching in Abelian groups (:? for help)")
	}
	scanner := bufio.NewScanner(s.in)
	for {
		if s.interactive {
			fmt.Fprint(s.out, "agum> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
		case line == ":quit" || line == ":q":
			return nil
		case line == ":?" || line == ":help":
			fmt.Fprint(s.out, usage)
		case strings.HasPrefix(line, ":"):
			fmt.Fprintf(s.out, "%s unknown command %s (:? for help)\n", errStyle.Sprint("error:"), line)
		default:
			s.solve(line)
		}
	}
	return scanner.Err()
}

func (s *Shell) solve(line string) {
	eq, err := ParseEquation(line)
	if err != nil {
		fmt.Fprintf(s.out, "%s %s\n", errStyle.Sprint("error:"), err)
		return
	}
	fmt.Fprintf(s.out, "Equation: %s\n", eq)
	fmt.Fprintf(s.out, "Unifier:  %s\n", unify.Unify(eq))
	m, err := unify.Match(eq)
	switch {
	case errors.Is(err, unify.ErrNoSolution):
		fmt.Fprintf(s.out, "Matcher:  no solution\n")
	case err != nil:
		fmt.Fprintf(s.out, "%s %s\n", errStyle.Sprint("error:"), err)
	default:
		fmt.Fprintf(s.out, "Matcher:  %s\n", m)
	}
}
