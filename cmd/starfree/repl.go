package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"starfree/internal/config"
	"starfree/internal/regexlib"
)

const replHelp = `re PATTERN      compile PATTERN and make it current
match STRING    test STRING against the current pattern
find TEXT       list all matches of the current pattern in TEXT
stats           automaton sizes of the current pattern
monoid          transformation monoid of the current pattern
dot [KIND]      print the nfa, rawdfa or dfa (default) as DOT
help            this text
quit            leave (or <ctrl>D)`

func newReplCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			initDisplay()
			rl, err := readline.New("starfree> ")
			if err != nil {
				return errors.Wrap(err, "start line editor")
			}
			defer rl.Close()
			intp := &Intp{out: rl.Stdout(), cfg: cfg}
			pterm.Info.Println("Welcome to the starfree REPL, type help for commands")
			intp.REPL(rl)
			return nil
		},
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp interprets REPL commands against a current pattern.
type Intp struct {
	out io.Writer
	cfg *config.Config
	re  *regexlib.Regex
}

// REPL reads and evaluates lines until EOF or quit.
func (intp *Intp) REPL(rl *readline.Instance) {
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			fmt.Fprint(intp.out, pterm.Error.Sprintln(err.Error()))
			continue
		}
		if quit {
			break
		}
	}
	fmt.Fprintln(intp.out, "Good bye!")
}

var errNoPattern = errors.New("no current pattern, use: re PATTERN")

// Eval executes one command line.
func (intp *Intp) Eval(line string) (bool, error) {
	cmd, arg := line, ""
	if i := strings.IndexByte(line, ' '); i >= 0 {
		cmd, arg = line[:i], strings.TrimSpace(line[i+1:])
	}
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(intp.out, replHelp)
		return false, nil
	case "re":
		re, err := compile(arg)
		if err != nil {
			return false, err
		}
		intp.re = re
		intp.info("%s: %d DFA states", re, re.DFA().Len())
		return false, nil
	}
	if intp.re == nil {
		return false, errNoPattern
	}
	switch cmd {
	case "match":
		if intp.re.MatchString(arg) {
			intp.info("%q: accept", arg)
		} else {
			intp.info("%q: reject", arg)
		}
	case "find":
		var found []string
		for _, m := range intp.re.FindAll(arg) {
			found = append(found, fmt.Sprintf("[%d,%d) %q", m.Start, m.End, arg[m.Start:m.End]))
		}
		if len(found) == 0 {
			intp.info("no match")
		}
		for _, f := range found {
			intp.info("%s", f)
		}
	case "stats":
		st := intp.re.Stats()
		intp.info("NFA %d, raw DFA %d, DFA %d states, %d transitions",
			st.NFAStates, st.RawDFAStates, st.DFAStates, st.DFATransitions)
	case "monoid":
		r := analyze(intp.re, true)
		intp.info("%d elements, %d idempotents, aperiodic: %v", r.MonoidSize, r.Idempotents, r.Aperiodic)
		if r.Witness != nil {
			intp.info("witness %s acts as %s with period %d",
				r.Witness.Word, r.Witness.Transformation, r.Witness.Period)
		}
	case "dot":
		kind := config.GraphDFA
		if arg != "" {
			kind = strings.ToLower(arg)
		}
		switch kind {
		case config.GraphNFA, config.GraphRawDFA, config.GraphDFA:
		default:
			return false, errors.Errorf("unknown graph %q", arg)
		}
		return false, selectGraph(intp.re, kind).WriteDOT(intp.out)
	default:
		return false, errors.Errorf("unknown command %q, try help", cmd)
	}
	return false, nil
}

func (intp *Intp) info(format string, args ...interface{}) {
	fmt.Fprint(intp.out, pterm.Info.Sprintfln(format, args...))
}
