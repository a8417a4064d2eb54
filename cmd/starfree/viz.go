package main

import (
	"bytes"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"starfree/internal/automaton"
	"starfree/internal/config"
	"starfree/internal/regexlib"
)

func newVizCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "viz PATTERN",
		Short: "Render the NFA, raw DFA or minimal DFA of PATTERN as a graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := compile(args[0])
			if err != nil {
				return err
			}
			return writeGraph(cmd.OutOrStdout(), selectGraph(re, cfg.Graph), cfg)
		},
	}
}

func selectGraph(re *regexlib.Regex, kind string) automaton.Graph {
	switch kind {
	case config.GraphNFA:
		return re.NFA()
	case config.GraphRawDFA:
		return re.RawDFA()
	}
	return re.DFA()
}

// writeGraph writes g as DOT text, or as PNG rendered by Graphviz, to the
// configured output; "-" is w.
func writeGraph(w io.Writer, g automaton.Graph, cfg *config.Config) error {
	if cfg.PNG {
		var buf bytes.Buffer
		if err := g.WriteDOT(&buf); err != nil {
			return errors.Wrap(err, "render graph")
		}
		dot := exec.Command("dot", "-Tpng")
		dot.Stdin = &buf
		dot.Stderr = os.Stderr
		if cfg.Output == "-" {
			dot.Stdout = w
		} else {
			dot.Args = append(dot.Args, "-o", cfg.Output)
		}
		if err := dot.Run(); err != nil {
			return errors.Wrap(err, "dot failed")
		}
		if cfg.Output != "-" {
			log.Infof("PNG written to %s", cfg.Output)
		}
		return nil
	}
	if cfg.Output == "-" {
		return g.WriteDOT(w)
	}
	if err := automaton.WriteFile(cfg.Output, g); err != nil {
		return err
	}
	log.Infof("DOT written to %s", cfg.Output)
	return nil
}
