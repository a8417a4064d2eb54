package main

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"starfree/internal/automaton"
	"starfree/internal/config"
	"starfree/internal/monoid"
	"starfree/internal/regexlib"
)

// report is the result of analyze.
type report struct {
	Pattern     string         `json:"pattern"`
	Stats       regexlib.Stats `json:"stats"`
	Automaton   string         `json:"automaton"` // the DFA the monoid was built from
	MonoidSize  int            `json:"monoidSize"`
	Generators  int            `json:"generators"`
	Idempotents int            `json:"idempotents"`
	Aperiodic   bool           `json:"aperiodic"`
	Witness     *witness       `json:"witness,omitempty"`
}

// witness is an element of the monoid which generates a non-trivial group.
type witness struct {
	Word           string `json:"word"`
	Transformation string `json:"transformation"`
	Index          int    `json:"index"`
	Period         int    `json:"period"`
}

func newAnalyzeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze PATTERN",
		Short: "Report automaton sizes and the transformation monoid of PATTERN",
		Long: `Report automaton sizes and the transformation monoid of PATTERN.
The language is star-free if the monoid of its minimal DFA is aperiodic.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := compile(args[0])
			if err != nil {
				return err
			}
			out, err := renderReport(analyze(re, cfg.Minimize), cfg.Format)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}

func analyze(re *regexlib.Regex, minimal bool) report {
	r := report{Pattern: re.Pattern(), Stats: re.Stats()}
	var m *monoid.Monoid
	if minimal {
		r.Automaton = "minimal DFA"
		m = re.Monoid()
	} else {
		r.Automaton = "raw DFA"
		m = monoid.Build(re.RawDFA())
	}
	gens := make(map[int]bool)
	for c := 0; c < automaton.AlphabetSize; c++ {
		gens[m.Generator(byte(c))] = true
	}
	r.MonoidSize = m.Size()
	r.Generators = len(gens)
	r.Idempotents = len(m.Idempotents())
	r.Aperiodic = m.IsAperiodic()
	if x, ok := m.Witness(); ok {
		index, period := m.Period(x)
		r.Witness = &witness{
			Word:           fmt.Sprintf("%q", m.Word(x)),
			Transformation: m.Transformation(x).String(),
			Index:          index,
			Period:         period,
		}
	}
	return r
}

func renderReport(r report, format string) ([]byte, error) {
	if format == config.FormatJSON {
		out, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "render report")
		}
		return append(out, '\n'), nil
	}
	out, err := yaml.Marshal(r)
	if err != nil {
		return nil, errors.Wrap(err, "render report")
	}
	return out, nil
}
