/*
Command starfree compiles regular expressions to automata and decides
whether their languages are star-free.

	starfree viz PATTERN [-g nfa|rawdfa|dfa] [-o file|-] [--png]
	starfree match PATTERN STRING...
	starfree analyze PATTERN [--format yaml|json] [--minimize=false]
	starfree repl

Options may also be set through STARFREE_* environment variables or a YAML
file given with --config.
*/
package main

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if errors.Cause(err) == errRejected {
			os.Exit(1)
		}
		log.Fatal(err)
	}
}
