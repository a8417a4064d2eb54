package main

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"starfree/internal/config"
	"starfree/internal/regexlib"
)

// traceKeys are the tracers of the compiler packages.
var traceKeys = []string{
	"starfree.syntax",
	"starfree.automaton",
	"starfree.monoid",
	"starfree.regexlib",
}

func newRootCmd() *cobra.Command {
	vp := viper.New()
	cfg := &config.Config{}
	root := &cobra.Command{
		Use:           "starfree",
		Short:         "Compile regular expressions and test them for star-freeness",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ReadConfigFile(vp); err != nil {
				return err
			}
			cfg.Populate(vp)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return setupLogging(cfg)
		},
	}
	config.InitFlags(root.PersistentFlags(), vp)
	root.AddCommand(
		newVizCmd(cfg),
		newMatchCmd(),
		newAnalyzeCmd(cfg),
		newReplCmd(cfg),
	)
	return root
}

func setupLogging(cfg *config.Config) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "invalid %s", config.LogLevel)
	}
	log.SetLevel(level)
	tl := tracing.TraceLevelFromString(cfg.TraceLevel)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(tl)
	}
	log.WithFields(log.Fields{
		config.Graph:      cfg.Graph,
		config.Format:     cfg.Format,
		config.TraceLevel: cfg.TraceLevel,
	}).Debug("configuration loaded")
	return nil
}

func compile(pattern string) (*regexlib.Regex, error) {
	re, err := regexlib.Compile(pattern)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"pattern":   pattern,
		"dfaStates": re.DFA().Len(),
	}).Debug("compiled")
	return re, nil
}
