// Package config holds the command line configuration of starfree.
//
// Every option has a name constant, a flag registered on the cobra command
// and an environment variable STARFREE_<NAME>, e.g. STARFREE_LOG_LEVEL for
// log-level. Values may also come from a YAML file given with --config.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// ConfigFile is the path of an optional YAML configuration file.
	ConfigFile = "config"

	// Graph selects the automaton to render: nfa, rawdfa or dfa.
	Graph = "graph"

	// Output is the destination of a rendered graph; "-" is stdout.
	Output = "output"

	// PNG pipes rendered graphs through Graphviz.
	PNG = "png"

	// Minimize analyzes the minimal DFA instead of the raw one.
	Minimize = "minimize"

	// Format is the report format of analyze: yaml or json.
	Format = "format"

	// LogLevel is the logrus level of the command line tool.
	LogLevel = "log-level"

	// TraceLevel is the tracing level of the compiler packages.
	TraceLevel = "trace-level"
)

const envPrefix = "STARFREE_"

// Graph kinds.
const (
	GraphNFA    = "nfa"
	GraphRawDFA = "rawdfa"
	GraphDFA    = "dfa"
)

// Report formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Config is the typed view of all options.
type Config struct {
	ConfigFile string
	Graph      string
	Output     string
	PNG        bool
	Minimize   bool
	Format     string
	LogLevel   string
	TraceLevel string
}

// Defaults, used for flag registration.
var Defaults = Config{
	Graph:      GraphDFA,
	Output:     "-",
	Minimize:   true,
	Format:     FormatYAML,
	LogLevel:   "info",
	TraceLevel: "Error",
}

// EnvName returns the environment variable bound to option name.
func EnvName(name string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// BindEnv binds option name to its environment variable.
func BindEnv(vp *viper.Viper, name string) {
	if err := vp.BindEnv(name, EnvName(name)); err != nil {
		panic(err) // only fails for an empty key
	}
}

// InitFlags registers all options on flags and binds them to vp.
func InitFlags(flags *pflag.FlagSet, vp *viper.Viper) {
	flags.String(ConfigFile, "", "Configuration file (YAML)")
	BindEnv(vp, ConfigFile)

	flags.StringP(Graph, "g", Defaults.Graph, "Automaton to render: nfa, rawdfa or dfa")
	BindEnv(vp, Graph)

	flags.StringP(Output, "o", Defaults.Output, "Output file, - for stdout")
	BindEnv(vp, Output)

	flags.Bool(PNG, Defaults.PNG, "Render PNG with Graphviz dot instead of DOT text")
	BindEnv(vp, PNG)

	flags.Bool(Minimize, Defaults.Minimize, "Analyze the minimal DFA")
	BindEnv(vp, Minimize)

	flags.String(Format, Defaults.Format, "Report format: yaml or json")
	BindEnv(vp, Format)

	flags.String(LogLevel, Defaults.LogLevel, "Log level: debug, info, warn or error")
	BindEnv(vp, LogLevel)

	flags.String(TraceLevel, Defaults.TraceLevel, "Trace level of the compiler: Debug, Info or Error")
	BindEnv(vp, TraceLevel)

	if err := vp.BindPFlags(flags); err != nil {
		panic(err)
	}
}

// ReadConfigFile merges the file named by the config option, if any.
func ReadConfigFile(vp *viper.Viper) error {
	path := vp.GetString(ConfigFile)
	if path == "" {
		return nil
	}
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	if err := vp.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "read config file %s", path)
	}
	return nil
}

// Populate copies the option values of vp into c.
func (c *Config) Populate(vp *viper.Viper) {
	c.ConfigFile = vp.GetString(ConfigFile)
	c.Graph = strings.ToLower(vp.GetString(Graph))
	c.Output = vp.GetString(Output)
	c.PNG = vp.GetBool(PNG)
	c.Minimize = vp.GetBool(Minimize)
	c.Format = strings.ToLower(vp.GetString(Format))
	c.LogLevel = vp.GetString(LogLevel)
	c.TraceLevel = vp.GetString(TraceLevel)
}

// Validate checks the enumerated options.
func (c *Config) Validate() error {
	switch c.Graph {
	case GraphNFA, GraphRawDFA, GraphDFA:
	default:
		return errors.Errorf("invalid %s %q: want nfa, rawdfa or dfa", Graph, c.Graph)
	}
	switch c.Format {
	case FormatYAML, FormatJSON:
	default:
		return errors.Errorf("invalid %s %q: want yaml or json", Format, c.Format)
	}
	if c.Output == "" {
		return errors.Errorf("%s must not be empty", Output)
	}
	return nil
}
