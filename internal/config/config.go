package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"

	"github.com/jar0582/procsched/loader"
	"github.com/jar0582/procsched/scheduler"
)

const envPrefix = "PROCSCHED_"

var (
	ErrNoInput    = errors.New("no scheduling file given")
	ErrNoPolicies = errors.New("no scheduling policy selected")
)

// Config represents the command line and environment settings. Flags
// override PROCSCHED_* environment variables.
type Config struct {
	Input    string   `env:"INPUT"`
	Policies []string `env:"POLICIES" envSeparator:"," envDefault:"fcfs,sjf"`
	Format   string   `env:"FORMAT" envDefault:"text"`
	IdleStep bool     `env:"IDLE_STEP"`
	Metrics  bool     `env:"METRICS"`
	LogLevel string   `env:"LOG_LEVEL" envDefault:"warn"`
}

// Settings is a validated Config.
type Settings struct {
	Input      string
	Policies   []scheduler.Policy
	Format     loader.Format
	SJFOptions []scheduler.Option
	Metrics    bool
	LogLevel   zapcore.Level
}

// LoadDotEnv loads variables from a .env file if one exists. Variables that
// are already set are left alone.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: loading %s", err, path)
	}
	return nil
}

// Load reads the environment and then args. A nil environ means the
// process environment. Usage and flag errors are written to usage.
func Load(args []string, environ map[string]string, usage io.Writer) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{
		Prefix:      envPrefix,
		Environment: environ,
	}); err != nil {
		return nil, fmt.Errorf("%w: parsing environment", err)
	}

	flags := pflag.NewFlagSet("procsched", pflag.ContinueOnError)
	flags.SetOutput(usage)
	flags.Usage = func() {
		_, _ = fmt.Fprintln(usage, "usage: procsched [flags] <scheduling file>")
		flags.PrintDefaults()
	}
	flags.StringSliceVarP(&cfg.Policies, "policy", "p", cfg.Policies, "scheduling policies to run, in order (fcfs, sjf)")
	flags.StringVarP(&cfg.Format, "format", "f", cfg.Format, "scheduling file format (text, csv)")
	flags.BoolVar(&cfg.IdleStep, "idle-step", cfg.IdleStep, "advance an idle SJF clock one unit at a time")
	flags.BoolVar(&cfg.Metrics, "metrics", cfg.Metrics, "print timing metrics to stderr after the run")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	switch flags.NArg() {
	case 0:
	case 1:
		cfg.Input = flags.Arg(0)
	default:
		return nil, fmt.Errorf("%w: expected one scheduling file, got %d", loader.ErrInvalidArgs, flags.NArg())
	}

	return cfg, nil
}

// Resolve validates c and converts it to typed settings.
func (c *Config) Resolve() (Settings, error) {
	s := Settings{
		Input:   c.Input,
		Metrics: c.Metrics,
	}
	if s.Input == "" {
		return Settings{}, ErrNoInput
	}

	for _, name := range c.Policies {
		if name == "" {
			continue
		}
		p, err := scheduler.ParsePolicy(name)
		if err != nil {
			return Settings{}, err
		}
		s.Policies = append(s.Policies, p)
	}
	if len(s.Policies) == 0 {
		return Settings{}, ErrNoPolicies
	}

	format, err := loader.ParseFormat(c.Format)
	if err != nil {
		return Settings{}, err
	}
	s.Format = format

	if c.IdleStep {
		s.SJFOptions = append(s.SJFOptions, scheduler.WithIdleStep())
	}

	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: log level", err)
	}
	s.LogLevel = level

	return s, nil
}
