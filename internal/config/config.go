package config

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/pflag"
	"github.com/trim21/errgo"
)

var ErrInvalid = errors.New("invalid option")

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Config struct {
	Color      string
	Seed       uint64
	Nodes      int
	MaxValue   int
	Pop        bool
	Debug      bool
	ProfileCPU bool
	ProfileMem bool
}

func Default() Config {
	return Config{
		Nodes:    20,
		MaxValue: 50,
		Color:    ColorAuto,
	}
}

// FlagSet binds every option to cfg, cfg fields are used as default values.
func FlagSet(name string, cfg *Config) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.IntVarP(&cfg.Nodes, "nodes", "n", cfg.Nodes, "number of nodes in the tree")
	fs.IntVarP(&cfg.MaxValue, "range", "r", cfg.MaxValue, "highest possible value for a node, nodes range from [1, range]")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 picks a random one")
	fs.StringVar(&cfg.Color, "color", cfg.Color, "colorize output: auto, always or never")
	fs.BoolVar(&cfg.Pop, "pop", cfg.Pop, "also print nodes in extract-min order")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")
	fs.BoolVar(&cfg.ProfileCPU, "profile-cpu", cfg.ProfileCPU, "enable CPU profiling")
	fs.BoolVar(&cfg.ProfileMem, "profile-memory", cfg.ProfileMem, "enable Memory profiling")

	return fs
}

// Parse parses command line arguments, without the program name.
// It returns pflag.ErrHelp when help is requested.
func Parse(name string, args []string) (Config, error) {
	cfg := Default()

	fs := FlagSet(name, &cfg)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return cfg, pflag.ErrHelp
		}

		return cfg, errgo.Wrap(fmt.Errorf("%w: %w", ErrInvalid, err), "failed to parse arguments")
	}

	if fs.NArg() != 0 {
		return cfg, errgo.Wrap(fmt.Errorf("%w: unexpected argument %q", ErrInvalid, fs.Arg(0)), "failed to parse arguments")
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Nodes <= 0 {
		return fmt.Errorf("%w: --nodes must be positive, got %d", ErrInvalid, c.Nodes)
	}

	if c.MaxValue <= 0 {
		return fmt.Errorf("%w: --range must be positive, got %d", ErrInvalid, c.MaxValue)
	}

	if !slices.Contains([]string{ColorAuto, ColorAlways, ColorNever}, c.Color) {
		return fmt.Errorf("%w: --color must be one of auto, always or never, got %q", ErrInvalid, c.Color)
	}

	return nil
}

// Usage returns the flag help text.
func Usage(name string) string {
	cfg := Default()

	return FlagSet(name, &cfg).FlagUsages()
}
