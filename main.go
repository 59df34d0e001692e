package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/trim21/errgo"

	"heaptree/global"
	"heaptree/internal/config"
	"heaptree/internal/pkg/heap"
	"heaptree/internal/pkg/random"
	"heaptree/internal/tree"
)

const (
	reset = "\033[0m"
	bold  = "\033[1m"
	faint = "\033[90m" // gray text
)

func main() {
	cfg, err := config.Parse(global.Name, os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printUsage(os.Stdout)
			return
		}

		fmt.Fprintf(os.Stderr, "%s\n\n", err)
		printUsage(os.Stderr)
		os.Exit(2)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if cfg.ProfileCPU || cfg.ProfileMem {
		var opt []func(*profile.Profile)
		if cfg.ProfileCPU {
			opt = append(opt, profile.CPUProfile)
		}
		if cfg.ProfileMem {
			opt = append(opt, profile.MemProfile)
		}
		defer profile.Start(opt...).Stop()
	}

	if err := run(cfg, os.Stdout, useColor(cfg.Color, os.Stdout)); err != nil {
		log.Fatal().Err(err).Msg("failed to print heap")
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "%s (%s): %s\n\nUsage: %s [options]\n\n%s", global.Name, global.Version, global.Purpose,
		global.Name, config.Usage(global.Name))
}

func useColor(mode string, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func run(cfg config.Config, w io.Writer, color bool) error {
	log.Debug().
		Str("nodes", humanize.Comma(int64(cfg.Nodes))).
		Int("range", cfg.MaxValue).
		Uint64("seed", cfg.Seed).
		Msg("generating heap")

	h := heap.NewRandom(cfg.Nodes, 1, cfg.MaxValue, random.New(cfg.Seed))

	title, body, end := "", "", ""
	if color {
		title, body, end = faint+bold, reset+faint, reset
	}

	if _, err := fmt.Fprintf(w, "%sHeap (%d): %s%s%s\n\n", title, h.Len(), body, h, end); err != nil {
		return errgo.Wrap(err, "failed to write heap")
	}

	if err := tree.Render(tree.New(tree.WithMaxValue(cfg.MaxValue)), w, h); err != nil {
		return err
	}

	if !cfg.Pop {
		return nil
	}

	sorted := lo.Times(h.Len(), func(int) int {
		return lo.Must(h.Pop())
	})

	log.Debug().Msgf("popped %s nodes", humanize.Comma(int64(len(sorted))))

	items := lo.Map(sorted, func(v int, _ int) string {
		return strconv.Itoa(v)
	})

	if _, err := fmt.Fprintf(w, "\n%sSorted: %s[%s]%s\n", title, body, strings.Join(items, ", "), end); err != nil {
		return errgo.Wrap(err, "failed to write sorted nodes")
	}

	return nil
}
