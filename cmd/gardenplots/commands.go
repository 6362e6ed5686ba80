package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/regionscan/garden"
	"github.com/katalvlaran/regionscan/gridgraph"
	"github.com/katalvlaran/regionscan/scan"
)

// newRootCmd returns the gardenplots command with flag defaults taken from cfg.
func newRootCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gardenplots [file]",
		Short: "Price the fences around the regions of a garden map",
		Long: `gardenplots reads a garden map (one row of uppercase letters per line)
and prints the total fence price (area × perimeter, part 1) and the
bulk-discount price (area × sides, part 2) over all regions.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "-"
			if len(args) == 1 {
				name = args[0]
			}
			return runPrices(cmd, cfg, name)
		},
	}

	f := cmd.Flags()
	f.IntVar(&cfg.Part, "part", cfg.Part, "print only part 1 (fence) or part 2 (bulk); 0 prints both")
	f.BoolVar(&cfg.Regions, "regions", cfg.Regions, "print a per-region table")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error (default: GARDENPLOTS_LOG_LEVEL or info)")
	f.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: auto, text or json (default: GARDENPLOTS_LOG_FORMAT or auto)")

	return cmd
}

func runPrices(cmd *cobra.Command, cfg Config, name string) error {
	if cfg.Part < 0 || cfg.Part > 2 {
		return fmt.Errorf("--part must be 0, 1 or 2, got %d", cfg.Part)
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	g, err := readMap(cmd.InOrStdin(), name)
	if err != nil {
		return err
	}
	logger.Info("map loaded", "source", name, "width", g.Width, "height", g.Height)

	fence, bulk, err := prices(cmd.Context(), g, cfg.Part, logger)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if cfg.Part != 2 {
		fmt.Fprintf(out, "part 1: %d\n", fence)
	}
	if cfg.Part != 1 {
		fmt.Fprintf(out, "part 2: %d\n", bulk)
	}

	if cfg.Regions {
		return writeRegions(out, garden.Report(g, scan.WithLogger(logger)))
	}
	return nil
}

func readMap(stdin io.Reader, name string) (*gridgraph.Grid[byte], error) {
	if name == "-" {
		return garden.Parse(stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := garden.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return g, nil
}

// prices runs the requested scans concurrently. The grid is only read.
// A scan that has not started when ctx is done is skipped and the context
// error is returned.
func prices(ctx context.Context, g *gridgraph.Grid[byte], part int, logger *slog.Logger) (fence, bulk int, err error) {
	eg, ctx := errgroup.WithContext(ctx)
	opt := scan.WithLogger(logger)
	if part != 2 {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fence = garden.FencePrice(g, opt)
			return nil
		})
	}
	if part != 1 {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			bulk = garden.BulkPrice(g, opt)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, 0, fmt.Errorf("price map: %w", err)
	}
	return fence, bulk, nil
}

func writeRegions(w io.Writer, plots []garden.Plot) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PLOT\tAREA\tPERIMETER\tSIDES\tFENCE\tBULK")
	for _, p := range plots {
		fmt.Fprintf(tw, "%c\t%d\t%d\t%d\t%d\t%d\n",
			p.Letter, p.Area, p.Perimeter, p.Sides, p.FenceCost(), p.BulkCost())
	}
	return tw.Flush()
}
