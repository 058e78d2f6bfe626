package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dborchard/tracekv/pkg/generator"
	flag "github.com/spf13/pflag"
	"golang.org/x/exp/slog"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := generator.DefaultConfig()
	out := flag.StringP("out", "o", "workload", "output directory")
	dist := flag.String("dist", "uniform", "key distribution: uniform, sequential or gaussian")
	flag.IntVar(&cfg.Puts, "puts", cfg.Puts, "number of put commands")
	flag.IntVar(&cfg.Gets, "gets", cfg.Gets, "number of get commands")
	flag.IntVar(&cfg.Ranges, "ranges", cfg.Ranges, "number of range commands")
	flag.IntVar(&cfg.Deletes, "deletes", cfg.Deletes, "number of delete commands")
	flag.IntVar(&cfg.Loads, "loads", cfg.Loads, "number of bulk-load files")
	flag.IntVar(&cfg.LoadSize, "load-size", cfg.LoadSize, "records per bulk-load file")
	flag.Int32Var(&cfg.KeyMin, "key-min", cfg.KeyMin, "smallest generated key")
	flag.Int32Var(&cfg.KeyMax, "key-max", cfg.KeyMax, "largest generated key")
	flag.Int32Var(&cfg.MaxRangeWidth, "max-range", cfg.MaxRangeWidth, "largest range width")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "goroutines writing bulk-load files")
	flag.Parse()

	var err error
	if cfg.Dist, err = generator.ParseDistribution(*dist); err != nil {
		logger.Error("invalid distribution", "err", err)
		os.Exit(2)
	}

	startTs := time.Now()
	tracePath, err := generator.WriteWorkload(*out, cfg)
	if err != nil {
		logger.Error("generate failed", "err", err)
		os.Exit(1)
	}
	logger.Info("workload written",
		"trace", tracePath,
		"replay", fmt.Sprintf("replay --load-dir %s %s", *out, tracePath),
		"loads", cfg.Loads,
		"elapsed", time.Since(startTs),
	)
}
