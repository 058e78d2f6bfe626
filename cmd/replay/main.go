package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dborchard/tracekv/pkg/kv"
	"github.com/dborchard/tracekv/pkg/store"
	"github.com/dborchard/tracekv/pkg/workload"
	flag "github.com/spf13/pflag"
	"golang.org/x/exp/slog"
)

func main() {
	opts := workload.DefaultOptions()
	storeName := flag.String("store", "hashmap", "store implementation: hashmap or btree")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	flag.BoolVarP(&opts.Verbose, "verbose", "v", false, "print an event tag per command and skip the summary")
	flag.BoolVar(&opts.ShowOutput, "show-output", true, "print results of get and range commands")
	flag.StringVar(&opts.LoadDir, "load-dir", "", "directory for relative load paths (default: working directory)")
	flag.DurationVar(&opts.ProgressInterval, "progress", 0, "log progress at this interval (0 disables)")
	flag.IntVar(&opts.LatencyWindow, "latency-window", 1024, "moving average window for per-command latency")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <workload>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	logger, err := newLogger(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	opts.Logger = logger

	typ, err := store.ParseTyp(*storeName)
	if err != nil {
		logger.Error("invalid store", "err", err)
		os.Exit(2)
	}

	if err = run(flag.Arg(0), typ, opts); err != nil {
		logger.Error("replay failed", "err", err)
		os.Exit(1)
	}
}

func run(path string, typ store.Typ, opts workload.Options) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts.Logger.Debug("starting replay", "workload", path, "store", typ.String(), "start", time.Now().Format(time.RFC3339))

	it := workload.New(kv.NewStore(typ), os.Stdout, opts)
	_, err = it.Run(ctx, f)
	return err
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}
