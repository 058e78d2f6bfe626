package workload

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dborchard/tracekv/pkg/store"
	"golang.org/x/exp/slog"
)

const maxLineSize = 1 << 20

type Options struct {
	// Verbose prints an event tag per executed command and suppresses the
	// final report.
	Verbose bool
	// ShowOutput prints the payload of get and range commands.
	ShowOutput bool
	// LoadDir resolves relative load paths. Empty means the working directory.
	LoadDir string
	// ProgressInterval enables periodic progress logging when positive.
	ProgressInterval time.Duration
	// LatencyWindow is the moving average window for per-kind latency.
	LatencyWindow int

	Logger *slog.Logger
}

func DefaultOptions() Options {
	return Options{ShowOutput: true}
}

// Interpreter replays a workload trace against a store. It owns the store
// for the duration of a run and is not safe for concurrent use.
type Interpreter struct {
	store    store.Store
	opts     Options
	out      *bufio.Writer
	logger   *slog.Logger
	counters Counters
	latency  *latencyStats
	lines    atomic.Int64
}

func New(s store.Store, out io.Writer, opts Options) *Interpreter {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Interpreter{
		store:   s,
		opts:    opts,
		out:     bufio.NewWriter(out),
		logger:  logger,
		latency: newLatencyStats(opts.LatencyWindow),
	}
}

// Run reads r line by line until it is exhausted and executes every command.
// Unless verbose, the summary report is written once the input is consumed.
// The first parse or I/O failure aborts the run; output already produced is
// flushed but no report is written.
func (it *Interpreter) Run(ctx context.Context, r io.Reader) (Counters, error) {
	defer it.out.Flush()

	if it.opts.ProgressInterval > 0 {
		stop := startProgress(it.opts.ProgressInterval, &it.lines, it.logger)
		defer stop()
	}

	startTs := time.Now()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return it.counters, fmt.Errorf("replay aborted at line %d: %w", lineNo+1, err)
		}
		lineNo++

		cmd, err := ParseLine(scanner.Text())
		if err != nil {
			return it.counters, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err = it.Exec(cmd); err != nil {
			return it.counters, fmt.Errorf("line %d: %w", lineNo, err)
		}
		it.lines.Add(1)
	}
	if err := scanner.Err(); err != nil {
		return it.counters, fmt.Errorf("reading workload: %w", err)
	}

	it.counters.Elapsed = time.Since(startTs)

	it.logger.Debug("range cross-check",
		"ranges", it.counters.Ranges,
		"length_sum", it.counters.RangeLengthSum,
		"value_sum", it.counters.RangeValueSum,
	)
	it.latency.log(it.logger)
	it.logger.Info("replay done",
		"store", it.store.Name(),
		"lines", lineNo,
		"keys", it.store.Len(),
		"elapsed", it.counters.Elapsed,
	)

	if !it.opts.Verbose {
		if err := it.counters.WriteReport(it.out); err != nil {
			return it.counters, err
		}
	}
	return it.counters, it.out.Flush()
}

// Exec runs a single command against the store.
func (it *Interpreter) Exec(cmd Command) error {
	startTs := time.Now()
	var err error

	switch cmd.Kind {
	case Skip:
		return nil
	case Put:
		it.store.Put(cmd.Key, cmd.Val)
		it.record(EventPut)
	case Get:
		it.get(cmd.Key)
	case Range:
		it.scan(cmd.Key, cmd.Val)
	case Delete:
		if it.store.Delete(cmd.Key) {
			it.record(EventSuccessfulDelete)
		} else {
			it.record(EventFailedDelete)
		}
	case Load:
		err = it.load(cmd.Path)
	default:
		panic("unknown command kind " + cmd.Kind.String())
	}

	it.latency.observe(cmd.Kind, time.Since(startTs))
	return err
}

// Counters returns a copy of the counters accumulated so far.
func (it *Interpreter) Counters() Counters {
	return it.counters
}

func (it *Interpreter) record(ev Event) {
	it.counters.Record(ev)
	if it.opts.Verbose {
		it.out.WriteString(string(ev))
		it.out.WriteByte('\n')
	}
}

func (it *Interpreter) get(key int32) {
	val, ok := it.store.Get(key)
	if it.opts.ShowOutput {
		if ok {
			fmt.Fprintf(it.out, "%d  ->  %d\n", key, val)
		} else {
			fmt.Fprintf(it.out, "%d  ->  \n", key)
		}
	}
	if ok {
		it.record(EventSuccessfulGet)
	} else {
		it.record(EventFailedGet)
	}
}

func (it *Interpreter) scan(start, end int32) {
	rows := it.store.Range(start, end)

	it.counters.recordRangeResult(rows)

	if it.opts.ShowOutput {
		tokens := make([]string, 0, len(rows))
		for _, row := range rows {
			tokens = append(tokens, strconv.FormatInt(int64(row.Key), 10)+":"+strconv.FormatInt(int64(row.Val), 10))
		}
		it.out.WriteString(strings.Join(tokens, " "))
		it.out.WriteByte('\n')
	}
	it.record(EventRange)
}

// load installs every record of the file at path. The file is closed before
// load returns, whether the records ran out or reading failed.
func (it *Interpreter) load(path string) error {
	it.record(EventLoad)

	if it.opts.LoadDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(it.opts.LoadDir, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	defer f.Close()

	rr := NewRecordReader(f)
	loaded := 0
	for {
		rec, ok, err := rr.Next()
		if err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		if !ok {
			break
		}
		it.store.Put(rec.Key, rec.Val)
		it.record(EventPut)
		loaded++
	}

	it.logger.Debug("bulk load", "path", path, "records", loaded)
	return nil
}
