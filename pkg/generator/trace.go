package generator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"sync"

	"github.com/dborchard/tracekv/pkg/workload"
	"github.com/panjf2000/ants/v2"
)

type Config struct {
	Puts    int
	Gets    int
	Ranges  int
	Deletes int

	// Loads is the number of bulk-load files, each holding LoadSize records.
	Loads    int
	LoadSize int

	KeyMin, KeyMax int32
	// MaxRangeWidth caps end-start of generated range commands.
	MaxRangeWidth int32

	Dist Distribution
	Seed int64
	// Workers is the size of the pool writing bulk-load files.
	Workers int
}

func DefaultConfig() Config {
	return Config{
		Puts:          10_000,
		Gets:          1_000,
		Ranges:        100,
		Deletes:       100,
		LoadSize:      10_000,
		KeyMin:        -1_000_000,
		KeyMax:        1_000_000,
		MaxRangeWidth: 1_000,
		Dist:          UNIFORM,
		Seed:          1,
		Workers:       4,
	}
}

func (c Config) validate() error {
	if c.KeyMin > c.KeyMax {
		return fmt.Errorf("key range [%d, %d] is empty", c.KeyMin, c.KeyMax)
	}
	if c.Puts < 0 || c.Gets < 0 || c.Ranges < 0 || c.Deletes < 0 || c.Loads < 0 || c.LoadSize < 0 {
		return errors.New("operation counts must not be negative")
	}
	if c.Ranges > 0 && c.MaxRangeWidth <= 0 {
		return errors.New("max range width must be positive")
	}
	return nil
}

func (c Config) keygen() Generator {
	return Build(c.Dist, int64(c.KeyMin), int64(c.KeyMax)-int64(c.KeyMin)+1)
}

// WriteTrace writes a workload trace: one load line per entry of loadFiles,
// followed by the configured puts, gets, ranges and deletes in shuffled order.
func WriteTrace(w io.Writer, cfg Config, loadFiles []string) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	r := rand.New(rand.NewSource(cfg.Seed))
	keygen := cfg.keygen()
	vals := NewUniform(int64(cfg.KeyMin), int64(cfg.KeyMax))

	ops := make([]workload.Kind, 0, cfg.Puts+cfg.Gets+cfg.Ranges+cfg.Deletes)
	ops = appendN(ops, workload.Put, cfg.Puts)
	ops = appendN(ops, workload.Get, cfg.Gets)
	ops = appendN(ops, workload.Range, cfg.Ranges)
	ops = appendN(ops, workload.Delete, cfg.Deletes)
	r.Shuffle(len(ops), func(i, j int) { ops[i], ops[j] = ops[j], ops[i] })

	bw := bufio.NewWriter(w)
	for _, path := range loadFiles {
		fmt.Fprintf(bw, "l %s\n", path)
	}

	for _, op := range ops {
		key := keygen.Next(r)
		switch op {
		case workload.Put:
			fmt.Fprintf(bw, "p %d %d\n", key, vals.Next(r))
		case workload.Get:
			fmt.Fprintf(bw, "g %d\n", key)
		case workload.Range:
			end := key + 1 + r.Int63n(int64(cfg.MaxRangeWidth))
			if end > math.MaxInt32 {
				end = math.MaxInt32
			}
			fmt.Fprintf(bw, "r %d %d\n", key, end)
		case workload.Delete:
			fmt.Fprintf(bw, "d %d\n", key)
		}
	}

	return bw.Flush()
}

func appendN(ops []workload.Kind, kind workload.Kind, n int) []workload.Kind {
	for i := 0; i < n; i++ {
		ops = append(ops, kind)
	}
	return ops
}

// WriteLoadFiles writes cfg.Loads bulk-load files into dir concurrently and
// returns their paths in creation order.
func WriteLoadFiles(dir string, cfg Config) ([]string, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Loads == 0 {
		return nil, nil
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	paths := make([]string, cfg.Loads)
	errs := make([]error, cfg.Loads)

	var wg sync.WaitGroup
	for i := 0; i < cfg.Loads; i++ {
		i := i
		paths[i] = filepath.Join(dir, fmt.Sprintf("load_%03d.bin", i))

		wg.Add(1)
		err = pool.Submit(func() {
			defer wg.Done()
			seed := cfg.Seed + int64(i) + 1
			errs[i] = writeLoadFile(paths[i], cfg, seed)
		})
		if err != nil {
			wg.Done()
			errs[i] = err
		}
	}
	wg.Wait()

	if err = errors.Join(errs...); err != nil {
		return nil, err
	}
	return paths, nil
}

func writeLoadFile(path string, cfg Config, seed int64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	r := rand.New(rand.NewSource(seed))
	keygen := cfg.keygen()
	vals := NewUniform(int64(cfg.KeyMin), int64(cfg.KeyMax))

	rw := workload.NewRecordWriter(f)
	for i := 0; i < cfg.LoadSize; i++ {
		if err = rw.Write(int32(keygen.Next(r)), int32(vals.Next(r))); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return rw.Flush()
}

// WriteWorkload writes the bulk-load files and a workload.txt trace into dir.
// Load lines carry base names, so the trace replays with dir as load dir.
func WriteWorkload(dir string, cfg Config) (tracePath string, err error) {
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("unable to create output directory: %w", err)
	}

	paths, err := WriteLoadFiles(dir, cfg)
	if err != nil {
		return "", err
	}
	names := make([]string, len(paths))
	for i, path := range paths {
		names[i] = filepath.Base(path)
	}

	tracePath = filepath.Join(dir, "workload.txt")
	f, err := os.Create(tracePath)
	if err != nil {
		return "", err
	}
	if err = WriteTrace(f, cfg, names); err != nil {
		f.Close()
		return "", err
	}
	return tracePath, f.Close()
}
