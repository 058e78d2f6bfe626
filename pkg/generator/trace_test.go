package generator

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dborchard/tracekv/pkg/store/hashmap"
	"github.com/dborchard/tracekv/pkg/workload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Puts = 200
	cfg.Gets = 50
	cfg.Ranges = 10
	cfg.Deletes = 20
	cfg.KeyMin = -100
	cfg.KeyMax = 100
	cfg.MaxRangeWidth = 25
	return cfg
}

func TestWriteTrace(t *testing.T) {
	cfg := smallConfig()

	var buf bytes.Buffer
	require.Nil(t, WriteTrace(&buf, cfg, []string{"a.bin", "b.bin"}))

	counts := map[workload.Kind]int{}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	for i, line := range lines {
		cmd, err := workload.ParseLine(line)
		require.Nil(t, err, line)
		counts[cmd.Kind]++

		switch cmd.Kind {
		case workload.Load:
			assert.True(t, i < 2, "load lines come first")
		case workload.Range:
			assert.True(t, cmd.Key < cmd.Val)
			assert.True(t, cmd.Val-cmd.Key <= cfg.MaxRangeWidth)
		case workload.Put, workload.Get, workload.Delete:
			assert.True(t, cmd.Key >= cfg.KeyMin && cmd.Key <= cfg.KeyMax)
		}
	}

	assert.Equal(t, map[workload.Kind]int{
		workload.Load:   2,
		workload.Put:    200,
		workload.Get:    50,
		workload.Range:  10,
		workload.Delete: 20,
	}, counts)

	var again bytes.Buffer
	require.Nil(t, WriteTrace(&again, cfg, []string{"a.bin", "b.bin"}))
	assert.Equal(t, buf.String(), again.String())
}

func TestWriteTraceInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.KeyMin, cfg.KeyMax = 5, 1
	assert.Error(t, WriteTrace(&bytes.Buffer{}, cfg, nil))

	cfg = smallConfig()
	cfg.MaxRangeWidth = 0
	assert.Error(t, WriteTrace(&bytes.Buffer{}, cfg, nil))
}

func TestGeneratedWorkloadReplays(t *testing.T) {
	dir := t.TempDir()
	cfg := smallConfig()
	cfg.Loads = 5
	cfg.LoadSize = 64
	cfg.Workers = 3

	paths, err := WriteLoadFiles(dir, cfg)
	require.Nil(t, err)
	require.Equal(t, 5, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		require.Nil(t, err)
		assert.Equal(t, int64(64*workload.RecordSize), info.Size())
	}

	var trace bytes.Buffer
	require.Nil(t, WriteTrace(&trace, cfg, paths))

	var out bytes.Buffer
	it := workload.New(hashmap.New(), &out, workload.Options{})
	c, err := it.Run(context.Background(), &trace)
	require.Nil(t, err)

	assert.Equal(t, int64(5), c.Loads)
	assert.Equal(t, int64(200+5*64), c.Puts)
	assert.Equal(t, int64(50), c.SuccessfulGets+c.FailedGets)
	assert.Equal(t, int64(10), c.Ranges)
	assert.Equal(t, int64(20), c.SuccessfulDeletes+c.FailedDeletes)
}

func TestWriteLoadFilesNone(t *testing.T) {
	paths, err := WriteLoadFiles(t.TempDir(), smallConfig())
	assert.Nil(t, err)
	assert.Empty(t, paths)
}

func TestWriteWorkloadUsesLoadDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	cfg := smallConfig()
	cfg.Loads = 2
	cfg.LoadSize = 8

	tracePath, err := WriteWorkload(dir, cfg)
	require.Nil(t, err)
	assert.Equal(t, filepath.Join(dir, "workload.txt"), tracePath)

	data, err := os.ReadFile(tracePath)
	require.Nil(t, err)
	assert.True(t, strings.HasPrefix(string(data), "l load_000.bin\nl load_001.bin\n"))

	f, err := os.Open(tracePath)
	require.Nil(t, err)
	defer f.Close()

	it := workload.New(hashmap.New(), &bytes.Buffer{}, workload.Options{LoadDir: dir})
	c, err := it.Run(context.Background(), f)
	require.Nil(t, err)
	assert.Equal(t, int64(2), c.Loads)
	assert.Equal(t, int64(200+2*8), c.Puts)
}
