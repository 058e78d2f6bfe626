package workload

import (
	"time"

	movingaverage "github.com/RobinUS2/golang-moving-average"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

const defaultLatencyWindow = 1024

// latencyStats keeps a moving average of command latency per kind.
type latencyStats struct {
	window int
	moAvg  map[Kind]*movingaverage.MovingAverage
	count  map[Kind]int64
}

func newLatencyStats(window int) *latencyStats {
	if window <= 0 {
		window = defaultLatencyWindow
	}
	return &latencyStats{
		window: window,
		moAvg:  make(map[Kind]*movingaverage.MovingAverage),
		count:  make(map[Kind]int64),
	}
}

func (l *latencyStats) observe(kind Kind, d time.Duration) {
	avg, ok := l.moAvg[kind]
	if !ok {
		avg = movingaverage.New(l.window)
		l.moAvg[kind] = avg
	}
	avg.Add(float64(d.Nanoseconds()))
	l.count[kind]++
}

func (l *latencyStats) avg(kind Kind) time.Duration {
	avg, ok := l.moAvg[kind]
	if !ok {
		return 0
	}
	return time.Duration(avg.Avg())
}

func (l *latencyStats) log(logger *slog.Logger) {
	kinds := maps.Keys(l.moAvg)
	slices.Sort(kinds)
	for _, kind := range kinds {
		logger.Debug("command latency",
			"kind", kind.String(),
			"count", l.count[kind],
			"avg", l.avg(kind),
		)
	}
}
