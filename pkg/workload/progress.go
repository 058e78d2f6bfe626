package workload

import (
	"sync/atomic"
	"time"

	"github.com/RussellLuo/timingwheel"
	"golang.org/x/exp/slog"
)

type everyScheduler struct {
	interval time.Duration
}

func (s *everyScheduler) Next(prev time.Time) time.Time {
	return prev.Add(s.interval)
}

// startProgress logs the number of processed lines every interval until the
// returned stop func is called. It only reads the line counter.
func startProgress(interval time.Duration, lines *atomic.Int64, logger *slog.Logger) (stop func()) {
	tw := timingwheel.NewTimingWheel(time.Millisecond, 20)
	tw.Start()

	startTs := time.Now()
	timer := tw.ScheduleFunc(&everyScheduler{interval: interval}, func() {
		n := lines.Load()
		elapsed := time.Since(startTs)
		logger.Info("replay progress",
			"lines", n,
			"elapsed", elapsed.Round(time.Millisecond),
			"lines_per_sec", int64(float64(n)/elapsed.Seconds()),
		)
	})

	return func() {
		timer.Stop()
		tw.Stop()
	}
}
