package workload

import (
	"fmt"
	"io"
	"time"

	"github.com/dborchard/tracekv/pkg/y/entry"
)

// Event is the tag printed for an executed command in verbose mode.
type Event string

const (
	EventPut              Event = "PUT"
	EventSuccessfulGet    Event = "SUCCESSFUL_GET"
	EventFailedGet        Event = "FAILED_GET"
	EventRange            Event = "RANGE"
	EventSuccessfulDelete Event = "SUCCESSFUL_DELETE"
	EventFailedDelete     Event = "FAILED_DELETE"
	EventLoad             Event = "LOAD"
)

// rangeValueMod bounds RangeValueSum so independent implementations can
// compare it without overflow.
const rangeValueMod = 1_000_000

type Counters struct {
	Puts              int64
	SuccessfulGets    int64
	FailedGets        int64
	Ranges            int64
	SuccessfulDeletes int64
	FailedDeletes     int64
	Loads             int64

	// RangeLengthSum and RangeValueSum are cross-check figures: the number of
	// pairs returned by all ranges and their value sum modulo 10^6, taken
	// after every value. They are
	// logged, not reported.
	RangeLengthSum int64
	RangeValueSum  int64

	Elapsed time.Duration
}

// Record increments the counter matching ev.
func (c *Counters) Record(ev Event) {
	switch ev {
	case EventPut:
		c.Puts++
	case EventSuccessfulGet:
		c.SuccessfulGets++
	case EventFailedGet:
		c.FailedGets++
	case EventRange:
		c.Ranges++
	case EventSuccessfulDelete:
		c.SuccessfulDeletes++
	case EventFailedDelete:
		c.FailedDeletes++
	case EventLoad:
		c.Loads++
	default:
		panic("unknown event " + string(ev))
	}
}

// recordRangeResult folds each returned value into RangeValueSum. The
// remainder keeps the sign of the running sum.
func (c *Counters) recordRangeResult(rows []entry.Pair[int32, int32]) {
	c.RangeLengthSum += int64(len(rows))
	for _, row := range rows {
		c.RangeValueSum = (c.RangeValueSum + int64(row.Val)) % rangeValueMod
	}
}

// WriteReport prints the end-of-run summary. Field names are consumed by
// existing tooling and keep their historical spelling.
func (c *Counters) WriteReport(w io.Writer) error {
	const rule = "------------------------------------"
	_, err := fmt.Fprintf(w,
		"%s\nPUTS %d\nSUCCESFUL_GETS %d\nFAILED_GETS %d\nRANGES %d\nSUCCESSFUL_DELS %d\nFAILED_DELS %d\nLOADS %d\nTIME_ELAPSED %v\n%s\n",
		rule,
		c.Puts,
		c.SuccessfulGets,
		c.FailedGets,
		c.Ranges,
		c.SuccessfulDeletes,
		c.FailedDeletes,
		c.Loads,
		c.Elapsed.Seconds(),
		rule,
	)
	return err
}
