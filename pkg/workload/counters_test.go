package workload

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecord(t *testing.T) {
	var c Counters
	events := []Event{
		EventPut, EventPut, EventPut,
		EventSuccessfulGet,
		EventFailedGet, EventFailedGet,
		EventRange,
		EventSuccessfulDelete,
		EventFailedDelete, EventFailedDelete,
		EventLoad,
	}
	for _, ev := range events {
		c.Record(ev)
	}

	assert.Equal(t, Counters{
		Puts:              3,
		SuccessfulGets:    1,
		FailedGets:        2,
		Ranges:            1,
		SuccessfulDeletes: 1,
		FailedDeletes:     2,
		Loads:             1,
	}, c)

	assert.Panics(t, func() { c.Record(Event("FLUSH")) })
}

func TestWriteReport(t *testing.T) {
	c := Counters{
		Puts:              5,
		SuccessfulGets:    4,
		FailedGets:        3,
		Ranges:            2,
		SuccessfulDeletes: 1,
		FailedDeletes:     6,
		Loads:             7,
		Elapsed:           1500 * time.Millisecond,
	}

	var buf bytes.Buffer
	assert.Nil(t, c.WriteReport(&buf))
	assert.Equal(t, `------------------------------------
PUTS 5
SUCCESFUL_GETS 4
FAILED_GETS 3
RANGES 2
SUCCESSFUL_DELS 1
FAILED_DELS 6
LOADS 7
TIME_ELAPSED 1.5
------------------------------------
`, buf.String())
}
