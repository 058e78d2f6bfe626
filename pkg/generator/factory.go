package generator

import (
	"fmt"
	"strings"
)

type Distribution int

const (
	SEQUENTIAL Distribution = iota
	UNIFORM
	GAUSSIAN
)

func (d Distribution) String() string {
	switch d {
	case SEQUENTIAL:
		return "sequential"
	case UNIFORM:
		return "uniform"
	case GAUSSIAN:
		return "gaussian"
	default:
		return fmt.Sprintf("Distribution(%d)", int(d))
	}
}

// Build returns a key generator over the count keys starting at start.
// It panics on an unknown distribution.
func Build(dist Distribution, start, count int64) Generator {
	lo, hi := start, start+count-1
	switch dist {
	case SEQUENTIAL:
		return NewSequential(lo, hi)
	case UNIFORM:
		return NewUniform(lo, hi)
	case GAUSSIAN:
		return NewGaussian(lo, hi)
	}
	panic("unknown key distribution " + dist.String())
}

func ParseDistribution(s string) (Distribution, error) {
	switch strings.ToLower(s) {
	case "sequential", "seq":
		return SEQUENTIAL, nil
	case "uniform":
		return UNIFORM, nil
	case "gaussian", "gauss", "normal":
		return GAUSSIAN, nil
	default:
		return 0, fmt.Errorf("unknown distribution %q", s)
	}
}
