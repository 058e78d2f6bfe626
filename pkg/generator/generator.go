package generator

import (
	"math"
	"math/rand"
)

// Generator yields keys from a closed interval.
type Generator interface {
	Next(r *rand.Rand) int64
}

type Uniform struct {
	lb, ub int64
}

func NewUniform(lb, ub int64) *Uniform {
	return &Uniform{lb: lb, ub: ub}
}

func (u *Uniform) Next(r *rand.Rand) int64 {
	return u.lb + r.Int63n(u.ub-u.lb+1)
}

// Sequential walks lb..ub and wraps around.
type Sequential struct {
	lb, ub, curr int64
}

func NewSequential(lb, ub int64) *Sequential {
	return &Sequential{lb: lb, ub: ub, curr: lb}
}

func (s *Sequential) Next(_ *rand.Rand) int64 {
	v := s.curr
	if s.curr == s.ub {
		s.curr = s.lb
	} else {
		s.curr++
	}
	return v
}

// Gaussian centres on the middle of the interval with a standard deviation
// of a third of the half width; samples are clamped into the interval.
type Gaussian struct {
	lb, ub       int64
	mean, stddev float64
}

func NewGaussian(lb, ub int64) *Gaussian {
	half := float64(ub-lb) / 2
	return &Gaussian{
		lb:     lb,
		ub:     ub,
		mean:   float64(lb) + half,
		stddev: half / 3,
	}
}

func (g *Gaussian) Next(r *rand.Rand) int64 {
	v := int64(math.Round(r.NormFloat64()*g.stddev + g.mean))
	if v < g.lb {
		return g.lb
	}
	if v > g.ub {
		return g.ub
	}
	return v
}
