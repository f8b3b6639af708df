// Package rng provides the random sources used for food placement.
// The engine only needs a bounded integer draw, so everything here fits
// behind a single-method interface that tests can script.
package rng

import (
	"math/rand"
	"time"
)

// Source produces a uniformly distributed integer in [0, bound).
// Implementations may keep internal state; callers treat a draw as side-effect free.
type Source interface {
	NextInRange(bound int) int
}

// Seeded is a Source backed by a seeded math/rand generator.
// Two Seeded sources with the same seed produce the same draws.
type Seeded struct {
	seed int64
	r    *rand.Rand
}

// NewSeeded creates a deterministic source. A zero seed is replaced with the
// current time, matching the platform's "0 means random" convention.
func NewSeeded(seed int64) *Seeded {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Seeded{
		seed: seed,
		r:    rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed actually in use (after zero replacement).
func (s *Seeded) Seed() int64 {
	return s.seed
}

// NextInRange returns a value in [0, bound). Panics if bound <= 0.
func (s *Seeded) NextInRange(bound int) int {
	return s.r.Intn(bound)
}

// Sequence replays a fixed list of values, cycling when exhausted.
// Each value is reduced modulo the requested bound.
type Sequence struct {
	values []int
	pos    int
	draws  int
}

// NewSequence creates a scripted source.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// NextInRange returns the next scripted value reduced into [0, bound).
func (s *Sequence) NextInRange(bound int) int {
	if bound <= 0 {
		panic("rng: bound must be positive")
	}
	s.draws++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	v %= bound
	if v < 0 {
		v += bound
	}
	return v
}

// Draws returns how many values have been requested so far.
func (s *Sequence) Draws() int {
	return s.draws
}
