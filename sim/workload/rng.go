package workload

import (
	"hash/fnv"
	"math/rand"
)

const (
	subsystemArrival = "arrival"
	subsystemBurst   = "burst"
)

// partitionedRNG hands out one deterministic source per named subsystem, so
// changing the burst range of a generated workload leaves its arrival times
// unchanged for the same seed.
//
// Derivation: seed XOR fnv1a64(subsystem). Not thread-safe.
type partitionedRNG struct {
	seed       int64
	subsystems map[string]*rand.Rand
}

func newPartitionedRNG(seed int64) *partitionedRNG {
	return &partitionedRNG{seed: seed, subsystems: make(map[string]*rand.Rand)}
}

// forSubsystem returns the cached source for name, creating it on first use.
func (p *partitionedRNG) forSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(p.seed ^ fnv1a64(name)))
	p.subsystems[name] = rng
	return rng
}

func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
