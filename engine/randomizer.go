package engine

import "math/rand/v2"

// Randomizer supplies the kind of each newly spawned piece.
type Randomizer interface {
	Next() Kind
}

// UniformRandomizer draws every kind with equal probability. The same seed
// always yields the same sequence.
type UniformRandomizer struct {
	rng *rand.Rand
}

func NewUniformRandomizer(seed uint64) *UniformRandomizer {
	return &UniformRandomizer{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *UniformRandomizer) Next() Kind {
	return Kinds[r.rng.IntN(len(Kinds))]
}

// SequenceRandomizer hands out a fixed list of kinds, cycling when it runs
// out. An empty list yields KindT forever.
type SequenceRandomizer struct {
	kinds []Kind
	next  int
}

func NewSequenceRandomizer(kinds ...Kind) *SequenceRandomizer {
	return &SequenceRandomizer{kinds: kinds}
}

func (r *SequenceRandomizer) Next() Kind {
	if len(r.kinds) == 0 {
		return KindT
	}
	k := r.kinds[r.next%len(r.kinds)]
	r.next++
	return k
}
