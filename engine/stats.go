package engine

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// Stats accumulates per-session play statistics. It is owned by a session and
// reset on restart.
type Stats struct {
	piecesPlaced int
	linesCleared int
	bestClear    int
	spawned      *intmap.Map[Kind, int]
	clears       *intmap.Map[int, int]
}

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	PiecesPlaced int
	LinesCleared int
	BestClear    int
	// Spawned counts spawned pieces per kind, including a blocked final spawn.
	Spawned map[Kind]int
	// Clears maps a sweep size (1..4) to how many sweeps cleared that many rows.
	Clears map[int]int
}

func newStats() *Stats {
	return &Stats{
		spawned: intmap.New[Kind, int](len(Kinds)),
		clears:  intmap.New[int, int](4),
	}
}

func (s *Stats) recordSpawn(k Kind) {
	n, _ := s.spawned.Get(k)
	s.spawned.Put(k, n+1)
}

func (s *Stats) recordSettle(cleared int) {
	s.piecesPlaced++
	if cleared == 0 {
		return
	}
	s.linesCleared += cleared
	s.bestClear = max(s.bestClear, cleared)
	n, _ := s.clears.Get(cleared)
	s.clears.Put(cleared, n+1)
}

func (s *Stats) reset() {
	s.piecesPlaced = 0
	s.linesCleared = 0
	s.bestClear = 0
	s.spawned.Clear()
	s.clears.Clear()
}

// CollectStats copies the counters into plain maps.
func (s *Stats) CollectStats() StatsSnapshot {
	snap := StatsSnapshot{
		PiecesPlaced: s.piecesPlaced,
		LinesCleared: s.linesCleared,
		BestClear:    s.bestClear,
		Spawned:      make(map[Kind]int, s.spawned.Len()),
		Clears:       make(map[int]int, s.clears.Len()),
	}
	for k, n := range s.spawned.All() {
		snap.Spawned[k] = n
	}
	s.clears.ForEach(func(rows, n int) bool {
		snap.Clears[rows] = n
		return true
	})
	return snap
}

// ClearSizes returns the sweep sizes seen so far in ascending order.
func (s StatsSnapshot) ClearSizes() []int {
	sizes := make([]int, 0, len(s.Clears))
	for rows := range s.Clears {
		sizes = append(sizes, rows)
	}
	slices.Sort(sizes)
	return sizes
}
