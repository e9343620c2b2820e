package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	MaxGames  int
	MaxPieces int
	Bot       string
	Kicks     string
	Seed      uint64

	// Results
	Games          []GameResult
	TotalTime      time.Duration
	TotalSteps     int64
	StepTime       Stats
	DecideTime     Stats
	Clears         map[int]int
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// GameResult summarises one simulated game.
type GameResult struct {
	Seed     uint64
	Score    int
	Pieces   int
	Lines    int
	GameOver bool
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))

	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)
	s.P99 = sorted[(len(sorted)-1)*99/100]
}

// Add folds one game into the report.
func (r *Report) Add(g GameResult, clears map[int]int) {
	r.Games = append(r.Games, g)
	if r.Clears == nil {
		r.Clears = make(map[int]int)
	}
	for rows, n := range clears {
		r.Clears[rows] += n
	}
}

func (r *Report) BestScore() int {
	best := 0
	for _, g := range r.Games {
		best = max(best, g.Score)
	}
	return best
}

func (r *Report) AvgScore() float64 {
	if len(r.Games) == 0 {
		return 0
	}
	total := 0
	for _, g := range r.Games {
		total += g.Score
	}
	return float64(total) / float64(len(r.Games))
}

func (r *Report) TotalLines() int {
	total := 0
	for _, g := range r.Games {
		total += g.Lines
	}
	return total
}

func (r *Report) TotalPieces() int {
	total := 0
	for _, g := range r.Games {
		total += g.Pieces
	}
	return total
}

// ClearSizes returns the keys of Clears in ascending order.
func (r *Report) ClearSizes() []int {
	sizes := make([]int, 0, len(r.Clears))
	for rows := range r.Clears {
		sizes = append(sizes, rows)
	}
	slices.Sort(sizes)
	return sizes
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Simulation Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Game Limit:** {{if .MaxGames}}{{.MaxGames}}{{else}}none{{end}}
- **Piece Limit per Game:** {{.MaxPieces}}
- **Bot:** {{.Bot}}
- **Kicks:** {{.Kicks}}
- **Base Seed:** {{.Seed}}

## Games
- **Games Played:** {{len .Games}}
- **Pieces Placed:** {{.TotalPieces}}
- **Lines Cleared:** {{.TotalLines}}
- **Best Score:** {{.BestScore}}
- **Average Score:** {{printf "%.1f" .AvgScore}}
{{if .Clears}}
| Rows per Sweep | Count |
|---|---|
{{range .ClearSizes}}| {{.}} | {{index $.Clears .}} |
{{end}}{{end}}
| Game | Seed | Score | Pieces | Lines | Ended |
|---|---|---|---|---|---|
{{range $i, $g := .Games}}| {{inc $i}} | {{$g.Seed}} | {{$g.Score}} | {{$g.Pieces}} | {{$g.Lines}} | {{if $g.GameOver}}game over{{else}}piece limit{{end}} |
{{end}}
## Performance Results
- **Total Steps:** {{.TotalSteps}}
- **Total Run Time:** {{.TotalTime}}
- **Step Time (apply one command):**
  - **Avg:** {{.StepTime.Avg}}
  - **Min:** {{.StepTime.Min}}
  - **Max:** {{.StepTime.Max}}
  - **P99:** {{.StepTime.P99}}
- **Decide Time (bot):**
  - **Avg:** {{.DecideTime.Avg}}
  - **Min:** {{.DecideTime.Min}}
  - **Max:** {{.DecideTime.Max}}
  - **P99:** {{.DecideTime.P99}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"inc": func(i int) int {
			return i + 1
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
