package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// QueueSize is the capacity of a Driver's command queue.
const QueueSize = 64

// DriverStats provides statistics about commands a Driver has executed.
type DriverStats struct {
	TotalSteps int64
	Ops        []OpStats
}

// OpStats provides execution statistics for a single op.
type OpStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type opStatsInternal struct {
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Driver runs a session's game loop. Any goroutine may Submit commands and
// read the latest Snapshot; only the goroutine inside Run (or a caller using
// Step while Run is not active) touches the session.
type Driver struct {
	session  *GameSession
	inbox    chan Command
	snapshot atomic.Pointer[Snapshot]

	mu      sync.Mutex
	steps   int64
	opStats map[Op]*opStatsInternal
}

// NewDriver wraps session and publishes its initial snapshot.
func NewDriver(session *GameSession) *Driver {
	d := &Driver{
		session: session,
		inbox:   make(chan Command, QueueSize),
		opStats: make(map[Op]*opStatsInternal, len(Ops)),
	}
	for _, op := range Ops {
		d.opStats[op] = &opStatsInternal{minDuration: time.Duration(1<<63 - 1)}
	}
	d.publish()
	return d
}

// Session returns the driven session. Callers must not use it concurrently
// with Run.
func (d *Driver) Session() *GameSession {
	return d.session
}

// Submit queues cmd for the Run loop. It never blocks and reports false when
// the queue is full.
func (d *Driver) Submit(cmd Command) bool {
	select {
	case d.inbox <- cmd:
		return true
	default:
		return false
	}
}

// Step applies cmd immediately, records its duration and publishes a new
// snapshot.
func (d *Driver) Step(cmd Command) {
	start := time.Now()
	d.session.Apply(cmd)
	duration := time.Since(start)

	d.mu.Lock()
	d.steps++
	if stats, ok := d.opStats[cmd.Op]; ok {
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}
	d.mu.Unlock()

	d.publish()
}

// Apply is Step, so a Commands buffer can be flushed straight into a Driver.
func (d *Driver) Apply(cmd Command) {
	d.Step(cmd)
}

// Drain applies every command currently queued and returns how many ran.
func (d *Driver) Drain() int {
	n := 0
	for {
		select {
		case cmd := <-d.inbox:
			d.Step(cmd)
			n++
		default:
			return n
		}
	}
}

// Run is the game loop. It applies submitted commands as they arrive and a
// gravity tick every interval, stamped with the time elapsed since Run
// started. Ticks are not delivered while the game is over; a restart resumes
// them. Run returns when ctx is cancelled.
func (d *Driver) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()

	for {
		var tick <-chan time.Time
		if !d.session.GameOver() {
			tick = ticker.C
		}

		select {
		case <-ctx.Done():
			return
		case cmd := <-d.inbox:
			d.Step(cmd)
		case now := <-tick:
			d.Step(Tick(now.Sub(start)))
		}
	}
}

// Snapshot returns the most recently published state. The returned value
// shares its slices with other readers and must be treated as read-only.
func (d *Driver) Snapshot() Snapshot {
	return *d.snapshot.Load()
}

func (d *Driver) publish() {
	snap := d.session.Snapshot()
	d.snapshot.Store(&snap)
}

// GetStats returns statistics about command execution, one entry per op in
// Ops order.
func (d *Driver) GetStats() DriverStats {
	d.mu.Lock()
	defer d.mu.Unlock()

	stats := DriverStats{
		TotalSteps: d.steps,
		Ops:        make([]OpStats, 0, len(Ops)),
	}

	for _, op := range Ops {
		internal := d.opStats[op]
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Ops = append(stats.Ops, OpStats{
			Name:           op.String(),
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		})
	}

	return stats
}
