package engine

import "time"

// Commands buffers session input so it can be collected during a frame (or
// from an input handler) and applied later, in order, on one goroutine.
type Commands struct {
	queue []Command
}

func NewCommands() *Commands {
	return &Commands{}
}

// Push queues an arbitrary command.
func (c *Commands) Push(cmd Command) {
	c.queue = append(c.queue, cmd)
}

func (c *Commands) MoveLeft()               { c.Push(Intent(OpMoveLeft)) }
func (c *Commands) MoveRight()              { c.Push(Intent(OpMoveRight)) }
func (c *Commands) RotateClockwise()        { c.Push(Intent(OpRotateCW)) }
func (c *Commands) RotateCounterClockwise() { c.Push(Intent(OpRotateCCW)) }
func (c *Commands) SoftDrop()               { c.Push(Intent(OpSoftDrop)) }
func (c *Commands) HardDrop()               { c.Push(Intent(OpHardDrop)) }
func (c *Commands) Restart()                { c.Push(Intent(OpRestart)) }
func (c *Commands) Tick(now time.Duration)  { c.Push(Tick(now)) }

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.queue)
}

// Pending returns a copy of the queued commands.
func (c *Commands) Pending() []Command {
	out := make([]Command, len(c.queue))
	copy(out, c.queue)
	return out
}

// Applier consumes commands. GameSession, Recorder and Driver implement it.
type Applier interface {
	Apply(cmd Command)
}

// Flush applies every queued command to a in the order it was pushed, then
// resets the buffer.
func (c *Commands) Flush(a Applier) {
	for _, cmd := range c.queue {
		a.Apply(cmd)
	}
	c.queue = c.queue[:0]
}
