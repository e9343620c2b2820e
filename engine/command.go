package engine

import (
	"fmt"
	"strings"
	"time"
)

// Op names one operation a session accepts.
type Op uint8

const (
	OpNone Op = iota
	OpMoveLeft
	OpMoveRight
	OpRotateCW
	OpRotateCCW
	OpSoftDrop
	OpHardDrop
	OpTick
	OpRestart
)

var opNames = [...]string{
	OpNone:      "none",
	OpMoveLeft:  "move_left",
	OpMoveRight: "move_right",
	OpRotateCW:  "rotate_cw",
	OpRotateCCW: "rotate_ccw",
	OpSoftDrop:  "soft_drop",
	OpHardDrop:  "hard_drop",
	OpTick:      "tick",
	OpRestart:   "restart",
}

// Ops lists every valid op.
var Ops = []Op{OpMoveLeft, OpMoveRight, OpRotateCW, OpRotateCCW, OpSoftDrop, OpHardDrop, OpTick, OpRestart}

func (o Op) Valid() bool {
	return o >= OpMoveLeft && o <= OpRestart
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// ParseOp is the inverse of Op.String. It also accepts dashes and upper case.
func ParseOp(s string) (Op, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, o := range Ops {
		if opNames[o] == name {
			return o, nil
		}
	}
	return OpNone, fmt.Errorf("parse op %q: %w", s, ErrUnknownOp)
}

func (o Op) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("marshal op %d: %w", uint8(o), ErrUnknownOp)
	}
	return []byte(o.String()), nil
}

func (o *Op) UnmarshalText(text []byte) error {
	parsed, err := ParseOp(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Command is one unit of input for a session. At is only meaningful for
// OpTick, where it carries the caller's current timestamp.
type Command struct {
	Op Op            `yaml:"op"`
	At time.Duration `yaml:"at,omitempty"`
}

// Intent returns a command for a player action.
func Intent(op Op) Command {
	return Command{Op: op}
}

// Tick returns a gravity command stamped with now.
func Tick(now time.Duration) Command {
	return Command{Op: OpTick, At: now}
}

func (c Command) String() string {
	if c.Op == OpTick {
		return fmt.Sprintf("tick@%s", c.At)
	}
	return c.Op.String()
}
