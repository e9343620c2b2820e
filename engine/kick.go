package engine

import "fmt"

// KickPolicy decides which horizontal offsets a rotation may try when the
// rotated shape collides in place. Offsets are relative to the position the
// piece had before rotating and are tried in order.
type KickPolicy interface {
	Candidates(width int) []int
}

// AlternatingKicks shifts the piece by +1, -2, +3, -4, ... cumulatively and
// gives up once the next shift would exceed the shape width. The last shift
// applied before giving up is never tested. A 2-wide shape therefore tries
// [+1]; 3- and 4-wide shapes try [+1, -1, +2].
type AlternatingKicks struct{}

func (AlternatingKicks) Candidates(width int) []int {
	var out []int
	x, step := 0, 1
	for {
		x += step
		if step > 0 {
			step = -(step + 1)
		} else {
			step = -(step - 1)
		}
		if step > width {
			return out
		}
		out = append(out, x)
	}
}

// NoKicks rejects any rotation that collides in place.
type NoKicks struct{}

func (NoKicks) Candidates(int) []int { return nil }

// KickPolicyByName maps a config name to a policy. The empty name selects
// AlternatingKicks.
func KickPolicyByName(name string) (KickPolicy, error) {
	switch name {
	case "", "alternating":
		return AlternatingKicks{}, nil
	case "none":
		return NoKicks{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown kick policy %q", ErrInvalidConfig, name)
	}
}
