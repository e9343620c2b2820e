package script_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotOf(kinds ...engine.Kind) engine.Snapshot {
	s := engine.NewSession(engine.WithRandomizer(engine.NewSequenceRandomizer(kinds...)))
	return s.Snapshot()
}

func TestLoadRequiresDecide(t *testing.T) {
	_, err := script.Load(`x = 1`)
	assert.ErrorIs(t, err, script.ErrNoDecide)

	_, err = script.Load(`function decide(`)
	assert.Error(t, err)
}

func TestDecideReadsState(t *testing.T) {
	bot, err := script.Load(`
function decide(state)
  local p = state.piece
  assert(state.width == 10 and state.height == 20)
  assert(#state.field == 20 and #state.field[1] == 10)
  assert(p.kind == "O" and p.x == 4 and p.y == 0 and p.ghost_y == 18)
  assert(p.shape[1][1] == 4)
  if state.game_over then return {} end
  return {"move_left", "Rotate-CW", "hard_drop"}
end
`)
	require.NoError(t, err)
	defer bot.Close()

	ops, err := bot.Decide(context.Background(), snapshotOf(engine.KindO))
	require.NoError(t, err)
	assert.Equal(t, []engine.Op{engine.OpMoveLeft, engine.OpRotateCW, engine.OpHardDrop}, ops)
}

func TestDecideResultForms(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		want    []engine.Op
		wantErr error
	}{
		{"single string", `function decide() return "soft_drop" end`, []engine.Op{engine.OpSoftDrop}, nil},
		{"nil", `function decide() return nil end`, nil, nil},
		{"empty table", `function decide() return {} end`, []engine.Op{}, nil},
		{"unknown op", `function decide() return {"hold"} end`, nil, engine.ErrUnknownOp},
		{"number entry", `function decide() return {1} end`, nil, script.ErrBadResult},
		{"number", `function decide() return 3 end`, nil, script.ErrBadResult},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bot, err := script.Load(tt.source)
			require.NoError(t, err)
			defer bot.Close()

			ops, err := bot.Decide(context.Background(), snapshotOf(engine.KindT))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ops)
		})
	}
}

func TestDecideScriptError(t *testing.T) {
	bot, err := script.Load(`function decide() error("boom") end`)
	require.NoError(t, err)
	defer bot.Close()

	_, err = bot.Decide(context.Background(), snapshotOf(engine.KindT))
	assert.ErrorContains(t, err, "boom")
}

func TestDecideHonoursContext(t *testing.T) {
	bot, err := script.Load(`function decide() while true do end end`)
	require.NoError(t, err)
	defer bot.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = bot.Decide(ctx, snapshotOf(engine.KindT))
	assert.Error(t, err)
}

func TestHelpers(t *testing.T) {
	bot, err := script.Load(`
function decide(state)
  local s = blockfall.rotate(state.piece.shape, 1)
  assert(s[1][3] == 7 and s[4][3] == 7 and s[1][2] == 0)

  local flat = blockfall.evaluate(state.piece.shape, 0)
  assert(flat.y == 18 and flat.height == 4 and flat.holes == 0, "flat")

  assert(blockfall.evaluate(state.piece.shape, 7) == nil)

  local ok = pcall(blockfall.rotate, {{1, 2}}, 1)
  assert(not ok)
  return {}
end
`)
	require.NoError(t, err)
	defer bot.Close()

	_, err = bot.Decide(context.Background(), snapshotOf(engine.KindI))
	require.NoError(t, err)
}

func TestReachHelper(t *testing.T) {
	bot, err := script.Load(`
function decide(state)
  local e = blockfall.reach(0, 0)
  assert(e.x == 0 and e.y == 18 and e.holes == 0, "reach")
  assert(#e.ops == 5 and e.ops[1] == "move_left" and e.ops[5] == "hard_drop", "ops")

  assert(blockfall.reach(1, 0).ops[1] == "rotate_cw")
  assert(blockfall.reach(0, 9) == nil)
  assert(not pcall(blockfall.reach, -1, 0))
  return e.ops
end
`)
	require.NoError(t, err)
	defer bot.Close()

	ops, err := bot.Decide(context.Background(), snapshotOf(engine.KindO))
	require.NoError(t, err)
	assert.Equal(t, []engine.Op{
		engine.OpMoveLeft, engine.OpMoveLeft, engine.OpMoveLeft, engine.OpMoveLeft, engine.OpHardDrop,
	}, ops)
}

func TestReachHelperUsesKickPolicy(t *testing.T) {
	bot, err := script.Load(`
function decide(state)
  local e = blockfall.reach(1, state.piece.x + 1)
  if e == nil then return {} end
  return e.ops
end
`)
	require.NoError(t, err)
	defer bot.Close()

	// A cell under the T's stem blocks the in-place rotation; the +1 kick
	// frees it.
	rows := engine.NewField().Rows()
	rows[2][5] = 1
	f, err := engine.NewFieldFromRows(rows)
	require.NoError(t, err)
	s := engine.NewSession(engine.WithField(f), engine.WithRandomizer(engine.NewSequenceRandomizer(engine.KindT)))

	ops, err := bot.Decide(context.Background(), s.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, []engine.Op{engine.OpRotateCW, engine.OpHardDrop}, ops)

	bot.SetKickPolicy(nil)
	ops, err = bot.Decide(context.Background(), s.Snapshot())
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.lua")
	require.NoError(t, os.WriteFile(path, []byte(`function decide() return {"hard_drop"} end`), 0o644))

	bot, err := script.LoadFile(path)
	require.NoError(t, err)
	defer bot.Close()

	ops, err := bot.Decide(context.Background(), snapshotOf(engine.KindT))
	require.NoError(t, err)
	assert.Equal(t, []engine.Op{engine.OpHardDrop}, ops)

	_, err = script.LoadFile(filepath.Join(t.TempDir(), "missing.lua"))
	assert.Error(t, err)
}

func TestGreedyBotClearsRows(t *testing.T) {
	bot, err := script.Greedy()
	require.NoError(t, err)
	defer bot.Close()

	s := engine.NewSession(engine.WithSeed(7))
	for range 60 {
		if s.GameOver() {
			break
		}
		ops, err := bot.Decide(context.Background(), s.Snapshot())
		require.NoError(t, err)
		require.NotEmpty(t, ops)
		for _, op := range ops {
			s.Apply(engine.Intent(op))
		}
	}

	assert.False(t, s.GameOver())
	assert.Positive(t, s.Stats().LinesCleared)
}
