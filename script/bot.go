// Package script runs Lua bots that play a session.
//
// A bot script defines a global function decide(state) that returns a list of
// op names ("move_left", "rotate_cw", "hard_drop", ...). state carries:
//
//	state.width, state.height   field dimensions
//	state.score                 current score
//	state.game_over             true once the game has ended
//	state.field                 rows 1..height of columns 1..width, 0 is empty
//	state.piece                 nil, or {kind, x, y, ghost_y, shape}
//
// Positions are zero-based field coordinates; tables are one-based as usual
// in Lua. The global table blockfall offers helpers:
//
//	blockfall.rotate(shape, dir)  rotated copy of a shape table
//	blockfall.evaluate(shape, x)  nil, or {y, cleared, height, holes, bumpiness}
//	                              for a hard drop from column x at the piece's row
//	blockfall.reach(r, x)         nil, or the evaluate fields plus x and ops: the
//	                              moves that turn the active piece r times
//	                              clockwise (kicks included), shift it to column
//	                              x and hard drop it
package script

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/plus3/blockfall/engine"
	lua "github.com/yuin/gopher-lua"
)

var (
	ErrNoDecide  = errors.New("script does not define decide")
	ErrBadResult = errors.New("decide returned an invalid result")
)

//go:embed greedy.lua
var greedySource string

// Bot is a loaded Lua script. It is not safe for concurrent use.
type Bot struct {
	L      *lua.LState
	decide lua.LValue
	kicks  engine.KickPolicy

	// field, active and startY back the blockfall helpers during a Decide
	// call.
	field  *engine.Field
	active *engine.ActivePiece
	startY int
}

// Load compiles and runs source, which must define decide.
func Load(source string) (*Bot, error) {
	b := newBot()
	if err := b.L.DoString(source); err != nil {
		b.Close()
		return nil, fmt.Errorf("load script: %w", err)
	}
	return b.init()
}

// LoadFile is Load for a script on disk.
func LoadFile(path string) (*Bot, error) {
	b := newBot()
	if err := b.L.DoFile(path); err != nil {
		b.Close()
		return nil, fmt.Errorf("load script %s: %w", path, err)
	}
	return b.init()
}

// Greedy loads the bundled bot, which tries every rotation and column and
// keeps the placement with the lowest weighted height, holes and bumpiness.
func Greedy() (*Bot, error) {
	return Load(greedySource)
}

func newBot() *Bot {
	b := &Bot{L: lua.NewState(), field: engine.NewField(), kicks: engine.AlternatingKicks{}}

	helpers := b.L.NewTable()
	b.L.SetField(helpers, "rotate", b.L.NewFunction(b.luaRotate))
	b.L.SetField(helpers, "evaluate", b.L.NewFunction(b.luaEvaluate))
	b.L.SetField(helpers, "reach", b.L.NewFunction(b.luaReach))
	b.L.SetGlobal("blockfall", helpers)
	return b
}

func (b *Bot) init() (*Bot, error) {
	fn := b.L.GetGlobal("decide")
	if fn.Type() != lua.LTFunction {
		b.Close()
		return nil, ErrNoDecide
	}
	b.decide = fn
	return b, nil
}

func (b *Bot) Close() {
	b.L.Close()
}

// SetKickPolicy makes blockfall.reach rotate the way a session using p does.
// The default is AlternatingKicks; nil means no kicks.
func (b *Bot) SetKickPolicy(p engine.KickPolicy) {
	if p == nil {
		p = engine.NoKicks{}
	}
	b.kicks = p
}

// Decide asks the script what to do with snap. The call is abandoned when ctx
// is done.
func (b *Bot) Decide(ctx context.Context, snap engine.Snapshot) ([]engine.Op, error) {
	field, err := engine.NewFieldFromRows(snap.Field)
	if err != nil {
		return nil, fmt.Errorf("decide: %w", err)
	}
	b.field = field
	b.active = nil
	if snap.Active != nil {
		b.active = snap.Active.Clone()
		b.startY = snap.Active.Pos.Y
	}

	b.L.SetContext(ctx)
	defer b.L.RemoveContext()

	if err := b.L.CallByParam(lua.P{
		Fn:      b.decide,
		NRet:    1,
		Protect: true,
	}, b.stateTable(snap)); err != nil {
		return nil, fmt.Errorf("decide: %w", err)
	}
	ret := b.L.Get(-1)
	b.L.Pop(1)

	return parseOps(ret)
}

func parseOps(ret lua.LValue) ([]engine.Op, error) {
	switch v := ret.(type) {
	case *lua.LNilType:
		return nil, nil
	case lua.LString:
		op, err := engine.ParseOp(string(v))
		if err != nil {
			return nil, err
		}
		return []engine.Op{op}, nil
	case *lua.LTable:
		ops := make([]engine.Op, 0, v.Len())
		for i := 1; i <= v.Len(); i++ {
			name, ok := v.RawGetInt(i).(lua.LString)
			if !ok {
				return nil, fmt.Errorf("%w: entry %d is a %s", ErrBadResult, i, v.RawGetInt(i).Type())
			}
			op, err := engine.ParseOp(string(name))
			if err != nil {
				return nil, err
			}
			ops = append(ops, op)
		}
		return ops, nil
	default:
		return nil, fmt.Errorf("%w: got a %s", ErrBadResult, ret.Type())
	}
}

func (b *Bot) stateTable(snap engine.Snapshot) *lua.LTable {
	L := b.L
	state := L.NewTable()
	L.SetField(state, "width", lua.LNumber(engine.FieldWidth))
	L.SetField(state, "height", lua.LNumber(engine.FieldHeight))
	L.SetField(state, "score", lua.LNumber(snap.Score))
	L.SetField(state, "game_over", lua.LBool(snap.GameOver))
	L.SetField(state, "field", b.gridTable(snap.Field))

	if p := snap.Active; p != nil {
		piece := L.NewTable()
		L.SetField(piece, "kind", lua.LString(p.Kind.String()))
		L.SetField(piece, "x", lua.LNumber(p.Pos.X))
		L.SetField(piece, "y", lua.LNumber(p.Pos.Y))
		L.SetField(piece, "ghost_y", lua.LNumber(snap.GhostY))
		L.SetField(piece, "shape", b.gridTable(p.Shape))
		L.SetField(state, "piece", piece)
	}
	return state
}

func (b *Bot) gridTable(rows [][]engine.Cell) *lua.LTable {
	grid := b.L.NewTable()
	for y, row := range rows {
		line := b.L.NewTable()
		for x, c := range row {
			b.L.RawSetInt(line, x+1, lua.LNumber(c))
		}
		b.L.RawSetInt(grid, y+1, line)
	}
	return grid
}

func (b *Bot) shapeArg(L *lua.LState, n int) engine.Shape {
	tb := L.CheckTable(n)
	size := tb.Len()
	if size == 0 {
		L.ArgError(n, "empty shape")
	}

	shape := make(engine.Shape, size)
	for y := range shape {
		row, ok := tb.RawGetInt(y + 1).(*lua.LTable)
		if !ok || row.Len() != size {
			L.ArgError(n, "shape must be a square table of rows")
		}
		shape[y] = make([]engine.Cell, size)
		for x := range shape[y] {
			v := int(lua.LVAsNumber(row.RawGetInt(x + 1)))
			if v < 0 || v > int(engine.KindI) {
				L.ArgError(n, fmt.Sprintf("bad cell %d", v))
			}
			shape[y][x] = engine.Cell(v)
		}
	}
	return shape
}

func (b *Bot) luaRotate(L *lua.LState) int {
	shape := b.shapeArg(L, 1)
	dir := L.OptInt(2, 1)
	L.Push(b.gridTable(engine.Rotate(shape, dir)))
	return 1
}

func (b *Bot) luaEvaluate(L *lua.LState) int {
	shape := b.shapeArg(L, 1)
	x := L.CheckInt(2)

	p, ok := Evaluate(b.field, shape, engine.Position{X: x, Y: b.startY})
	if !ok {
		L.Push(lua.LNil)
		return 1
	}

	L.Push(b.placementTable(p))
	return 1
}

func (b *Bot) luaReach(L *lua.LState) int {
	rotations := L.CheckInt(1)
	x := L.CheckInt(2)
	if rotations < 0 {
		L.ArgError(1, "rotations must not be negative")
	}
	if b.active == nil {
		L.Push(lua.LNil)
		return 1
	}

	ops, p, ok := Reach(b.field, b.active, b.kicks, rotations, x)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}

	res := b.placementTable(p)
	L.SetField(res, "x", lua.LNumber(x))
	names := L.NewTable()
	for i, op := range ops {
		L.RawSetInt(names, i+1, lua.LString(op.String()))
	}
	L.SetField(res, "ops", names)
	L.Push(res)
	return 1
}

func (b *Bot) placementTable(p Placement) *lua.LTable {
	L := b.L
	res := L.NewTable()
	L.SetField(res, "y", lua.LNumber(p.Y))
	L.SetField(res, "cleared", lua.LNumber(p.Cleared))
	L.SetField(res, "height", lua.LNumber(p.Height))
	L.SetField(res, "holes", lua.LNumber(p.Holes))
	L.SetField(res, "bumpiness", lua.LNumber(p.Bumpiness))
	return res
}
