package sand

import "image/color"

// CommandKind enumerates the input actions the world accepts.
type CommandKind int

const (
	CmdPaint CommandKind = iota
	CmdPaintBrush
	CmdReset
	CmdSelectMaterial
	CmdCycleMaterial
	CmdSetBrushRadius
	CmdSetMaterialColor
	CmdRandomizeColor
	CmdSeedTerrain
)

func (k CommandKind) String() string {
	switch k {
	case CmdPaint:
		return "paint"
	case CmdPaintBrush:
		return "paint-brush"
	case CmdReset:
		return "reset"
	case CmdSelectMaterial:
		return "select-material"
	case CmdCycleMaterial:
		return "cycle-material"
	case CmdSetBrushRadius:
		return "set-brush-radius"
	case CmdSetMaterialColor:
		return "set-material-color"
	case CmdRandomizeColor:
		return "randomize-color"
	case CmdSeedTerrain:
		return "seed-terrain"
	default:
		return "unknown"
	}
}

// Command is a single input action. Only the fields relevant to Kind are read.
type Command struct {
	Kind CommandKind

	X, Y     int
	Material Kind
	Radius   int
	Index    int
	Color    color.NRGBA
	Seed     int64
}

// PaintAt paints the brush's current material and radius at (x, y).
func PaintAt(x, y int) Command {
	return Command{Kind: CmdPaintBrush, X: x, Y: y}
}

// PaintWith paints an explicit material and radius at (x, y). A negative
// radius paints a single cell.
func PaintWith(x, y int, k Kind, radius int) Command {
	return Command{Kind: CmdPaint, X: x, Y: y, Material: k, Radius: radius}
}

// ResetCmd empties the grid.
func ResetCmd() Command { return Command{Kind: CmdReset} }

// SelectMaterialCmd selects a paintable material by index.
func SelectMaterialCmd(i int) Command { return Command{Kind: CmdSelectMaterial, Index: i} }

// CycleMaterialCmd selects the next paintable material.
func CycleMaterialCmd() Command { return Command{Kind: CmdCycleMaterial} }

// BrushRadiusCmd sets the brush radius.
func BrushRadiusCmd(n int) Command { return Command{Kind: CmdSetBrushRadius, Radius: n} }

// MaterialColorCmd overrides a material's color.
func MaterialColorCmd(k Kind, c color.NRGBA) Command {
	return Command{Kind: CmdSetMaterialColor, Material: k, Color: c}
}

// RandomizeColorCmd gives the selected material a random color.
func RandomizeColorCmd() Command { return Command{Kind: CmdRandomizeColor} }

// SeedTerrainCmd fills empty space with generated terrain.
func SeedTerrainCmd(seed int64) Command { return Command{Kind: CmdSeedTerrain, Seed: seed} }

// Apply dispatches cmd into the world. It reports false when the command was
// rejected or had nothing to do.
func (w *World) Apply(cmd Command) bool {
	switch cmd.Kind {
	case CmdPaint:
		return w.Paint(cmd.X, cmd.Y, cmd.Material, cmd.Radius) > 0
	case CmdPaintBrush:
		return w.PaintBrush(cmd.X, cmd.Y) > 0
	case CmdReset:
		w.ResetGrid()
		return true
	case CmdSelectMaterial:
		return w.SelectMaterial(cmd.Index)
	case CmdCycleMaterial:
		w.CycleMaterial()
		return true
	case CmdSetBrushRadius:
		w.SetBrushRadius(cmd.Radius)
		return true
	case CmdSetMaterialColor:
		return w.SetMaterialColor(cmd.Material, cmd.Color)
	case CmdRandomizeColor:
		w.RandomizeMaterialColor()
		return true
	case CmdSeedTerrain:
		return w.SeedTerrain(cmd.Seed) > 0
	default:
		w.log.Warnf("unknown command kind %d", int(cmd.Kind))
		return false
	}
}

// CommandQueue hands commands from any goroutine to the loop that owns the
// World. The owner drains it between ticks, so the world (including material
// colors) is never observed half-updated.
type CommandQueue struct {
	ch chan Command
}

// NewCommandQueue creates a queue buffering up to size commands.
func NewCommandQueue(size int) *CommandQueue {
	if size <= 0 {
		size = 64
	}
	return &CommandQueue{ch: make(chan Command, size)}
}

// Submit enqueues cmd without blocking. It reports false when the queue is full.
func (q *CommandQueue) Submit(cmd Command) bool {
	select {
	case q.ch <- cmd:
		return true
	default:
		return false
	}
}

// Len reports how many commands are waiting.
func (q *CommandQueue) Len() int { return len(q.ch) }

// Drain applies the commands queued at call time in submission order and
// returns how many were applied. Commands submitted meanwhile wait for the
// next drain.
func (w *World) Drain(q *CommandQueue) int {
	pending := len(q.ch)
	for i := 0; i < pending; i++ {
		w.Apply(<-q.ch)
	}
	return pending
}
