package penman

import "fmt"

// Drawing program opcodes. A program is a flat float64 buffer of opcodes
// followed by their fixed-arity operands, terminated by opEnd. The numeric
// values are part of the STF file format and must not be reordered.
const (
	opEnd   = 0.0 // no operands
	opMove  = 1.0 // x, y
	opLine  = 2.0 // x, y
	opCurve = 3.0 // x1, y1, x2, y2, x, y
	opQuad  = 4.0 // cx, cy, x, y
)

// Program is a replayable sequence of drawing commands stored as a flat
// opcode buffer. The zero value is an empty program.
type Program []float64

// Empty returns true if the program draws nothing.
func (prg Program) Empty() bool {
	return len(prg) == 0 || len(prg) == 1 && prg[0] == opEnd
}

// Replay feeds the program's commands into d. It returns an error on a
// malformed buffer: an unknown opcode, truncated operands, or a missing
// terminator.
func (prg Program) Replay(d Drawer) error {
	i := 0
	for i < len(prg) {
		op := prg[i]
		var n int
		switch op {
		case opEnd:
			return nil
		case opMove, opLine:
			n = 2
		case opQuad:
			n = 4
		case opCurve:
			n = 6
		default:
			return fmt.Errorf("bad opcode %v at %d", op, i)
		}
		if len(prg) < i+1+n {
			return fmt.Errorf("truncated operands for opcode %v at %d", op, i)
		}
		args := prg[i+1 : i+1+n]
		switch op {
		case opMove:
			d.MoveTo(args[0], args[1])
		case opLine:
			d.LineTo(args[0], args[1])
		case opQuad:
			QuadTo(d, args[0], args[1], args[2], args[3])
		case opCurve:
			d.CubeTo(args[0], args[1], args[2], args[3], args[4], args[5])
		}
		i += 1 + n
	}
	return fmt.Errorf("unterminated program")
}

// MustReplay is Replay for programs known to be well formed, such as the
// built-in font table. It panics on a malformed buffer.
func (prg Program) MustReplay(d Drawer) {
	if err := prg.Replay(d); err != nil {
		panic(err)
	}
}

// end returns the index of the terminating opEnd, walking opcode arities so
// that a zero coordinate is never mistaken for the terminator. ok is false
// when the buffer runs out before a terminator or an unknown opcode is hit,
// with the index of the offending position.
func (prg Program) end() (int, bool) {
	i := 0
	for i < len(prg) {
		switch prg[i] {
		case opEnd:
			return i, true
		case opMove, opLine:
			i += 3
		case opQuad:
			i += 5
		case opCurve:
			i += 7
		default:
			return i, false
		}
	}
	return i, false
}

////////////////////////////////////////////////////////////////

// Builder is a terminal stage that records the commands drawn into it as a
// Program. Quadratics recorded through QuadTo arrive as their cubic
// equivalent, since the Drawer interface only carries cubics.
type Builder struct {
	Pen
	prg Program
}

// NewBuilder returns an empty program builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) MoveTo(x, y float64) {
	b.prg = append(b.prg, opMove, x, y)
	b.X, b.Y = x, y
}

func (b *Builder) LineTo(x, y float64) {
	b.prg = append(b.prg, opLine, x, y)
	b.X, b.Y = x, y
}

func (b *Builder) CubeTo(x1, y1, x2, y2, x, y float64) {
	b.prg = append(b.prg, opCurve, x1, y1, x2, y2, x, y)
	b.X, b.Y = x, y
}

// Program terminates and returns the recorded program. The builder may keep
// recording afterwards; each call returns a terminated snapshot.
func (b *Builder) Program() Program {
	prg := make(Program, len(b.prg), len(b.prg)+1)
	copy(prg, b.prg)
	return append(prg, opEnd)
}
