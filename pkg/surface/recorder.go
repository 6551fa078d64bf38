package surface

// OpKind identifies a recorded draw command.
type OpKind int

const (
	OpRect OpKind = iota
	OpLine
	OpCircle
	OpText
)

// Op is one recorded draw command.
type Op struct {
	Kind OpKind

	// Rect: X, Y, W, H. Line: X, Y to X2, Y2 with Width. Circle: center X, Y
	// with Radius and Width (0 = filled). Text: centered at X, Y with Size
	// and Rotation.
	X, Y, X2, Y2 float64
	W, H         float64
	Width        float64
	Radius       float64
	Size         float64
	Rotation     float64
	Color        Color
	Text         string
}

// Recorder is a Surface that logs every draw command. Tests use it to assert
// on emitted geometry without rasterizing anything.
type Recorder struct {
	Ops []Op
}

var _ Surface = (*Recorder)(nil)

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) DrawRect(x, y, width, height float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, X: x, Y: y, W: width, H: height, Color: c})
}

func (r *Recorder) DrawLine(x1, y1, x2, y2, strokeWidth float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, Width: strokeWidth, Color: c})
}

func (r *Recorder) DrawCircle(x, y, radius float64, c Color, strokeWidth float64) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X: x, Y: y, Radius: radius, Width: strokeWidth, Color: c})
}

func (r *Recorder) DrawText(text string, x, y float64, c Color, sizeHint, rotationDegrees float64) {
	r.Ops = append(r.Ops, Op{Kind: OpText, X: x, Y: y, Size: sizeHint, Rotation: rotationDegrees, Color: c, Text: text})
}

// MeasureText approximates text extent without a font: width scales with the
// rune count, height with the size hint.
func (r *Recorder) MeasureText(text string, sizeHint float64) (width, height float64) {
	return float64(len([]rune(text))) * sizeHint * 0.6, sizeHint
}

// CountKind returns how many recorded commands have the given kind.
func (r *Recorder) CountKind(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// TextOps returns every recorded text command.
func (r *Recorder) TextOps() []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Kind == OpText {
			ops = append(ops, op)
		}
	}
	return ops
}
