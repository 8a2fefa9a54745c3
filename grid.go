package quickplot

import "fmt"

// Span is a half-open run of grid rows or columns. A zero or smaller
// End means the single index at Start.
type Span struct {
	Start, End int
}

func (s Span) bounds(limit int) (Span, error) {
	if s.End <= s.Start {
		s.End = s.Start + 1
	}
	if s.Start < 0 || s.End > limit {
		return Span{}, fmt.Errorf("quickplot: span %d:%d outside grid 0:%d", s.Start, s.End, limit)
	}
	return s, nil
}

// Cell places one panel on the grid.
type Cell struct {
	Rows, Cols Span
}

// Scale resizes a panel. Zero factors mean 1.
type Scale struct {
	W, H float64
}

// Anchor is the panel corner held fixed while a Scale resizes it.
type Anchor int

const (
	TopLeft Anchor = iota
	BottomLeft
	TopRight
	BottomRight
)

func (a Anchor) String() string {
	switch a {
	case TopLeft:
		return "top-left"
	case BottomLeft:
		return "bottom-left"
	case TopRight:
		return "top-right"
	case BottomRight:
		return "bottom-right"
	}
	return fmt.Sprintf("Anchor(%d)", int(a))
}

// Margins are the grid edges in figure fractions: Left and Bottom are
// where the grid starts, Right and Top where it ends.
type Margins struct {
	Left, Right, Bottom, Top float64
}

// DefaultMargins leaves the matplotlib figure margins around the grid.
var DefaultMargins = Margins{Left: 0.125, Right: 0.9, Bottom: 0.11, Top: 0.88}

// GridSpec lays panels out on a Rows×Cols grid. Row 0 is the top row.
type GridSpec struct {
	Rows, Cols int

	// WSpace and HSpace are the gaps between grid cells as fractions
	// of a cell's width and height.
	WSpace, HSpace float64

	// Cells picks which grid positions become panels, possibly
	// spanning several rows or columns. Nil means one panel per grid
	// position, row-major.
	Cells []Cell

	// Offsets shift single panels in figure fractions. Shorter slices
	// leave the remaining panels in place.
	Offsets []Offset

	// Scales resize single panels about their Anchors corner (default
	// top-left). Shorter slices leave the remaining panels at size.
	Scales  []Scale
	Anchors []Anchor

	// Margins override DefaultMargins when set.
	Margins *Margins
}

// NewGrid returns a grid with the default cell gaps.
func NewGrid(rows, cols int) *GridSpec {
	return &GridSpec{
		Rows:   rows,
		Cols:   cols,
		WSpace: 0.5,
		HSpace: 0.4,
	}
}

// Panels resolves the grid to panel rectangles in figure fractions,
// one per cell, with offsets and scales applied.
func (g *GridSpec) Panels() ([]Rect, error) {
	if g.Rows < 1 || g.Cols < 1 {
		return nil, fmt.Errorf("quickplot: grid needs at least 1 row and 1 column, got %dx%d", g.Rows, g.Cols)
	}
	m := DefaultMargins
	if g.Margins != nil {
		m = *g.Margins
	}

	cellW := (m.Right - m.Left) / (float64(g.Cols) + g.WSpace*float64(g.Cols-1))
	sepW := g.WSpace * cellW
	cellH := (m.Top - m.Bottom) / (float64(g.Rows) + g.HSpace*float64(g.Rows-1))
	sepH := g.HSpace * cellH

	cells := g.Cells
	if cells == nil {
		cells = make([]Cell, 0, g.Rows*g.Cols)
		for r := 0; r < g.Rows; r++ {
			for c := 0; c < g.Cols; c++ {
				cells = append(cells, Cell{
					Rows: Span{Start: r},
					Cols: Span{Start: c},
				})
			}
		}
	}

	rects := make([]Rect, 0, len(cells))
	for _, cl := range cells {
		rs, err := cl.Rows.bounds(g.Rows)
		if err != nil {
			return nil, err
		}
		cs, err := cl.Cols.bounds(g.Cols)
		if err != nil {
			return nil, err
		}
		rects = append(rects, Rect{
			X0: m.Left + float64(cs.Start)*(cellW+sepW),
			Y0: m.Top - float64(rs.End-1)*(cellH+sepH) - cellH,
			X1: m.Left + float64(cs.End-1)*(cellW+sepW) + cellW,
			Y1: m.Top - float64(rs.Start)*(cellH+sepH),
		})
	}

	for i := range rects {
		if i >= len(g.Offsets) {
			break
		}
		rects[i].X0 += g.Offsets[i].X
		rects[i].X1 += g.Offsets[i].X
		rects[i].Y0 += g.Offsets[i].Y
		rects[i].Y1 += g.Offsets[i].Y
	}

	for i := range rects {
		if i >= len(g.Scales) {
			break
		}
		sc := g.Scales[i]
		if sc.W == 0 {
			sc.W = 1
		}
		if sc.H == 0 {
			sc.H = 1
		}
		a := TopLeft
		if i < len(g.Anchors) {
			a = g.Anchors[i]
		}
		r := &rects[i]
		w := (r.X1 - r.X0) * sc.W
		h := (r.Y1 - r.Y0) * sc.H
		switch a {
		case TopLeft:
			r.X1 = r.X0 + w
			r.Y0 = r.Y1 - h
		case BottomLeft:
			r.X1 = r.X0 + w
			r.Y1 = r.Y0 + h
		case TopRight:
			r.X0 = r.X1 - w
			r.Y0 = r.Y1 - h
		case BottomRight:
			r.X0 = r.X1 - w
			r.Y1 = r.Y0 + h
		default:
			return nil, fmt.Errorf("quickplot: anchor must be one of top-left, bottom-left, top-right, bottom-right; got %v", a)
		}
	}

	return rects, nil
}
