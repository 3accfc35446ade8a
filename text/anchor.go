package text

// runBox is the unanchored geometry of a shaped line.
// Horizontal runs have their origin at the pen start on the baseline.
// Vertical runs have their origin at the pen start on the center line.
type runBox struct {
	ink     Rect
	hasInk  bool
	advance float64
	metrics Metrics
}

// bounds returns the logical box of the run: the ink extended to cover
// the pen advance.
func (b runBox) bounds(vertical bool) Rect {
	var r Rect
	if b.hasInk {
		r = b.ink
	}
	if vertical {
		r.MinY = min(r.MinY, 0)
		r.MaxY = max(r.MaxY, b.advance)
		return r
	}
	r.MinX = min(r.MinX, 0)
	r.MaxX = max(r.MaxX, b.advance)
	return r
}

// anchored returns the bounds of the run relative to the anchor,
// grown by stroke.
func (b runBox) anchored(a Anchor, vertical bool, stroke float64) (Rect, error) {
	r := b.bounds(vertical)
	dx, dy, err := b.anchorPoint(a, r, vertical)
	if err != nil {
		return Rect{}, err
	}
	return r.Translate(-dx, -dy).Outset(stroke), nil
}

// anchorPoint locates the anchor within the run's coordinate space.
func (b runBox) anchorPoint(a Anchor, r Rect, vertical bool) (x, y float64, err error) {
	if err := a.check(); err != nil {
		return 0, 0, err
	}
	if vertical {
		switch a.Horizontal() {
		case 'l':
			x = r.MinX
		case 'm', 's':
			x = 0
		case 'r':
			x = r.MaxX
		default:
			return 0, 0, ErrInvalidAnchor
		}
		switch a.Vertical() {
		case 't':
			y = 0
		case 'm':
			y = b.advance / 2
		case 'b':
			y = b.advance
		default:
			return 0, 0, ErrInvalidAnchor
		}
		return x, y, nil
	}

	switch a.Horizontal() {
	case 'l':
		x = 0
	case 'm':
		x = b.advance / 2
	case 'r':
		x = b.advance
	default:
		return 0, 0, ErrInvalidAnchor
	}
	switch a.Vertical() {
	case 'a':
		y = -b.metrics.Ascent
	case 't':
		y = r.MinY
	case 'm':
		y = (b.metrics.Descent - b.metrics.Ascent) / 2
	case 's':
		y = 0
	case 'b':
		y = r.MaxY
	case 'd':
		y = b.metrics.Descent
	default:
		return 0, 0, ErrInvalidAnchor
	}
	return x, y, nil
}
