package collision

// Rect is an axis-aligned rectangle anchored at its top-left corner. The
// battle arena and the projectile kill region are Rects.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// NewRect creates a rect from its top-left corner and size.
func NewRect(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

// CenteredRect places a width x height rect in the middle of a screen,
// lifted by yOffset (used to leave room for the menu below the arena).
func CenteredRect(screenW, screenH, width, height, yOffset float64) Rect {
	return Rect{
		Left:   (screenW - width) / 2,
		Top:    (screenH-height)/2 - yOffset,
		Width:  width,
		Height: height,
	}
}

func (r Rect) Right() float64   { return r.Left + r.Width }
func (r Rect) Bottom() float64  { return r.Top + r.Height }
func (r Rect) CenterX() float64 { return r.Left + r.Width/2 }
func (r Rect) CenterY() float64 { return r.Top + r.Height/2 }

// MaxDimension returns the larger of width and height.
func (r Rect) MaxDimension() float64 {
	if r.Width > r.Height {
		return r.Width
	}
	return r.Height
}

// Expand grows the rect by margin on every side.
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		Left:   r.Left - margin,
		Top:    r.Top - margin,
		Width:  r.Width + margin*2,
		Height: r.Height + margin*2,
	}
}

// Corners returns top-left, top-right, bottom-left, bottom-right.
func (r Rect) Corners() []Point {
	return []Point{
		{X: r.Left, Y: r.Top},
		{X: r.Right(), Y: r.Top},
		{X: r.Left, Y: r.Bottom()},
		{X: r.Right(), Y: r.Bottom()},
	}
}

// ContainsBox reports whether the box lies entirely inside the rect.
func (r Rect) ContainsBox(bb *BoundingBox) bool {
	minX, minY, maxX, maxY := bb.GetBounds()
	return minX >= r.Left && maxX <= r.Right() && minY >= r.Top && maxY <= r.Bottom()
}

// IntersectsBox reports whether the box overlaps the rect.
func (r Rect) IntersectsBox(bb *BoundingBox) bool {
	return r.Box().Intersects(bb)
}

// Box returns the rect as a centre-based bounding box.
func (r Rect) Box() *BoundingBox {
	return NewBoundingBox(r.CenterX(), r.CenterY(), r.Width, r.Height)
}

// ClampCenter keeps a box of the given half extents inside the rect and
// returns the adjusted centre.
func (r Rect) ClampCenter(x, y, halfW, halfH float64) (float64, float64) {
	x = clamp(x, r.Left+halfW, r.Right()-halfW)
	y = clamp(y, r.Top+halfH, r.Bottom()-halfH)
	return x, y
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
