package core

// Scroll geometry. Offsets are fractions of the scrollable extent, so a
// renderer can map them onto any surface size.
const (
	scrollStep     = 0.1
	halfPageScroll = 0.5
	zoomFactor     = 1.1
	minZoom        = 0.25
	maxZoom        = 4.0
)

// Viewport is the scroll/zoom/page state read by the rendering
// collaborator on every redraw. It is mutated only by the dispatcher.
type Viewport struct {
	ScrollX     float64 // horizontal offset in [0, 1]
	ScrollY     float64 // vertical offset in [0, 1]
	Zoom        float64
	CurrentPage int
	PageCount   int
}

func initialViewport(pageCount int) Viewport {
	if pageCount < 1 {
		pageCount = 1
	}
	return Viewport{
		Zoom:      1.0,
		PageCount: pageCount,
	}
}

func (v *Viewport) scrollBy(dx, dy float64) {
	v.ScrollX = clampUnit(v.ScrollX + dx)
	v.ScrollY = clampUnit(v.ScrollY + dy)
}

func (v *Viewport) zoomIn() {
	v.Zoom = clampZoom(v.Zoom * zoomFactor)
}

func (v *Viewport) zoomOut() {
	v.Zoom = clampZoom(v.Zoom / zoomFactor)
}

// clampPage resolves any requested page index to a valid one.
func (v *Viewport) clampPage(page int) int {
	if page < 0 {
		return 0
	}
	if page >= v.PageCount {
		return v.PageCount - 1
	}
	return page
}

func clampUnit(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func clampZoom(z float64) float64 {
	if z < minZoom {
		return minZoom
	}
	if z > maxZoom {
		return maxZoom
	}
	return z
}
