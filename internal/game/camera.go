package game

// Camera tracks the horizontal scroll offset, easing toward a point that
// keeps the player in the left third of the view. There is no vertical
// scroll.
type Camera struct {
	X         float64
	viewW     float64
	smoothing float64
}

// NewCamera creates a camera at offset zero for a view of the given
// world-space width.
func NewCamera(viewW, smoothing float64) *Camera {
	return &Camera{viewW: viewW, smoothing: smoothing}
}

// Update eases the camera toward the player each frame. The offset never
// goes negative, so the level start stays pinned to the left edge.
func (c *Camera) Update(playerX float64) {
	target := playerX - c.viewW/3
	c.X += (target - c.X) * c.smoothing
	if c.X < 0 {
		c.X = 0
	}
}
