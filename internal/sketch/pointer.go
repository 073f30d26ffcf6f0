package sketch

// PointerEvent is a viewport-space input event that can yield a drawing
// coordinate. Mouse-style and touch-style events are the two variants.
type PointerEvent interface {
	// Position returns the event's viewport coordinates. ok is false when
	// the event carries no usable point.
	Position() (x, y float64, ok bool)
}

// MouseEvent is a mouse-style pointer event.
type MouseEvent struct {
	ClientX float64
	ClientY float64
}

func (e MouseEvent) Position() (float64, float64, bool) {
	return e.ClientX, e.ClientY, true
}

// TouchPoint is one active touch.
type TouchPoint struct {
	ClientX float64
	ClientY float64
}

// TouchEvent is a touch-style pointer event. Only the first active touch
// point is used; additional points are ignored.
type TouchEvent struct {
	Touches []TouchPoint
}

func (e TouchEvent) Position() (float64, float64, bool) {
	if len(e.Touches) == 0 {
		return 0, 0, false
	}
	return e.Touches[0].ClientX, e.Touches[0].ClientY, true
}

// SurfaceLocal translates a viewport event into surface-local coordinates
// by subtracting the surface's on-screen origin.
func SurfaceLocal(e PointerEvent, originX, originY float64) (float64, float64, bool) {
	x, y, ok := e.Position()
	if !ok {
		return 0, 0, false
	}
	return x - originX, y - originY, true
}
