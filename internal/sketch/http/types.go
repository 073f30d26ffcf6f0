package http

import "github.com/rebeat-kr/souvenir-backend/internal/sketch"

type createReq struct {
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Scale   float64 `json:"scale"`
	OriginX float64 `json:"origin_x"`
	OriginY float64 `json:"origin_y"`
}

type pointReq struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type eventReq struct {
	Kind    string     `json:"kind"`
	Mouse   *pointReq  `json:"mouse"`
	Touches []pointReq `json:"touches"`
}

// pointerEvent converts the wire event into one of the two pointer event
// variants. Touch data wins when both are present.
func (r eventReq) pointerEvent() sketch.PointerEvent {
	if r.Touches != nil {
		touches := make([]sketch.TouchPoint, len(r.Touches))
		for i, t := range r.Touches {
			touches[i] = sketch.TouchPoint{ClientX: t.X, ClientY: t.Y}
		}
		return sketch.TouchEvent{Touches: touches}
	}
	if r.Mouse != nil {
		return sketch.MouseEvent{ClientX: r.Mouse.X, ClientY: r.Mouse.Y}
	}
	return sketch.TouchEvent{}
}

type colorReq struct {
	Name string `json:"name"`
}

type widthReq struct {
	Preset string `json:"preset"`
}
