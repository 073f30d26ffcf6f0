package sketch

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/rebeat-kr/souvenir-backend/internal/imagedata"
)

// Palette is the fixed set of drawing colors. White doubles as an eraser
// against the white background.
var Palette = map[string]color.RGBA{
	"black": {0x00, 0x00, 0x00, 0xFF},
	"red":   {0xEF, 0x44, 0x44, 0xFF},
	"blue":  {0x3B, 0x82, 0xF6, 0xFF},
	"green": {0x22, 0xC5, 0x5E, 0xFF},
	"white": {0xFF, 0xFF, 0xFF, 0xFF},
}

// BrushWidths are the three stroke width presets, in display pixels.
var BrushWidths = map[string]float64{
	"small":  2,
	"medium": 5,
	"large":  10,
}

// ExportFunc receives the canvas contents as a PNG data URL whenever a
// stroke completes. An empty payload signals that no image is available
// (the canvas was cleared).
type ExportFunc func(payload string)

// Canvas is a freehand drawing surface. Its backing buffer is scaled by the
// device pixel ratio so strokes stay crisp on high-density displays;
// callers address it in display pixels and the stored scale is applied to
// every draw and clear.
type Canvas struct {
	buf      *image.RGBA
	scale    float64
	color    color.RGBA
	width    float64
	active   bool
	lastX    float64
	lastY    float64
	onExport ExportFunc
}

// NewCanvas allocates a white canvas of width×height display pixels backed
// at pixel-ratio resolution. Non-positive dimensions yield a surface whose
// operations are all no-ops.
func NewCanvas(width, height int, scale float64, onExport ExportFunc) *Canvas {
	if scale <= 0 {
		scale = 1
	}

	c := &Canvas{
		scale:    scale,
		color:    Palette["black"],
		width:    BrushWidths["medium"],
		onExport: onExport,
	}
	if width <= 0 || height <= 0 {
		return c
	}

	c.buf = image.NewRGBA(image.Rect(0, 0, int(float64(width)*scale), int(float64(height)*scale)))
	c.fillWhite()
	return c
}

// SetColor selects the active color for subsequent strokes. Unknown names
// are ignored.
func (c *Canvas) SetColor(name string) bool {
	col, ok := Palette[name]
	if !ok {
		return false
	}
	c.color = col
	return true
}

// SetWidth selects the active width preset for subsequent strokes. Unknown
// presets are ignored.
func (c *Canvas) SetWidth(preset string) bool {
	w, ok := BrushWidths[preset]
	if !ok {
		return false
	}
	c.width = w
	return true
}

// BeginStroke opens a new path at the given surface-local position. Nothing
// is drawn and no payload is emitted until the stroke continues or ends.
func (c *Canvas) BeginStroke(x, y float64) {
	if c.buf == nil {
		return
	}
	c.active = true
	c.lastX, c.lastY = x, y
}

// ContinueStroke extends the active path to the given position, rendering
// the connecting segment with round caps so consecutive segments join
// smoothly. Ignored while no stroke is active.
func (c *Canvas) ContinueStroke(x, y float64) {
	if c.buf == nil || !c.active {
		return
	}
	c.drawSegment(c.lastX*c.scale, c.lastY*c.scale, x*c.scale, y*c.scale)
	c.lastX, c.lastY = x, y
}

// EndStroke closes the active path and emits the whole buffer as a PNG data
// URL. This is the only point at which the callback fires with a defined
// payload.
func (c *Canvas) EndStroke() {
	if c.buf == nil {
		return
	}
	c.active = false
	if c.onExport != nil {
		c.onExport(c.Snapshot())
	}
}

// Clear wipes the buffer back to opaque white and emits an empty payload,
// signaling that no image is currently available.
func (c *Canvas) Clear() {
	if c.buf == nil {
		return
	}
	c.fillWhite()
	if c.onExport != nil {
		c.onExport("")
	}
}

// Snapshot encodes the current buffer as a PNG data URL.
func (c *Canvas) Snapshot() string {
	if c.buf == nil {
		return ""
	}
	var out bytes.Buffer
	if err := png.Encode(&out, c.buf); err != nil {
		return ""
	}
	return imagedata.EncodePNG(out.Bytes())
}

func (c *Canvas) fillWhite() {
	draw.Draw(c.buf, c.buf.Rect, image.NewUniform(color.White), image.Point{}, draw.Src)
}

// drawSegment stamps discs of the brush radius along the segment. The disc
// at each endpoint is the round cap.
func (c *Canvas) drawSegment(x1, y1, x2, y2 float64) {
	r := c.width * c.scale / 2
	steps := int(math.Hypot(x2-x1, y2-y1)*2) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.stampDisc(x1+(x2-x1)*t, y1+(y2-y1)*t, r)
	}
}

func (c *Canvas) stampDisc(cx, cy, r float64) {
	if r < 0.5 {
		r = 0.5
	}
	minX := int(math.Floor(cx - r))
	maxX := int(math.Ceil(cx + r))
	minY := int(math.Floor(cy - r))
	maxY := int(math.Ceil(cy + r))

	rect := c.buf.Rect
	for y := minY; y <= maxY; y++ {
		if y < rect.Min.Y || y >= rect.Max.Y {
			continue
		}
		for x := minX; x <= maxX; x++ {
			if x < rect.Min.X || x >= rect.Max.X {
				continue
			}
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r*r {
				c.buf.SetRGBA(x, y, c.color)
			}
		}
	}
}
