//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	buttonBody     = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	buttonHover    = color.RGBA{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff}
	buttonDisabled = color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff}
	labelColor     = color.RGBA{A: 0xff}
)

// Manager updates and draws a fixed set of buttons and dispatches their
// events through a send callback on click release.
type Manager[E any] struct {
	send    func(E)
	buttons []*Button[E]
	pixel   *ebiten.Image
}

// NewManager wires the buttons to the event sink.
func NewManager[E any](send func(E), buttons []*Button[E]) *Manager[E] {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Manager[E]{send: send, buttons: buttons, pixel: pixel}
}

// Update handles hover, press, and release for every interactive button. A
// press only fires its event when released inside the same button's bounds.
func (m *Manager[E]) Update() {
	mx, my := ebiten.CursorPosition()
	w, h := ebiten.WindowSize()
	dt := float32(1.0 / float64(ebiten.TPS()))
	released := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	for _, b := range m.buttons {
		if b.State != Enabled {
			b.setHover(false)
			b.pressed = false
			b.advance(dt)
			continue
		}
		bounds := b.Bounds.Resolve(float64(w), float64(h))
		over := bounds.Contains(float64(mx), float64(my))
		b.setHover(over)
		b.advance(dt)
		if over {
			ebiten.SetCursorShape(ebiten.CursorShapePointer)
		}
		if over && pressed {
			b.pressed = true
		}
		if released {
			if b.pressed && over {
				m.send(b.Event)
			}
			b.pressed = false
		}
	}
}

// Draw paints every visible button as a filled rectangle with a centered
// label.
func (m *Manager[E]) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	face := basicfont.Face7x13

	for _, b := range m.buttons {
		if b.State == Invisible {
			continue
		}
		bounds := b.Bounds.Resolve(float64(w), float64(h))

		body := mix(buttonBody, buttonHover, b.highlight)
		if b.State == Disabled {
			body = buttonDisabled
		}
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(bounds.W, bounds.H)
		op.GeoM.Translate(bounds.X, bounds.Y)
		op.ColorScale.ScaleWithColor(body)
		screen.DrawImage(m.pixel, &op)

		advance := labelAdvance(face, b.Label)
		tx := int(bounds.X + (bounds.W-float64(advance))/2)
		ty := int(bounds.Y + bounds.H/2 + float64(face.Height)/2 - 2)
		text.Draw(screen, b.Label, face, tx, ty, labelColor)
	}
}

// mix linearly interpolates two colors.
func mix(a, b color.RGBA, t float32) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return color.RGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: lerp(a.A, b.A),
	}
}

// labelAdvance returns the pixel advance of s in the fixed-width face.
func labelAdvance(face *basicfont.Face, s string) int {
	return len(s) * face.Advance
}
