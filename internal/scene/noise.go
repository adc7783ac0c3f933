//go:build ebiten

package scene

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"

	"signal-to-noise/internal/app"
	"signal-to-noise/internal/game"
	"signal-to-noise/internal/record"
)

const (
	feedbackLineWidth  = 4.0
	feedbackFadeSecs   = 0.25
	feedbackTickHeight = 0.1 // fraction of screen height for the 1D click tick
)

// Noise is the noise test scene in either mode: it advances the reveal
// state machine, feeds the shader uniforms, resolves clicks, records
// attempts, and draws the feedback overlay once the round is resolved.
type Noise struct {
	shared app.Shared
	round  *game.Round
	effect *Effect[*NoiseUniforms]
	fade   *gween.Tween
	alpha  float32
}

// NewNoise builds the scene for the given mode. Fails if the configuration
// is invalid or the shader does not compile.
func NewNoise(shared app.Shared, mode game.Mode) (*Noise, error) {
	cfg := shared.Config
	round, err := game.NewRound(cfg.Settings(), mode, shared.RNG, sinceStart())
	if err != nil {
		return nil, err
	}
	uniforms := &NoiseUniforms{
		CellSpacing:       float32(cfg.CellSpacing),
		SignalWidth:       float32(cfg.SignalWidth),
		SignalShape:       float32(cfg.SignalShape),
		NoiseFloor:        float32(cfg.NoiseFloor),
		NoiseDeviation:    float32(cfg.NoiseDeviation),
		NoiseDeviationCap: float32(cfg.NoiseDeviationCap),
		NoiseDistribution: float32(cfg.NoiseDistribution),
		ParetoParameter:   float32(cfg.ParetoParameter),
		Dimensions:        float32(mode),
	}
	effect, err := NewEffect([]byte(noiseShaderSrc), uniforms)
	if err != nil {
		return nil, err
	}
	return &Noise{shared: shared, round: round, effect: effect}, nil
}

func (n *Noise) Update() error {
	w, h := ebiten.WindowSize()
	uniforms := n.effect.Params
	uniforms.Resolution = [2]float32{float32(w), float32(h)}
	now := sinceStart()

	if n.round.Resolved() {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
			n.round.Reset(now)
			uniforms.NoiseFloor = float32(n.shared.Config.NoiseFloor)
			uniforms.NoiseDeviation = float32(n.shared.Config.NoiseDeviation)
			n.fade = nil
			n.alpha = 0
		}
	} else {
		n.round.Advance(now)
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			mx, my := ebiten.CursorPosition()
			location := game.Vec2{
				X: float64(mx) / float64(w),
				Y: float64(my) / float64(h),
			}
			click := n.round.Resolve(location)

			// Fully reveal the true signal location for feedback.
			uniforms.NoiseFloor = 0
			uniforms.NoiseDeviation = 0
			n.fade = gween.New(0, 1, feedbackFadeSecs, ease.OutQuad)

			n.shared.Recorder.Record(n.round.Mode().String(), n.shared.Config.Fingerprint(), record.Attempt{
				Distance: click.Distance,
				Time:     click.Elapsed.Seconds(),
				Strength: n.round.Strength(),
			})
		}
		origin := n.round.Origin()
		uniforms.SignalOrigin = [2]float32{float32(origin.X), float32(origin.Y)}
		uniforms.NoiseSeed = float32(n.round.Frame())
		uniforms.SignalStrength = float32(n.round.Strength())
	}

	if n.fade != nil {
		value, done := n.fade.Update(tickDelta())
		n.alpha = value
		if done {
			n.fade = nil
		}
	}
	return nil
}

func (n *Noise) Draw(screen *ebiten.Image) {
	n.effect.Draw(screen)

	click := n.round.Outcome()
	if click == nil {
		return
	}

	bounds := screen.Bounds()
	w := float32(bounds.Dx())
	h := float32(bounds.Dy())
	red := fade(color.RGBA{R: 0xff, A: 0xff}, n.alpha)
	blue := fade(color.RGBA{B: 0xff, A: 0xff}, n.alpha)

	cx := float32(click.Location.X) * w
	cy := float32(click.Location.Y) * h
	origin := n.round.Origin()
	if n.round.Mode() == game.OneDimensional {
		signalX := float32(origin.X) * w
		tick := h * feedbackTickHeight / 2
		vector.StrokeLine(screen, cx, cy-tick, cx, cy+tick, feedbackLineWidth, red, true)
		vector.StrokeLine(screen, signalX, 0, signalX, h, feedbackLineWidth, red, true)
		vector.StrokeLine(screen, cx, cy, signalX, cy, feedbackLineWidth, red, true)
	} else {
		ox := float32(origin.X) * w
		oy := float32(origin.Y) * h
		vector.StrokeLine(screen, cx, cy, ox, oy, feedbackLineWidth, red, true)
	}

	lines := []string{
		fmt.Sprintf("distance: %.3f", click.Distance),
		fmt.Sprintf("time: %.2fs", click.Elapsed.Seconds()),
		fmt.Sprintf("strength: %.1f%%", n.round.Progression()*100),
	}
	for i, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, 20, 30+i*16, blue)
	}
}

// fade scales a premultiplied color by alpha.
func fade(c color.RGBA, alpha float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
