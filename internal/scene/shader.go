//go:build ebiten

package scene

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Uniforms packs a plain uniform record into the named-uniform map a Kage
// shader consumes. Names and types must match the shader's uniform variables
// exactly; a mismatch renders wrong silently rather than failing.
type Uniforms interface {
	Pack(dst map[string]any)
}

// Effect pairs a fullscreen fragment shader with its uniform record. The
// owning scene mutates Params between frames; Draw pushes the current record
// to the GPU and covers the whole drawable area.
type Effect[U Uniforms] struct {
	Params U

	shader *ebiten.Shader
	opts   ebiten.DrawRectShaderOptions
}

// NewEffect compiles the Kage source and binds it to the initial uniform
// record. A compile failure is fatal to the caller's construction.
func NewEffect[U Uniforms](src []byte, params U) (*Effect[U], error) {
	shader, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("build shader: %w", err)
	}
	e := &Effect[U]{Params: params, shader: shader}
	e.opts.Uniforms = make(map[string]any)
	return e, nil
}

// Update is a no-op; the owner mutates Params directly.
func (e *Effect[U]) Update() error {
	return nil
}

// Draw packs the current uniform record and fills the screen through the
// shader. The shader binding is scoped to this one draw call.
func (e *Effect[U]) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	e.Params.Pack(e.opts.Uniforms)
	screen.DrawRectShader(bounds.Dx(), bounds.Dy(), e.shader, &e.opts)
}
