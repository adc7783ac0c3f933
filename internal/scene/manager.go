//go:build ebiten

package scene

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"signal-to-noise/internal/app"
	"signal-to-noise/internal/game"
)

// Manager owns the active scene and implements ebiten.Game. Each tick it
// delegates to the scene, turns the Escape shortcut into a main-menu switch,
// and drains the event queue, rebuilding the active scene per event.
type Manager struct {
	scene  Scene
	shared app.Shared
	events *Events
}

// NewManager builds the starting scene from the shared configuration. Scene
// construction failures (bad config, shader compile errors) are fatal.
func NewManager(shared app.Shared) (*Manager, error) {
	start, err := ParseStart(shared.Config.Scene)
	if err != nil {
		return nil, err
	}
	m := &Manager{shared: shared, events: NewEvents()}
	if err := m.switchTo(start); err != nil {
		return nil, err
	}
	return m, nil
}

// switchTo destroys the current scene and constructs its replacement.
func (m *Manager) switchTo(ev Event) error {
	switch ev {
	case GoMainMenu:
		m.scene = NewMainMenu(m.events, m.shared)
	case GoNoise1D:
		scene, err := NewNoise(m.shared, game.OneDimensional)
		if err != nil {
			return fmt.Errorf("noise 1d scene: %w", err)
		}
		m.scene = scene
	case GoNoise2D:
		scene, err := NewNoise(m.shared, game.TwoDimensional)
		if err != nil {
			return fmt.Errorf("noise 2d scene: %w", err)
		}
		m.scene = scene
	}
	return nil
}

func (m *Manager) Update() error {
	ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	if ebiten.IsWindowBeingClosed() && !m.interceptQuit() {
		return ebiten.Termination
	}
	if err := m.scene.Update(); err != nil {
		return err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.events.Send(GoMainMenu)
	}
	// Drain fully so back-to-back switches within one tick all apply; the
	// last one determines the scene for the next draw.
	return m.events.Drain(m.switchTo)
}

// interceptQuit keeps the window open while Escape is held, so Escape reads
// as "return to menu" rather than "close". Otherwise the active scene's own
// quit policy applies.
func (m *Manager) interceptQuit() bool {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return true
	}
	if q, ok := m.scene.(QuitIntercepter); ok {
		return q.InterceptQuit()
	}
	return false
}

func (m *Manager) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	m.scene.Draw(screen)
}

// Layout maps the drawable area 1:1 to the window so cursor coordinates and
// shader resolution agree.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
