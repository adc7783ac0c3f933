//go:build ebiten

package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"signal-to-noise/internal/app"
	"signal-to-noise/internal/ui"
)

// MainMenu offers the noise tests. It holds no gameplay state; clicking a
// button sends the matching switch event to the scene manager.
type MainMenu struct {
	widgets *ui.Manager[Event]
}

// NewMainMenu wires the menu buttons to the manager's event queue.
func NewMainMenu(events *Events, _ app.Shared) *MainMenu {
	buttons := []*ui.Button[Event]{
		ui.NewButton(ui.Bounds{
			Relative: ui.Rect{X: 0.5, Y: 0.5},
			Absolute: ui.Rect{X: -80, Y: -50, W: 160, H: 40},
		}, "2D Noise", GoNoise2D),
		ui.NewButton(ui.Bounds{
			Relative: ui.Rect{X: 0.5, Y: 0.5},
			Absolute: ui.Rect{X: -80, Y: 10, W: 160, H: 40},
		}, "1D Noise", GoNoise1D),
	}
	return &MainMenu{widgets: ui.NewManager(events.Send, buttons)}
}

func (m *MainMenu) Update() error {
	m.widgets.Update()
	return nil
}

func (m *MainMenu) Draw(screen *ebiten.Image) {
	m.widgets.Draw(screen)
}
