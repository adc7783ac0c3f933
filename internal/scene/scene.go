//go:build ebiten

package scene

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the game. The manager delegates one Update and one
// Draw call per display tick to the active scene.
type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// QuitIntercepter lets a scene veto a window-close request. Scenes without
// it allow quitting.
type QuitIntercepter interface {
	// InterceptQuit reports whether the close request should be ignored.
	InterceptQuit() bool
}

var processStart = time.Now()

// sinceStart returns the monotonic time since process start, the time base
// for round timing.
func sinceStart() time.Duration {
	return time.Since(processStart)
}

// tickDelta returns the nominal duration of one update tick in seconds.
func tickDelta() float32 {
	return float32(1.0 / float64(ebiten.TPS()))
}
