//go:build ebiten

// Signal to Noise: click on the signal location slowly emerging from the
// noise. Press space to try again, Escape to return to the menu.
package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"signal-to-noise/internal/app"
	"signal-to-noise/internal/scene"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	manager, err := scene.NewManager(app.NewShared(*cfg))
	if err != nil {
		log.Fatalf("build starting scene: %v", err)
	}

	ebiten.SetWindowTitle("Signal to Noise")
	ebiten.SetWindowSize(800, 800)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(manager); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
