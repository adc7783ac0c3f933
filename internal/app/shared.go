package app

import (
	"time"

	"signal-to-noise/internal/game"
	"signal-to-noise/internal/record"
)

// Shared bundles the immutable configuration with the collaborators every
// scene needs. It is copied by value into each scene; the handles inside
// refer to logically shared data.
type Shared struct {
	Config   Config
	Recorder *record.Recorder
	RNG      *game.RNG
}

// NewShared builds the shared context for a validated configuration.
func NewShared(cfg Config) Shared {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return Shared{
		Config:   cfg,
		Recorder: record.New(cfg.RecordPath),
		RNG:      game.NewRNG(seed),
	}
}
