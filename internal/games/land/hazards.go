package land

import (
	"github.com/vovakirdan/land/internal/config"
	"github.com/vovakirdan/land/internal/maps"
)

// Wall restores bricks broken by the bullet after a delay.
type Wall struct {
	world   World
	regrow  int
	enabled bool
	broken  []brokenBrick
}

type brokenBrick struct {
	x, y  int
	ticks int
}

// NewWall creates the brick regrowth hazard.
func NewWall(w World, timing config.LandTiming) *Wall {
	return &Wall{world: w, regrow: timing.BrickRegrowTicks}
}

// Reset forgets all broken bricks.
func (w *Wall) Reset() {
	w.broken = w.broken[:0]
}

// SetEnabled starts or stops regrowth.
func (w *Wall) SetEnabled(b bool) {
	w.enabled = b
}

// Register schedules the brick at (x, y) for regrowth.
func (w *Wall) Register(x, y int) {
	w.broken = append(w.broken, brokenBrick{x: x, y: y})
}

// Pending returns the number of bricks waiting to regrow.
func (w *Wall) Pending() int {
	return len(w.broken)
}

// Update ages broken bricks and restores the ripe ones.
func (w *Wall) Update() {
	if !w.enabled {
		return
	}
	kept := w.broken[:0]
	for _, b := range w.broken {
		b.ticks++
		if b.ticks < w.regrow {
			kept = append(kept, b)
			continue
		}
		if w.world.Tile(b.x, b.y) == maps.BrokenBrick {
			w.world.SetTile(b.x, b.y, maps.BrickWall)
		}
	}
	w.broken = kept
}

// Biomass animates the biomass tiles. Touching biomass is handled by the hero.
type Biomass struct {
	every   int
	enabled bool
	tick    int
	frame   int
}

// NewBiomass creates the biomass hazard.
func NewBiomass(timing config.LandTiming) *Biomass {
	return &Biomass{every: timing.BiomassEveryTicks}
}

// Reset restarts the animation.
func (b *Biomass) Reset() {
	b.tick = 0
	b.frame = 0
}

// SetEnabled starts or stops the animation.
func (b *Biomass) SetEnabled(v bool) {
	b.enabled = v
}

// Frame returns the current animation frame.
func (b *Biomass) Frame() int {
	return b.frame
}

// Update advances the animation.
func (b *Biomass) Update() {
	if !b.enabled || b.every <= 0 {
		return
	}
	b.tick++
	if b.tick >= b.every {
		b.tick = 0
		b.frame = (b.frame + 1) % 2
	}
}
