package land

import (
	"github.com/vovakirdan/land/internal/config"
	"github.com/vovakirdan/land/internal/core"
	"github.com/vovakirdan/land/internal/maps"
)

// Hero is the player-controlled actor.
type Hero struct {
	world  World
	bullet *Bullet
	timing config.LandTiming

	X, Y    int
	facing  Direction
	enabled bool
	visible bool
	fall    int // Ticks spent unsupported

	LifeFired      Signal[Event]
	RoomFinished   Signal[Event]
	ChestHappened  Signal[Event]
	ReportPosition Signal[Position]
}

// NewHero creates a hero living in w and shooting b.
func NewHero(w World, b *Bullet, timing config.LandTiming) *Hero {
	return &Hero{world: w, bullet: b, timing: timing, facing: DirRight}
}

// Reset places the hero at the stage start and makes it visible again.
func (h *Hero) Reset() {
	x, y, ok := h.world.Find(maps.HeroStart)
	if !ok {
		x, y = 1, 1
	}
	h.X, h.Y = x, y
	h.facing = DirRight
	h.fall = 0
	h.visible = true
}

// Show enables or disables the hero.
func (h *Hero) Show(b bool) {
	h.enabled = b
	h.visible = b
}

// Hide hides the hero until the next Reset.
func (h *Hero) Hide() {
	h.visible = false
}

// Visible reports whether the hero is drawn and controllable.
func (h *Hero) Visible() bool {
	return h.enabled && h.visible
}

// Facing returns the hero heading.
func (h *Hero) Facing() Direction {
	return h.facing
}

// Update moves the hero one tick. Any emitted signal may reload the stage,
// so Update returns right after emitting lifeFired or roomFinished.
func (h *Hero) Update(in core.InputFrame) {
	if !h.Visible() {
		return
	}

	if supported(h.world, h.X, h.Y) {
		h.fall = 0
		h.move(in)
	} else {
		h.fall++
		if h.fall >= h.timing.FallEveryTicks {
			h.fall = 0
			h.Y++
		}
	}

	if !h.inspectCells() {
		return
	}
	h.ReportPosition.Emit(Position{X: h.X, Y: h.Y})
}

func (h *Hero) move(in core.InputFrame) {
	w := h.world
	switch {
	case in.Has(core.ActionLeft):
		h.facing = DirLeft
		if passable(w, h.X-1, h.Y) {
			h.X--
		}
	case in.Has(core.ActionRight):
		h.facing = DirRight
		if passable(w, h.X+1, h.Y) {
			h.X++
		}
	case in.Has(core.ActionUp):
		if canClimbUp(w, h.X, h.Y) {
			h.Y--
		}
	case in.Has(core.ActionDown):
		if canClimbDown(w, h.X, h.Y) {
			h.Y++
		}
	}

	if in.Has(core.ActionFire) && h.bullet != nil && !h.bullet.Active() {
		x := h.X + 2
		if h.facing == DirLeft {
			x = h.X - 1
		}
		h.bullet.Fire(x, h.Y, h.facing)
	}
}

// inspectCells collects chests under the hero and checks for deadly cells.
// It returns false when a signal that ends the stage was emitted.
func (h *Hero) inspectCells() bool {
	for dx := 0; dx < 2; dx++ {
		x := h.X + dx
		switch t := h.world.Tile(x, h.Y); {
		case t == maps.Biomass, t.Solid():
			h.LifeFired.Emit(Event{})
			return false
		case t == maps.Chest:
			h.world.SetTile(x, h.Y, maps.Empty)
			h.ChestHappened.Emit(Event{})
			if h.world.Count(maps.Chest) == 0 {
				h.RoomFinished.Emit(Event{})
				return false
			}
		}
	}
	return true
}
