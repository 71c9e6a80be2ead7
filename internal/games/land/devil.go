package land

import (
	"github.com/vovakirdan/land/internal/config"
	"github.com/vovakirdan/land/internal/core"
	"github.com/vovakirdan/land/internal/maps"
)

// DevilNumber tells the two devils apart.
type DevilNumber int

const (
	DevilFirst DevilNumber = iota
	DevilSecond
)

func (n DevilNumber) startTile() maps.Tile {
	if n == DevilSecond {
		return maps.DevilStart2
	}
	return maps.DevilStart1
}

// Devil chases the hero. Once it has caught the hero it plays a short
// defeat pause and then fires lifeFired a single time.
type Devil struct {
	world  World
	hero   *Hero
	number DevilNumber
	timing config.LandTiming

	X, Y      int
	HasCaught bool

	visible   bool
	stepTicks int
	tick      int
	heading   Direction
	defeat    int
	fired     bool

	LifeFired Signal[Event]
}

// NewDevil creates a devil chasing hero.
func NewDevil(w World, hero *Hero, number DevilNumber, timing config.LandTiming) *Devil {
	return &Devil{
		world:     w,
		hero:      hero,
		number:    number,
		timing:    timing,
		stepTicks: timing.DevilEveryTicks,
	}
}

// Reset places the devil at its start and clears the catch state.
func (d *Devil) Reset() {
	d.Respawn()
	d.HasCaught = false
	d.defeat = 0
	d.fired = false
}

// Respawn moves the devil back to its start cell.
func (d *Devil) Respawn() {
	x, y, ok := d.world.Find(d.number.startTile())
	if !ok {
		x, y = maps.CapacityX-3, 1
	}
	d.X, d.Y = x, y
	d.tick = 0
	d.heading = DirLeft
	if d.number == DevilSecond {
		d.heading = DirRight
	}
}

// SetStepTicks sets how many ticks pass between two devil steps.
func (d *Devil) SetStepTicks(n int) {
	if n < 1 {
		n = 1
	}
	d.stepTicks = n
}

// Show shows or hides the devil.
func (d *Devil) Show(b bool) {
	d.visible = b
}

// Visible reports whether the devil is active.
func (d *Devil) Visible() bool {
	return d.visible
}

// Update advances the devil one tick.
func (d *Devil) Update() {
	if !d.visible {
		return
	}

	if d.HasCaught {
		if d.fired {
			return
		}
		d.defeat++
		if d.defeat >= d.timing.DefeatTicks {
			d.fired = true
			d.LifeFired.Emit(Event{})
		}
		return
	}

	d.tick++
	if d.tick < d.stepTicks {
		return
	}
	d.tick = 0
	d.step()
}

func (d *Devil) step() {
	w := d.world
	if !supported(w, d.X, d.Y) {
		d.Y++
		return
	}

	hx, hy := d.X, d.Y
	if d.hero != nil {
		hx, hy = d.hero.X, d.hero.Y
	}

	switch {
	case hy < d.Y && canClimbUp(w, d.X, d.Y):
		d.Y--
		return
	case hy > d.Y && canClimbDown(w, d.X, d.Y):
		d.Y++
		return
	}

	if dx := core.Sign(hx - d.X); dx != 0 && hy == d.Y {
		d.heading = DirRight
		if dx < 0 {
			d.heading = DirLeft
		}
	}
	if passable(w, d.X+d.heading.DX(), d.Y) {
		d.X += d.heading.DX()
		return
	}
	// Blocked: patrol the other way.
	if d.heading == DirLeft {
		d.heading = DirRight
	} else {
		d.heading = DirLeft
	}
}
