package land

import (
	"github.com/vovakirdan/land/internal/config"
	"github.com/vovakirdan/land/internal/maps"
)

// Bullet is the hero's single shot. It flies horizontally, breaks bricks,
// stops on stone and sends a hit devil back to its start.
type Bullet struct {
	world  World
	wall   *Wall
	devils []*Devil
	every  int

	X, Y    int
	dir     Direction
	active  bool
	visible bool
	tick    int
}

// NewBullet creates a bullet; broken bricks are handed to wall.
func NewBullet(w World, wall *Wall, timing config.LandTiming) *Bullet {
	return &Bullet{world: w, wall: wall, every: timing.BulletEveryTicks}
}

// SetTargets sets the devils the bullet can hit.
func (b *Bullet) SetTargets(devils ...*Devil) {
	b.devils = devils
}

// Reset places the bullet. DirNone leaves it inactive.
func (b *Bullet) Reset(x, y int, dir Direction) {
	b.X, b.Y = x, y
	b.dir = dir
	b.active = dir != DirNone
	b.tick = 0
}

// Fire launches the bullet from (x, y) unless it is already flying.
func (b *Bullet) Fire(x, y int, dir Direction) {
	if b.active || dir == DirNone {
		return
	}
	b.Reset(x, y, dir)
	b.hit()
}

// Show shows or hides the bullet.
func (b *Bullet) Show(v bool) {
	b.visible = v
}

// Active reports whether the bullet is flying.
func (b *Bullet) Active() bool {
	return b.active
}

// Update moves the bullet one tick.
func (b *Bullet) Update() {
	if !b.active || !b.visible {
		return
	}
	b.tick++
	if b.tick < b.every {
		return
	}
	b.tick = 0
	b.X += b.dir.DX()
	b.hit()
}

func (b *Bullet) hit() {
	if !b.active {
		return
	}
	switch b.world.Tile(b.X, b.Y) {
	case maps.StoneWall:
		b.active = false
		return
	case maps.BrickWall:
		b.world.SetTile(b.X, b.Y, maps.BrokenBrick)
		if b.wall != nil {
			b.wall.Register(b.X, b.Y)
		}
		b.active = false
		return
	}
	for _, d := range b.devils {
		if d.Visible() && !d.HasCaught && d.Y == b.Y && (d.X == b.X || d.X+1 == b.X) {
			d.Respawn()
			b.active = false
			return
		}
	}
}
