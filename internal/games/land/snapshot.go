package land

import "github.com/vovakirdan/land/internal/maps"

// Snapshot contains the observable game state for determinism tests.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick      uint64
	Playing   bool
	Mode      int
	BackColor int
	Score     int
	Stage     int
	Attempts  int
	Range     int

	HeroX, HeroY int
	HeroVisible  bool

	// Each devil is 3 ints: X, Y, HasCaught
	DevilData []int

	BulletX, BulletY int
	BulletActive     bool

	Chests        int
	PendingBricks int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	r := g.room
	devils := make([]int, 0, 6)
	for _, d := range []*Devil{r.devil1, r.devil2} {
		caught := 0
		if d.HasCaught {
			caught = 1
		}
		devils = append(devils, d.X, d.Y, caught)
	}

	return Snapshot{
		Tick:      uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Playing:   r.Enabled(),
		Mode:      int(g.splash.Mode()),
		BackColor: int(g.settings.BackColor),
		Score:     r.Score(),
		Stage:     r.Stage(),
		Attempts:  r.Attempts(),
		Range:     g.settings.Range,

		HeroX:       r.hero.X,
		HeroY:       r.hero.Y,
		HeroVisible: r.hero.Visible(),

		DevilData: devils,

		BulletX:      r.bullet.X,
		BulletY:      r.bullet.Y,
		BulletActive: r.bullet.Active(),

		Chests:        r.Count(maps.Chest),
		PendingBricks: r.wall.Pending(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	b := func(v bool) uint64 {
		if v {
			return 1
		}
		return 0
	}

	h := snap.Tick
	h = h*31 + b(snap.Playing)
	h = h*31 + uint64(snap.Mode)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BackColor) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Stage)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Attempts)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Range)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HeroX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HeroY)     //#nosec G115 -- hash computation
	h = h*31 + b(snap.HeroVisible)

	for _, v := range snap.DevilData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + uint64(snap.BulletX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BulletY) //#nosec G115 -- hash computation
	h = h*31 + b(snap.BulletActive)
	h = h*31 + uint64(snap.Chests)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PendingBricks) //#nosec G115 -- hash computation
	return h
}
