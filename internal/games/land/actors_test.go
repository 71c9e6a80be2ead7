package land

import (
	"strings"
	"testing"

	"github.com/vovakirdan/land/internal/config"
	"github.com/vovakirdan/land/internal/core"
	"github.com/vovakirdan/land/internal/maps"
)

// ladderStage: a brick platform on row 14 from x = 1 to 16 with a ladder at
// x = 10-11 reaching down to row 17. Hero starts at (2, 18), devil 1 at
// (30, 18), devil 2 at (40, 18).
var ladderStage = stage(map[int]string{
	14: "=========HH=====",
	15: "         HH",
	16: "         HH",
	17: "         HH",
	18: " P" + strings.Repeat(" ", 27) + "1" + strings.Repeat(" ", 9) + "2",
})

type actorRig struct {
	world  *gridWorld
	timing config.LandTiming
	wall   *Wall
	bullet *Bullet
	hero   *Hero
	devil1 *Devil
	devil2 *Devil
}

func newActorRig(t *testing.T, layout string) *actorRig {
	t.Helper()
	w := newGridWorld(t, layout)
	timing := config.DefaultLandConfig().Timing
	r := &actorRig{world: w, timing: timing}
	r.wall = NewWall(w, timing)
	r.bullet = NewBullet(w, r.wall, timing)
	r.hero = NewHero(w, r.bullet, timing)
	r.devil1 = NewDevil(w, r.hero, DevilFirst, timing)
	r.devil2 = NewDevil(w, r.hero, DevilSecond, timing)
	r.bullet.SetTargets(r.devil1, r.devil2)

	r.hero.Reset()
	r.hero.Show(true)
	r.bullet.Reset(1, 1, DirNone)
	r.bullet.Show(true)
	r.devil1.Reset()
	r.devil2.Reset()
	return r
}

func (r *actorRig) steps(n int, in core.InputFrame) {
	for i := 0; i < n; i++ {
		r.hero.Update(in)
	}
}

func TestHeroWalk(t *testing.T) {
	r := newActorRig(t, ladderStage)

	r.hero.Update(frame(core.ActionLeft))
	if r.hero.X != 1 || r.hero.Facing() != DirLeft {
		t.Fatalf("hero at x=%d facing %v", r.hero.X, r.hero.Facing())
	}

	r.hero.Update(frame(core.ActionLeft))
	if r.hero.X != 1 {
		t.Errorf("hero walked into stone: x=%d", r.hero.X)
	}

	r.steps(3, frame(core.ActionRight))
	if r.hero.X != 4 || r.hero.Facing() != DirRight {
		t.Errorf("hero at x=%d facing %v, want 4 right", r.hero.X, r.hero.Facing())
	}
}

func TestHeroClimb(t *testing.T) {
	r := newActorRig(t, ladderStage)
	r.hero.X = 10

	// The ladder foot is one row above the hero.
	r.steps(5, frame(core.ActionUp))
	if r.hero.Y != 13 {
		t.Fatalf("hero y = %d after climbing, want 13", r.hero.Y)
	}

	r.hero.Update(frame(core.ActionUp))
	if r.hero.Y != 13 {
		t.Errorf("hero climbed above the ladder: y=%d", r.hero.Y)
	}

	r.steps(5, frame(core.ActionDown))
	if r.hero.Y != 18 {
		t.Errorf("hero y = %d after descending, want 18", r.hero.Y)
	}
}

func TestHeroUpWithoutLadder(t *testing.T) {
	r := newActorRig(t, ladderStage)

	r.hero.Update(frame(core.ActionUp))
	r.hero.Update(frame(core.ActionDown))

	if r.hero.Y != 18 {
		t.Errorf("hero y = %d, want 18", r.hero.Y)
	}
}

func TestHeroFalls(t *testing.T) {
	r := newActorRig(t, ladderStage)
	r.hero.X, r.hero.Y = 17, 13
	every := r.timing.FallEveryTicks

	r.steps(every-1, frame(core.ActionRight))
	if r.hero.Y != 13 || r.hero.X != 17 {
		t.Fatalf("hero at (%d, %d) before the first fall step", r.hero.X, r.hero.Y)
	}

	r.steps(1, frame())
	if r.hero.Y != 14 {
		t.Fatalf("hero y = %d, want 14", r.hero.Y)
	}

	r.steps(every*10, frame())
	if r.hero.Y != 18 {
		t.Errorf("hero y = %d, want 18 on the floor", r.hero.Y)
	}
}

func TestHeroCells(t *testing.T) {
	tests := []struct {
		name         string
		row          string
		wantChests   int
		wantFinished int
		wantLives    int
		wantReports  int
	}{
		{"last chest", " P $", 1, 1, 0, 0},
		{"one of two chests", " P $   $", 1, 0, 0, 1},
		{"biomass", " P ~", 0, 0, 1, 0},
		{"empty", " P", 0, 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newActorRig(t, stage(map[int]string{18: tt.row}))
			var chests, finished, lives, reports int
			r.hero.ChestHappened.Connect(func(Event) { chests++ })
			r.hero.RoomFinished.Connect(func(Event) { finished++ })
			r.hero.LifeFired.Connect(func(Event) { lives++ })
			r.hero.ReportPosition.Connect(func(Position) { reports++ })

			r.hero.Update(frame(core.ActionRight))

			if chests != tt.wantChests || finished != tt.wantFinished || lives != tt.wantLives || reports != tt.wantReports {
				t.Errorf("chests=%d finished=%d lives=%d reports=%d, want %d/%d/%d/%d",
					chests, finished, lives, reports,
					tt.wantChests, tt.wantFinished, tt.wantLives, tt.wantReports)
			}
		})
	}
}

func TestHeroCollectedChestIsRemoved(t *testing.T) {
	r := newActorRig(t, stage(map[int]string{18: " P $   $"}))

	r.hero.Update(frame(core.ActionRight))

	if r.world.Tile(4, 18) != maps.Empty || r.world.Count(maps.Chest) != 1 {
		t.Error("chest not removed from the grid")
	}
}

func TestHeroHidden(t *testing.T) {
	r := newActorRig(t, ladderStage)
	reports := 0
	r.hero.ReportPosition.Connect(func(Position) { reports++ })

	r.hero.Hide()
	r.hero.Update(frame(core.ActionRight))

	if r.hero.X != 2 || reports != 0 {
		t.Error("hidden hero should not act")
	}

	r.hero.Reset()
	if !r.hero.Visible() {
		t.Error("Reset should show the hero again")
	}
}

func TestBulletBreaksBrick(t *testing.T) {
	r := newActorRig(t, stage(map[int]string{18: " P     ="}))
	every := r.timing.BulletEveryTicks

	r.hero.Update(frame(core.ActionFire))
	if !r.bullet.Active() || r.bullet.X != 4 || r.bullet.Y != 18 {
		t.Fatalf("bullet active=%v at (%d, %d)", r.bullet.Active(), r.bullet.X, r.bullet.Y)
	}

	for i := 0; i < 4*every; i++ {
		r.bullet.Update()
	}
	if r.bullet.Active() {
		t.Fatal("bullet should stop on the brick")
	}
	if r.world.Tile(8, 18) != maps.BrokenBrick || r.wall.Pending() != 1 {
		t.Fatalf("brick not broken: tile=%v pending=%d", r.world.Tile(8, 18), r.wall.Pending())
	}

	r.wall.SetEnabled(true)
	for i := 1; i < r.timing.BrickRegrowTicks; i++ {
		r.wall.Update()
	}
	if r.world.Tile(8, 18) != maps.BrokenBrick {
		t.Fatal("brick regrew early")
	}
	r.wall.Update()
	if r.world.Tile(8, 18) != maps.BrickWall || r.wall.Pending() != 0 {
		t.Error("brick did not regrow")
	}
}

func TestBulletStopsOnStone(t *testing.T) {
	r := newActorRig(t, ladderStage)

	r.hero.Update(frame(core.ActionLeft))
	r.hero.Update(frame())
	r.hero.Update(frame(core.ActionFire))
	if r.bullet.Active() {
		t.Error("bullet fired into the border should stop at once")
	}
	if r.world.Tile(0, 18) != maps.StoneWall {
		t.Error("stone must not break")
	}
}

func TestBulletSingleShot(t *testing.T) {
	r := newActorRig(t, ladderStage)

	r.hero.Update(frame(core.ActionFire))
	for i := 0; i < r.timing.BulletEveryTicks; i++ {
		r.bullet.Update()
	}
	x := r.bullet.X
	r.hero.Update(frame(core.ActionFire))

	if x != 5 || r.bullet.X != x {
		t.Error("a second shot restarted the flying bullet")
	}
}

func TestBulletHitsDevil(t *testing.T) {
	r := newActorRig(t, ladderStage)
	r.devil1.Show(true)
	r.devil1.X = 12

	r.hero.Update(frame(core.ActionFire))
	for i := 0; i < 8*r.timing.BulletEveryTicks; i++ {
		r.bullet.Update()
	}

	if r.bullet.Active() {
		t.Error("bullet should stop on the devil")
	}
	if r.devil1.X != 30 || r.devil1.Y != 18 {
		t.Errorf("devil at (%d, %d), want respawn at (30, 18)", r.devil1.X, r.devil1.Y)
	}
}

func TestBulletIgnoresCaughtDevil(t *testing.T) {
	r := newActorRig(t, ladderStage)
	r.devil1.Show(true)
	r.devil1.X = 6
	r.devil1.HasCaught = true

	r.hero.Update(frame(core.ActionFire))
	for i := 0; i < 2*r.timing.BulletEveryTicks; i++ {
		r.bullet.Update()
	}

	if r.devil1.X != 6 || !r.bullet.Active() {
		t.Error("bullet should pass a devil that caught the hero")
	}
}

func TestDevilSteps(t *testing.T) {
	tests := []struct {
		name           string
		devilX, devilY int
		heroX, heroY   int
		wantX, wantY   int
	}{
		{"chase left", 20, 18, 2, 18, 19, 18},
		{"chase right", 20, 18, 30, 18, 21, 18},
		{"fall", 17, 13, 2, 18, 17, 14},
		{"climb toward hero", 10, 18, 3, 13, 10, 17},
		{"descend toward hero", 10, 13, 2, 18, 10, 14},
		{"patrol off row", 20, 18, 3, 13, 19, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newActorRig(t, ladderStage)
			d := r.devil1
			d.Show(true)
			d.SetStepTicks(1)
			d.X, d.Y = tt.devilX, tt.devilY
			r.hero.X, r.hero.Y = tt.heroX, tt.heroY

			d.Update()

			if d.X != tt.wantX || d.Y != tt.wantY {
				t.Errorf("devil at (%d, %d), want (%d, %d)", d.X, d.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestDevilTurnsWhenBlocked(t *testing.T) {
	r := newActorRig(t, ladderStage)
	d := r.devil1
	d.Show(true)
	d.SetStepTicks(1)
	d.X = 1
	r.hero.X, r.hero.Y = 3, 13

	d.Update() // blocked by the border, turns around
	d.Update()

	if d.X != 2 {
		t.Errorf("devil x = %d, want 2", d.X)
	}
}

func TestDevilStepTicks(t *testing.T) {
	r := newActorRig(t, ladderStage)
	d := r.devil1
	d.Show(true)
	d.SetStepTicks(3)

	d.Update()
	d.Update()
	if d.X != 30 {
		t.Fatal("devil moved before its step")
	}
	d.Update()
	if d.X != 29 {
		t.Errorf("devil x = %d, want 29", d.X)
	}

	d.SetStepTicks(0)
	if d.stepTicks != 1 {
		t.Errorf("step ticks = %d, want 1", d.stepTicks)
	}
}

func TestDevilHidden(t *testing.T) {
	r := newActorRig(t, ladderStage)
	r.devil1.SetStepTicks(1)

	r.devil1.Update()

	if r.devil1.X != 30 {
		t.Error("hidden devil moved")
	}
}

func TestDevilDefeatFiresOnce(t *testing.T) {
	r := newActorRig(t, ladderStage)
	d := r.devil2
	d.Show(true)
	fired := 0
	d.LifeFired.Connect(func(Event) { fired++ })

	d.HasCaught = true
	for i := 1; i < r.timing.DefeatTicks; i++ {
		d.Update()
	}
	if fired != 0 {
		t.Fatal("fired before the defeat pause ended")
	}

	for i := 0; i < 100; i++ {
		d.Update()
	}
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
	if d.X != 40 {
		t.Error("a devil that caught the hero must stay put")
	}

	d.Reset()
	if d.HasCaught {
		t.Error("Reset should clear the catch")
	}
}

func TestWallRegrowsOnlyBrokenBricks(t *testing.T) {
	r := newActorRig(t, ladderStage)
	r.wall.Register(5, 5)
	r.world.SetTile(5, 5, maps.Chest)

	for i := 0; i < r.timing.BrickRegrowTicks; i++ {
		r.wall.Update()
	}
	if r.wall.Pending() != 1 {
		t.Fatal("disabled wall should not age bricks")
	}

	r.wall.SetEnabled(true)
	for i := 0; i < r.timing.BrickRegrowTicks; i++ {
		r.wall.Update()
	}
	if r.wall.Pending() != 0 || r.world.Tile(5, 5) != maps.Chest {
		t.Error("wall overwrote a cell that is no longer a broken brick")
	}

	r.wall.Register(1, 1)
	r.wall.Reset()
	if r.wall.Pending() != 0 {
		t.Error("Reset should forget broken bricks")
	}
}

func TestBiomassAnimation(t *testing.T) {
	timing := config.DefaultLandConfig().Timing
	b := NewBiomass(timing)

	b.Update()
	if b.Frame() != 0 {
		t.Fatal("disabled biomass animated")
	}

	b.SetEnabled(true)
	for i := 0; i < timing.BiomassEveryTicks; i++ {
		b.Update()
	}
	if b.Frame() != 1 {
		t.Errorf("frame = %d, want 1", b.Frame())
	}
	if TileSprite(maps.Biomass, b.Frame()) != SpriteBiomassAlt {
		t.Error("alternate frame should use the alternate sprite")
	}

	b.Reset()
	if b.Frame() != 0 {
		t.Error("Reset should restart the animation")
	}
}
