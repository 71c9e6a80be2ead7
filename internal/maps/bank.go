package maps

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Stage is one playable map of a bank.
type Stage struct {
	Name string
	Grid Grid
}

// Bank is a named collection of stages (a game variant).
type Bank struct {
	ID     string
	Name   string
	Order  int
	Stages []Stage
}

// Validate checks that every stage is playable: one hero start with room for
// the two-cell hero, one start per devil and at least one chest.
func (b Bank) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("%w: bank without id", ErrBadLayout)
	}
	if len(b.Stages) == 0 {
		return fmt.Errorf("%w: bank %q has no stages", ErrBadLayout, b.ID)
	}
	for i, s := range b.Stages {
		if err := validateStage(s.Grid); err != nil {
			return fmt.Errorf("bank %q stage %d: %w", b.ID, i+1, err)
		}
	}
	return nil
}

func validateStage(g Grid) error {
	for _, t := range []Tile{HeroStart, DevilStart1, DevilStart2} {
		if n := g.Count(t); n != 1 {
			return fmt.Errorf("%w: %d cells of %s, want 1", ErrBadLayout, n, t)
		}
	}
	if g.Count(Chest) == 0 {
		return fmt.Errorf("%w: no chests", ErrBadLayout)
	}
	// Actors are two cells wide.
	for _, t := range []Tile{HeroStart, DevilStart1, DevilStart2} {
		x, y, _ := g.Find(t)
		right, err := g.At(x+1, y)
		if err != nil || right.Solid() {
			return fmt.Errorf("%w: %s at (%d, %d) has no room for a two-cell actor", ErrBadLayout, t, x, y)
		}
	}
	return nil
}

// Library is the ordered set of banks available to the game.
type Library struct {
	banks []Bank
}

// NewLibrary validates the banks and orders them by Order, then ID.
func NewLibrary(banks ...Bank) (*Library, error) {
	if len(banks) == 0 {
		return nil, fmt.Errorf("%w: no banks", ErrUnknownBank)
	}

	seen := mapset.New[string]()
	for _, b := range banks {
		if seen.Has(b.ID) {
			return nil, fmt.Errorf("%w: duplicate bank id %q", ErrBadLayout, b.ID)
		}
		seen.Put(b.ID)
		if err := b.Validate(); err != nil {
			return nil, err
		}
	}

	sorted := make([]Bank, len(banks))
	copy(sorted, banks)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Order != sorted[j].Order {
			return sorted[i].Order < sorted[j].Order
		}
		return sorted[i].ID < sorted[j].ID
	})

	return &Library{banks: sorted}, nil
}

// Len returns the number of banks.
func (l *Library) Len() int {
	return len(l.banks)
}

// Names returns bank display names in bank order.
func (l *Library) Names() []string {
	names := make([]string, len(l.banks))
	for i, b := range l.banks {
		names[i] = b.Name
	}
	return names
}

// Bank returns the bank at index i.
func (l *Library) Bank(i int) (Bank, error) {
	if i < 0 || i >= len(l.banks) {
		return Bank{}, fmt.Errorf("%w: index %d", ErrUnknownBank, i)
	}
	return l.banks[i], nil
}

// IndexOf returns the index of the bank with the given ID.
func (l *Library) IndexOf(id string) (int, bool) {
	for i, b := range l.banks {
		if b.ID == id {
			return i, true
		}
	}
	return 0, false
}

// StageCount returns the number of stages in bank i, or 0 for an unknown bank.
func (l *Library) StageCount(bank int) int {
	b, err := l.Bank(bank)
	if err != nil {
		return 0
	}
	return len(b.Stages)
}

// Grid returns a private copy of stage (1-based) of bank.
func (l *Library) Grid(bank, stage int) (Grid, error) {
	b, err := l.Bank(bank)
	if err != nil {
		return Grid{}, err
	}
	if stage < 1 || stage > len(b.Stages) {
		return Grid{}, fmt.Errorf("%w: %d of bank %q", ErrUnknownStage, stage, b.ID)
	}
	return b.Stages[stage-1].Grid.Clone(), nil
}
