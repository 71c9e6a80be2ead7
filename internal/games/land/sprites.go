package land

import (
	"github.com/vovakirdan/land/internal/core"
	"github.com/vovakirdan/land/internal/i18n"
	"github.com/vovakirdan/land/internal/maps"
)

// SpriteKind identifies a drawable.
type SpriteKind int

const (
	SpriteEmpty SpriteKind = iota
	SpriteStoneWall
	SpriteBrickWall
	SpriteBrokenBrick
	SpriteLadder
	SpriteChest
	SpriteBiomass
	SpriteBiomassAlt
	SpriteHero
	SpriteHeroLeft
	SpriteHeroDefeat
	SpriteDevil
	SpriteDevilCaught
	SpriteBullet
	SpriteDelimiter
	SpriteRangeLabel
	SpriteAttemptsLabel
	SpriteStageLabel
	SpriteYourRangeLabel
	SpriteLogo
)

// Sprite is a block of glyphs drawn in one color on the scheme background.
type Sprite struct {
	Lines []string
	Fg    core.Color
}

var glyphs = map[SpriteKind][]string{
	SpriteEmpty:       {" "},
	SpriteStoneWall:   {"█"},
	SpriteBrickWall:   {"▒"},
	SpriteBrokenBrick: {"░"},
	SpriteLadder:      {"H"},
	SpriteChest:       {"$"},
	SpriteBiomass:     {"~"},
	SpriteBiomassAlt:  {"≈"},
	SpriteHero:        {"▐►"},
	SpriteHeroLeft:    {"◄▌"},
	SpriteHeroDefeat:  {"××"},
	SpriteDevil:       {"ЖЖ"},
	SpriteDevilCaught: {"ЖЖ"},
	SpriteBullet:      {"•"},
	SpriteDelimiter:   {"▀"},
	SpriteLogo: {
		"██          ████     ██      ██   ██████  ",
		"██         ██  ██    ███     ██   ██   ██ ",
		"██        ██    ██   ██ ██   ██   ██    ██",
		"██        ████████   ██   ██ ██   ██    ██",
		"██        ██    ██   ██     ███   ██   ██ ",
		"████████  ██    ██   ██      ██   ██████  ",
	},
}

// palette holds the foreground per scheme: [BackBlack, BackWhite].
var palette = map[SpriteKind][2]core.Color{
	SpriteStoneWall:      {core.ColorGray, core.ColorBlack},
	SpriteBrickWall:      {core.ColorRed, core.ColorRed},
	SpriteBrokenBrick:    {core.ColorRed, core.ColorRed},
	SpriteLadder:         {core.ColorBrightYellow, core.ColorBlue},
	SpriteChest:          {core.ColorYellow, core.ColorMagenta},
	SpriteBiomass:        {core.ColorBrightGreen, core.ColorGreen},
	SpriteBiomassAlt:     {core.ColorGreen, core.ColorGreen},
	SpriteHero:           {core.ColorBrightCyan, core.ColorBlue},
	SpriteHeroLeft:       {core.ColorBrightCyan, core.ColorBlue},
	SpriteHeroDefeat:     {core.ColorBrightRed, core.ColorRed},
	SpriteDevil:          {core.ColorBrightMagenta, core.ColorMagenta},
	SpriteDevilCaught:    {core.ColorBrightRed, core.ColorRed},
	SpriteBullet:         {core.ColorOrange, core.ColorOrange},
	SpriteDelimiter:      {core.ColorGray, core.ColorBlack},
	SpriteRangeLabel:     {core.ColorBrightGreen, core.ColorGreen},
	SpriteAttemptsLabel:  {core.ColorBrightGreen, core.ColorGreen},
	SpriteStageLabel:     {core.ColorBrightGreen, core.ColorGreen},
	SpriteYourRangeLabel: {core.ColorBrightYellow, core.ColorBlue},
	SpriteLogo:           {core.ColorBrightRed, core.ColorRed},
}

var labelKeys = map[SpriteKind]string{
	SpriteRangeLabel:     i18n.LabelRange,
	SpriteAttemptsLabel:  i18n.LabelAttempts,
	SpriteStageLabel:     i18n.LabelStage,
	SpriteYourRangeLabel: i18n.ChooseRange,
}

// SpriteSet looks sprites up by (kind, scheme). Label sprites are
// translated through the catalog.
type SpriteSet struct {
	catalog *i18n.Catalog
}

// NewSpriteSet creates a sprite set using cat for labels.
func NewSpriteSet(cat *i18n.Catalog) *SpriteSet {
	return &SpriteSet{catalog: cat}
}

// Lookup returns the sprite for kind in the given scheme.
func (s *SpriteSet) Lookup(kind SpriteKind, scheme BackColor) Sprite {
	var fg core.Color
	if colors, ok := palette[kind]; ok {
		fg = colors[0]
		if scheme == BackWhite {
			fg = colors[1]
		}
	} else {
		fg = scheme.Foreground()
	}

	if key, ok := labelKeys[kind]; ok {
		return Sprite{Lines: []string{s.catalog.Get(key)}, Fg: fg}
	}
	lines, ok := glyphs[kind]
	if !ok {
		lines = glyphs[SpriteEmpty]
	}
	return Sprite{Lines: lines, Fg: fg}
}

// TileSprite returns the sprite kind of a grid tile.
// Biomass alternates between two frames.
func TileSprite(t maps.Tile, biomassFrame int) SpriteKind {
	switch t {
	case maps.StoneWall:
		return SpriteStoneWall
	case maps.BrickWall:
		return SpriteBrickWall
	case maps.BrokenBrick:
		return SpriteBrokenBrick
	case maps.Ladder:
		return SpriteLadder
	case maps.Chest:
		return SpriteChest
	case maps.Biomass:
		if biomassFrame%2 == 1 {
			return SpriteBiomassAlt
		}
		return SpriteBiomass
	default:
		return SpriteEmpty
	}
}
