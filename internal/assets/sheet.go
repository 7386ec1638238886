// Package assets builds the sprite sheet and logos the screens draw from.
// Everything is generated in memory at first use; there are no asset files.
package assets

import (
	"image"
	"image/color"
	"sync"

	"github.com/vovakirdan/picovaders/internal/core"
)

// Sheet geometry. Tiles are 8x8 and laid out 16 to a row, so a sprite's
// index encodes its position: x = (id%16)*8, y = (id/16)*8.
const (
	TileSize     = 8
	SheetColumns = 16
	SheetWidth   = SheetColumns * TileSize
	SheetHeight  = 80
)

// Sprite indices. Invaders, the base and the big explosion are two tiles
// wide; the right half is id+1.
const (
	SpriteInvader1    core.SpriteID = 0
	SpriteInvader2    core.SpriteID = 2
	SpriteInvader3    core.SpriteID = 4
	SpriteBoom        core.SpriteID = 8
	SpriteBullet      core.SpriteID = 12
	SpriteInvader1Alt core.SpriteID = 16
	SpriteInvader2Alt core.SpriteID = 18
	SpriteInvader3Alt core.SpriteID = 20
	SpriteBoomAlt     core.SpriteID = 24
	SpriteBulletAlt   core.SpriteID = 28
	SpriteBase        core.SpriteID = 32
	SpriteBigBoom     core.SpriteID = 40
	SpriteBigBoomAlt  core.SpriteID = 42
)

// TitleRegion is the area of the sheet holding the title logo.
var TitleRegion = core.NewRect(0, 24, 128, 56)

// patterns holds the bitmaps of every drawable sprite, '#' for a set pixel.
var patterns = map[core.SpriteID][]string{
	SpriteInvader1: {
		"....########....",
		"..############..",
		".##############.",
		".###..####..###.",
		".##############.",
		"....##....##....",
		"...##.####.##...",
		".##..........##.",
	},
	SpriteInvader1Alt: {
		"....########....",
		"..############..",
		".##############.",
		".###..####..###.",
		".##############.",
		"...###....###...",
		"..##..####..##..",
		"...##......##...",
	},
	SpriteInvader2: {
		"....#......#....",
		".....#....#.....",
		"....########....",
		"...##.####.##...",
		"..############..",
		"..#.########.#..",
		"..#.#......#.#..",
		".....##..##.....",
	},
	SpriteInvader2Alt: {
		"....#......#....",
		"..#..#....#..#..",
		"..#.########.#..",
		"..###.####.###..",
		"..############..",
		"...##########...",
		"....#......#....",
		"...#........#...",
	},
	SpriteInvader3: {
		".......##.......",
		"......####......",
		".....######.....",
		"....##.##.##....",
		"....########....",
		"......#..#......",
		".....#.##.#.....",
		"....#.#..#.#....",
	},
	SpriteInvader3Alt: {
		".......##.......",
		"......####......",
		".....######.....",
		"....##.##.##....",
		"....########....",
		".....#.##.#.....",
		"....#......#....",
		".....#....#.....",
	},
	SpriteBoom: {
		"................",
		"....#..#..#.....",
		".....#.#.#..#...",
		"..#...#####.....",
		"....#######..#..",
		"..#...#####.....",
		".....#.#.#..#...",
		"....#..#..#.....",
	},
	SpriteBoomAlt: {
		"...#.......#....",
		".....#...#......",
		"..#....#....#...",
		"................",
		".#..#.....#..#..",
		"................",
		"..#....#....#...",
		".....#...#......",
	},
	SpriteBase: {
		".......##.......",
		"......####......",
		"......####......",
		".##############.",
		"################",
		"################",
		"################",
		"################",
	},
	SpriteBullet: {
		"...#....",
		"...#....",
		"...#....",
		"...#....",
		"...#....",
		"........",
		"........",
		"........",
	},
	SpriteBulletAlt: {
		"...#....",
		"....#...",
		"...#....",
		"..#.....",
		"...#....",
		"........",
		"........",
		"........",
	},
	SpriteBigBoom: {
		"...#...#..#..#..",
		"#...#..#.#..#...",
		".#...#.....#...#",
		"..#..........#..",
		"##............##",
		"..#..........#..",
		".#...#.....#...#",
		"#...#..#.#..#...",
	},
	SpriteBigBoomAlt: {
		"......#..#......",
		"..#..........#..",
		"....#.#..#.#....",
		".#.#........#.#.",
		"....#......#....",
		".#.#........#.#.",
		"....#.#..#.#....",
		"..#..........#..",
	},
}

// Sheet is the in-memory sprite sheet.
type Sheet struct {
	img *image.Alpha
}

var (
	defaultSheet *Sheet
	sheetOnce    sync.Once
)

// DefaultSheet returns the shared sheet, building it on first use.
func DefaultSheet() *Sheet {
	sheetOnce.Do(func() {
		defaultSheet = buildSheet()
	})
	return defaultSheet
}

// buildSheet stamps every pattern and the title logo onto a blank sheet.
func buildSheet() *Sheet {
	img := image.NewAlpha(image.Rect(0, 0, SheetWidth, SheetHeight))

	for id, rows := range patterns {
		r := SpriteRect(id)
		for y, row := range rows {
			for x, ch := range row {
				if ch == '#' {
					img.SetAlpha(r.X+x, r.Y+y, color.Alpha{A: 0xff})
				}
			}
		}
	}

	title := Rasterise([]string{"PICO", "VADERS"}, 2, TitleRegion.W, TitleRegion.H)
	for y := 0; y < TitleRegion.H; y++ {
		for x := 0; x < TitleRegion.W; x++ {
			img.SetAlpha(TitleRegion.X+x, TitleRegion.Y+y, title.AlphaAt(x, y))
		}
	}

	return &Sheet{img: img}
}

// SpriteRect returns the sheet area of an 8x8 tile.
func SpriteRect(id core.SpriteID) core.Rect {
	return core.NewRect(
		int(id)%SheetColumns*TileSize,
		int(id)/SheetColumns*TileSize,
		TileSize,
		TileSize,
	)
}

// Image returns the sheet as an alpha mask.
func (s *Sheet) Image() *image.Alpha {
	return s.img
}

// On reports whether the sheet pixel at (x, y) is set.
func (s *Sheet) On(x, y int) bool {
	return s.img.AlphaAt(x, y).A >= 0x80
}

// Coverage returns how many pixels of r are set, and the area of r.
func (s *Sheet) Coverage(r core.Rect) (set, total int) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if s.On(x, y) {
				set++
			}
			total++
		}
	}
	return set, total
}
