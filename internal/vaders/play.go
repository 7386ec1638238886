package vaders

import (
	"fmt"

	"github.com/vovakirdan/picovaders/internal/assets"
	"github.com/vovakirdan/picovaders/internal/config"
	"github.com/vovakirdan/picovaders/internal/core"
	"github.com/vovakirdan/picovaders/internal/tick"
)

// Pens used by the play field.
var (
	penKind3     = core.NewPen(15, 8, 15)
	penKind2     = core.NewPen(10, 15, 15)
	penKind1     = core.NewPen(8, 15, 8)
	penBase      = core.NewPen(0, 15, 0)
	penExplosion = core.NewPen(15, 15, 0)
)

// Play is the game itself: the invader grid sweeping down toward the
// player's base, one bullet at a time, and a score.
type Play struct {
	cfg config.VadersConfig

	grid       *Grid
	player     Player
	explosions *ExplosionPool

	gridTicker      *tick.Ticker
	playerTicker    *tick.Ticker
	bulletTicker    *tick.Ticker
	explosionTicker *tick.Ticker

	timeMS      uint32 // 0 until the first Advance
	fireLatched bool   // fire pressed, waiting for a player tick
	wave        int
	invaded     bool
}

// NewPlay creates a play field with a fresh wave and a zero score.
func NewPlay(cfg config.VadersConfig) *Play {
	return &Play{
		cfg:             cfg,
		grid:            NewGrid(cfg.Grid),
		player:          NewPlayer(cfg.Screen, cfg.Player),
		explosions:      NewExplosionPool(cfg.Explosions.PoolSize),
		gridTicker:      tick.New(uint32(cfg.Tickers.GridMS)),
		playerTicker:    tick.New(uint32(cfg.Tickers.PlayerMS)),
		bulletTicker:    tick.New(uint32(cfg.Tickers.BulletMS)),
		explosionTicker: tick.New(uint32(cfg.Tickers.ExplosionMS)),
		wave:            1,
	}
}

func (p *Play) sealed() {}

// ID implements Screen.
func (p *Play) ID() ScreenID {
	return ScreenPlay
}

func (p *Play) tickers() [4]*tick.Ticker {
	return [4]*tick.Ticker{p.gridTicker, p.playerTicker, p.bulletTicker, p.explosionTicker}
}

// Advance implements Screen. The first call only starts the clock: its
// delta covers the time before the screen existed and is thrown away.
func (p *Play) Advance(deltaMS uint32, in core.Controls) ScreenID {
	if p.timeMS == 0 {
		p.timeMS = 1
		for _, t := range p.tickers() {
			t.Advance(deltaMS)
		}
		return ScreenPlay
	}

	p.timeMS += deltaMS
	for _, t := range p.tickers() {
		t.Advance(deltaMS)
	}
	if in.IsPressed(core.ButtonA) {
		p.fireLatched = true
	}

	for p.explosionTicker.Poll() {
		p.explosions.Step()
	}

	for p.bulletTicker.Poll() {
		p.stepBullet()
	}

	live, leftmost, rightmost := p.grid.Scan()
	if live == 0 {
		p.grid.Load()
		p.wave++
		live, leftmost, rightmost = p.grid.Scan()
	}
	p.gridTicker.SetFrequency(uint32(p.cfg.Retune.BaseMS + p.cfg.Retune.PerEnemyMS*live))

	// The limit follows the direction, which can flip mid-drain.
	for p.gridTicker.Poll() {
		p.grid.AdvanceChain()
		p.grid.Sweep(p.grid.Limit(leftmost, rightmost))
	}

	for p.playerTicker.Poll() {
		p.stepPlayer(in)
	}

	if p.landed() {
		p.invaded = true
		return ScreenTitle
	}
	return ScreenPlay
}

// stepBullet moves the bullet and resolves what it hits.
func (p *Play) stepBullet() {
	if !p.player.StepBullet() {
		return
	}

	hit := p.cfg.Player.HitboxOffset
	col, row, ok := p.grid.PixelToCell(p.player.BulletX+hit, p.player.BulletY+hit)
	if !ok || !p.grid.At(col, row).Alive() {
		return
	}

	x, y := p.grid.CellToPixel(col, row)
	p.explosions.Spawn(x, y, assets.SpriteBigBoom, true)
	p.grid.Set(col, row, CellNone)
	p.player.Firing = false
	p.player.Score += uint32(p.cfg.Scoring.KillPoints)
}

func (p *Play) stepPlayer(in core.Controls) {
	if in.IsHeld(core.ButtonLeft) {
		p.player.Move(-1)
	}
	if in.IsHeld(core.ButtonRight) {
		p.player.Move(1)
	}
	if p.fireLatched {
		p.fireLatched = false
		p.player.Fire()
	}
}

// landed reports whether the lowest live row has reached the base.
func (p *Play) landed() bool {
	row, ok := p.grid.LowestRow()
	if !ok {
		return false
	}
	_, y := p.grid.CellToPixel(0, row)
	return y+assets.TileSize >= p.player.Y
}

// Score returns the points earned so far.
func (p *Play) Score() uint32 {
	return p.player.Score
}

// Wave returns the number of the current wave, starting at 1.
func (p *Play) Wave() int {
	return p.wave
}

// Invaded reports whether the invaders reached the base.
func (p *Play) Invaded() bool {
	return p.invaded
}

// Grid returns the invader grid.
func (p *Play) Grid() *Grid {
	return p.grid
}

// Player returns a copy of the player state.
func (p *Play) Player() Player {
	return p.player
}

// Explosions returns the explosion pool.
func (p *Play) Explosions() *ExplosionPool {
	return p.explosions
}

// GridFrequency returns the current grid ticker period in milliseconds.
func (p *Play) GridFrequency() uint32 {
	return p.gridTicker.Frequency()
}

// Render implements Screen.
func (p *Play) Render(c core.Canvas) {
	c.Pen(penBlack)
	c.Clear()

	alt := p.gridTicker.Count()%2 == 1
	for row := 0; row < p.grid.Rows(); row++ {
		for col := 0; col < p.grid.Columns(); col++ {
			cell := p.grid.At(col, row)
			sprite, ok := cellSprite(cell, alt)
			if !ok {
				continue
			}
			c.Pen(cellPen(cell))
			x, y := p.grid.CellToPixel(col, row)
			c.Sprite(sprite, x, y)
			c.Sprite(sprite+1, x+assets.TileSize, y)
		}
	}

	c.Pen(penExplosion)
	p.explosions.Render(c)

	c.Pen(penBase)
	c.Sprite(assets.SpriteBase, p.player.X, p.player.Y)
	c.Sprite(assets.SpriteBase+1, p.player.X+assets.TileSize, p.player.Y)

	if p.player.Firing {
		bullet := assets.SpriteBullet
		if p.bulletTicker.Count()%2 == 1 {
			bullet = assets.SpriteBulletAlt
		}
		c.Pen(penWhite)
		c.Sprite(bullet, p.player.BulletX, p.player.BulletY)
	}

	score := Label{Text: fmt.Sprintf("SCORE: %06d", p.player.Score), Scale: 1}
	w, _ := score.Size(c)
	c.Pen(penWhite)
	score.Draw(c, p.cfg.Screen.Width-w-20, 0)
}

func cellPen(c Cell) core.Pen {
	switch c {
	case CellKind3:
		return penKind3
	case CellKind2:
		return penKind2
	case CellKind1:
		return penKind1
	default:
		return penExplosion
	}
}
