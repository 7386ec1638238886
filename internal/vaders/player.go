package vaders

import (
	"github.com/vovakirdan/picovaders/internal/config"
	"github.com/vovakirdan/picovaders/internal/core"
)

// Player is the base at the bottom of the screen and its single bullet.
type Player struct {
	X, Y    int
	Firing  bool
	BulletX int
	BulletY int
	Score   uint32

	maxX   int
	muzzle int
}

// NewPlayer creates a base centred horizontally on the configured row.
func NewPlayer(screen config.ScreenConfig, cfg config.PlayerConfig) Player {
	maxX := screen.Width - cfg.Width
	return Player{
		X:      maxX / 2,
		Y:      cfg.Y,
		maxX:   maxX,
		muzzle: cfg.MuzzleOffset,
	}
}

// Move shifts the base by dx pixels, clamped to the screen.
func (p *Player) Move(dx int) {
	p.X = core.Clamp(p.X+dx, 0, p.maxX)
}

// Fire launches a bullet from the muzzle. It reports false while a bullet
// is already in flight.
func (p *Player) Fire() bool {
	if p.Firing {
		return false
	}
	p.Firing = true
	p.BulletX = p.X + p.muzzle
	p.BulletY = p.Y
	return true
}

// StepBullet moves the bullet one pixel up. Reaching the top row ends the
// flight, but the bullet still occupies that row for collision.
// It reports whether the bullet moved.
func (p *Player) StepBullet() bool {
	if !p.Firing {
		return false
	}
	p.BulletY--
	if p.BulletY <= 0 {
		p.BulletY = 0
		p.Firing = false
	}
	return true
}
