package vaders

import (
	"github.com/vovakirdan/picovaders/internal/assets"
	"github.com/vovakirdan/picovaders/internal/core"
)

// SpriteNone tags a free explosion slot. It is private to the pool and is
// never passed to a canvas, even though sheet tile 0 is a real sprite.
const SpriteNone core.SpriteID = 0

// explosionNext is the animation sequence of each explosion frame.
// Frames not listed end the animation.
var explosionNext = map[core.SpriteID]core.SpriteID{
	assets.SpriteBigBoom: assets.SpriteBigBoomAlt,
	assets.SpriteBoom:    assets.SpriteBoomAlt,
}

// Explosion is one slot of the pool.
type Explosion struct {
	X, Y   int
	Sprite core.SpriteID
	Wide   bool
}

// Active reports whether the slot is in use.
func (e Explosion) Active() bool {
	return e.Sprite != SpriteNone
}

// ExplosionPool is a fixed set of explosion slots. Spawns beyond capacity
// are dropped.
type ExplosionPool struct {
	slots []Explosion
}

// NewExplosionPool creates a pool with size free slots.
func NewExplosionPool(size int) *ExplosionPool {
	return &ExplosionPool{slots: make([]Explosion, size)}
}

// Spawn starts an explosion in the first free slot. It reports false when
// the pool is full or sprite is SpriteNone; the pool is unchanged then.
func (p *ExplosionPool) Spawn(x, y int, sprite core.SpriteID, wide bool) bool {
	if sprite == SpriteNone {
		return false
	}
	for i := range p.slots {
		if !p.slots[i].Active() {
			p.slots[i] = Explosion{X: x, Y: y, Sprite: sprite, Wide: wide}
			return true
		}
	}
	return false
}

// Step advances every active explosion one animation frame.
func (p *ExplosionPool) Step() {
	for i := range p.slots {
		if !p.slots[i].Active() {
			continue
		}
		next, ok := explosionNext[p.slots[i].Sprite]
		if !ok {
			p.slots[i] = Explosion{}
			continue
		}
		p.slots[i].Sprite = next
	}
}

// Active returns the number of slots in use.
func (p *ExplosionPool) Active() int {
	n := 0
	for _, e := range p.slots {
		if e.Active() {
			n++
		}
	}
	return n
}

// Slots returns a copy of all slots, free ones included.
func (p *ExplosionPool) Slots() []Explosion {
	out := make([]Explosion, len(p.slots))
	copy(out, p.slots)
	return out
}

// Clear frees every slot.
func (p *ExplosionPool) Clear() {
	clear(p.slots)
}

// Render draws the active explosions.
func (p *ExplosionPool) Render(c core.Canvas) {
	for _, e := range p.slots {
		if !e.Active() {
			continue
		}
		c.Sprite(e.Sprite, e.X, e.Y)
		if e.Wide {
			c.Sprite(e.Sprite+1, e.X+assets.TileSize, e.Y)
		}
	}
}
