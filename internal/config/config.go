// Package config provides YAML-based tuning for the simulation: playfield
// geometry, ticker periods, scoring and screen timings.
package config

import (
	"errors"
	"fmt"
)

// VadersConfig contains every tunable of the game.
type VadersConfig struct {
	Screen     ScreenConfig    `yaml:"screen"`
	Grid       GridConfig      `yaml:"grid"`
	Tickers    TickerConfig    `yaml:"tickers"`
	Retune     RetuneConfig    `yaml:"retune"`
	Player     PlayerConfig    `yaml:"player"`
	Scoring    ScoringConfig   `yaml:"scoring"`
	Explosions ExplosionConfig `yaml:"explosions"`
	Splash     SplashConfig    `yaml:"splash"`
	Title      TitleConfig     `yaml:"title"`
	Input      InputConfig     `yaml:"input"`
}

// ScreenConfig defines the logical playfield in pixels.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GridConfig defines the invader sheet and its sweep.
type GridConfig struct {
	Columns        int `yaml:"columns"`
	Rows           int `yaml:"rows"`
	CellSize       int `yaml:"cell_size"`       // Pixels between neighbouring invaders
	EnemyWidth     int `yaml:"enemy_width"`     // Rendered invader width
	SweepStep      int `yaml:"sweep_step"`      // Horizontal pixels per grid tick
	DescentStep    int `yaml:"descent_step"`    // Vertical pixels per reversal
	InitialDescent int `yaml:"initial_descent"` // Vertical offset at level start
	RightEdge      int `yaml:"right_edge"`      // Offset limit for column 0 moving right
}

// TickerConfig holds the starting periods of the play-state tickers.
type TickerConfig struct {
	GridMS      int `yaml:"grid_ms"`
	PlayerMS    int `yaml:"player_ms"`
	BulletMS    int `yaml:"bullet_ms"`
	ExplosionMS int `yaml:"explosion_ms"`
}

// RetuneConfig defines the grid speed formula: base + perEnemy * live.
type RetuneConfig struct {
	BaseMS     int `yaml:"base_ms"`
	PerEnemyMS int `yaml:"per_enemy_ms"`
}

// PlayerConfig defines the player's base and bullet.
type PlayerConfig struct {
	Y            int `yaml:"y"`
	Width        int `yaml:"width"`
	MuzzleOffset int `yaml:"muzzle_offset"` // Bullet x relative to the base
	HitboxOffset int `yaml:"hitbox_offset"` // Leading point of the bullet sprite
}

// ScoringConfig defines points awarded.
type ScoringConfig struct {
	KillPoints int `yaml:"kill_points"`
}

// ExplosionConfig sizes the explosion pool.
type ExplosionConfig struct {
	PoolSize int `yaml:"pool_size"`
}

// SplashConfig times the boot splash.
type SplashConfig struct {
	DurationMS int `yaml:"duration_ms"`
	FadeMS     int `yaml:"fade_ms"`
}

// TitleConfig defines the title screen.
type TitleConfig struct {
	SweepMS     int     `yaml:"sweep_ms"`
	SweepMin    int     `yaml:"sweep_min"`
	SweepMax    int     `yaml:"sweep_max"`
	StartOffset int     `yaml:"start_offset"`
	Prompt      string  `yaml:"prompt"`
	PromptScale float64 `yaml:"prompt_scale"`
	Footer      string  `yaml:"footer"`
}

// InputConfig tunes how frontends without key-release events emulate held
// buttons.
type InputConfig struct {
	HoldWindowMS int `yaml:"hold_window_ms"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration can drive a simulation.
func (c VadersConfig) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"screen.width", c.Screen.Width},
		{"screen.height", c.Screen.Height},
		{"grid.columns", c.Grid.Columns},
		{"grid.rows", c.Grid.Rows},
		{"grid.cell_size", c.Grid.CellSize},
		{"grid.sweep_step", c.Grid.SweepStep},
		{"tickers.grid_ms", c.Tickers.GridMS},
		{"tickers.player_ms", c.Tickers.PlayerMS},
		{"tickers.bullet_ms", c.Tickers.BulletMS},
		{"tickers.explosion_ms", c.Tickers.ExplosionMS},
		{"retune.base_ms", c.Retune.BaseMS},
		{"player.width", c.Player.Width},
		{"explosions.pool_size", c.Explosions.PoolSize},
		{"splash.fade_ms", c.Splash.FadeMS},
		{"title.sweep_ms", c.Title.SweepMS},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, p.name, p.value)
		}
	}

	nonNegative := []struct {
		name  string
		value int
	}{
		{"grid.descent_step", c.Grid.DescentStep},
		{"grid.initial_descent", c.Grid.InitialDescent},
		{"retune.per_enemy_ms", c.Retune.PerEnemyMS},
		{"player.hitbox_offset", c.Player.HitboxOffset},
		{"scoring.kill_points", c.Scoring.KillPoints},
	}
	for _, n := range nonNegative {
		if n.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidConfig, n.name, n.value)
		}
	}

	if c.Player.Y <= 0 || c.Player.Y >= c.Screen.Height {
		return fmt.Errorf("%w: player.y %d outside screen height %d", ErrInvalidConfig, c.Player.Y, c.Screen.Height)
	}
	if c.Player.Width > c.Screen.Width {
		return fmt.Errorf("%w: player.width %d wider than screen", ErrInvalidConfig, c.Player.Width)
	}
	if c.Splash.DurationMS < 2*c.Splash.FadeMS {
		return fmt.Errorf("%w: splash.duration_ms must cover both fades", ErrInvalidConfig)
	}
	if c.Title.SweepMax < c.Title.SweepMin {
		return fmt.Errorf("%w: title.sweep_max below sweep_min", ErrInvalidConfig)
	}
	return nil
}
