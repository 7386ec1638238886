package config

import (
	_ "embed"
)

//go:embed defaults/vaders.yaml
var defaultVadersYAML []byte

// DefaultVadersConfig returns the built-in configuration. It mirrors the
// embedded YAML and is used when that cannot be parsed.
func DefaultVadersConfig() VadersConfig {
	return VadersConfig{
		Screen: ScreenConfig{
			Width:  240,
			Height: 240,
		},
		Grid: GridConfig{
			Columns:        10,
			Rows:           5,
			CellSize:       20,
			EnemyWidth:     16,
			SweepStep:      2,
			DescentStep:    10,
			InitialDescent: 20,
			RightEdge:      220,
		},
		Tickers: TickerConfig{
			GridMS:      400,
			PlayerMS:    20,
			BulletMS:    10,
			ExplosionMS: 100,
		},
		Retune: RetuneConfig{
			BaseMS:     10,
			PerEnemyMS: 7,
		},
		Player: PlayerConfig{
			Y:            220,
			Width:        16,
			MuzzleOffset: 4,
			HitboxOffset: 3,
		},
		Scoring: ScoringConfig{
			KillPoints: 10,
		},
		Explosions: ExplosionConfig{
			PoolSize: 8,
		},
		Splash: SplashConfig{
			DurationMS: 2000,
			FadeMS:     500,
		},
		Title: TitleConfig{
			SweepMS:     300,
			SweepMin:    0,
			SweepMax:    44,
			StartOffset: 20,
			Prompt:      "PRESS X TO START",
			PromptScale: 1.5,
			Footer:      "github.com/vovakirdan/picovaders",
		},
		Input: InputConfig{
			HoldWindowMS: 180,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultVadersYAML
}
