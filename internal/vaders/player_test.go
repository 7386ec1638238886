package vaders

import (
	"testing"

	"github.com/vovakirdan/picovaders/internal/config"
)

func newTestPlayer() Player {
	cfg := config.DefaultVadersConfig()
	return NewPlayer(cfg.Screen, cfg.Player)
}

func TestPlayerStartsCentred(t *testing.T) {
	p := newTestPlayer()
	if p.X != 112 || p.Y != 220 {
		t.Errorf("start = (%d, %d), expected (112, 220)", p.X, p.Y)
	}
}

func TestPlayerMoveClamps(t *testing.T) {
	tests := []struct {
		name  string
		start int
		dx    int
		want  int
	}{
		{"right", 100, 1, 101},
		{"left", 100, -1, 99},
		{"left edge", 0, -1, 0},
		{"right edge", 224, 1, 224},
		{"large jump", 10, 500, 224},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPlayer()
			p.X = tc.start
			p.Move(tc.dx)
			if p.X != tc.want {
				t.Errorf("X = %d, expected %d", p.X, tc.want)
			}
		})
	}
}

func TestPlayerFireGate(t *testing.T) {
	p := newTestPlayer()

	if !p.Fire() {
		t.Fatal("first Fire should launch a bullet")
	}
	if p.BulletX != 116 || p.BulletY != 220 {
		t.Errorf("bullet = (%d, %d), expected (116, 220)", p.BulletX, p.BulletY)
	}

	p.X = 0
	if p.Fire() {
		t.Error("Fire while a bullet is in flight should be refused")
	}
	if p.BulletX != 116 {
		t.Errorf("refused Fire moved the bullet to x=%d", p.BulletX)
	}
}

func TestPlayerBulletReachesTop(t *testing.T) {
	p := newTestPlayer()
	p.Fire()
	p.BulletY = 2

	if !p.StepBullet() || !p.Firing {
		t.Error("bullet at y=1 should have moved and still be in flight")
	}
	if !p.StepBullet() {
		t.Error("the step onto y=0 should report a move")
	}
	if p.Firing || p.BulletY != 0 {
		t.Errorf("after top: firing=%v y=%d, expected false 0", p.Firing, p.BulletY)
	}
	if p.StepBullet() {
		t.Error("StepBullet without a bullet should report false")
	}
}
