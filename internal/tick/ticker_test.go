package tick

import (
	"math/rand"
	"testing"
)

// drain polls until the ticker is idle and returns how many ticks fired.
func drain(t *Ticker) int {
	n := 0
	for t.Poll() {
		n++
	}
	return n
}

func TestTickerDiscardsWarmUpDelta(t *testing.T) {
	tk := New(100)

	tk.Advance(5000)
	if fired := drain(tk); fired != 0 {
		t.Errorf("warm-up delta should be discarded, got %d ticks", fired)
	}
	if tk.Elapsed() != 0 {
		t.Errorf("Elapsed() = %d, expected 0", tk.Elapsed())
	}

	tk.Advance(150)
	if fired := drain(tk); fired != 1 {
		t.Errorf("expected 1 tick after 150ms, got %d", fired)
	}
}

func TestTickerCatchUp(t *testing.T) {
	tk := New(100)
	tk.Advance(0)

	// One slow frame delivers several periods at once
	tk.Advance(450)
	if fired := drain(tk); fired != 4 {
		t.Errorf("expected 4 catch-up ticks, got %d", fired)
	}
	if tk.Count() != 4 {
		t.Errorf("Count() = %d, expected 4", tk.Count())
	}
}

func TestTickerStrictBoundary(t *testing.T) {
	tk := New(100)
	tk.Advance(0)

	// Exactly one period is not enough: the tick is due strictly after it
	tk.Advance(100)
	if fired := drain(tk); fired != 0 {
		t.Errorf("expected no tick at exactly 100ms, got %d", fired)
	}

	tk.Advance(1)
	if fired := drain(tk); fired != 1 {
		t.Errorf("expected 1 tick at 101ms, got %d", fired)
	}
}

func TestTickerCatchUpLaw(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, freq := range []uint32{10, 20, 100, 300, 360} {
		tk := New(freq)
		tk.Advance(0)

		var total uint32
		var lastCount uint32
		for i := 0; i < 500; i++ {
			delta := uint32(rng.Intn(80))
			total += delta
			tk.Advance(delta)
			drain(tk)

			if tk.Count() < lastCount {
				t.Fatalf("freq %d: count went backwards %d -> %d", freq, lastCount, tk.Count())
			}
			lastCount = tk.Count()

			// Ticks fire strictly after each period boundary
			var expected uint32
			if total > 0 {
				expected = (total - 1) / freq
			}
			if tk.Count() != expected {
				t.Fatalf("freq %d after %dms: Count() = %d, expected %d", freq, total, tk.Count(), expected)
			}
		}
	}
}

func TestTickerSetFrequencyKeepsPhase(t *testing.T) {
	tk := New(100)
	tk.Advance(0)
	tk.Advance(250)
	drain(tk) // fires at 100 and 200

	previous := tk.SetFrequency(20)
	if previous != 100 {
		t.Errorf("SetFrequency() returned %d, expected 100", previous)
	}
	if tk.Frequency() != 20 {
		t.Errorf("Frequency() = %d, expected 20", tk.Frequency())
	}

	// Phase continues from 200ms: 220 and 240 are due, 260 is not
	if fired := drain(tk); fired != 2 {
		t.Errorf("expected 2 ticks after retune, got %d", fired)
	}
	if tk.Count() != 4 {
		t.Errorf("Count() = %d, expected 4", tk.Count())
	}
}

func TestTickerZeroFrequencyNeverFires(t *testing.T) {
	tk := New(0)
	tk.Advance(0)
	tk.Advance(1000)

	if tk.Poll() {
		t.Error("a zero-period ticker should never fire")
	}
}

func TestTickerResetKeepsCount(t *testing.T) {
	tk := New(10)
	tk.Advance(0)
	tk.Advance(55)
	drain(tk)
	count := tk.Count()

	tk.Reset()
	if tk.Elapsed() != 0 {
		t.Errorf("Elapsed() after Reset = %d, expected 0", tk.Elapsed())
	}
	if tk.Count() != count {
		t.Errorf("Count() after Reset = %d, expected %d", tk.Count(), count)
	}

	// Reset re-arms the warm-up discard
	tk.Advance(500)
	if tk.Poll() {
		t.Error("first delta after Reset should be discarded")
	}
}
