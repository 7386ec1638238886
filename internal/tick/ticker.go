// Package tick converts an irregular stream of wall-clock deltas into
// discrete events at a fixed, mutable frequency.
//
// A Ticker never drops time: if a slow frame delivers several periods worth
// of delta at once, Poll reports each of them in turn so the caller can catch
// up inside the same frame.
//
//	for t.Poll() {
//		step()
//	}
package tick

// Ticker is a per-event-category rate limiter. The zero value is not usable;
// create one with New.
type Ticker struct {
	frequencyMS   uint32
	accumulatedMS uint32
	firedAtMS     uint32
	count         uint32
	warm          bool // the warm-up delta has been absorbed
}

// New creates a ticker that fires every frequencyMS milliseconds.
func New(frequencyMS uint32) *Ticker {
	return &Ticker{frequencyMS: frequencyMS}
}

// Advance adds the elapsed time since the previous frame. The very first
// delta after construction or Reset covers an unbounded warm-up interval and
// is discarded.
func (t *Ticker) Advance(deltaMS uint32) {
	if !t.warm {
		t.warm = true
		return
	}
	t.accumulatedMS += deltaMS
}

// SetFrequency changes the period for all future ticks and returns the
// previous one. The phase is kept: time already accounted for by earlier
// ticks is not replayed.
func (t *Ticker) SetFrequency(frequencyMS uint32) uint32 {
	previous := t.frequencyMS
	t.frequencyMS = frequencyMS
	return previous
}

// Frequency returns the current period in milliseconds.
func (t *Ticker) Frequency() uint32 {
	return t.frequencyMS
}

// Poll reports whether another tick is due, and if so consumes it.
// Callers drain it in a loop until it returns false.
func (t *Ticker) Poll() bool {
	if t.frequencyMS == 0 {
		return false
	}
	if t.firedAtMS+t.frequencyMS < t.accumulatedMS {
		t.firedAtMS += t.frequencyMS
		t.count++
		return true
	}
	return false
}

// Count returns how many ticks have fired over the ticker's lifetime.
// Animations use its parity to pick a frame.
func (t *Ticker) Count() uint32 {
	return t.count
}

// Elapsed returns the accumulated time the ticker has seen, in milliseconds.
func (t *Ticker) Elapsed() uint32 {
	return t.accumulatedMS
}

// Reset rewinds the clock and re-arms the warm-up discard. The fire count is
// lifetime-scoped and survives a reset.
func (t *Ticker) Reset() {
	t.accumulatedMS = 0
	t.firedAtMS = 0
	t.warm = false
}
