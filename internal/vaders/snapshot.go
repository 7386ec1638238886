package vaders

// Snapshot is a flat copy of the session state, for frontends, the frame
// log and determinism tests.
type Snapshot struct {
	Screen    ScreenID
	Requested ScreenID
	Frames    uint64
	ElapsedMS uint64
	Swaps     int

	SplashMS    uint32
	TitleOffset int

	// Play state
	Score         uint32
	Wave          int
	Live          int
	GridFrequency uint32
	Offset        int
	Descent       int
	Direction     Direction
	PlayerX       int
	Firing        bool
	BulletX       int
	BulletY       int
	Explosions    int

	// Cells flattened row by row
	Cells []Cell
}

func (snap *Snapshot) fillPlay(p *Play) {
	g := p.Grid()
	live, _, _ := g.Scan()

	snap.Score = p.Score()
	snap.Wave = p.Wave()
	snap.Live = live
	snap.GridFrequency = p.GridFrequency()
	snap.Offset = g.Offset
	snap.Descent = g.Descent
	snap.Direction = g.Direction
	snap.PlayerX = p.player.X
	snap.Firing = p.player.Firing
	snap.BulletX = p.player.BulletX
	snap.BulletY = p.player.BulletY
	snap.Explosions = p.Explosions().Active()

	snap.Cells = make([]Cell, 0, g.Rows()*g.Columns())
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Columns(); col++ {
			snap.Cells = append(snap.Cells, g.At(col, row))
		}
	}
}

// Hash returns a simple hash of the play state for determinism testing.
// Frame counters are left out so runs of different lengths can compare.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Screen)
	h = h*31 + uint64(snap.Score)
	h = h*31 + uint64(snap.Wave)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.GridFrequency) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Offset)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Descent)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Direction)
	h = h*31 + uint64(snap.PlayerX) //#nosec G115 -- hash computation
	if snap.Firing {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.BulletX)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BulletY)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Explosions) //#nosec G115 -- hash computation

	for _, c := range snap.Cells {
		h = h*31 + uint64(c)
	}
	return h
}
