package entity

// Level is the static container for one playable stage. It owns its
// collections exclusively; systems report mutations as effects and the
// flow applies them here, never mid-iteration.
type Level struct {
	World  int
	Number int

	Blocks  []*Block
	Enemies []*Enemy
	Coins   []*Coin

	GoalX float64

	// Time is the countdown in second-equivalents, ticked by the flow.
	Time int
}

// RemoveBlocks deletes the blocks at the given indices. Indices refer to
// the slice as it was when the effects were gathered, so removal runs
// back to front.
func (l *Level) RemoveBlocks(indices []int) {
	for i := len(indices) - 1; i >= 0; i-- {
		idx := indices[i]
		if idx < 0 || idx >= len(l.Blocks) {
			continue
		}
		l.Blocks = append(l.Blocks[:idx], l.Blocks[idx+1:]...)
	}
}

// CompactCoins drops coins whose collect animation has finished.
func (l *Level) CompactCoins() {
	kept := l.Coins[:0]
	for _, c := range l.Coins {
		if !c.Expired() {
			kept = append(kept, c)
		}
	}
	l.Coins = kept
}

// AliveEnemies counts enemies that are still active.
func (l *Level) AliveEnemies() int {
	n := 0
	for _, e := range l.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}
