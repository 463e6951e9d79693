package game

import "sync/atomic"

// HighScore is the best score across games. It is safe for concurrent use,
// so one table can be shared by every session on a server.
type HighScore struct {
	best atomic.Int64
}

// NewHighScore creates an empty high score table.
func NewHighScore() *HighScore {
	return &HighScore{}
}

// Submit records score and reports whether it beat the previous best.
func (h *HighScore) Submit(score int) bool {
	s := int64(score)
	for {
		cur := h.best.Load()
		if s <= cur {
			return false
		}
		if h.best.CompareAndSwap(cur, s) {
			return true
		}
	}
}

// Best returns the highest submitted score.
func (h *HighScore) Best() int {
	return int(h.best.Load())
}
