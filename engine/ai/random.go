package ai

import (
	"math/rand"
	"time"

	"connect4-local/game"
	"connect4-local/types"
)

// Random plays a uniformly random open column.
type Random struct {
	rng *rand.Rand
}

// NewRandom wraps rng. A nil rng gets a time-seeded source.
func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Random{rng: rng}
}

func (r *Random) ChooseColumn(b *game.Board, _ types.Player) (int, bool) {
	open := b.ValidColumns()
	if len(open) == 0 {
		return 0, false
	}
	return open[r.rng.Intn(len(open))], true
}
