package game

import "connect4-local/types"

// History is the ordered log of applied moves, oldest first.
type History struct {
	moves []types.Move
}

// Record appends a move.
func (h *History) Record(m types.Move) {
	h.moves = append(h.moves, m)
}

// UndoLast removes and returns the newest move.
func (h *History) UndoLast() (types.Move, error) {
	if len(h.moves) == 0 {
		return types.Move{}, ErrEmptyHistory
	}
	last := h.moves[len(h.moves)-1]
	h.moves = h.moves[:len(h.moves)-1]
	return last, nil
}

// Last returns the newest move without removing it.
func (h *History) Last() (types.Move, bool) {
	if len(h.moves) == 0 {
		return types.Move{}, false
	}
	return h.moves[len(h.moves)-1], true
}

func (h *History) Len() int {
	return len(h.moves)
}

// Moves returns a copy of the log.
func (h *History) Moves() []types.Move {
	out := make([]types.Move, len(h.moves))
	copy(out, h.moves)
	return out
}

func (h *History) reset() {
	h.moves = nil
}
