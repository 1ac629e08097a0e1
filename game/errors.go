package game

// Error is a constant error value.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	// ErrNotAllowed is returned by Undo outside an active human-vs-human game
	// or when nothing has been played yet.
	ErrNotAllowed Error = "undo not allowed"
	// ErrEmptyHistory means the history was popped while empty. Game guards
	// against it; seeing it from Game.Undo is a bug.
	ErrEmptyHistory Error = "move history is empty"
)
