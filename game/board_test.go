package game

import (
	"testing"

	"connect4-local/types"
)

func TestLowestEmptyRow(t *testing.T) {
	b := NewBoard()
	row, ok := b.LowestEmptyRow(3)
	if !ok || row != Rows-1 {
		t.Fatalf("empty column: got (%d, %v), want (%d, true)", row, ok, Rows-1)
	}

	for i := 0; i < Rows; i++ {
		r, ok := b.LowestEmptyRow(3)
		if !ok {
			t.Fatalf("column filled early after %d pieces", i)
		}
		if r != Rows-1-i {
			t.Fatalf("piece %d landed on row %d, want %d", i, r, Rows-1-i)
		}
		b.Place(r, 3, types.Player1)
	}

	if _, ok := b.LowestEmptyRow(3); ok {
		t.Fatal("full column should report no empty row")
	}
	if !b.TopRowOccupied(3) {
		t.Fatal("full column should have its top row occupied")
	}
}

func TestLowestEmptyRowOutOfRange(t *testing.T) {
	b := NewBoard()
	for _, col := range []int{-1, Columns, 99} {
		if _, ok := b.LowestEmptyRow(col); ok {
			t.Errorf("column %d should be rejected", col)
		}
		if !b.TopRowOccupied(col) {
			t.Errorf("column %d should read as unplayable", col)
		}
	}
}

func TestClearAndCount(t *testing.T) {
	b := NewBoard()
	b.Place(5, 0, types.Player1)
	b.Place(5, 1, types.Player2)
	b.Place(4, 0, types.Player1)
	if b.Count() != 3 {
		t.Fatalf("count = %d, want 3", b.Count())
	}
	b.Clear(4, 0)
	if b.At(4, 0) != types.Empty {
		t.Fatal("cleared cell should be empty")
	}
	if b.Count() != 2 {
		t.Fatalf("count = %d, want 2", b.Count())
	}
	if b.At(-1, 0) != types.Empty || b.At(0, Columns) != types.Empty {
		t.Fatal("out of bounds cells read as empty")
	}
}

func TestIsFull(t *testing.T) {
	b := NewBoard()
	if b.IsFull() {
		t.Fatal("empty board reported full")
	}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			b.Place(r, c, types.Player2)
		}
	}
	if !b.IsFull() {
		t.Fatal("filled board not reported full")
	}
	if len(b.ValidColumns()) != 0 {
		t.Fatalf("full board has valid columns %v", b.ValidColumns())
	}
}

func TestValidColumns(t *testing.T) {
	b := NewBoard()
	for r := 0; r < Rows; r++ {
		b.Place(r, 2, types.Player1)
		b.Place(r, 5, types.Player2)
	}
	got := b.ValidColumns()
	want := []int{0, 1, 3, 4, 6}
	if len(got) != len(want) {
		t.Fatalf("ValidColumns() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ValidColumns() = %v, want %v", got, want)
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	b := NewBoard()
	b.Place(5, 6, types.Player1)
	snap := b.Snapshot()
	if snap[5][6] != 1 {
		t.Fatalf("snapshot cell = %d, want 1", snap[5][6])
	}
	snap[5][6] = 2
	if b.At(5, 6) != types.Player1 {
		t.Fatal("changing the snapshot changed the board")
	}
}
