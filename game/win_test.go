package game

import (
	"testing"

	"connect4-local/types"
)

func boardFrom(rows []string) *Board {
	b := NewBoard()
	for r, line := range rows {
		for c, ch := range line {
			switch ch {
			case '1':
				b.Place(r, c, types.Player1)
			case '2':
				b.Place(r, c, types.Player2)
			}
		}
	}
	return b
}

func samePositions(a, b []types.Pos) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCheckWinEmptyBoard(t *testing.T) {
	b := NewBoard()
	for _, p := range []types.Player{types.Player1, types.Player2} {
		res := CheckWin(b, p)
		if res.IsWin || len(res.Cells) != 0 {
			t.Fatalf("empty board reported a win for %v: %+v", p, res)
		}
	}
}

func TestCheckWinFewerThanFour(t *testing.T) {
	b := boardFrom([]string{
		".......",
		".......",
		".......",
		".......",
		"...1...",
		"1.11...",
	})
	if res := CheckWin(b, types.Player1); res.IsWin {
		t.Fatalf("three pieces reported a win: %+v", res)
	}
}

func TestCheckWinEmptyPlayer(t *testing.T) {
	if res := CheckWin(NewBoard(), types.Empty); res.IsWin {
		t.Fatal("empty cells must never count as a line")
	}
}

func TestCheckWinDirections(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		player types.Player
		want   []types.Pos
	}{
		{
			name: "horizontal",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"..2222.",
			},
			player: types.Player2,
			want:   []types.Pos{{Row: 5, Column: 2}, {Row: 5, Column: 3}, {Row: 5, Column: 4}, {Row: 5, Column: 5}},
		},
		{
			name: "vertical top to bottom",
			rows: []string{
				".......",
				".......",
				"......1",
				"......1",
				"......1",
				"......1",
			},
			player: types.Player1,
			want:   []types.Pos{{Row: 2, Column: 6}, {Row: 3, Column: 6}, {Row: 4, Column: 6}, {Row: 5, Column: 6}},
		},
		{
			name: "diagonal down-right",
			rows: []string{
				".......",
				".......",
				"1......",
				"21.....",
				"221....",
				"2221...",
			},
			player: types.Player1,
			want:   []types.Pos{{Row: 2, Column: 0}, {Row: 3, Column: 1}, {Row: 4, Column: 2}, {Row: 5, Column: 3}},
		},
		{
			name: "diagonal up-right",
			rows: []string{
				".......",
				".......",
				"......2",
				".....21",
				"....211",
				"...2111",
			},
			player: types.Player2,
			want:   []types.Pos{{Row: 5, Column: 3}, {Row: 4, Column: 4}, {Row: 3, Column: 5}, {Row: 2, Column: 6}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CheckWin(boardFrom(tt.rows), tt.player)
			if !res.IsWin {
				t.Fatal("expected a win")
			}
			if !samePositions(res.Cells, tt.want) {
				t.Fatalf("cells = %v, want %v", res.Cells, tt.want)
			}
		})
	}
}

func TestCheckWinTieBreakOrder(t *testing.T) {
	// Five in a row: the leftmost window is scanned first.
	b := boardFrom([]string{
		".......",
		".......",
		".......",
		".......",
		".......",
		"11111..",
	})
	res := CheckWin(b, types.Player1)
	want := []types.Pos{{Row: 5, Column: 0}, {Row: 5, Column: 1}, {Row: 5, Column: 2}, {Row: 5, Column: 3}}
	if !samePositions(res.Cells, want) {
		t.Fatalf("cells = %v, want %v", res.Cells, want)
	}

	// Horizontal beats vertical even when the vertical line sits further left.
	b = boardFrom([]string{
		".......",
		".......",
		"1......",
		"1......",
		"1......",
		"1..1111",
	})
	res = CheckWin(b, types.Player1)
	want = []types.Pos{{Row: 5, Column: 3}, {Row: 5, Column: 4}, {Row: 5, Column: 5}, {Row: 5, Column: 6}}
	if !samePositions(res.Cells, want) {
		t.Fatalf("horizontal should win the tie, got %v", res.Cells)
	}
}

func TestCheckWinDoesNotMutate(t *testing.T) {
	b := boardFrom([]string{
		".......",
		".......",
		".......",
		".......",
		"2......",
		"1111...",
	})
	before := b.Grid
	CheckWin(b, types.Player1)
	CheckWin(b, types.Player2)
	if before != b.Grid {
		t.Fatal("CheckWin changed the board")
	}
}
