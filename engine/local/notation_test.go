package local

import (
	"testing"

	"connect4-local/types"
)

func TestParseColumn(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"1", 0, false},
		{"4", 3, false},
		{" 7 ", 6, false},
		{"0", 0, true},
		{"8", 0, true},
		{"x", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseColumn(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColumn(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseColumn(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestColumnNameRoundTrip(t *testing.T) {
	for col := 0; col < 7; col++ {
		got, err := ParseColumn(ColumnName(col))
		if err != nil || got != col {
			t.Errorf("column %d -> %q -> %d (%v)", col, ColumnName(col), got, err)
		}
	}
}

func TestMoveLabel(t *testing.T) {
	got := MoveLabel(3, types.Move{Row: 5, Column: 0, Player: types.Player2})
	if got != "Turn 3: Player 2 to column 1" {
		t.Fatalf("MoveLabel() = %q", got)
	}
}

func TestPlayerName(t *testing.T) {
	tests := []struct {
		p    types.Player
		mode types.Mode
		want string
	}{
		{types.Player1, types.ModeHumanVsComputer, "Player 1"},
		{types.Player2, types.ModeHumanVsComputer, "Computer"},
		{types.Player2, types.ModeHumanVsHuman, "Player 2"},
	}
	for _, tt := range tests {
		if got := PlayerName(tt.p, tt.mode); got != tt.want {
			t.Errorf("PlayerName(%v, %s) = %q, want %q", tt.p, tt.mode, got, tt.want)
		}
	}
}
