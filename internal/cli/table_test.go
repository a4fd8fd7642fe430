package cli

import (
	"strings"
	"testing"
)

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Name", "Hex"})

	table.AddRow([]string{"red", "#FF0000"})
	if len(table.rows) != 1 {
		t.Errorf("Expected 1 row, got %d", len(table.rows))
	}

	// Add row with fewer columns (should be padded)
	table.AddRow([]string{"blue"})
	if len(table.rows[1]) != 2 || table.rows[1][1] != "" {
		t.Errorf("Expected row padded to 2 columns, got %q", table.rows[1])
	}

	// Add row with more columns (should be truncated)
	table.AddRow([]string{"green", "#00FF00", "extra"})
	if len(table.rows[2]) != 2 {
		t.Errorf("Expected row truncated to 2 columns, got %d", len(table.rows[2]))
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"#", "HEX"})
	table.AddRow([]string{"1", "#FF0000"})
	table.AddRow([]string{"10", "#0000FF"})

	want := "#   HEX\n" +
		"--  -------\n" +
		"1   #FF0000\n" +
		"10  #0000FF\n"

	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableRenderIgnoresANSI(t *testing.T) {
	block := "\x1b[48;2;255;0;0m    \x1b[0m"

	table := NewTable([]string{"SWATCH", "HEX"})
	table.AddRow([]string{block, "#FF0000"})

	lines := strings.Split(table.Render(), "\n")
	// "SWATCH" is 6 wide, the block is 4 visible cells, so 2 pad spaces plus the gap.
	if want := block + "    #FF0000"; lines[2] != want {
		t.Errorf("row = %q, want %q", lines[2], want)
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("Expected empty string for empty table, got: %q", got)
	}
}

func TestVisibleLen(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{in: "", want: 0},
		{in: "plain", want: 5},
		{in: "\x1b[38;2;1;2;3mab\x1b[0m", want: 2},
	}
	for _, tt := range tests {
		if got := visibleLen(tt.in); got != tt.want {
			t.Errorf("visibleLen(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
