package tabledeck

import (
	"fmt"
	"testing"
)

func makeRows(n int) [][]string {
	rows := make([][]string, n)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("r%d", i), fmt.Sprintf("v%d", i)}
	}
	return rows
}

func TestChunkRows(t *testing.T) {
	tests := []struct {
		rows      int
		size      int
		wantSizes []int
	}{
		{0, 30, nil},
		{1, 30, []int{1}},
		{30, 30, []int{30}},
		{31, 30, []int{30, 1}},
		{65, 30, []int{30, 30, 5}},
		{5, 1, []int{1, 1, 1, 1, 1}},
		{10, 4, []int{4, 4, 2}},
	}

	for _, tt := range tests {
		rows := makeRows(tt.rows)
		chunks := ChunkRows(rows, tt.size)
		if len(chunks) != len(tt.wantSizes) {
			t.Errorf("ChunkRows(%d rows, %d) = %d chunks, expected %d",
				tt.rows, tt.size, len(chunks), len(tt.wantSizes))
			continue
		}
		for i, c := range chunks {
			if len(c) != tt.wantSizes[i] {
				t.Errorf("ChunkRows(%d rows, %d) chunk %d has %d rows, expected %d",
					tt.rows, tt.size, i, len(c), tt.wantSizes[i])
			}
		}
	}
}

func TestChunkRowsPreservesOrder(t *testing.T) {
	rows := makeRows(65)
	chunks := ChunkRows(rows, 30)

	idx := 0
	for ci, c := range chunks {
		for ri, row := range c {
			if row[0] != rows[idx][0] {
				t.Fatalf("chunk %d row %d = %q, expected %q", ci, ri, row[0], rows[idx][0])
			}
			idx++
		}
	}
	if idx != len(rows) {
		t.Errorf("chunks cover %d rows, expected %d", idx, len(rows))
	}
}

func TestChunkRowsInvalidSize(t *testing.T) {
	if got := ChunkRows(makeRows(5), 0); got != nil {
		t.Errorf("ChunkRows with size 0 = %v, expected nil", got)
	}
	if got := ChunkRows(makeRows(5), -1); got != nil {
		t.Errorf("ChunkRows with size -1 = %v, expected nil", got)
	}
}
