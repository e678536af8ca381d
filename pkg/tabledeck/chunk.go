package tabledeck

// ChunkRows splits data rows into contiguous groups of at most size rows.
// Every chunk except possibly the last has exactly size rows, chunks are
// subslices of rows in original order, and concatenating them reproduces
// rows exactly. Zero rows yield zero chunks. size must be positive;
// non-positive sizes return nil.
func ChunkRows(rows [][]string, size int) [][][]string {
	if size < 1 || len(rows) == 0 {
		return nil
	}
	chunks := make([][][]string, 0, (len(rows)+size-1)/size)
	for start := 0; start < len(rows); start += size {
		end := start + size
		if end > len(rows) {
			end = len(rows)
		}
		chunks = append(chunks, rows[start:end])
	}
	return chunks
}
