package parser

// cropToData cuts rows down to the region holding data: rows above the
// first non-empty cell and columns left of the leftmost non-empty cell are
// dropped. Exports that start at B3 or below a blank banner read the same
// as ones starting at A1.
func cropToData(rows [][]string) [][]string {
	minRow, maxRow, minCol := findDataBounds(rows)
	if minRow < 0 {
		return nil
	}

	out := make([][]string, 0, maxRow-minRow+1)
	for _, row := range rows[minRow : maxRow+1] {
		if minCol >= len(row) {
			out = append(out, nil)
			continue
		}
		out = append(out, row[minCol:])
	}
	return out
}

// findDataBounds finds the first and last rows and the leftmost column
// holding a non-empty cell. All three are -1 when there is none.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol int) {
	minRow, maxRow, minCol = -1, -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
		}
	}

	return
}
