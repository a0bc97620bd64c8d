package matrix

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/luxfi/pss/pkg/math/gf"
)

// LoadBinarySuperInvMatrix reads a text file of space-separated 0/1
// tokens, one row per line, and returns the parsed matrix transposed
// (matching the super-invertible-matrix convention of SuperInvMatrix).
// All rows must have equal length; any non-binary token is a ParseError.
func LoadBinarySuperInvMatrix(field *gf.Field, path string) (*Matrix, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrix: opening binary super-invertible matrix %q: %w", path, err)
	}
	defer file.Close()

	var rows [][]gf.Element
	numCols := -1

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tokens := strings.Split(line, " ")
		row := make([]gf.Element, len(tokens))
		for i, tok := range tokens {
			switch tok {
			case "0":
				row[i] = field.Zero()
			case "1":
				row[i] = field.One()
			default:
				return nil, fmt.Errorf("matrix: %s:%d: non-binary token %q", path, lineNo, tok)
			}
		}
		if numCols == -1 {
			numCols = len(row)
		} else if len(row) != numCols {
			return nil, fmt.Errorf("matrix: %s:%d: row has %d columns, want %d", path, lineNo, len(row), numCols)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("matrix: reading %q: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("matrix: %q contains no rows", path)
	}

	flat := make([]gf.Element, 0, len(rows)*numCols)
	for _, row := range rows {
		flat = append(flat, row...)
	}
	m, err := New(field, len(rows), numCols, flat)
	if err != nil {
		return nil, err
	}
	return transpose(m), nil
}
