package matrix

import "fmt"

// Combination is an ordered selection with repetition: applying it to an
// input sequence v yields [v[Map[0]], v[Map[1]], ...]. Map may repeat
// indices.
type Combination struct {
	Map []int
}

// NewCombination stores the map directly.
func NewCombination(m []int) Combination {
	cp := make([]int, len(m))
	copy(cp, m)
	return Combination{Map: cp}
}

// CombinationFromInstance infers the map such that out[i] == inp[map[i]],
// given inp has unique elements and every out[i] appears in inp. If inp
// contains duplicates, the later index wins, since the lookup is built in
// iteration order and later entries overwrite earlier ones.
func CombinationFromInstance[T comparable](inp, out []T) (Combination, error) {
	lookup := make(map[T]int, len(inp))
	for i, v := range inp {
		lookup[v] = i
	}
	m := make([]int, len(out))
	for i, v := range out {
		idx, ok := lookup[v]
		if !ok {
			return Combination{}, fmt.Errorf("matrix: CombinationFromInstance: value at output index %d not found in input", i)
		}
		m[i] = idx
	}
	return Combination{Map: m}, nil
}

// Len is the length of the combination's output.
func (c Combination) Len() int { return len(c.Map) }

// Apply selects [v[Map[0]], v[Map[1]], ...], failing if any index in Map
// is out of range for v.
func Apply[T any](c Combination, v []T) ([]T, error) {
	out := make([]T, len(c.Map))
	for i, idx := range c.Map {
		if idx < 0 || idx >= len(v) {
			return nil, fmt.Errorf("matrix: Combination.Apply: index %d at position %d out of range for input length %d", idx, i, len(v))
		}
		out[i] = v[idx]
	}
	return out, nil
}
