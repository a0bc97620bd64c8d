package circuit

import "sort"

// PackedCircuit is a Circuit repartitioned for SIMD-friendly batch
// evaluation. Gates are grouped by kind (AND, then XOR, then INV) and
// chunked into blocks of GatesPerBlock; inputs and outputs are
// similarly flattened (group boundaries discarded) and chunked. The
// final block of any kind or of inputs/outputs may be short.
type PackedCircuit struct {
	Gates         []PackedGate
	Inputs        [][]WireID
	Outputs       [][]WireID
	NumWires      uint32
	GatesPerBlock uint32
}

// Pack partitions the circuit's gates by kind, sorts each kind's gates
// to cluster shared high-fan-out inputs into the same block, and
// chunks the result into blocks of gatesPerBlock. Packing is pure: it
// never changes the circuit's semantics, only its representation.
func (c *Circuit) Pack(gatesPerBlock uint32) *PackedCircuit {
	if gatesPerBlock == 0 {
		gatesPerBlock = 1
	}

	var and, xor, inv []Gate
	for _, g := range c.Gates {
		switch g.Kind {
		case KindAnd:
			and = append(and, g)
		case KindXor:
			xor = append(xor, g)
		case KindInv:
			inv = append(inv, g)
		}
	}

	var gates []PackedGate
	gates = append(gates, packKind(KindAnd, and, gatesPerBlock)...)
	gates = append(gates, packKind(KindXor, xor, gatesPerBlock)...)
	gates = append(gates, packKind(KindInv, inv, gatesPerBlock)...)

	return &PackedCircuit{
		Gates:         gates,
		Inputs:        chunkWires(flattenGroups(c.Inputs), gatesPerBlock),
		Outputs:       chunkWires(flattenGroups(c.Outputs), gatesPerBlock),
		NumWires:      c.NumWires,
		GatesPerBlock: gatesPerBlock,
	}
}

// packKind sorts gates of one kind by the (fan_out_count, wire_id) key
// of their hottest input wire, then chunks the sorted sequence into
// blocks of gatesPerBlock.
func packKind(kind GateKind, gates []Gate, gatesPerBlock uint32) []PackedGate {
	if len(gates) == 0 {
		return nil
	}

	fanOut := make(map[WireID]int)
	for _, g := range gates {
		for _, w := range g.inputs() {
			fanOut[w]++
		}
	}

	sorted := make([]Gate, len(gates))
	copy(sorted, gates)
	sort.SliceStable(sorted, func(i, j int) bool {
		ci, wi := maxInputKey(sorted[i], fanOut)
		cj, wj := maxInputKey(sorted[j], fanOut)
		if ci != cj {
			return ci < cj
		}
		return wi < wj
	})

	var blocks []PackedGate
	for start := 0; start < len(sorted); start += int(gatesPerBlock) {
		end := start + int(gatesPerBlock)
		if end > len(sorted) {
			end = len(sorted)
		}
		blocks = append(blocks, packGateInfo(kind, sorted[start:end]))
	}
	return blocks
}

// maxInputKey returns the (fan_out_count, wire_id) pair, over the
// gate's input wires, with the largest count, breaking ties by the
// larger wire ID.
func maxInputKey(g Gate, fanOut map[WireID]int) (int, WireID) {
	inps := g.inputs()
	bestCount, bestWire := fanOut[inps[0]], inps[0]
	for _, w := range inps[1:] {
		count := fanOut[w]
		if count > bestCount || (count == bestCount && w > bestWire) {
			bestCount, bestWire = count, w
		}
	}
	return bestCount, bestWire
}

func flattenGroups(groups [][]WireID) []WireID {
	var flat []WireID
	for _, g := range groups {
		flat = append(flat, g...)
	}
	return flat
}

func chunkWires(flat []WireID, chunkSize uint32) [][]WireID {
	if len(flat) == 0 {
		return nil
	}
	var out [][]WireID
	for start := 0; start < len(flat); start += int(chunkSize) {
		end := start + int(chunkSize)
		if end > len(flat) {
			end = len(flat)
		}
		out = append(out, flat[start:end])
	}
	return out
}

// GateCounts returns the number of AND, XOR, and INV blocks.
func (pc *PackedCircuit) GateCounts() (numAnd, numXor, numInv int) {
	for _, g := range pc.Gates {
		switch g.Kind {
		case KindAnd:
			numAnd++
		case KindXor:
			numXor++
		case KindInv:
			numInv++
		}
	}
	return
}
