// Package circuit parses Bristol-Fashion boolean circuits, evaluates
// them, and repartitions their gates into SIMD-friendly blocks.
package circuit

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Circuit is an ordered, topologically sorted sequence of gates: every
// gate's input wires are defined earlier, either as a circuit input or
// as a prior gate's output. Input groups occupy the initial contiguous
// block of wire IDs [0, sum of input lengths); output groups occupy the
// terminal contiguous block [NumWires - sum of output lengths, NumWires).
type Circuit struct {
	Gates    []Gate
	Inputs   [][]WireID
	Outputs  [][]WireID
	NumWires uint32
}

// LoadBristolFashion reads a circuit in the Bristol-Fashion text format.
//
// The header occupies the first four logical lines: "num_gates
// num_wires", "num_inputs inp_len...", "num_outputs out_len...".
// Output wire groups are assigned from the TOP of wire space, walking
// the declared output lengths in reverse and decrementing from
// num_wires; this reproduces the reference parser's behavior and
// several circuit files depend on it.
func LoadBristolFashion(path string) (*Circuit, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("circuit: opening %q: %w", path, err)
	}
	defer file.Close()

	toks := newTokenReader(file)

	numGates, err := toks.uint32()
	if err != nil {
		return nil, fmt.Errorf("circuit: %s: reading num_gates: %w", path, err)
	}
	numWires, err := toks.uint32()
	if err != nil {
		return nil, fmt.Errorf("circuit: %s: reading num_wires: %w", path, err)
	}

	numInputs, err := toks.uint32()
	if err != nil {
		return nil, fmt.Errorf("circuit: %s: reading num_inputs: %w", path, err)
	}
	inpLens := make([]uint32, numInputs)
	for i := range inpLens {
		if inpLens[i], err = toks.uint32(); err != nil {
			return nil, fmt.Errorf("circuit: %s: reading input length %d: %w", path, i, err)
		}
	}
	inputs := make([][]WireID, numInputs)
	state := uint32(0)
	for i, v := range inpLens {
		group := make([]WireID, v)
		for j := range group {
			group[j] = WireID(state + uint32(j))
		}
		inputs[i] = group
		state += v
	}

	numOutputs, err := toks.uint32()
	if err != nil {
		return nil, fmt.Errorf("circuit: %s: reading num_outputs: %w", path, err)
	}
	outLens := make([]uint32, numOutputs)
	for i := range outLens {
		if outLens[i], err = toks.uint32(); err != nil {
			return nil, fmt.Errorf("circuit: %s: reading output length %d: %w", path, i, err)
		}
	}
	outputs := make([][]WireID, numOutputs)
	top := numWires
	for i := len(outLens) - 1; i >= 0; i-- {
		v := outLens[i]
		top -= v
		group := make([]WireID, v)
		for j := range group {
			group[j] = WireID(top + uint32(j))
		}
		outputs[i] = group
	}

	gates := make([]Gate, 0, numGates)
	for i := uint32(0); i < numGates; i++ {
		g, err := toks.gate()
		if err != nil {
			return nil, fmt.Errorf("circuit: %s: reading gate %d: %w", path, i, err)
		}
		for _, w := range g.inputs() {
			if uint32(w) >= numWires {
				return nil, fmt.Errorf("circuit: %s: gate %d: input wire %d out of range (num_wires %d)", path, i, w, numWires)
			}
		}
		if uint32(g.Out) >= numWires {
			return nil, fmt.Errorf("circuit: %s: gate %d: output wire %d out of range (num_wires %d)", path, i, g.Out, numWires)
		}
		gates = append(gates, g)
	}

	return &Circuit{Gates: gates, Inputs: inputs, Outputs: outputs, NumWires: numWires}, nil
}

// Eval evaluates the circuit against one boolean vector per input group
// (order preserved) and returns one boolean vector per output group.
func (c *Circuit) Eval(inputGroups [][]bool) ([][]bool, error) {
	if len(inputGroups) != len(c.Inputs) {
		return nil, fmt.Errorf("circuit: eval: got %d input groups, want %d", len(inputGroups), len(c.Inputs))
	}
	wires := make([]bool, c.NumWires)
	for gi, group := range c.Inputs {
		vals := inputGroups[gi]
		if len(vals) != len(group) {
			return nil, fmt.Errorf("circuit: eval: input group %d has %d bits, want %d", gi, len(vals), len(group))
		}
		for i, w := range group {
			wires[w] = vals[i]
		}
	}

	for _, g := range c.Gates {
		switch g.Kind {
		case KindXor:
			wires[g.Out] = wires[g.Inp[0]] != wires[g.Inp[1]]
		case KindAnd:
			wires[g.Out] = wires[g.Inp[0]] && wires[g.Inp[1]]
		case KindInv:
			wires[g.Out] = !wires[g.Inp[0]]
		default:
			return nil, fmt.Errorf("circuit: eval: unknown gate kind %v", g.Kind)
		}
	}

	outputs := make([][]bool, len(c.Outputs))
	for gi, group := range c.Outputs {
		out := make([]bool, len(group))
		for i, w := range group {
			out[i] = wires[w]
		}
		outputs[gi] = out
	}
	return outputs, nil
}

// tokenReader pulls whitespace-separated tokens across line boundaries,
// matching the Bristol-Fashion convention that blank or extra lines
// between logical header/gate lines are tolerated.
type tokenReader struct {
	scanner *bufio.Scanner
}

func newTokenReader(f *os.File) *tokenReader {
	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)
	return &tokenReader{scanner: scanner}
}

func (t *tokenReader) next() (string, error) {
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("unexpected end of input")
	}
	return t.scanner.Text(), nil
}

func (t *tokenReader) uint32() (uint32, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parsing %q as uint32: %w", tok, err)
	}
	return uint32(v), nil
}

func (t *tokenReader) gate() (Gate, error) {
	fanIn, err := t.uint32()
	if err != nil {
		return Gate{}, fmt.Errorf("fan_in: %w", err)
	}
	if _, err := t.uint32(); err != nil { // fan_out, always 1, unused
		return Gate{}, fmt.Errorf("fan_out: %w", err)
	}
	inps := make([]WireID, fanIn)
	for i := range inps {
		v, err := t.uint32()
		if err != nil {
			return Gate{}, fmt.Errorf("input %d: %w", i, err)
		}
		inps[i] = WireID(v)
	}
	out, err := t.uint32()
	if err != nil {
		return Gate{}, fmt.Errorf("output: %w", err)
	}
	kindTok, err := t.next()
	if err != nil {
		return Gate{}, fmt.Errorf("gate type: %w", err)
	}

	var kind GateKind
	switch strings.ToUpper(kindTok) {
	case "AND":
		kind = KindAnd
	case "XOR":
		kind = KindXor
	case "INV":
		kind = KindInv
	default:
		return Gate{}, fmt.Errorf("invalid gate type %q", kindTok)
	}
	if fanIn != uint32(kind.fanIn()) {
		return Gate{}, fmt.Errorf("gate type %s expects fan_in %d, got %d", kind, kind.fanIn(), fanIn)
	}

	g := Gate{Kind: kind, Out: out}
	copy(g.Inp[:], inps)
	return g, nil
}
