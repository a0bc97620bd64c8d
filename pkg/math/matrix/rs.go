package matrix

import "github.com/luxfi/pss/pkg/math/gf"

// RSGenMat builds a Reed-Solomon generator matrix with codeLen rows and
// msgLen columns. Column 0 is [1, 2, ..., codeLen] (as field elements via
// the integer-to-field conversion); column i (i > 0) is column 0
// multiplied pointwise with column i-1, i.e. column i holds [k^(i+1)] for
// k = 1..codeLen.
func RSGenMat(field *gf.Field, msgLen, codeLen int) *Matrix {
	m := Zero(field, codeLen, msgLen)

	col0 := make([]gf.Element, codeLen)
	for k := 0; k < codeLen; k++ {
		col0[k] = field.FromUint32(uint32(k + 1))
	}
	for row := 0; row < codeLen; row++ {
		m.Set(row, 0, col0[row])
	}

	prev := col0
	for i := 1; i < msgLen; i++ {
		cur := make([]gf.Element, codeLen)
		for row := 0; row < codeLen; row++ {
			cur[row] = field.Mul(col0[row], prev[row])
			m.Set(row, i, cur[row])
		}
		prev = cur
	}

	return m
}

// SuperInvMatrix returns a numOut x numInp matrix such that every
// numOut x numOut minor is invertible; this follows from the Vandermonde
// structure of the underlying Reed-Solomon generator. numInp must be >=
// numOut, and the property holds only while numInp <= 2^W - 1, so that
// the evaluation points 1..numInp are distinct nonzero field elements;
// larger numInp is not rejected, and the result then has singular minors.
func SuperInvMatrix(field *gf.Field, numInp, numOut int) *Matrix {
	gen := RSGenMat(field, numOut, numInp)
	return transpose(gen)
}

func transpose(m *Matrix) *Matrix {
	out := Zero(m.field, m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.Set(j, i, m.At(i, j))
		}
	}
	return out
}
