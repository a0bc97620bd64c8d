// Package polynomial computes Lagrange interpolation coefficient
// matrices over GF(2^W).
package polynomial

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/luxfi/pss/pkg/math/gf"
	"github.com/luxfi/pss/pkg/math/matrix"
)

// LagrangeCoeffs interprets cpos as known evaluation points of a
// polynomial P of degree < len(cpos) and returns a matrix M of shape
// (len(npos), len(cpos)) such that M[i, :] . P(cpos) == P(npos[i]) for
// every i. cpos and npos must each contain no repeated elements.
//
// Row construction is independent across npos, and the shared
// denominators are independent across cpos, so both fan out over an
// errgroup (each row is then computed sequentially); field addition and
// multiplication are associative and commutative, so the parallel
// schedule does not affect the result.
func LagrangeCoeffs(field *gf.Field, cpos, npos []gf.Element) (*matrix.Matrix, error) {
	if err := requireUnique(cpos); err != nil {
		return nil, fmt.Errorf("polynomial: cpos: %w", err)
	}
	if err := requireUnique(npos); err != nil {
		return nil, fmt.Errorf("polynomial: npos: %w", err)
	}

	denom, err := denominators(field, cpos)
	if err != nil {
		return nil, err
	}

	rows := make([][]gf.Element, len(npos))
	var g errgroup.Group
	for i := range npos {
		i := i
		g.Go(func() error {
			row, err := lagrangeRow(field, cpos, denom, npos[i])
			if err != nil {
				return err
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	flat := make([]gf.Element, 0, len(npos)*len(cpos))
	for _, row := range rows {
		flat = append(flat, row...)
	}
	return matrix.New(field, len(npos), len(cpos), flat)
}

// denominators computes denom[i] = product over j != i of (cpos[i] - cpos[j]).
func denominators(field *gf.Field, cpos []gf.Element) ([]gf.Element, error) {
	denom := make([]gf.Element, len(cpos))
	var g errgroup.Group
	for i := range cpos {
		i := i
		g.Go(func() error {
			acc := field.One()
			for j := range cpos {
				if i == j {
					continue
				}
				acc = field.Mul(acc, field.Sub(cpos[i], cpos[j]))
			}
			denom[i] = acc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return denom, nil
}

// lagrangeRow computes one row of the coefficient matrix for target v.
func lagrangeRow(field *gf.Field, cpos, denom []gf.Element, v gf.Element) ([]gf.Element, error) {
	for k, c := range cpos {
		if c == v {
			row := make([]gf.Element, len(cpos))
			row[k] = field.One()
			return row, nil
		}
	}

	numerator := field.One()
	for _, c := range cpos {
		numerator = field.Mul(numerator, field.Sub(v, c))
	}

	row := make([]gf.Element, len(cpos))
	for j, c := range cpos {
		d := field.Mul(field.Sub(v, c), denom[j])
		coeff, err := field.Div(numerator, d)
		if err != nil {
			return nil, fmt.Errorf("polynomial: computing row for target %d: %w", v, err)
		}
		row[j] = coeff
	}
	return row, nil
}

func requireUnique(v []gf.Element) error {
	seen := make(map[gf.Element]struct{}, len(v))
	for _, e := range v {
		if _, ok := seen[e]; ok {
			return fmt.Errorf("repeated element %d", e)
		}
		seen[e] = struct{}{}
	}
	return nil
}
