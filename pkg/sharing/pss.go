// Package sharing implements packed secret sharing over GF(2^W): l
// secrets are packed into one degree-d polynomial and split into n
// shares, with an optional redundancy check that detects tampering.
package sharing

import (
	"fmt"

	"github.com/luxfi/pss/pkg/circuit"
	"github.com/luxfi/pss/pkg/math/gf"
	"github.com/luxfi/pss/pkg/math/matrix"
	"github.com/luxfi/pss/pkg/math/polynomial"
)

// PackedSharing holds the precomputed Lagrange coefficient matrices for
// one (degree, party count, secret-position) configuration. Once
// constructed, a PackedSharing is immutable and safe for concurrent use
// by multiple readers.
type PackedSharing struct {
	field *gf.Field

	n  int // number of parties / shares
	np int // d + 1, number of defining evaluations
	l  int // number of packed secrets

	shareCoeffs *matrix.Matrix // (l+n-np, np)
	reconCoeffs *matrix.Matrix // (l+n-np, np)
	randCoeffs  *matrix.Matrix // (n-np, np)
}

// DefaultPos returns the canonical l secret-evaluation positions
// [GF(n), ..., GF(n+l-1)], chosen just above the n share positions.
func DefaultPos(field *gf.Field, n, l uint32) []gf.Element {
	pos := make([]gf.Element, l)
	for i := range pos {
		pos[i] = field.FromUint32(n + uint32(i))
	}
	return pos
}

// SharePos returns the n canonical share positions [GF(0), ..., GF(n-1)].
func SharePos(field *gf.Field, n uint32) []gf.Element {
	pos := make([]gf.Element, n)
	for i := range pos {
		pos[i] = field.FromUint32(uint32(i))
	}
	return pos
}

// WireToPos maps each circuit wire id w to the field position
// GF(w + n + l), so wire positions never alias the n share positions or
// the l secret positions.
func WireToPos(field *gf.Field, n, l uint32, wires []circuit.WireID) []gf.Element {
	offset := n + l
	pos := make([]gf.Element, len(wires))
	for i, w := range wires {
		pos[i] = field.FromUint32(uint32(w) + offset)
	}
	return pos
}

// ComputeShareCoeffs returns the same matrix New would store as
// share_coeffs, for callers that want to precompute and reuse it across
// many independent PackedSharing configurations sharing the same
// (d, n, pos).
func ComputeShareCoeffs(field *gf.Field, d, n uint32, pos []gf.Element) (*matrix.Matrix, error) {
	np := int(d + 1)
	allPos := append(append([]gf.Element{}, pos...), SharePos(field, n)...)
	return polynomial.LagrangeCoeffs(field, allPos[:np], allPos[np:])
}

// ComputeReconCoeffs returns the same matrix New would store as
// recon_coeffs.
func ComputeReconCoeffs(field *gf.Field, d, n uint32, pos []gf.Element) (*matrix.Matrix, error) {
	np := int(d + 1)
	l := len(pos)
	nInt := int(n)
	allPos := append(append([]gf.Element{}, pos...), SharePos(field, n)...)
	return polynomial.LagrangeCoeffs(field, allPos[l+nInt-np:], allPos[:l+nInt-np])
}

// New builds a PackedSharing for polynomials of degree d over n parties,
// packing secrets at the given positions. np = d+1 must not exceed n,
// and every element of pos must be a position >= n distinct from the
// share positions and from each other.
func New(field *gf.Field, d, n uint32, pos []gf.Element) (*PackedSharing, error) {
	np := d + 1
	if np > n {
		return nil, fmt.Errorf("sharing: np=%d exceeds n=%d", np, n)
	}
	for _, p := range pos {
		if field.ToUint32(p) < n {
			return nil, fmt.Errorf("sharing: secret position %d collides with share-position range [0,%d)", field.ToUint32(p), n)
		}
	}

	l := len(pos)
	shPos := SharePos(field, n)
	allPos := append(append([]gf.Element{}, pos...), shPos...)

	npInt := int(np)
	nInt := int(n)

	shareCoeffs, err := polynomial.LagrangeCoeffs(field, allPos[:npInt], allPos[npInt:])
	if err != nil {
		return nil, fmt.Errorf("sharing: computing share_coeffs: %w", err)
	}
	reconCoeffs, err := polynomial.LagrangeCoeffs(field, allPos[l+nInt-npInt:], allPos[:l+nInt-npInt])
	if err != nil {
		return nil, fmt.Errorf("sharing: computing recon_coeffs: %w", err)
	}
	randCoeffs, err := polynomial.LagrangeCoeffs(field, shPos[:npInt], shPos[npInt:])
	if err != nil {
		return nil, fmt.Errorf("sharing: computing rand_coeffs: %w", err)
	}

	return &PackedSharing{
		field:       field,
		n:           nInt,
		np:          npInt,
		l:           l,
		shareCoeffs: shareCoeffs,
		reconCoeffs: reconCoeffs,
		randCoeffs:  randCoeffs,
	}, nil
}

// Share packs l secrets into a fresh random degree-d polynomial and
// returns the n shares in share-position order. Any d of the returned
// shares are uniformly distributed.
func (p *PackedSharing) Share(secrets []gf.Element, rng gf.Rng) ([]gf.Element, error) {
	if len(secrets) != p.l {
		return nil, fmt.Errorf("sharing: share: got %d secrets, want %d: %w", len(secrets), p.l, ErrInputLength)
	}
	return ShareUsingCoeffs(p.field, secrets, p.shareCoeffs, uint32(p.l), rng)
}

// ShareUsingCoeffs performs the same packing Share does given a
// precomputed share_coeffs matrix, for callers that reuse coefficients
// across many sharings with the same (d, n, pos).
func ShareUsingCoeffs(field *gf.Field, secrets []gf.Element, coeffs *matrix.Matrix, l uint32, rng gf.Rng) ([]gf.Element, error) {
	_, np := coeffs.Shape()
	lInt := int(l)
	pads := np - lInt
	points := make([]gf.Element, 0, np)
	points = append(points, secrets...)
	for i := 0; i < pads; i++ {
		r, err := field.Random(rng)
		if err != nil {
			return nil, fmt.Errorf("sharing: sampling random pad: %w", err)
		}
		points = append(points, r)
	}

	rest, err := coeffs.Dot(points)
	if err != nil {
		return nil, fmt.Errorf("sharing: applying share_coeffs: %w", err)
	}

	shares := make([]gf.Element, 0, lInt+len(rest))
	shares = append(shares, points[lInt:]...)
	shares = append(shares, rest...)
	return shares, nil
}

// Rand returns n shares of a uniformly random degree-d sharing of
// uniformly random secrets.
func (p *PackedSharing) Rand(rng gf.Rng) ([]gf.Element, error) {
	defining := make([]gf.Element, p.np)
	for i := range defining {
		r, err := p.field.Random(rng)
		if err != nil {
			return nil, fmt.Errorf("sharing: rand: sampling defining value %d: %w", i, err)
		}
		defining[i] = r
	}
	rest, err := p.randCoeffs.Dot(defining)
	if err != nil {
		return nil, fmt.Errorf("sharing: rand: applying rand_coeffs: %w", err)
	}
	shares := make([]gf.Element, 0, len(defining)+len(rest))
	shares = append(shares, defining...)
	shares = append(shares, rest...)
	return shares, nil
}

// SemihonRecon reconstructs the l secrets from n shares without
// performing the redundancy check; a single malicious share silently
// corrupts the result.
func (p *PackedSharing) SemihonRecon(shares []gf.Element) ([]gf.Element, error) {
	if len(shares) != p.n {
		return nil, fmt.Errorf("sharing: semihon_recon: got %d shares, want %d: %w", len(shares), p.n, ErrInputLength)
	}
	full, err := p.reconCoeffs.Dot(shares[p.n-p.np:])
	if err != nil {
		return nil, fmt.Errorf("sharing: semihon_recon: applying recon_coeffs: %w", err)
	}
	return full[:p.l], nil
}

// Recon reconstructs the l secrets from n shares and checks the n-np
// redundant shares for consistency, returning ErrMaliciousBehavior if
// any of them was tampered with.
func (p *PackedSharing) Recon(shares []gf.Element) ([]gf.Element, error) {
	if len(shares) != p.n {
		return nil, fmt.Errorf("sharing: recon: got %d shares, want %d: %w", len(shares), p.n, ErrInputLength)
	}
	return ReconUsingCoeffs(p.field, shares, p.reconCoeffs, p.l)
}

// ReconUsingCoeffs performs the same reconstruction-and-check Recon does
// given a precomputed recon_coeffs matrix of shape (l+n-np, np), for
// callers that reuse coefficients across many reconstructions with the
// same (d, n, pos). np is inferred from coeffs' shape, n from
// len(shares), and the number of checked shares from coeffs' rows and l.
func ReconUsingCoeffs(field *gf.Field, shares []gf.Element, coeffs *matrix.Matrix, l int) ([]gf.Element, error) {
	rows, np := coeffs.Shape()
	n := len(shares)
	if n-np < 0 {
		return nil, fmt.Errorf("sharing: recon_using_coeffs: %d shares shorter than np=%d: %w", n, np, ErrInputLength)
	}

	full, err := coeffs.Dot(shares[n-np:])
	if err != nil {
		return nil, fmt.Errorf("sharing: recon_using_coeffs: applying coeffs: %w", err)
	}

	extra := rows - l
	for i := 0; i < extra; i++ {
		if full[l+i] != shares[i] {
			return nil, ErrMaliciousBehavior
		}
	}
	return full[:l], nil
}

// ReconCoeffs returns the rows of recon_coeffs that map the last np
// shares directly to the l secrets, for callers that want to drive
// reconstruction without the redundancy check themselves.
func (p *PackedSharing) ReconCoeffs() *matrix.Matrix {
	return p.reconCoeffs.SliceRows(0, p.l)
}

// NumParties returns n, the number of shares.
func (p *PackedSharing) NumParties() uint32 { return uint32(p.n) }

// NumSecrets returns l, the number of packed secrets.
func (p *PackedSharing) NumSecrets() uint32 { return uint32(p.l) }

// Degree returns d, the polynomial degree np-1.
func (p *PackedSharing) Degree() uint32 { return uint32(p.np - 1) }
