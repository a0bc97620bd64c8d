package sharing

import (
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/luxfi/pss/pkg/math/gf"
	"github.com/luxfi/pss/pkg/math/matrix"
)

// coeffsRecord is the on-disk shape of a persisted coefficient matrix:
// the field width it was built over, plus the flat row-major data.
type coeffsRecord struct {
	Width uint8
	Rows  int
	Cols  int
	Data  []uint32
}

// SaveCoeffs persists a coefficient matrix (share_coeffs, recon_coeffs,
// or rand_coeffs) to path in CBOR, so configurations reused across many
// PackedSharing instances don't pay the Lagrange-interpolation cost
// again.
func SaveCoeffs(path string, m *matrix.Matrix) error {
	rows, cols := m.Shape()
	rec := coeffsRecord{
		Width: m.Field().Width(),
		Rows:  rows,
		Cols:  cols,
		Data:  make([]uint32, 0, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for _, e := range m.Row(r) {
			rec.Data = append(rec.Data, m.Field().ToUint32(e))
		}
	}

	b, err := cbor.Marshal(rec)
	if err != nil {
		return fmt.Errorf("sharing: marshaling coefficients: %w", err)
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("sharing: writing %q: %w", path, err)
	}
	return nil
}

// LoadCoeffs reads a coefficient matrix previously written by
// SaveCoeffs. It calls gf.Init for the persisted width itself, so the
// caller need not have initialized that field beforehand.
func LoadCoeffs(path string) (*matrix.Matrix, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sharing: reading %q: %w", path, err)
	}
	var rec coeffsRecord
	if err := cbor.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("sharing: unmarshaling %q: %w", path, err)
	}

	field, err := gf.Init(rec.Width)
	if err != nil {
		return nil, fmt.Errorf("sharing: initializing field width %d for %q: %w", rec.Width, path, err)
	}

	data := make([]gf.Element, len(rec.Data))
	for i, v := range rec.Data {
		data[i] = field.FromUint32(v)
	}
	return matrix.New(field, rec.Rows, rec.Cols, data)
}
