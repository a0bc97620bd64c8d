package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/luxfi/pss/pkg/math/gf"
	"github.com/luxfi/pss/pkg/math/matrix"
)

var (
	supmatWidth  uint8
	supmatNumInp int
	supmatNumOut int
	supmatOutput string
)

var supmatCmd = &cobra.Command{
	Use:   "supmat",
	Short: "Generate or inspect binary super-invertible matrix files",
}

var supmatGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build a super-invertible matrix and write it in the binary supmat format",
	RunE:  runSupmatGenerate,
}

func init() {
	supmatGenerateCmd.Flags().Uint8Var(&supmatWidth, "width", 1, "field width W (must be 1)")
	supmatGenerateCmd.Flags().IntVar(&supmatNumInp, "num-inp", 0, "number of input columns")
	supmatGenerateCmd.Flags().IntVar(&supmatNumOut, "num-out", 0, "number of output rows")
	supmatGenerateCmd.Flags().StringVar(&supmatOutput, "output", "", "output file path")
	_ = supmatGenerateCmd.MarkFlagRequired("num-inp")
	_ = supmatGenerateCmd.MarkFlagRequired("num-out")
	_ = supmatGenerateCmd.MarkFlagRequired("output")
	supmatCmd.AddCommand(supmatGenerateCmd)
}

// runSupmatGenerate builds the super-invertible matrix over GF(2), whose
// elements are literally 0 or 1, and writes them in the binary supmat
// format. The binary file format only makes sense at width 1: a
// super-invertible matrix over a wider field generally has non-binary
// entries, and the loader reads tokens as field-zero/field-one
// directly, so --width must be 1.
func runSupmatGenerate(cmd *cobra.Command, args []string) error {
	if supmatWidth != 1 {
		return fmt.Errorf("binary supmat format requires --width=1 (got %d): the loader reads tokens as literal field 0/1", supmatWidth)
	}
	field, err := gf.Init(supmatWidth)
	if err != nil {
		return fmt.Errorf("initializing field: %w", err)
	}
	if supmatNumInp < supmatNumOut {
		return fmt.Errorf("num-inp (%d) must be >= num-out (%d)", supmatNumInp, supmatNumOut)
	}

	// LoadBinarySuperInvMatrix transposes whatever it reads from disk, so
	// the file must hold the pre-transpose generator matrix; writing it
	// directly here means LoadBinarySuperInvMatrix(path) reproduces
	// exactly matrix.SuperInvMatrix(field, numInp, numOut).
	m := matrix.RSGenMat(field, supmatNumOut, supmatNumInp)
	rows, cols := m.Shape()

	var b strings.Builder
	for r := 0; r < rows; r++ {
		row := m.Row(r)
		for c, e := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			if field.ToUint32(e) == 1 {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		b.WriteByte('\n')
	}

	if err := os.WriteFile(supmatOutput, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("writing %q: %w", supmatOutput, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote supmat file %s (loads as a %dx%d super-invertible matrix)\n", supmatOutput, cols, rows)
	return nil
}
