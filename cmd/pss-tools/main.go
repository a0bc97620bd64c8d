// Command pss-tools is a small operator CLI around the two file formats
// the packed-sharing core owns: Bristol-Fashion circuits and binary
// super-invertible matrices.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	_ "go.uber.org/automaxprocs"
)

var rootCmd = &cobra.Command{
	Use:   "pss-tools",
	Short: "Inspect and generate packed-secret-sharing circuit and matrix files",
}

func main() {
	rootCmd.AddCommand(supmatCmd, circuitCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
