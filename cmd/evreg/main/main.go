package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/evreg/cmd/evreg"
	"github.com/arthur-debert/evreg/pkg/output/styles"
)

func main() {
	rootCmd := evreg.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
