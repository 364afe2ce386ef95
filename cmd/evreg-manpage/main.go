package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/evreg/cmd/evreg"
)

func main() {
	rootCmd := evreg.NewRootCmd()

	if err := doc.GenMan(rootCmd, evreg.ManHeader(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
