package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/oascan/cmd/oascan"
)

func main() {
	rootCmd := oascan.NewRootCmd()

	if err := doc.GenMan(rootCmd, oascan.ManHeader(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
