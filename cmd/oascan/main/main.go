package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/oascan/cmd/oascan"
	"github.com/arthur-debert/oascan/pkg/errors"
	"github.com/arthur-debert/oascan/pkg/ui/styles"
)

func main() {
	rootCmd := oascan.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		_, _ = fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

		if errors.IsErrorCode(err, errors.ErrInvalidInput) {
			_, _ = fmt.Fprintln(os.Stderr)
			_ = rootCmd.Usage()
		}
		os.Exit(1)
	}
}
