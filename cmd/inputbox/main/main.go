package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/inputbox/cmd/inputbox"
	"github.com/arthur-debert/inputbox/pkg/ui/styles"
)

func main() {
	rootCmd := inputbox.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
