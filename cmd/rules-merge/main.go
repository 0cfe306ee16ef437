// file: cmd/rules-merge/main.go
package main

import (
	"os"

	"rules-merge/cmd/rules-merge/cmd"
)

func main() {
	if err := cmd.NewRootCommand().Execute(); err != nil {
		// Cobra prints the error, so we just need to exit
		os.Exit(1)
	}
}
