// Command quicklook replays the truthiness and preview demonstrations.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/quicklook/cmd/quicklook/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
