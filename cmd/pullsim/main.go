// Command pullsim replays pull-to-refresh gesture scripts on a fake frame
// clock and prints or plots what the layout did.
//
// Usage:
//
//	pullsim run drag.yaml --verbose
//	pullsim plot drag.yaml -o drag.png
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/pullrefresh/cmd/pullsim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
