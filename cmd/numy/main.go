// numy evaluates numy's integer and float operations from the command line.
//
// Usage:
//
//	numy eval script.txt
//	echo "u8 checked_sub 5 10" | numy eval
//	numy inspect f32 -0
//	numy ops u8
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/bearlytools/numy/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		return
	}
	// Commands report their own failures on stdout. Errors from cobra itself (unknown
	// command, bad flag, wrong arg count) are plain errors and still need printing.
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCommandError)
	}
	os.Exit(cli.GetExitCode(err))
}
