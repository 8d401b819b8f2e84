package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/weftlang/weft/cmd/weft/internal"
)

func main() {
	os.Exit(run())
}

// run executes the CLI and converts its outcome to an exit code. The
// named return lets the panic handler override the code after a
// recovered crash.
func run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "weft: panic: %v\n", r)
			if internal.IsVerbose() {
				os.Stderr.Write(debug.Stack())
			} else {
				fmt.Fprintln(os.Stderr, "re-run with --verbose for a stack trace")
			}
			code = internal.ExitError
		}
	}()

	if err := Execute(context.Background()); err != nil {
		return internal.HandleError(rootCmd, err)
	}
	return internal.ExitSuccess
}
