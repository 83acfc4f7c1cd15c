// Command script2json wraps a script file into the {"script": ...}
// JSON argument that script-executing tools take, ready to paste into
// an mcp-call invocation.
package main

import (
	"fmt"
	"os"

	"github.com/robustcall/mcall"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: script2json <script.py>")
		os.Exit(1)
	}

	code, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "script2json: %v\n", err)
		os.Exit(1)
	}

	params := mcall.Params{mcall.KeyScript: string(code)}
	fmt.Println(string(params.JSON()))
}
