package main

import (
	"fmt"
	"os"
)

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	fmt.Printf("Project root: %s\n", opts.source)
	fmt.Printf("Generating %s docs into %s\n", opts.kind, opts.target)

	if err := generateDocs(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate docs: %s\n", err.Error())
		os.Exit(1)
	}
}
