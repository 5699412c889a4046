package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

func main() {
	err := New(os.Stderr).Run(os.Args[1:], os.Stdin, os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ntuple: %s\n", err)
		os.Exit(1)
	}
}
