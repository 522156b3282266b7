package main

import (
	"fmt"
	"os"

	"github.com/iwvelando/loan-amortization/cmd/amortization/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
