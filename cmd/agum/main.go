package main

import (
	"fmt"
	"os"

	"github.com/ramsdell/agum/shell"
)

func main() {
	if err := shell.New(os.Stdin, os.Stdout).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "agum:", err)
		os.Exit(1)
	}
}
